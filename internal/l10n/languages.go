// Package l10n maps site locales to the ISO-639-1 codes the search API
// tags tweets with. Locales without a code cannot be matched against
// tweet metadata and are skipped by locale-scoped jobs.
package l10n

var iso6391 = map[string]string{
	"cs":      "cs",
	"da":      "da",
	"de":      "de",
	"el":      "el",
	"en-US":   "en",
	"es":      "es",
	"fi":      "fi",
	"fr":      "fr",
	"hu":      "hu",
	"id":      "id",
	"it":      "it",
	"ja":      "ja",
	"ko":      "ko",
	"nl":      "nl",
	"no":      "no",
	"pl":      "pl",
	"pt-BR":   "pt",
	"pt-PT":   "pt",
	"ro":      "ro",
	"ru":      "ru",
	"sv":      "sv",
	"th":      "th",
	"tr":      "tr",
	"vi":      "vi",
	"zh-CN":   "zh",
	"zh-TW":   "zh",
	"es-AR":   "es",
	"fy-NL":   "fy",
	"nb-NO":   "no",
	"sr-Cyrl": "sr",

	// No ISO-639-1 code exists for these.
	"ach": "",
	"szl": "",
}

// ISO6391 returns the ISO-639-1 code for a site locale, or "" when the
// locale is unknown or has no code.
func ISO6391(locale string) string {
	return iso6391[locale]
}
