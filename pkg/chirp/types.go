package chirp

import (
	"encoding/json"
	"time"
)

// Status is a single tweet as returned by the search API. Raw holds the
// untouched JSON the status was decoded from, for downstream consumers
// that need fields the typed struct does not carry.
type Status struct {
	ID        int64    `json:"id"`
	Text      string   `json:"text"`
	CreatedAt string   `json:"created_at"`
	ToUserID  int64    `json:"to_user_id"`
	Metadata  Metadata `json:"metadata"`
	User      User     `json:"user"`

	Raw json.RawMessage `json:"-"`
}

type Metadata struct {
	ISOLanguageCode string `json:"iso_language_code"`
}

type User struct {
	ID                   int64  `json:"id"`
	ScreenName           string `json:"screen_name"`
	ProfileImageURL      string `json:"profile_image_url"`
	ProfileImageURLHTTPS string `json:"profile_image_url_https"`
}

// CreatedAtTime parses the API's Ruby-style timestamp
// ("Mon Jan 02 15:04:05 -0700 2006") into UTC.
func (s *Status) CreatedAtTime() (time.Time, error) {
	t, err := time.Parse(time.RubyDate, s.CreatedAt)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
