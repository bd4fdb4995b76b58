// Package filtering decides which candidate tweets are worth keeping.
package filtering

import (
	"regexp"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/samber/lo"

	"carebird/pkg/chirp"
)

var (
	tweetsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "carebird_tweets_rejected_total",
		Help: "The total number of candidate tweets rejected, by reason.",
	}, []string{"reason"})

	linkRegexp    = regexp.MustCompile(`(?i)https?:`)
	mentionRegexp = regexp.MustCompile(`(^|\W)@`)
	rtRegexp      = regexp.MustCompile(`(?i)^rt\W`)
)

// Reason tags why a candidate was rejected.
type Reason string

const (
	ReasonReplyOrMention Reason = "reply_or_mention"
	ReasonRetweet        Reason = "retweet"
	ReasonLink           Reason = "link"
	ReasonUser           Reason = "user"
)

// Account identifies an allow-listed account. Replies to and mentions of
// these accounts do not count as conversation noise.
type Account struct {
	ID     int64
	Handle string
}

// Filter evaluates candidates against an ordered chain of checks. The
// allow and ignore lists are fixed at construction.
type Filter struct {
	allowedIDs     map[int64]struct{}
	allowedHandles []string
	ignored        map[string]struct{}
}

func New(allowed []Account, ignoredUsers []string) *Filter {
	return &Filter{
		allowedIDs: lo.SliceToMap(allowed, func(a Account) (int64, struct{}) {
			return a.ID, struct{}{}
		}),
		allowedHandles: lo.Map(allowed, func(a Account, _ int) string {
			return strings.ToLower(a.Handle)
		}),
		ignored: lo.SliceToMap(ignoredUsers, func(u string) (string, struct{}) {
			return strings.ToLower(u), struct{}{}
		}),
	}
}

// Evaluate runs the candidate through the checks in order and stops at the
// first match. It reports whether the candidate is accepted; when it is
// not, the returned reason names the check that rejected it.
func (f *Filter) Evaluate(status *chirp.Status, allowLinks bool) (Reason, bool) {
	text := strings.ToLower(status.Text)

	// No replies, except to allow-listed accounts.
	if status.ToUserID != 0 {
		if _, ok := f.allowedIDs[status.ToUserID]; !ok {
			return f.reject(ReasonReplyOrMention)
		}
	}

	// No mentions, except of allow-listed accounts. Their handles are
	// stripped before matching, so @handle of anyone else still rejects.
	// Edge cases like @handlesuffix slip through the strip.
	stripped := text
	for _, handle := range f.allowedHandles {
		stripped = strings.ReplaceAll(stripped, "@"+handle, "")
	}
	if mentionRegexp.MatchString(stripped) {
		return f.reject(ReasonReplyOrMention)
	}

	// No retweets.
	if rtRegexp.MatchString(text) || strings.Contains(text, "(via ") {
		return f.reject(ReasonRetweet)
	}

	// No links, unless the candidate opted in.
	if !allowLinks && linkRegexp.MatchString(text) {
		return f.reject(ReasonLink)
	}

	// No blocked authors.
	if _, ok := f.ignored[strings.ToLower(status.User.ScreenName)]; ok {
		return f.reject(ReasonUser)
	}

	return "", true
}

func (f *Filter) reject(reason Reason) (Reason, bool) {
	tweetsRejected.WithLabelValues(string(reason)).Inc()
	return reason, false
}
