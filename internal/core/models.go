package core

import (
	"time"
)

// TweetModel is a collected support tweet. TweetID is the platform-assigned
// identifier, which doubles as the dedup key and the search cursor.
type TweetModel struct {
	TweetID   int64     `gorm:"column:tweet_id;primaryKey"`
	RawJSON   []byte    `gorm:"column:raw_json;type:jsonb"`
	Locale    string    `gorm:"column:locale"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (TweetModel) TableName() string {
	return "tweets"
}

// ReplyModel is a support response authored by a tracked contributor.
// Replies are the sole input to the contributor stats aggregation.
type ReplyModel struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement"`
	TweetID         int64     `gorm:"column:tweet_id"`
	TwitterUsername string    `gorm:"column:twitter_username"`
	RawJSON         []byte    `gorm:"column:raw_json;type:jsonb"`
	Locale          string    `gorm:"column:locale"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (ReplyModel) TableName() string {
	return "replies"
}

// Rolling leaderboard windows. Each window is strictly contained in the
// previous one, so the aggregator only checks a boundary when the wider
// window already matched.
const (
	WindowAll   = "all"
	WindowMonth = "1m"
	WindowWeek  = "1w"
	WindowDay   = "1d"
)

// ContributorStat is one leaderboard row. Rebuilt from scratch on every
// aggregation run, never persisted individually.
type ContributorStat struct {
	Username    string `json:"twitter_username"`
	Avatar      string `json:"avatar"`
	AvatarHTTPS string `json:"avatar_https"`
	All         int    `json:"all"`
	Month       int    `json:"1m"`
	Week        int    `json:"1w"`
	Day         int    `json:"1d"`
}

// Count returns the counter for the given window name, defaulting to the
// all-time counter for unknown names.
func (s *ContributorStat) Count(window string) int {
	switch window {
	case WindowMonth:
		return s.Month
	case WindowWeek:
		return s.Week
	case WindowDay:
		return s.Day
	default:
		return s.All
	}
}
