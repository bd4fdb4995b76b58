package chirp_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"carebird/pkg/chirp"
)

func TestCreatedAtTime(t *testing.T) {
	t.Parallel()

	status := &chirp.Status{CreatedAt: "Wed Aug 26 11:30:05 +0200 2026"}

	created, err := status.CreatedAtTime()
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 8, 26, 9, 30, 5, 0, time.UTC), created)
	require.Equal(t, time.UTC, created.Location())
}

func TestCreatedAtTimeMalformed(t *testing.T) {
	t.Parallel()

	status := &chirp.Status{CreatedAt: "2026-08-26T11:30:05Z"}

	_, err := status.CreatedAtTime()
	require.Error(t, err)
}

func TestStatusDecoding(t *testing.T) {
	t.Parallel()

	raw := `{
		"id": 123456789,
		"text": "@supportbird the sync icon spins forever",
		"created_at": "Mon Aug 24 08:15:00 +0000 2026",
		"to_user_id": 2142731,
		"metadata": {"iso_language_code": "en"},
		"user": {
			"id": 42,
			"screen_name": "frustrated_user",
			"profile_image_url": "http://img.example.com/u.png",
			"profile_image_url_https": "https://img.example.com/u.png"
		}
	}`

	var status chirp.Status
	require.NoError(t, json.Unmarshal([]byte(raw), &status))

	require.Equal(t, int64(123456789), status.ID)
	require.Equal(t, int64(2142731), status.ToUserID)
	require.Equal(t, "en", status.Metadata.ISOLanguageCode)
	require.Equal(t, "frustrated_user", status.User.ScreenName)
	require.Equal(t, "https://img.example.com/u.png", status.User.ProfileImageURLHTTPS)
}
