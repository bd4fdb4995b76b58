package analytics

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNoAuthorProfile = errors.New("reply payload carries no author profile")

// profile is the normalized author profile extracted from a raw reply
// payload, resolved once per contributor per run.
type profile struct {
	Avatar      string
	AvatarHTTPS string
}

// resolveProfile handles the two payload shapes in the wild: v1 search
// payloads carry the author fields flat at the top level next to
// "from_user", newer ones nest them under "user".
func resolveProfile(raw []byte) (profile, error) {
	var payload struct {
		FromUser             string `json:"from_user"`
		ProfileImageURL      string `json:"profile_image_url"`
		ProfileImageURLHTTPS string `json:"profile_image_url_https"`

		User *struct {
			ProfileImageURL      string `json:"profile_image_url"`
			ProfileImageURLHTTPS string `json:"profile_image_url_https"`
		} `json:"user"`
	}

	if err := json.Unmarshal(raw, &payload); err != nil {
		return profile{}, fmt.Errorf("malformed reply payload: %w", err)
	}

	if payload.FromUser != "" {
		return profile{
			Avatar:      payload.ProfileImageURL,
			AvatarHTTPS: payload.ProfileImageURLHTTPS,
		}, nil
	}

	if payload.User == nil {
		return profile{}, ErrNoAuthorProfile
	}

	return profile{
		Avatar:      payload.User.ProfileImageURL,
		AvatarHTTPS: payload.User.ProfileImageURLHTTPS,
	}, nil
}
