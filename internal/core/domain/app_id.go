package domain

import "go.trai.ch/zerr"

// AppID identifies a Steam application. Steam writes ids as decimal strings
// and that is how they appear as keys in library and manifest documents.
type AppID string

// RocketLeagueAppID is the Steam id of Rocket League, the default target.
const RocketLeagueAppID AppID = "252950"

// String returns the id as written in Steam documents.
func (id AppID) String() string {
	return string(id)
}

// Validate checks that the id is a non-empty run of decimal digits.
func (id AppID) Validate() error {
	if id == "" {
		return zerr.With(ErrInvalidAppID, "app_id", "")
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return zerr.With(ErrInvalidAppID, "app_id", string(id))
		}
	}
	return nil
}
