package domain

import "errors"

var (
	ErrPlayerNotFound         = errors.New("player not found")
	ErrUsernameNotFound       = errors.New("username not found")
	ErrTemporarilyUnavailable = errors.New("temporarily unavailable")

	// The API answered, but with a falsy success flag
	ErrRequestUnsuccessful = errors.New("request unsuccessful")

	ErrNotInGuild    = errors.New("player is not in a guild")
	ErrNotASupporter = errors.New("player is not a supporter")
)
