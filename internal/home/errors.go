package home

import "errors"

// Domain errors for the home package.
var (
	// ErrSecurityNotFound is returned when the security singleton is absent.
	ErrSecurityNotFound = errors.New("home: security system not found")

	// ErrMediaNotFound is returned when the media singleton is absent.
	ErrMediaNotFound = errors.New("home: media control not found")

	// ErrPreferencesNotFound is returned when no preferences row exists.
	// Callers are expected to fall back to DefaultPreferences.
	ErrPreferencesNotFound = errors.New("home: preferences not found")
)
