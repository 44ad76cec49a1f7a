package vgmdb

import "errors"

var (
	// ErrInvalidDate is returned when a release date has an unknown month
	// token or no tokens at all.
	ErrInvalidDate = errors.New("invalid date")

	// ErrMissingField is returned when the album info table has no release date.
	ErrMissingField = errors.New("missing field")

	// ErrMissingStructure is returned when a region the parser relies on
	// (info table, track list navigation, track list, disc table) is absent.
	ErrMissingStructure = errors.New("missing page structure")

	// ErrUnresolvedLanguage is returned when a track list panel has no
	// matching navigation entry.
	ErrUnresolvedLanguage = errors.New("unresolved panel language")
)
