package lookup

import "errors"

var (
	// ErrNoAlbumFound is returned when a search result index is out of range.
	ErrNoAlbumFound = errors.New("no album found")

	// ErrNoCoverArt is returned when an album page carries no cover image.
	ErrNoCoverArt = errors.New("album has no cover art")

	// ErrNoAudioFiles is returned when a directory has no MP3 files to tag.
	ErrNoAudioFiles = errors.New("no audio files")
)
