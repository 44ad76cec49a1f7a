// Package audio provides audio file manipulation services including
// ID3 tag writing and playlist generation.
//
// # ID3 Tagging
//
// Use the Tagger to write ID3 tags to MP3 files. A TrackTarget pairs a
// file on disk with its disc and track position on the album:
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.SaveTags(target, album, artworkBytes)
//
// The tagger supports:
//   - Album Title, Track Title (in the configured language)
//   - Track Number, Disc Number (as "n/total")
//   - Year and partial release date
//   - Catalog number (TXXX:CATALOGNUMBER)
//   - Album link (COMM)
//   - Cover Art (embedded in MP3)
//
// # Playlist Generation
//
// Generate playlists in various formats:
//
//	creator := audio.NewPlaylistCreator(audio.FormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist(album, targets)
//	os.WriteFile("playlist.m3u", []byte(content), 0644)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio
