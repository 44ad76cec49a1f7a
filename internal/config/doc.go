// Package config provides configuration management for vgmdb-tagger.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to http.Options and audio.TagConfig for other packages
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Talks to https://vgmdb.net
//	// Fetches up to 4 albums concurrently
//	// Embeds cover art resized to 1000px
//
// # Loading from File
//
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Site Root
//
// BaseURL is the only place the site root is named. Everything downstream
// (HTTP client, parser, lookup) receives it explicitly, so pointing the tool
// at a mirror or a test server is a config change.
package config
