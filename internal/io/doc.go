// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Listing the audio files of an album directory
//   - File writing and directory creation
//   - Filename sanitization for cross-platform compatibility
//   - Cover art resizing and format conversion
//
// # File Operations
//
//	files, err := ioutils.ListAudioFiles("/music/Album", ".mp3")
//	err = ioutils.WriteFile(ctx, "/music/Album/album.m3u", []byte("content"))
//	err = ioutils.EnsureDir("/path/to/new/directory")
//
// # Filename Sanitization
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
//
// # Image Processing
//
//	svc := ioutils.NewImageService()
//	cover, _ := svc.PrepareCover(ctx, imageData, ioutils.CoverOptions{MaxSize: 500, ToJPEG: true})
package ioutils
