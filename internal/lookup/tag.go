package lookup

import (
	"context"
	"fmt"
	nethttp "net/http"
	"path/filepath"
	"strings"

	"github.com/handiism/vgmdb-tagger/internal/audio"
	ioutils "github.com/handiism/vgmdb-tagger/internal/io"
	"github.com/handiism/vgmdb-tagger/internal/model"
)

// audioExt is the extension of the files TagDirectory tags.
const audioExt = ".mp3"

// TagReport summarizes a TagDirectory run.
type TagReport struct {
	// Tagged is the number of files whose tags were written.
	Tagged int

	// Failed lists the files that could not be tagged.
	Failed []string

	// UnmatchedFiles lists the files left over after every track was paired.
	UnmatchedFiles []string

	// UnmatchedTracks is the number of album tracks with no file.
	UnmatchedTracks int

	// CoverPath is the saved cover image, if any.
	CoverPath string

	// PlaylistPath is the written playlist, if any.
	PlaylistPath string
}

// Targets pairs files with the album's tracks by position.
//
// Discs are flattened in order, so the first file gets disc 1 track 1 and
// the file after the last track of disc 1 gets disc 2 track 1. Pairing stops
// at the shorter of the two sequences.
func Targets(album *model.AlbumDetail, files []string) []audio.TrackTarget {
	var targets []audio.TrackTarget
	for d, disc := range album.Discs {
		for t, track := range disc.Tracks {
			if len(targets) == len(files) {
				return targets
			}
			targets = append(targets, audio.TrackTarget{
				Path:        files[len(targets)],
				DiscNumber:  d + 1,
				DiscTotal:   len(album.Discs),
				TrackNumber: t + 1,
				TrackTotal:  len(disc.Tracks),
				Track:       track,
			})
		}
	}
	return targets
}

// TagDirectory writes the album's metadata to the MP3 files in dir.
//
// This method:
//  1. Lists the MP3 files in dir, sorted by name
//  2. Pairs them with the album's tracks by position (see Targets)
//  3. Downloads the cover art if it is to be saved in tags or in the folder
//  4. Writes ID3 tags to every paired file
//  5. Writes a playlist if enabled
//
// A count mismatch between files and tracks is reported as a warning and
// the surplus on either side is left untouched. Per-file tagging failures
// and cover or playlist failures are reported as events and recorded in the
// report; they do not stop the run.
//
// Returns ErrNoAudioFiles if dir has no MP3 files.
func (c *Client) TagDirectory(ctx context.Context, album *model.AlbumDetail, dir string) (*TagReport, error) {
	files, err := ioutils.ListAudioFiles(dir, audioExt)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoAudioFiles, dir)
	}

	targets := Targets(album, files)
	report := &TagReport{
		UnmatchedFiles:  files[len(targets):],
		UnmatchedTracks: album.TrackCount() - len(targets),
	}
	if len(files) != album.TrackCount() {
		c.progress(ProgressEvent{
			Message: fmt.Sprintf("%d files but %d tracks on %s, tagging the first %d", len(files), album.TrackCount(), album.Title, len(targets)),
			Level:   LevelWarning,
		})
	}

	var artwork []byte
	if (c.settings.SaveCoverArtInTags || c.settings.SaveCoverArtInFolder) && album.HasCover() {
		artwork, err = c.CoverArt(ctx, album)
		if err != nil {
			c.progress(ProgressEvent{Message: fmt.Sprintf("Error downloading artwork for %s: %v", album.Title, err), Level: LevelWarning})
		}
	}

	if artwork != nil && c.settings.SaveCoverArtInFolder {
		path := filepath.Join(dir, ioutils.SanitizeFileName(c.settings.CoverArtFileNameFormat)+imageExt(artwork))
		if err := ioutils.WriteFile(ctx, path, artwork); err != nil {
			c.progress(ProgressEvent{Message: fmt.Sprintf("Error saving artwork: %v", err), Level: LevelWarning})
		} else {
			report.CoverPath = path
		}
	}

	tagArtwork := artwork
	if !c.settings.SaveCoverArtInTags {
		tagArtwork = nil
	}

	if c.settings.ModifyTags || tagArtwork != nil {
		for _, target := range targets {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			if err := c.tagger.SaveTags(target, album, tagArtwork); err != nil {
				c.progress(ProgressEvent{Message: fmt.Sprintf("Error tagging %s: %v", filepath.Base(target.Path), err), Level: LevelError})
				report.Failed = append(report.Failed, target.Path)
				continue
			}
			report.Tagged++
			c.progress(ProgressEvent{Message: fmt.Sprintf("Tagged: %s", filepath.Base(target.Path)), Level: LevelVerbose})
		}
	}

	if c.settings.CreatePlaylist {
		path := filepath.Join(dir, c.playlistFileName(album))
		content := c.playlist.CreatePlaylist(album, targets)
		if err := ioutils.WriteFile(ctx, path, []byte(content)); err != nil {
			c.progress(ProgressEvent{Message: fmt.Sprintf("Error creating playlist: %v", err), Level: LevelWarning})
		} else {
			report.PlaylistPath = path
			c.progress(ProgressEvent{Message: fmt.Sprintf("Created playlist for %s", album.Title), Level: LevelSuccess})
		}
	}

	if len(report.Failed) == 0 {
		c.progress(ProgressEvent{Message: fmt.Sprintf("Successfully tagged album: %s", album.Title), Level: LevelSuccess})
	} else {
		c.progress(ProgressEvent{Message: fmt.Sprintf("Finished %s, some files failed", album.Title), Level: LevelWarning})
	}

	return report, nil
}

// CoverArt downloads the album's cover and prepares it per the cover settings.
//
// Returns ErrNoCoverArt if the album page had no cover.
func (c *Client) CoverArt(ctx context.Context, album *model.AlbumDetail) ([]byte, error) {
	if !album.HasCover() {
		return nil, ErrNoCoverArt
	}

	data, err := c.httpClient.DownloadBytes(ctx, album.CoverURL)
	if err != nil {
		return nil, err
	}

	opts := ioutils.CoverOptions{ToJPEG: c.settings.ConvertCoverArtToJPG}
	if c.settings.CoverArtResize {
		opts.MaxSize = c.settings.CoverArtMaxSize
	}
	data, err = c.imageService.PrepareCover(ctx, data, opts)
	if err != nil {
		return nil, fmt.Errorf("preparing cover: %w", err)
	}

	c.progress(ProgressEvent{Message: fmt.Sprintf("Downloaded artwork for %s", album.Title), Level: LevelVerbose})
	return data, nil
}

// playlistFileName expands the playlist file name format.
//
// Supported placeholders: {album}, {catalog}, {id}.
func (c *Client) playlistFileName(album *model.AlbumDetail) string {
	name := strings.NewReplacer(
		"{album}", album.Title.Preferred(c.settings.DisplayLanguage),
		"{catalog}", album.Catalog,
		"{id}", album.ID,
	).Replace(c.settings.PlaylistFileNameFormat)
	if strings.TrimSpace(name) == "" {
		name = "playlist"
	}
	return ioutils.SanitizeFileName(name) + c.settings.ToPlaylistFormat().Extension()
}

// imageExt picks the file extension for encoded image data.
func imageExt(data []byte) string {
	if nethttp.DetectContentType(data) == "image/png" {
		return ".png"
	}
	return ".jpg"
}
