package audio

import (
	"fmt"
	"net/http"

	"github.com/bogem/id3v2/v2"
	"github.com/handiism/vgmdb-tagger/internal/model"
)

// catalogDescription is the TXXX description players read as the catalog number.
const catalogDescription = "CATALOGNUMBER"

// TagEditAction defines how to handle individual ID3 tags.
//
// Each tag field can be configured independently to determine whether
// it should be modified, cleared, or left unchanged.
type TagEditAction int

const (
	// TagEmpty clears the tag value.
	TagEmpty TagEditAction = iota

	// TagModify updates the tag with the value from VGMdb.
	TagModify

	// TagDoNotModify leaves the existing tag value unchanged.
	TagDoNotModify
)

// TagConfig holds tagging configuration for each ID3 field.
//
// Example:
//
//	cfg := &TagConfig{
//	    ModifyTags:  true,
//	    Language:    "en",           // English title when the page has one
//	    Album:       TagModify,
//	    TrackTitle:  TagModify,
//	    Catalog:     TagModify,
//	    Comments:    TagDoNotModify, // Keep existing comments
//	}
type TagConfig struct {
	// ModifyTags is a master switch. If false, no text frames are modified.
	ModifyTags bool

	// Language picks which rendering of titles and track names is written.
	// Empty means the default resolution order of MultiLanguageString.
	Language string

	// Album controls the TALB (Album title) frame.
	Album TagEditAction

	// Year controls the TYER (Year) frame.
	Year TagEditAction

	// Date controls the TDRC (Recording time) frame (ID3v2.4).
	// The partial date is written as is; ID3v2.4 timestamps allow
	// yyyy, yyyy-MM and yyyy-MM-dd.
	Date TagEditAction

	// TrackNumber controls the TRCK (Track number) frame, written as "n/total".
	TrackNumber TagEditAction

	// DiscNumber controls the TPOS (Part of a set) frame, written as "n/total".
	DiscNumber TagEditAction

	// TrackTitle controls the TIT2 (Title) frame.
	TrackTitle TagEditAction

	// Catalog controls the TXXX:CATALOGNUMBER frame.
	Catalog TagEditAction

	// Comments controls the COMM (Comments) frame, set to the album link.
	Comments TagEditAction
}

// DefaultTagConfig returns the default tag configuration.
//
// By default every frame is set to TagModify.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		ModifyTags:  true,
		Album:       TagModify,
		Year:        TagModify,
		Date:        TagModify,
		TrackNumber: TagModify,
		DiscNumber:  TagModify,
		TrackTitle:  TagModify,
		Catalog:     TagModify,
		Comments:    TagModify,
	}
}

// TrackTarget pairs a local MP3 file with its position on the album.
type TrackTarget struct {
	// Path is the MP3 file to tag.
	Path string

	// DiscNumber and DiscTotal are 1-indexed disc position and disc count.
	DiscNumber int
	DiscTotal  int

	// TrackNumber and TrackTotal are the 1-indexed position and track
	// count within the disc.
	TrackNumber int
	TrackTotal  int

	// Track is the album track written to the file.
	Track model.Track
}

// Title returns the track name in the given language.
func (t TrackTarget) Title(language string) string {
	return t.Track.Name.Preferred(language)
}

// Tagger writes ID3 tags to MP3 files.
//
// Tagger uses the id3v2 library to modify MP3 file metadata including:
//   - Album and track titles in the configured language
//   - Track and disc numbers with totals
//   - Release year and partial release date
//   - Catalog number and album link
//   - Cover art (attached picture)
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//	err := tagger.SaveTags(target, album, artworkBytes)
//	if err != nil {
//	    log.Printf("Failed to tag %s: %v", target.Path, err)
//	}
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// SaveTags writes ID3 tags to the target's MP3 file.
//
// This method:
//  1. Opens the existing MP3 file and parses any existing tag
//  2. Updates text frames based on TagConfig settings
//  3. Embeds cover art if artwork bytes are provided
//  4. Saves the modified tag to the file
//
// Returns an error if the file cannot be opened or saved.
func (t *Tagger) SaveTags(target TrackTarget, album *model.AlbumDetail, artwork []byte) error {
	tag, err := id3v2.Open(target.Path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("opening %s: %w", target.Path, err)
	}
	defer tag.Close()

	if t.config.ModifyTags {
		t.updateTextFrames(tag, target, album)
	}

	if artwork != nil {
		t.updateArtwork(tag, artwork)
	}

	return tag.Save()
}

// updateTextFrames updates text-based ID3 frames based on configuration.
func (t *Tagger) updateTextFrames(tag *id3v2.Tag, target TrackTarget, album *model.AlbumDetail) {
	lang := t.config.Language

	setText(tag, "TALB", t.config.Album, album.Title.Preferred(lang))
	setText(tag, "TIT2", t.config.TrackTitle, target.Title(lang))
	setText(tag, "TYER", t.config.Year, album.ReleaseDate.Year())
	setText(tag, "TDRC", t.config.Date, string(album.ReleaseDate))
	setText(tag, "TRCK", t.config.TrackNumber, position(target.TrackNumber, target.TrackTotal))
	setText(tag, "TPOS", t.config.DiscNumber, position(target.DiscNumber, target.DiscTotal))

	switch t.config.Catalog {
	case TagEmpty:
		setCatalog(tag, "")
	case TagModify:
		setCatalog(tag, album.Catalog)
	}

	switch t.config.Comments {
	case TagEmpty:
		tag.DeleteFrames(tag.CommonID("Comments"))
	case TagModify:
		tag.DeleteFrames(tag.CommonID("Comments"))
		if album.Link != "" {
			tag.AddCommentFrame(id3v2.CommentFrame{
				Encoding:    id3v2.EncodingUTF8,
				Language:    "eng",
				Description: "VGMdb",
				Text:        album.Link,
			})
		}
	}
}

// setText applies action to a plain text frame. Empty values clear the frame.
func setText(tag *id3v2.Tag, id string, action TagEditAction, value string) {
	switch action {
	case TagEmpty:
		tag.DeleteFrames(id)
	case TagModify:
		tag.DeleteFrames(id)
		if value != "" {
			tag.AddTextFrame(id, id3v2.EncodingUTF8, value)
		}
	}
}

// setCatalog replaces the TXXX:CATALOGNUMBER frame and keeps other TXXX frames.
func setCatalog(tag *id3v2.Tag, catalog string) {
	var keep []id3v2.UserDefinedTextFrame
	for _, f := range tag.GetFrames("TXXX") {
		udtf, ok := f.(id3v2.UserDefinedTextFrame)
		if ok && udtf.Description != catalogDescription {
			keep = append(keep, udtf)
		}
	}

	tag.DeleteFrames("TXXX")
	for _, udtf := range keep {
		tag.AddUserDefinedTextFrame(udtf)
	}
	if catalog != "" {
		tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
			Encoding:    id3v2.EncodingUTF8,
			Description: catalogDescription,
			Value:       catalog,
		})
	}
}

// position formats "n/total", or "n" when the total is unknown.
func position(n, total int) string {
	if n <= 0 {
		return ""
	}
	if total <= 0 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%d/%d", n, total)
}

// updateArtwork embeds cover art as an attached picture frame.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, artwork []byte) {
	// Remove any existing cover pictures
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    artworkMimeType(artwork),
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	}
	tag.AddAttachedPicture(pic)
}

// artworkMimeType sniffs the image format. Covers are JPEG unless the site
// served a PNG that was not re-encoded.
func artworkMimeType(artwork []byte) string {
	if mime := http.DetectContentType(artwork); mime == "image/png" {
		return mime
	}
	return "image/jpeg"
}
