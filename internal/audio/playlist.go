package audio

import (
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/handiism/vgmdb-tagger/internal/model"
)

// PlaylistFormat represents supported playlist file formats.
//
// Each format has different features and compatibility:
//   - M3U: Simple text format, widely supported
//   - PLS: INI-style format, used by Winamp
//   - WPL: XML format, Windows Media Player
//   - ZPL: XML format, Zune/Groove Music
type PlaylistFormat int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines for duration/title info.
	FormatM3U PlaylistFormat = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	// INI-style format with file, title, and length info.
	FormatPLS

	// FormatWPL creates .wpl files (Windows Media Player).
	// XML-based SMIL format.
	FormatWPL

	// FormatZPL creates .zpl files (Zune/Groove Music).
	// XML-based SMIL format with extended metadata.
	FormatZPL
)

// PlaylistCreator generates playlist files in various formats.
//
// PlaylistCreator takes the tagged files of an album, in disc/track order,
// and generates a playlist. The output is a string that can be written to a
// file next to the tracks.
//
// Example:
//
//	creator := NewPlaylistCreator(FormatM3U, true)
//	content := creator.CreatePlaylist(album, targets)
//	os.WriteFile(filepath.Join(dir, "album.m3u"), []byte(content), 0644)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:-1,Song Title
//	// 01 Song Title.mp3
type PlaylistCreator struct {
	format   PlaylistFormat
	extended bool // For M3U: include EXTINF lines with title
	language string
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// Parameters:
//   - format: The playlist format to generate
//   - extended: For M3U format, whether to include #EXTINF lines
//     (ignored for other formats)
func NewPlaylistCreator(format PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// WithLanguage sets the language used for titles in the playlist.
func (p *PlaylistCreator) WithLanguage(language string) *PlaylistCreator {
	p.language = language
	return p
}

// Extension returns the file extension for the format, including the dot.
func (pf PlaylistFormat) Extension() string {
	switch pf {
	case FormatPLS:
		return ".pls"
	case FormatWPL:
		return ".wpl"
	case FormatZPL:
		return ".zpl"
	default:
		return ".m3u"
	}
}

// CreatePlaylist generates playlist content for the tagged files of an album.
//
// Returns the playlist as a string, ready to be written to a file.
// Track paths in the playlist are relative (just the filename),
// assuming the playlist file is in the same directory as the tracks.
// Track lengths are unknown to VGMdb pages and are written as -1 where a
// format asks for them.
func (p *PlaylistCreator) CreatePlaylist(album *model.AlbumDetail, targets []TrackTarget) string {
	switch p.format {
	case FormatPLS:
		return p.createPLS(targets)
	case FormatWPL:
		return p.createWPL(album, targets)
	case FormatZPL:
		return p.createZPL(album, targets)
	default:
		return p.createM3U(targets)
	}
}

// createM3U generates an M3U playlist.
//
// Extended M3U format (when extended=true):
//
//	#EXTM3U
//	#EXTINF:-1,Title
//	filename1.mp3
func (p *PlaylistCreator) createM3U(targets []TrackTarget) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, target := range targets {
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:-1,%s\n", target.Title(p.language)))
		}
		sb.WriteString(filepath.Base(target.Path) + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
//	[playlist]
//	File1=filename1.mp3
//	Title1=Song Title
//	Length1=-1
//	NumberOfEntries=1
//	Version=2
func (p *PlaylistCreator) createPLS(targets []TrackTarget) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, target := range targets {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, filepath.Base(target.Path)))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, target.Title(p.language)))
		sb.WriteString(fmt.Sprintf("Length%d=-1\n", idx))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(targets)))
	sb.WriteString("Version=2\n")

	return sb.String()
}

// createWPL generates a Windows Media Player playlist.
func (p *PlaylistCreator) createWPL(album *model.AlbumDetail, targets []TrackTarget) string {
	var sb strings.Builder

	sb.WriteString("<?wpl version=\"1.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(album.Title.Preferred(p.language))))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, target := range targets {
		sb.WriteString(fmt.Sprintf("      <media src=\"%s\"/>\n", escapeXML(filepath.Base(target.Path))))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// createZPL generates a Zune/Groove Music playlist with album and track titles.
func (p *PlaylistCreator) createZPL(album *model.AlbumDetail, targets []TrackTarget) string {
	var sb strings.Builder
	albumTitle := escapeXML(album.Title.Preferred(p.language))

	sb.WriteString("<?zpl version=\"2.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", albumTitle))
	sb.WriteString("    <meta name=\"Generator\" content=\"vgmdb-tagger\"/>\n")
	sb.WriteString(fmt.Sprintf("    <meta name=\"ItemCount\" content=\"%d\"/>\n", len(targets)))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, target := range targets {
		sb.WriteString(fmt.Sprintf("      <media src=\"%s\" albumTitle=\"%s\" trackTitle=\"%s\"/>\n",
			escapeXML(filepath.Base(target.Path)),
			albumTitle,
			escapeXML(target.Title(p.language))))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// escapeXML escapes special XML characters in a string.
func escapeXML(s string) string {
	var sb strings.Builder
	if err := xml.EscapeText(&sb, []byte(s)); err != nil {
		return s
	}
	return sb.String()
}
