package audio

import (
	"strings"
	"testing"

	"github.com/handiism/vgmdb-tagger/internal/model"
)

func TestPlaylistCreator_M3U(t *testing.T) {
	album, targets := createTestAlbum()
	creator := NewPlaylistCreator(FormatM3U, false)

	content := creator.CreatePlaylist(album, targets)

	if content != "01 track1.mp3\n02 track2.mp3\n" {
		t.Errorf("M3U content = %q", content)
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	album, targets := createTestAlbum()
	creator := NewPlaylistCreator(FormatM3U, true).WithLanguage("English")

	content := creator.CreatePlaylist(album, targets)

	if !strings.HasPrefix(content, "#EXTM3U") {
		t.Error("Extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:-1,Opening\n") {
		t.Errorf("Extended M3U should carry the English title, got %q", content)
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	album, targets := createTestAlbum()
	creator := NewPlaylistCreator(FormatPLS, false)

	content := creator.CreatePlaylist(album, targets)

	if !strings.HasPrefix(content, "[playlist]") {
		t.Error("PLS should start with [playlist]")
	}
	if !strings.Contains(content, "Title1=オープニング") {
		t.Errorf("PLS should default to the Japanese title, got %q", content)
	}
	if !strings.Contains(content, "NumberOfEntries=2") {
		t.Error("PLS should contain NumberOfEntries=2")
	}
}

func TestPlaylistCreator_WPL(t *testing.T) {
	album, targets := createTestAlbum()
	creator := NewPlaylistCreator(FormatWPL, false)

	content := creator.CreatePlaylist(album, targets)

	if !strings.Contains(content, "<?wpl") {
		t.Error("WPL should contain XML declaration")
	}
	if !strings.Contains(content, "<media src=\"01 track1.mp3\"/>") {
		t.Errorf("WPL should contain media elements, got %q", content)
	}
}

func TestPlaylistCreator_ZPL(t *testing.T) {
	album, targets := createTestAlbum()
	creator := NewPlaylistCreator(FormatZPL, false)

	content := creator.CreatePlaylist(album, targets)

	if !strings.Contains(content, "<?zpl") {
		t.Error("ZPL should contain XML declaration")
	}
	if !strings.Contains(content, "albumTitle=\"テストアルバム\"") {
		t.Errorf("ZPL should contain albumTitle attribute, got %q", content)
	}
}

func TestPlaylistCreator_XMLEscape(t *testing.T) {
	album := &model.AlbumDetail{AlbumInfo: model.AlbumInfo{
		Title: model.MultiLanguageString{"en": "Album <Special> & Co"},
	}}
	targets := []TrackTarget{{
		Path:  "/music/a.mp3",
		Track: model.Track{Name: model.MultiLanguageString{"en": `Track & "Quote"`}},
	}}

	content := NewPlaylistCreator(FormatZPL, false).CreatePlaylist(album, targets)

	if strings.Contains(content, "<Special>") {
		t.Error("ZPL should escape < and >")
	}
	if !strings.Contains(content, "&amp; Co") {
		t.Error("ZPL should escape & as &amp;")
	}
}

func TestPlaylistFormat_Extension(t *testing.T) {
	tests := []struct {
		format PlaylistFormat
		want   string
	}{
		{FormatM3U, ".m3u"},
		{FormatPLS, ".pls"},
		{FormatWPL, ".wpl"},
		{FormatZPL, ".zpl"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.Extension(); got != tt.want {
				t.Errorf("Extension() = %q, want %q", got, tt.want)
			}
		})
	}
}

func createTestAlbum() (*model.AlbumDetail, []TrackTarget) {
	album := &model.AlbumDetail{
		AlbumInfo: model.AlbumInfo{
			ID:          "1",
			Link:        "https://vgmdb.net/album/1",
			Title:       model.MultiLanguageString{"ja": "テストアルバム", "en": "Test Album"},
			Catalog:     "TEST-0001",
			ReleaseDate: "2020-01-05",
		},
		Discs: []model.Disc{{
			Title: "Disc 1",
			Tracks: []model.Track{
				{Name: model.MultiLanguageString{"Japanese": "オープニング", "English": "Opening"}},
				{Name: model.MultiLanguageString{"Japanese": "エンディング", "English": "Ending"}},
			},
		}},
	}

	targets := []TrackTarget{
		{Path: "/music/01 track1.mp3", DiscNumber: 1, DiscTotal: 1, TrackNumber: 1, TrackTotal: 2, Track: album.Discs[0].Tracks[0]},
		{Path: "/music/02 track2.mp3", DiscNumber: 1, DiscTotal: 1, TrackNumber: 2, TrackTotal: 2, Track: album.Discs[0].Tracks[1]},
	}

	return album, targets
}
