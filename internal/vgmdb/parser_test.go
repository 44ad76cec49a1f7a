package vgmdb

import (
	"errors"
	"testing"
)

func albumPageHTML(title, info, tracklist string) string {
	return `<html><body>
	<div id="innermain">
		<h1>` + title + `</h1>
		<div id="coverart" style="background-image: url('https://media.vgm.io/albums/00/1/1-cover.jpg')"></div>
		` + info + `
		` + tracklist + `
	</div>
	</body></html>`
}

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser("https://vgmdb.net")
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	return p
}

func TestParser_ParseAlbumPage(t *testing.T) {
	page := albumPageHTML(
		`<span class="albumtitle" lang="ja">テスト</span>`,
		infoTable(infoRow("Catalog Number", "XYZ-001")+infoRow("Release Date", "Jan 5, 2020")),
		trackListHTML(testPanel{id: "tl1", language: "Japanese", discs: []testDisc{
			{title: "Disc 1", tracks: []string{"A", "B"}},
		}}),
	)

	album, err := newTestParser(t).ParseAlbumPage(page, "https://vgmdb.net/album/12345")
	if err != nil {
		t.Fatalf("ParseAlbumPage failed: %v", err)
	}

	if album.ID != "12345" {
		t.Errorf("ID = %q, want %q", album.ID, "12345")
	}
	if album.Catalog != "XYZ-001" {
		t.Errorf("Catalog = %q, want %q", album.Catalog, "XYZ-001")
	}
	if album.ReleaseDate != "2020-01-5" {
		t.Errorf("ReleaseDate = %q, want %q", album.ReleaseDate, "2020-01-5")
	}
	if got := album.Title.String(); got != "テスト" {
		t.Errorf("Title = %q, want %q", got, "テスト")
	}
	if album.CoverURL != "https://media.vgm.io/albums/00/1/1-cover.jpg" {
		t.Errorf("CoverURL = %q", album.CoverURL)
	}
	if len(album.Discs) != 1 {
		t.Fatalf("got %d discs, want 1", len(album.Discs))
	}
	disc := album.Discs[0]
	if disc.Title != "Disc 1" || len(disc.Tracks) != 2 {
		t.Fatalf("disc = %+v, want Disc 1 with 2 tracks", disc)
	}
	for i, want := range []string{"A", "B"} {
		if got := disc.Tracks[i].Name["Japanese"]; got != want {
			t.Errorf("track %d = %q, want %q", i+1, got, want)
		}
	}
}

func TestParser_ParseAlbumPage_ZeroPaddedDay(t *testing.T) {
	page := albumPageHTML(
		`<span class="albumtitle" lang="en">Test</span>`,
		infoTable(infoRow("Release Date", "Jan 05, 2020")),
		trackListHTML(),
	)

	album, err := newTestParser(t).ParseAlbumPage(page, "https://vgmdb.net/album/1")
	if err != nil {
		t.Fatalf("ParseAlbumPage failed: %v", err)
	}
	if album.ReleaseDate != "2020-01-05" {
		t.Errorf("ReleaseDate = %q, want %q", album.ReleaseDate, "2020-01-05")
	}
	if album.HasCatalog() {
		t.Errorf("Catalog = %q, want none", album.Catalog)
	}
}

func TestParser_ParseAlbumPage_MissingTitleDegrades(t *testing.T) {
	page := `<html><body>` +
		infoTable(infoRow("Release Date", "2014")) +
		trackListHTML() +
		`</body></html>`

	album, err := newTestParser(t).ParseAlbumPage(page, "https://vgmdb.net/album/7")
	if err != nil {
		t.Fatalf("ParseAlbumPage failed: %v", err)
	}
	if len(album.Title) != 0 {
		t.Errorf("Title = %v, want empty", album.Title)
	}
	if album.HasCover() {
		t.Errorf("CoverURL = %q, want none", album.CoverURL)
	}
}

func TestParser_ParseAlbumPage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		wantErr error
	}{
		{
			name:    "no info table",
			html:    albumPageHTML("", "", trackListHTML()),
			wantErr: ErrMissingStructure,
		},
		{
			name:    "no release date",
			html:    albumPageHTML("", infoTable(infoRow("Catalog Number", "A-1")), trackListHTML()),
			wantErr: ErrMissingField,
		},
		{
			name:    "no track list",
			html:    albumPageHTML("", infoTable(infoRow("Release Date", "2014")), ""),
			wantErr: ErrMissingStructure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestParser(t).ParseAlbumPage(tt.html, "https://vgmdb.net/album/1")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAlbumID(t *testing.T) {
	tests := []struct {
		link string
		want string
	}{
		{"https://vgmdb.net/album/79", "79"},
		{"/album/79?lang=en", "79"},
		{"https://vgmdb.net/album/79/", "79"},
		{"https://vgmdb.net/search?q=x", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			if got := AlbumID(tt.link); got != tt.want {
				t.Errorf("AlbumID(%q) = %q, want %q", tt.link, got, tt.want)
			}
		})
	}
}
