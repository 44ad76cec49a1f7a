package tui

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/vgmdb-tagger/internal/lookup"
	"github.com/handiism/vgmdb-tagger/internal/model"
)

func testAlbum() *model.AlbumDetail {
	return &model.AlbumDetail{
		AlbumInfo: model.AlbumInfo{
			ID:          "79",
			Link:        "https://vgmdb.net/album/79",
			Title:       model.MultiLanguageString{"ja": "ファイナルファンタジー", "en": "Final Fantasy"},
			ReleaseDate: "2006-08-13",
		},
		Discs: []model.Disc{{
			Title: "Disc 1",
			Tracks: []model.Track{
				{Name: model.MultiLanguageString{"Japanese": "プレリュード", "English": "Prelude"}},
				{Name: model.MultiLanguageString{"Japanese": "オープニング"}},
			},
		}},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestAlbumLanguages(t *testing.T) {
	want := []string{"English", "Japanese", "en", "ja"}
	if got := AlbumLanguages(testAlbum()); !reflect.DeepEqual(got, want) {
		t.Errorf("AlbumLanguages() = %v, want %v", got, want)
	}
}

func TestRenderAlbum(t *testing.T) {
	out := RenderAlbum(testAlbum(), "English")

	for _, want := range []string{"N/A", "2006-08-13", "Disc 1", "01  Prelude", "02  オープニング"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderAlbum() missing %q:\n%s", want, out)
		}
	}
}

func TestModel_AlbumDoneAndLanguageCycle(t *testing.T) {
	m := NewModel(nil, "Japanese")
	m.state = StateLoadingAlbum

	m = update(t, m, AlbumDoneMsg{Album: testAlbum()})
	if m.state != StateDetail {
		t.Fatalf("state = %d, want StateDetail", m.state)
	}
	if got := m.currentLanguage(); got != "Japanese" {
		t.Errorf("initial language = %q, want Japanese", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	if got := m.currentLanguage(); got != "en" {
		t.Errorf("language after l = %q, want en", got)
	}

	for i := 0; i < 3; i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	}
	if got := m.currentLanguage(); got != "Japanese" {
		t.Errorf("language should wrap around, got %q", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != StateInput || m.album != nil {
		t.Errorf("esc from single album should reset, state = %d", m.state)
	}
}

func TestModel_AlbumError(t *testing.T) {
	m := NewModel(nil, "")
	m.state = StateLoadingAlbum

	m = update(t, m, AlbumDoneMsg{Err: errors.New("boom")})
	if m.state != StateError || m.err == nil {
		t.Fatalf("state = %d, err = %v", m.state, m.err)
	}
	if !strings.Contains(m.View(), "boom") {
		t.Error("error view should include the error")
	}
}

func TestModel_EmptySearch(t *testing.T) {
	m := NewModel(nil, "")
	m.state = StateSearching

	m = update(t, m, SearchDoneMsg{Results: &lookup.SearchResponse{}})
	if m.state != StateError {
		t.Errorf("state = %d, want StateError", m.state)
	}
}

func TestModel_StaleMessagesIgnored(t *testing.T) {
	m := NewModel(nil, "")

	m = update(t, m, AlbumDoneMsg{Album: testAlbum()})
	if m.state != StateInput || m.album != nil {
		t.Errorf("album result outside loading state should be ignored, state = %d", m.state)
	}
}
