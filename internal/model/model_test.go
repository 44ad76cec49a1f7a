package model

import (
	"reflect"
	"testing"
)

func TestMultiLanguageString_Get(t *testing.T) {
	tests := []struct {
		name   string
		values MultiLanguageString
		want   string
		wantOK bool
	}{
		{"ja wins", MultiLanguageString{"ja": "日本語", "English": "Title"}, "日本語", true},
		{"Japanese before English", MultiLanguageString{"Japanese": "曲", "English": "Song"}, "曲", true},
		{"English before others", MultiLanguageString{"Romaji": "Kyoku", "English": "Song"}, "Song", true},
		{"smallest key fallback", MultiLanguageString{"zh": "中文", "en": "Title"}, "Title", true},
		{"empty", MultiLanguageString{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.values.Get()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Get() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMultiLanguageString_InsertOverwrites(t *testing.T) {
	m := MultiLanguageString{}
	m.Insert("ja", "first")
	m.Insert("ja", "second")

	if len(m) != 1 || m["ja"] != "second" {
		t.Errorf("after two inserts got %v", m)
	}
}

func TestMultiLanguageString_Preferred(t *testing.T) {
	m := MultiLanguageString{"ja": "日本語", "en": "Title"}

	if got := m.Preferred("en"); got != "Title" {
		t.Errorf("Preferred(en) = %q, want %q", got, "Title")
	}
	if got := m.Preferred("fr"); got != "日本語" {
		t.Errorf("Preferred(fr) = %q, want fallback %q", got, "日本語")
	}
	if got := m.Preferred(""); got != "日本語" {
		t.Errorf("Preferred(\"\") = %q, want fallback %q", got, "日本語")
	}
}

func TestMultiLanguageString_Languages(t *testing.T) {
	m := MultiLanguageString{"Romaji": "a", "English": "b", "Japanese": "c"}
	want := []string{"English", "Japanese", "Romaji"}
	if got := m.Languages(); !reflect.DeepEqual(got, want) {
		t.Errorf("Languages() = %v, want %v", got, want)
	}
}

func TestPartialDate(t *testing.T) {
	tests := []struct {
		date      PartialDate
		year      string
		precision DatePrecision
	}{
		{"2006-08-13", "2006", PrecisionDay},
		{"2017-07", "2017", PrecisionMonth},
		{"2014", "2014", PrecisionYear},
		{"", "", PrecisionNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.date), func(t *testing.T) {
			if got := tt.date.Year(); got != tt.year {
				t.Errorf("Year() = %q, want %q", got, tt.year)
			}
			if got := tt.date.Precision(); got != tt.precision {
				t.Errorf("Precision() = %d, want %d", got, tt.precision)
			}
		})
	}
}

func TestAlbumDetail_TrackCount(t *testing.T) {
	album := &AlbumDetail{
		Discs: []Disc{
			{Title: "Disc 1", Tracks: make([]Track, 3)},
			{Title: "Disc 2", Tracks: make([]Track, 2)},
		},
	}

	if got := album.TrackCount(); got != 5 {
		t.Errorf("TrackCount() = %d, want 5", got)
	}
	if album.HasCover() {
		t.Error("HasCover() should return false when CoverURL is empty")
	}
	if album.HasCatalog() {
		t.Error("HasCatalog() should return false when Catalog is empty")
	}
}
