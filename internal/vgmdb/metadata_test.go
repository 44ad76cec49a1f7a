package vgmdb

import (
	"errors"
	"testing"

	"github.com/handiism/vgmdb-tagger/internal/model"
)

func infoTable(rows string) string {
	return `<table id="album_infobit_large">` + rows + `</table>`
}

func infoRow(key, value string) string {
	return `<tr><td width="150"><span class="label"><b>` + key + `</b></span></td><td width="620">` + value + `</td></tr>`
}

func TestExtractMetadata(t *testing.T) {
	tests := []struct {
		name        string
		rows        string
		wantCatalog string
		wantDate    model.PartialDate
	}{
		{
			name:        "catalog and date",
			rows:        infoRow("Catalog Number", " SQEX-10001 ") + infoRow("Release Date", "Aug 13, 2006"),
			wantCatalog: "SQEX-10001",
			wantDate:    "2006-08-13",
		},
		{
			name:        "N/A catalog",
			rows:        infoRow("Catalog Number", "N/A") + infoRow("Release Date", "2014"),
			wantCatalog: "",
			wantDate:    "2014",
		},
		{
			name:        "childbrowse link",
			rows:        infoRow("Catalog Number", `<span id="childbrowse"><a href="/db/catalog">XYZ-001</a> (sub)</span>`) + infoRow("Release Date", `<a href="/db/calendar.php?year=2017&month=7">Jul 2017</a>`),
			wantCatalog: "XYZ-001",
			wantDate:    "2017-07",
		},
		{
			name:        "unknown keys ignored",
			rows:        infoRow("Publish Format", "Commercial") + infoRow("Release Date", "Jan 5, 2020") + infoRow("Price", "3000 JPY"),
			wantCatalog: "",
			wantDate:    "2020-01-5",
		},
		{
			name:        "last parsable date wins",
			rows:        infoRow("Release Date", "Jan 2019") + infoRow("Release Date", "Foo 2020") + infoRow("Release Date", "Mar 2021"),
			wantCatalog: "",
			wantDate:    "2021-03",
		},
		{
			name:        "invalid date before valid one",
			rows:        infoRow("Release Date", "Mar 2021") + infoRow("Release Date", "Foo 2020"),
			wantCatalog: "",
			wantDate:    "2021-03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustDocument(t, infoTable(tt.rows))
			catalog, date, err := ExtractMetadata(doc.Find("#album_infobit_large"))
			if err != nil {
				t.Fatalf("ExtractMetadata failed: %v", err)
			}
			if catalog != tt.wantCatalog {
				t.Errorf("catalog = %q, want %q", catalog, tt.wantCatalog)
			}
			if date != tt.wantDate {
				t.Errorf("date = %q, want %q", date, tt.wantDate)
			}
		})
	}
}

func TestExtractMetadata_Errors(t *testing.T) {
	tests := []struct {
		name    string
		rows    string
		wantErr error
	}{
		{
			name:    "no release date",
			rows:    infoRow("Catalog Number", "XYZ-001"),
			wantErr: ErrMissingField,
		},
		{
			name:    "empty table",
			rows:    "",
			wantErr: ErrMissingField,
		},
		{
			name:    "unparsable release date",
			rows:    infoRow("Release Date", "Smarch 2020"),
			wantErr: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustDocument(t, infoTable(tt.rows))
			_, _, err := ExtractMetadata(doc.Find("#album_infobit_large"))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
