package vgmdb

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/handiism/vgmdb-tagger/internal/model"
)

const (
	keyCatalogNumber = "Catalog Number"
	keyReleaseDate   = "Release Date"

	// catalogNotAvailable is what VGMdb prints for albums without a catalog number.
	catalogNotAvailable = "N/A"
)

// ExtractMetadata reads the catalog number and release date from the album
// info table (#album_infobit_large).
//
// Each row looks like:
//
//	<tr>
//	  <td><span class="label"><b>Catalog Number</b></span></td>
//	  <td>SQEX-10001</td>
//	</tr>
//
// The value cell may wrap its text in <span id="childbrowse"><a>...</a></span>,
// in which case the link text is used. Unknown keys are ignored.
//
// The catalog is "" when the page says "N/A" or has no catalog row. When the
// release date row recurs, the last value that parses wins.
//
// Returns:
//   - ErrMissingField if no row is labelled "Release Date"
//   - ErrInvalidDate if release date rows exist but none of them parses
func ExtractMetadata(table *goquery.Selection) (catalog string, releaseDate model.PartialDate, err error) {
	var (
		found   bool
		dateErr error
	)

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		key := row.Find("span.label b").First()
		if key.Length() == 0 {
			return
		}

		switch key.Text() {
		case keyCatalogNumber:
			value := strings.TrimSpace(cellValue(row))
			if value == catalogNotAvailable {
				value = ""
			}
			catalog = value
		case keyReleaseDate:
			date, err := NormalizeDate(cellValue(row))
			if err != nil {
				dateErr = err
				return
			}
			releaseDate = date
			found = true
		}
	})

	if !found {
		if dateErr != nil {
			return "", "", dateErr
		}
		return "", "", fmt.Errorf("%w: %s", ErrMissingField, keyReleaseDate)
	}

	return catalog, releaseDate, nil
}

// cellValue returns the text of the row's value cell, unwrapping a
// childbrowse link when present.
func cellValue(row *goquery.Selection) string {
	cell := row.Children().Last()
	if link := cell.Find("#childbrowse a").First(); link.Length() > 0 {
		return link.Text()
	}
	return cell.Text()
}
