package vgmdb

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/handiism/vgmdb-tagger/internal/model"
)

const selSearchRows = `#albumresults tr[rel="rel_invalid"]`

// ParseSearchPage extracts album summaries from a search result page.
//
// Each result row has the cells:
//
//	catalog | media | title (language spans + album link) | release date
//
// Rows with fewer than four cells are skipped. A catalog of "N/A" becomes "".
// A blank date cell leaves that row's ReleaseDate empty.
// Links are resolved against the parser's base URL.
//
// Returns an error if a release date cannot be normalized.
func (p *Parser) ParseSearchPage(htmlContent string) ([]model.AlbumInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse search page: %w", err)
	}

	var (
		results []model.AlbumInfo
		rowErr  error
	)
	doc.Find(selSearchRows).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.ChildrenFiltered("td")
		if cells.Length() < 4 {
			return true
		}

		catalog := strings.TrimSpace(cells.Eq(0).Text())
		if catalog == catalogNotAvailable {
			catalog = ""
		}

		titleCell := cells.Eq(2)
		var releaseDate model.PartialDate
		if dateText := strings.TrimSpace(cells.Eq(3).Text()); dateText != "" {
			date, err := NormalizeDate(dateText)
			if err != nil {
				rowErr = fmt.Errorf("search row %d: %w", len(results)+1, err)
				return false
			}
			releaseDate = date
		}

		var link string
		if href, ok := titleCell.Find("a[href]").First().Attr("href"); ok {
			link = p.resolve(href)
		}

		results = append(results, model.AlbumInfo{
			ID:          AlbumID(link),
			Link:        link,
			Title:       ExtractTitle(titleCell),
			Catalog:     catalog,
			ReleaseDate: releaseDate,
		})
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return results, nil
}
