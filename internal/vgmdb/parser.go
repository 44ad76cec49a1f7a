package vgmdb

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/handiism/vgmdb-tagger/internal/model"
)

const selAlbumInfo = "#album_infobit_large"

// coverStyleRegex pulls the image URL out of the cover's inline style.
var coverStyleRegex = regexp.MustCompile(`url\(\s*['"]?([^'")]+)['"]?\s*\)`)

// Parser extracts album information from VGMdb HTML pages.
//
// The base URL is used to resolve relative links found on search pages. It
// carries no default; pass the site root explicitly.
//
// Example usage:
//
//	parser, err := NewParser("https://vgmdb.net")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	album, err := parser.ParseAlbumPage(html, "https://vgmdb.net/album/79")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for i, disc := range album.Discs {
//	    fmt.Printf("%d. %s\n", i+1, disc.Title)
//	    for _, track := range disc.Tracks {
//	        fmt.Printf("   %s\n", track.Name.String())
//	    }
//	}
type Parser struct {
	baseURL *url.URL
}

// NewParser creates a new Parser that resolves links against baseURL.
func NewParser(baseURL string) (*Parser, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	return &Parser{baseURL: u}, nil
}

// ParseAlbumPage extracts the album record from an album page.
//
// This method performs the following steps:
//  1. Extracts the multi-language title from the first <h1>
//  2. Extracts catalog number and release date from the info table
//  3. Aligns the per-language track list panels into discs
//  4. Reads the cover URL, if any
//
// link is the page's URL; the album ID is taken from its /album/<id> path.
//
// A missing title degrades to an empty title. Returns an error if:
//   - The info table is missing (ErrMissingStructure)
//   - The release date is missing or invalid (ErrMissingField, ErrInvalidDate)
//   - The track list cannot be aligned (ErrMissingStructure, ErrUnresolvedLanguage)
func (p *Parser) ParseAlbumPage(htmlContent, link string) (*model.AlbumDetail, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse album page: %w", err)
	}

	title := ExtractTitle(doc.Find("h1").First())

	info := doc.Find(selAlbumInfo).First()
	if info.Length() == 0 {
		return nil, fmt.Errorf("%w: album info table", ErrMissingStructure)
	}
	catalog, releaseDate, err := ExtractMetadata(info)
	if err != nil {
		return nil, fmt.Errorf("could not read album info: %w", err)
	}

	discs, err := AlignTrackList(doc)
	if err != nil {
		return nil, fmt.Errorf("could not read track list: %w", err)
	}

	return &model.AlbumDetail{
		AlbumInfo: model.AlbumInfo{
			ID:          AlbumID(link),
			Link:        link,
			Title:       title,
			Catalog:     catalog,
			ReleaseDate: releaseDate,
		},
		CoverURL: extractCoverURL(doc),
		Discs:    discs,
	}, nil
}

// AlbumID returns the identifier in an album link.
//
// Example:
//
//	AlbumID("https://vgmdb.net/album/79")  // "79"
//	AlbumID("/album/79?lang=en")           // "79"
//	AlbumID("https://vgmdb.net/search")    // ""
func AlbumID(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	_, id, ok := strings.Cut(u.Path, "/album/")
	if !ok {
		return ""
	}
	id, _, _ = strings.Cut(id, "/")
	return id
}

// extractCoverURL reads the cover image from #coverart.
//
// VGMdb sets it as a CSS background:
//
//	<div id="coverart" style="background-image: url('https://media.vgm.io/albums/97/79/79-1264618929.jpg')"></div>
func extractCoverURL(doc *goquery.Document) string {
	style, ok := doc.Find("#coverart").First().Attr("style")
	if !ok {
		return ""
	}
	m := coverStyleRegex.FindStringSubmatch(style)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// resolve turns a possibly relative href into an absolute URL.
func (p *Parser) resolve(href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return p.baseURL.ResolveReference(ref).String()
}
