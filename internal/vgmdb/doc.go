// Package vgmdb extracts album information from VGMdb HTML pages.
//
// The package handles two page kinds:
//
//  1. Album pages: title, catalog number, release date and the per-language
//     track list panels merged into one disc/track listing
//  2. Search result pages: one summary row per matching album
//
// # Album Page Parsing
//
//	parser := vgmdb.NewParser("https://vgmdb.net")
//	album, err := parser.ParseAlbumPage(htmlContent, "https://vgmdb.net/album/79")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(album.Title.String(), album.ReleaseDate)
//
// # Track List Alignment
//
// VGMdb renders the track list once per display language, in panels that
// share no track identifier. AlignTrackList merges them by position: the
// first panel fixes the disc titles and track counts, later panels only add
// a language to the tracks they line up with. A panel that reorders or omits
// tracks produces a misaligned result; the page offers nothing better to
// match on.
//
// # Dates
//
// Release dates are free text ("Aug 13, 2006", "Jul 2017", "2014").
// NormalizeDate turns them into model.PartialDate values.
//
// All functions in this package are pure over the supplied markup and safe
// for concurrent use.
package vgmdb
