// Package model defines the core data structures used throughout
// the vgmdb-tagger application.
//
// # Multi-language strings
//
// VGMdb renders titles and track names once per display language.
// MultiLanguageString keeps every rendering keyed by its language tag:
//
//	title := model.MultiLanguageString{}
//	title.Insert("ja", "テスト")
//	title.Insert("English", "Test")
//	name, _ := title.Get() // "テスト"
//
// # Albums
//
// AlbumInfo is the lightweight summary shown in search results. AlbumDetail
// adds the cover and the disc/track listing:
//
//	for i, disc := range album.Discs {
//	    fmt.Printf("%d. %s (%d tracks)\n", i+1, disc.Title, len(disc.Tracks))
//	}
//
// # Partial dates
//
// Release dates are kept as PartialDate strings ("2006-08-13", "2017-07" or
// "2014") because the source frequently only knows the year or month.
package model
