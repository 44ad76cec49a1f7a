package model

// AlbumInfo is the summary of a VGMdb album as shown in search results.
//
// AlbumInfo contains:
//   - ID and Link identifying the album page
//   - Title in every language the page provides
//   - Catalog number, empty when the page says "N/A"
//   - ReleaseDate normalized to a PartialDate
type AlbumInfo struct {
	// ID is the numeric album identifier, e.g. "79" for /album/79.
	ID string `json:"id"`

	// Link is the absolute URL of the album page.
	Link string `json:"link"`

	// Title holds the album title keyed by language tag.
	Title MultiLanguageString `json:"title"`

	// Catalog is the catalog number. Empty string means no catalog number.
	Catalog string `json:"catalog,omitempty"`

	// ReleaseDate is the normalized release date.
	ReleaseDate PartialDate `json:"release_date"`
}

// HasCatalog returns true if the album has a catalog number.
func (a *AlbumInfo) HasCatalog() bool {
	return a.Catalog != ""
}

// AlbumDetail is a fully extracted album page.
//
// Every Disc carries the track count established by the first language
// panel on the page; see Disc for how later panels are merged.
//
// Example:
//
//	album, err := parser.ParseAlbumPage(html, "https://vgmdb.net/album/79")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(album.Title.String(), album.ReleaseDate)
type AlbumDetail struct {
	AlbumInfo

	// CoverURL is the URL of the full size cover image.
	// Empty string means the page has no cover.
	CoverURL string `json:"cover_url,omitempty"`

	// Discs holds the track listing in page order.
	Discs []Disc `json:"discs"`
}

// HasCover returns true if the album has cover art available for download.
func (a *AlbumDetail) HasCover() bool {
	return a.CoverURL != ""
}

// TrackCount returns the number of tracks over all discs.
func (a *AlbumDetail) TrackCount() int {
	n := 0
	for _, disc := range a.Discs {
		n += len(disc.Tracks)
	}
	return n
}

// Disc is one medium of an album.
//
// Position in Tracks is the only key that ties a track to its rendering in
// other languages. Title comes from the first language panel.
type Disc struct {
	Title  string  `json:"title"`
	Tracks []Track `json:"tracks"`
}

// Track is a single track. It has no identity beyond its position in a Disc.
type Track struct {
	Name MultiLanguageString `json:"name"`
}
