package lookup

import (
	"context"
	"fmt"

	"github.com/handiism/vgmdb-tagger/internal/model"
)

// SearchResponse is the outcome of an album search.
//
// It is either a listing of album summaries or, when the site redirected
// straight to an album page, a single album whose detail is already known.
type SearchResponse struct {
	client *Client
	albums []*model.AlbumInfo
	detail *model.AlbumDetail
}

func newListResponse(c *Client, infos []model.AlbumInfo) *SearchResponse {
	albums := make([]*model.AlbumInfo, len(infos))
	for i := range infos {
		albums[i] = &infos[i]
	}
	return &SearchResponse{client: c, albums: albums}
}

func newDetailResponse(c *Client, album *model.AlbumDetail) *SearchResponse {
	return &SearchResponse{
		client: c,
		albums: []*model.AlbumInfo{&album.AlbumInfo},
		detail: album,
	}
}

// Len returns the number of albums found.
func (r *SearchResponse) Len() int {
	return len(r.albums)
}

// IsEmpty reports whether the search found nothing.
func (r *SearchResponse) IsEmpty() bool {
	return len(r.albums) == 0
}

// Albums returns the album summaries in result order.
func (r *SearchResponse) Albums() []*model.AlbumInfo {
	return r.albums
}

// IntoAlbum returns the full record of the album at index.
//
// The album page is fetched unless the search already landed on it.
// Returns ErrNoAlbumFound if index is out of range.
func (r *SearchResponse) IntoAlbum(ctx context.Context, index int) (*model.AlbumDetail, error) {
	if index < 0 || index >= len(r.albums) {
		return nil, fmt.Errorf("%w: index %d of %d results", ErrNoAlbumFound, index, len(r.albums))
	}
	if r.detail != nil {
		return r.detail, nil
	}
	return r.client.fetchAlbum(ctx, r.albums[index].Link)
}
