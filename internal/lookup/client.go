package lookup

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/vgmdb-tagger/internal/audio"
	"github.com/handiism/vgmdb-tagger/internal/config"
	"github.com/handiism/vgmdb-tagger/internal/http"
	ioutils "github.com/handiism/vgmdb-tagger/internal/io"
	"github.com/handiism/vgmdb-tagger/internal/model"
	"github.com/handiism/vgmdb-tagger/internal/vgmdb"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns the level name.
func (l ProgressLevel) String() string {
	switch l {
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return "info"
	}
}

// ProgressEvent represents a lookup or tagging progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Client coordinates album lookups and directory tagging.
type Client struct {
	settings     *config.Settings
	httpClient   *http.Client
	parser       *vgmdb.Parser
	tagger       *audio.Tagger
	playlist     *audio.PlaylistCreator
	imageService *ioutils.ImageService

	onProgress func(ProgressEvent)
}

// NewClient creates a new lookup Client from settings.
//
// A nil logger disables request logging; a nil onProgress discards events.
func NewClient(settings *config.Settings, logger *zap.Logger, onProgress func(ProgressEvent)) (*Client, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	opts := settings.ToHTTPOptions()
	httpClient, err := http.NewClient(opts, logger)
	if err != nil {
		return nil, err
	}
	parser, err := vgmdb.NewParser(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		settings:     settings,
		httpClient:   httpClient,
		parser:       parser,
		tagger:       audio.NewTagger(settings.ToTagConfig()),
		playlist:     audio.NewPlaylistCreator(settings.ToPlaylistFormat(), settings.M3UExtended).WithLanguage(settings.DisplayLanguage),
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
	}, nil
}

// SearchAlbums runs an album search.
//
// VGMdb answers a search with exactly one match by redirecting to the album
// page. In that case the response holds that single album, already parsed;
// otherwise it holds the rows of the result listing.
func (c *Client) SearchAlbums(ctx context.Context, query string) (*SearchResponse, error) {
	searchURL := c.httpClient.URL("/search", url.Values{
		"type": {"album"},
		"q":    {query},
	})

	c.progress(ProgressEvent{Message: fmt.Sprintf("Searching albums: %s", query), Level: LevelVerbose})

	page, err := c.httpClient.GetPage(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}

	if vgmdb.AlbumID(page.URL.String()) != "" {
		album, err := c.parser.ParseAlbumPage(page.Body, page.URL.String())
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", page.URL, err)
		}
		c.progress(ProgressEvent{Message: fmt.Sprintf("Found album: %s", album.Title), Level: LevelInfo})
		return newDetailResponse(c, album), nil
	}

	infos, err := c.parser.ParseSearchPage(page.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing search results: %w", err)
	}
	c.progress(ProgressEvent{Message: fmt.Sprintf("Found %d album(s) for %q", len(infos), query), Level: LevelInfo})

	return newListResponse(c, infos), nil
}

// Album fetches and parses the album page for id.
func (c *Client) Album(ctx context.Context, id string) (*model.AlbumDetail, error) {
	if id == "" {
		return nil, errors.New("empty album id")
	}
	return c.fetchAlbum(ctx, c.httpClient.URL("/album/"+url.PathEscape(id), nil))
}

// Albums fetches several albums concurrently.
//
// At most MaxConcurrentAlbums pages are fetched at once. Results are in the
// order of ids. The first failure cancels the remaining fetches.
func (c *Client) Albums(ctx context.Context, ids []string) ([]*model.AlbumDetail, error) {
	albums := make([]*model.AlbumDetail, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.settings.MaxConcurrentAlbums)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			album, err := c.Album(ctx, id)
			if err != nil {
				c.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching album %s: %v", id, err), Level: LevelError})
				return err
			}
			albums[i] = album
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return albums, nil
}

// fetchAlbum fetches an album page. The final URL after redirects becomes
// the album link.
func (c *Client) fetchAlbum(ctx context.Context, link string) (*model.AlbumDetail, error) {
	c.progress(ProgressEvent{Message: fmt.Sprintf("Fetching album info: %s", link), Level: LevelVerbose})

	page, err := c.httpClient.GetPage(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", link, err)
	}

	album, err := c.parser.ParseAlbumPage(page.Body, page.URL.String())
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", page.URL, err)
	}

	c.progress(ProgressEvent{
		Message: fmt.Sprintf("Found album: %s (%d discs, %d tracks)", album.Title, len(album.Discs), album.TrackCount()),
		Level:   LevelInfo,
	})
	return album, nil
}

func (c *Client) progress(event ProgressEvent) {
	if c.onProgress != nil {
		c.onProgress(event)
	}
}
