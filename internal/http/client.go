package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Options configures a Client.
//
// BaseURL has no default here; the caller passes the site root explicitly
// (see config.Settings.ToHTTPOptions).
type Options struct {
	// BaseURL is the site root, e.g. "https://vgmdb.net".
	BaseURL string

	// UserAgent is sent with every request.
	UserAgent string

	// Cookie is sent verbatim as the Cookie header when non-empty.
	Cookie string

	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration
}

// Client wraps HTTP operations with VGMdb-specific configuration.
//
// Client provides:
//   - Configured User-Agent and Cookie headers
//   - Timeout handling
//   - The final URL after redirects, which tells album pages from search pages
//   - Debug logging of every request
//
// Example usage:
//
//	client, err := NewClient(opts, logger)
//
//	// Fetch a page and see where it landed
//	page, err := client.GetPage(ctx, client.URL("/search", url.Values{"q": {"FF"}}))
//	fmt.Println(page.URL.Path) // "/album/79" when the search matched one album
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	userAgent  string
	cookie     string
	logger     *zap.Logger
}

// NewClient creates a new HTTP client from opts.
//
// A nil logger disables logging.
func NewClient(opts Options, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", opts.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", opts.BaseURL)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		baseURL:   base,
		userAgent: opts.UserAgent,
		cookie:    opts.Cookie,
		logger:    logger,
	}, nil
}

// BaseURL returns the configured site root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// URL builds an absolute URL for path on the configured site.
//
// Example:
//
//	client.URL("/album/79", nil)                          // "https://vgmdb.net/album/79"
//	client.URL("/search", url.Values{"q": {"FF"}})        // "https://vgmdb.net/search?q=FF"
func (c *Client) URL(path string, query url.Values) string {
	u := c.baseURL.ResolveReference(&url.URL{Path: path})
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// Page is a fetched HTML page.
type Page struct {
	// URL is the final URL after redirects.
	URL *url.URL

	// Body is the response body.
	Body string
}

// GetPage performs a GET request and returns the body with the final URL.
//
// Redirects are followed. The final URL is what distinguishes a search
// that jumped straight to an album page from a result listing.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK
//   - Reading the body fails
func (c *Client) GetPage(ctx context.Context, rawURL string) (*Page, error) {
	resp, err := c.do(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rawURL, err)
	}

	return &Page{URL: resp.Request.URL, Body: string(body)}, nil
}

// GetString performs a GET request and returns the response body as a string.
//
// This is a convenience wrapper around GetPage when the final URL does not
// matter.
func (c *Client) GetString(ctx context.Context, rawURL string) (string, error) {
	page, err := c.GetPage(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return page.Body, nil
}

// DownloadBytes downloads a file and returns the bytes in memory.
//
// Use this for small files like cover art images.
//
// Example:
//
//	imageData, err := client.DownloadBytes(ctx, album.CoverURL)
func (c *Client) DownloadBytes(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := c.do(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

// do sends a GET request with the configured headers and checks the status.
// The caller closes the body.
func (c *Client) do(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.cookie != "" {
		req.Header.Set("Cookie", c.cookie)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", zap.String("url", rawURL), zap.Error(err))
		return nil, err
	}

	c.logger.Debug("request done",
		zap.String("url", rawURL),
		zap.String("final_url", resp.Request.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return resp, nil
}
