// Package http provides an HTTP client configured for VGMdb requests.
//
// The Client in this package handles:
//   - User-Agent and Cookie headers
//   - Building URLs against an explicitly configured site root
//   - Reporting the final URL after redirects
//   - Timeout handling
//
// There is no retry logic and no caching: a failed request is returned to
// the caller as is.
//
// # Basic Usage
//
//	client, err := http.NewClient(http.Options{
//	    BaseURL:   "https://vgmdb.net",
//	    UserAgent: "vgmdb-tagger",
//	    Timeout:   30 * time.Second,
//	}, logger)
//
//	page, err := client.GetPage(ctx, client.URL("/album/79", nil))
//	fmt.Println(page.URL, len(page.Body))
package http
