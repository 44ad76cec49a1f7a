// Package lookup provides the album lookup and tagging layer on top of the
// VGMdb parser.
//
// # Client
//
// The Client coordinates the whole process:
//
//  1. Search albums, or fetch one by id
//  2. Parse album pages into multi-language records
//  3. Download and prepare cover art
//  4. Tag a directory of MP3 files with the album's metadata
//  5. Generate playlists (optional)
//
// # Basic Usage
//
//	client, err := lookup.NewClient(settings, logger, func(event lookup.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := client.SearchAlbums(ctx, "final fantasy")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	album, err := results.IntoAlbum(ctx, 0)
//	if errors.Is(err, lookup.ErrNoAlbumFound) {
//	    log.Fatal("nothing found")
//	}
//
//	report, err := client.TagDirectory(ctx, album, "/music/FF")
//
// # Concurrency
//
// Albums fetches several album pages in parallel, bounded by
// settings.MaxConcurrentAlbums. Results keep the order of the ids.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// Lookups are not retried and results are not cached.
package lookup
