package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/handiism/vgmdb-tagger/internal/config"
	"github.com/handiism/vgmdb-tagger/internal/lookup"
	"github.com/handiism/vgmdb-tagger/internal/model"
)

func main() {
	// Command line flags
	var (
		queryFlag    = flag.String("q", "", "Search query")
		idFlag       = flag.String("id", "", "Album id(s) to fetch (comma-separated)")
		indexFlag    = flag.Int("index", -1, "Pick the search result at this index (0-based)")
		jsonFlag     = flag.Bool("json", false, "Print records as JSON")
		tagFlag      = flag.String("tag", "", "Directory of MP3 files to tag with the album")
		configFlag   = flag.String("config", "", "Path to config file")
		baseURLFlag  = flag.String("base-url", "", "Site root (overrides config)")
		langFlag     = flag.String("lang", "", "Display language for titles (overrides config)")
		playlistFlag = flag.Bool("playlist", false, "Create playlist file when tagging")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	if *queryFlag == "" && *idFlag == "" {
		fmt.Println("VGMdb Tagger - Album metadata from VGMdb")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  vgmdb-tag -q <query> [-index N] [options]")
		fmt.Println("  vgmdb-tag -id <id>[,<id>...] [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: vgmdb-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger := newLogger(*verboseFlag)
	defer logger.Sync()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			logger.Fatal("loading config", zap.String("path", *configFlag), zap.Error(err))
		}
	}

	// Apply flags
	if *baseURLFlag != "" {
		settings.BaseURL = *baseURLFlag
	}
	if *langFlag != "" {
		settings.DisplayLanguage = *langFlag
	}
	if *playlistFlag {
		settings.CreatePlaylist = true
	}

	// Handle interrupts
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := lookup.NewClient(settings, logger, progressLogger(logger))
	if err != nil {
		logger.Fatal("creating client", zap.Error(err))
	}

	var albums []*model.AlbumDetail
	switch {
	case *idFlag != "":
		albums, err = client.Albums(ctx, splitIDs(*idFlag))
	default:
		albums, err = searchAlbum(ctx, client, *queryFlag, *indexFlag, settings.DisplayLanguage, *jsonFlag)
	}
	if err != nil {
		exit(ctx, logger, "lookup failed", err)
	}
	if len(albums) == 0 {
		return
	}

	for _, album := range albums {
		if err := printAlbum(os.Stdout, album, settings.DisplayLanguage, *jsonFlag); err != nil {
			logger.Fatal("printing album", zap.Error(err))
		}
	}

	if *tagFlag != "" {
		if len(albums) != 1 {
			logger.Fatal("-tag needs exactly one album", zap.Int("albums", len(albums)))
		}
		report, err := client.TagDirectory(ctx, albums[0], *tagFlag)
		if err != nil {
			exit(ctx, logger, "tagging failed", err)
		}
		logger.Info("tagging complete",
			zap.String("dir", *tagFlag),
			zap.Int("tagged", report.Tagged),
			zap.Int("failed", len(report.Failed)),
			zap.Int("unmatched_files", len(report.UnmatchedFiles)),
			zap.Int("unmatched_tracks", report.UnmatchedTracks),
		)
		if len(report.Failed) > 0 {
			os.Exit(1)
		}
	}
}

// searchAlbum runs a search and resolves it to one album.
//
// With several results and no index, the results are listed (as JSON when
// asJSON is set) and nothing is returned.
func searchAlbum(ctx context.Context, client *lookup.Client, query string, index int, language string, asJSON bool) ([]*model.AlbumDetail, error) {
	results, err := client.SearchAlbums(ctx, query)
	if err != nil {
		return nil, err
	}

	if index < 0 {
		if results.Len() > 1 {
			return nil, printResults(os.Stdout, results.Albums(), language, asJSON)
		}
		index = 0
	}

	album, err := results.IntoAlbum(ctx, index)
	if err != nil {
		return nil, err
	}
	return []*model.AlbumDetail{album}, nil
}

func printResults(w io.Writer, albums []*model.AlbumInfo, language string, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(albums)
	}

	for i, info := range albums {
		catalog := info.Catalog
		if catalog == "" {
			catalog = "N/A"
		}
		fmt.Fprintf(w, "%3d  %-8s %-14s %-10s %s\n", i, info.ID, catalog, info.ReleaseDate, info.Title.Preferred(language))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pick one with -index N.")
	return nil
}

func printAlbum(w io.Writer, album *model.AlbumDetail, language string, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(album)
	}

	fmt.Fprintf(w, "%s\n", album.Title.Preferred(language))
	if album.HasCatalog() {
		fmt.Fprintf(w, "  Catalog:  %s\n", album.Catalog)
	}
	fmt.Fprintf(w, "  Released: %s\n", album.ReleaseDate)
	fmt.Fprintf(w, "  Link:     %s\n", album.Link)
	for _, disc := range album.Discs {
		fmt.Fprintf(w, "\n  %s\n", disc.Title)
		for i, track := range disc.Tracks {
			fmt.Fprintf(w, "    %02d  %s\n", i+1, track.Name.Preferred(language))
		}
	}
	fmt.Fprintln(w)
	return nil
}

func splitIDs(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// newLogger builds a console logger; verbose enables debug output.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		cfg.EncoderConfig.CallerKey = ""
	}

	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

// progressLogger maps lookup progress events onto log levels.
func progressLogger(logger *zap.Logger) func(lookup.ProgressEvent) {
	return func(event lookup.ProgressEvent) {
		switch event.Level {
		case lookup.LevelVerbose:
			logger.Debug(event.Message)
		case lookup.LevelWarning:
			logger.Warn(event.Message)
		case lookup.LevelError:
			logger.Error(event.Message)
		default:
			logger.Info(event.Message)
		}
	}
}

func exit(ctx context.Context, logger *zap.Logger, msg string, err error) {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		logger.Warn("cancelled")
		os.Exit(130)
	}
	logger.Error(msg, zap.Error(err))
	os.Exit(1)
}
