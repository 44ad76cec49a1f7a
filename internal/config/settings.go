package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/handiism/vgmdb-tagger/internal/audio"
	"github.com/handiism/vgmdb-tagger/internal/http"
)

// Settings holds all configuration options.
type Settings struct {
	// Site settings
	BaseURL             string  `json:"base_url"`
	UserAgent           string  `json:"user_agent"`
	Cookie              string  `json:"cookie"`
	RequestTimeout      float64 `json:"request_timeout"`
	MaxConcurrentAlbums int     `json:"max_concurrent_albums"`
	DisplayLanguage     string  `json:"display_language"`

	// Tag settings
	ModifyTags bool `json:"modify_tags"`

	// Cover art settings
	SaveCoverArtInFolder   bool   `json:"save_cover_art_in_folder"`
	SaveCoverArtInTags     bool   `json:"save_cover_art_in_tags"`
	CoverArtFileNameFormat string `json:"cover_art_file_name_format"`
	CoverArtResize         bool   `json:"cover_art_resize"`
	CoverArtMaxSize        int    `json:"cover_art_max_size"`
	ConvertCoverArtToJPG   bool   `json:"convert_cover_art_to_jpg"`

	// Playlist settings
	CreatePlaylist         bool   `json:"create_playlist"`
	PlaylistFormat         string `json:"playlist_format"` // m3u, pls, wpl, zpl
	PlaylistFileNameFormat string `json:"playlist_file_name_format"`
	M3UExtended            bool   `json:"m3u_extended"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		BaseURL:             "https://vgmdb.net",
		UserAgent:           "vgmdb-tagger",
		RequestTimeout:      60,
		MaxConcurrentAlbums: 4,

		ModifyTags: true,

		SaveCoverArtInFolder:   false,
		SaveCoverArtInTags:     true,
		CoverArtFileNameFormat: "cover",
		CoverArtResize:         true,
		CoverArtMaxSize:        1000,
		ConvertCoverArtToJPG:   true,

		CreatePlaylist:         false,
		PlaylistFormat:         "m3u",
		PlaylistFileNameFormat: "{album}",
		M3UExtended:            true,
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "vgmdb-tagger.json"
	}
	return filepath.Join(dir, "vgmdb-tagger", "config.json")
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return settings, settings.Validate()
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate reports settings that cannot work.
func (s *Settings) Validate() error {
	var errs []error
	if !strings.HasPrefix(s.BaseURL, "http://") && !strings.HasPrefix(s.BaseURL, "https://") {
		errs = append(errs, fmt.Errorf("base_url must be an http(s) URL, got %q", s.BaseURL))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("request_timeout must not be negative"))
	}
	if s.MaxConcurrentAlbums < 1 {
		errs = append(errs, fmt.Errorf("max_concurrent_albums must be at least 1"))
	}
	if s.CoverArtResize && s.CoverArtMaxSize < 1 {
		errs = append(errs, fmt.Errorf("cover_art_max_size must be positive when resizing"))
	}
	switch s.PlaylistFormat {
	case "m3u", "pls", "wpl", "zpl":
	default:
		errs = append(errs, fmt.Errorf("unknown playlist_format %q", s.PlaylistFormat))
	}
	return errors.Join(errs...)
}

// ToHTTPOptions converts settings to http.Options.
func (s *Settings) ToHTTPOptions() http.Options {
	return http.Options{
		BaseURL:   strings.TrimRight(s.BaseURL, "/"),
		UserAgent: s.UserAgent,
		Cookie:    s.Cookie,
		Timeout:   time.Duration(s.RequestTimeout * float64(time.Second)),
	}
}

// ToTagConfig converts settings to an audio.TagConfig.
func (s *Settings) ToTagConfig() *audio.TagConfig {
	cfg := audio.DefaultTagConfig()
	cfg.ModifyTags = s.ModifyTags
	cfg.Language = s.DisplayLanguage
	return cfg
}

// ToPlaylistFormat converts the playlist_format setting.
func (s *Settings) ToPlaylistFormat() audio.PlaylistFormat {
	switch s.PlaylistFormat {
	case "pls":
		return audio.FormatPLS
	case "wpl":
		return audio.FormatWPL
	case "zpl":
		return audio.FormatZPL
	default:
		return audio.FormatM3U
	}
}
