// Package config reads the server settings from the environment
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port             string
	AllowedOrigins   []string
	ContentBaseURL   string // when set, content is probed over HTTP
	ContentDir       string // otherwise it is read from this directory
	MaxTracks        int
	FallbackArtist   string
	YouTubeChannelID string
	ItchProfileURL   string
	CachePath        string // empty keeps the cache in memory
	CacheTTL         time.Duration
}

func Default() *Config {
	return &Config{
		Port:             "8080",
		AllowedOrigins:   []string{"http://localhost:3000"},
		ContentDir:       ".",
		MaxTracks:        100,
		FallbackArtist:   "Snitheads",
		YouTubeChannelID: "UCyEV-UcKPN8cCdFFoJrfEeQ",
		ItchProfileURL:   "https://snitheads.itch.io",
		CacheTTL:         30 * time.Minute,
	}
}

// Load returns Default overridden by whatever is set in the environment.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := Default()

	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	cfg.ContentBaseURL = strings.TrimSuffix(getenv("CONTENT_BASE_URL"), "/")
	if v := getenv("CONTENT_DIR"); v != "" {
		cfg.ContentDir = v
	}
	if v := getenv("MAX_TRACKS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid MAX_TRACKS %q", v)
		}
		cfg.MaxTracks = n
	}
	if v := getenv("FALLBACK_ARTIST"); v != "" {
		cfg.FallbackArtist = v
	}
	if v := getenv("YOUTUBE_CHANNEL_ID"); v != "" {
		cfg.YouTubeChannelID = v
	}
	if v := getenv("ITCH_PROFILE_URL"); v != "" {
		cfg.ItchProfileURL = v
	}
	cfg.CachePath = getenv("CACHE_PATH")
	if v := getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL %q: %w", v, err)
		}
		cfg.CacheTTL = d
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
