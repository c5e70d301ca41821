package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(env(nil))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := load(env(map[string]string{
		"PORT":             "9000",
		"ALLOWED_ORIGINS":  "https://a.example, https://b.example,",
		"CONTENT_BASE_URL": "https://cdn.example/room/",
		"MAX_TRACKS":       "12",
		"FALLBACK_ARTIST":  "Someone",
		"CACHE_PATH":       "/tmp/cache",
		"CACHE_TTL":        "5m",
	}))
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.Port = "9000"
	want.AllowedOrigins = []string{"https://a.example", "https://b.example"}
	want.ContentBaseURL = "https://cdn.example/room"
	want.MaxTracks = 12
	want.FallbackArtist = "Someone"
	want.CachePath = "/tmp/cache"
	want.CacheTTL = 5 * time.Minute
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadInvalid(t *testing.T) {
	for _, m := range []map[string]string{
		{"MAX_TRACKS": "zero"},
		{"MAX_TRACKS": "0"},
		{"CACHE_TTL": "soon"},
	} {
		if _, err := load(env(m)); err == nil {
			t.Errorf("load(%v): expected error", m)
		}
	}
}
