package playlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"room-backend/models"
	"room-backend/probe"

	"github.com/google/go-cmp/cmp"
)

type fakeProber struct {
	files  map[string]string
	broken map[string]bool // exist but fail to fetch
}

func (f *fakeProber) Exists(ctx context.Context, name string) bool {
	_, ok := f.files[name]
	return ok
}

func (f *fakeProber) Fetch(ctx context.Context, name string) ([]byte, error) {
	if f.broken[name] {
		return nil, errors.New("connection reset")
	}
	body, ok := f.files[name]
	if !ok {
		return nil, probe.ErrNotFound
	}
	return []byte(body), nil
}

// fakeInspector returns canned info keyed by file content.
type fakeInspector map[string]models.AudioInfo

func (f fakeInspector) Inspect(name string, data []byte) (*models.AudioInfo, error) {
	info, ok := f[string(data)]
	if !ok {
		return nil, errors.New("unreadable")
	}
	return &info, nil
}

var inspector = fakeInspector{
	"tagged":   {Format: "mp3", Title: "Song", Artist: "Band", Year: "2020", Duration: 90 * time.Second},
	"untagged": {Format: "mp3", Duration: 30 * time.Second},
	"wav":      {Format: "wav", Duration: 10 * time.Second},
}

func TestDiscover(t *testing.T) {
	p := &fakeProber{
		files: map[string]string{
			"songs/1.mp3": "tagged",
			"songs/1.wav": "wav",
			"songs/2.wav": "wav",
			"songs/3.ogg": "ogg",
			"songs/4.mp3": "untagged",
			"songs/5.mp3": "garbage",
			"songs/6.mp3": "tagged",
			"songs/8.mp3": "tagged",
		},
		broken: map[string]bool{"songs/6.mp3": true},
	}

	got := Discover(context.Background(), p, inspector, Options{FallbackArtist: "Fallback"})
	want := []Track{
		{Number: 1, Src: "songs/1.mp3", Title: "Song", Artist: "Band", Year: "2020", Duration: 90 * time.Second},
		{Number: 2, Src: "songs/2.wav", Title: "Track 2", Artist: "Fallback", Duration: 10 * time.Second},
		{Number: 3, Src: "songs/3.ogg", Title: "Track 3", Artist: "Fallback"},
		{Number: 4, Src: "songs/4.mp3", Title: "Track 4", Artist: "Fallback", Duration: 30 * time.Second},
		{Number: 5, Src: "songs/5.mp3", Title: "Track 5", Artist: "Fallback"},
		{Number: 6, Src: "songs/6.mp3", Title: "Track 6", Artist: "Fallback"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Discover mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscoverLimits(t *testing.T) {
	p := &fakeProber{files: map[string]string{
		"music/1.mp3": "tagged",
		"music/2.mp3": "tagged",
		"music/3.mp3": "tagged",
	}}

	got := Discover(context.Background(), p, inspector, Options{Dir: "music", MaxTracks: 2})
	if len(got) != 2 {
		t.Errorf("got %d tracks, want 2", len(got))
	}

	if got := Discover(context.Background(), p, inspector, Options{}); len(got) != 0 {
		t.Errorf("default dir: got %d tracks, want 0", len(got))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if got := Discover(ctx, p, inspector, Options{Dir: "music"}); len(got) != 0 {
		t.Errorf("canceled: got %d tracks, want 0", len(got))
	}
}

func TestDiscoverNeedsFirstTrack(t *testing.T) {
	p := &fakeProber{files: map[string]string{"songs/2.mp3": "tagged"}}
	if got := Discover(context.Background(), p, inspector, Options{}); len(got) != 0 {
		t.Errorf("got %d tracks, want 0", len(got))
	}
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		track Track
		want  string
	}{
		{Track{Title: "Song", Year: "1999"}, "Song (1999)"},
		{Track{Title: "Song"}, "Song"},
	}
	for _, test := range tests {
		if got := test.track.DisplayTitle(); got != test.want {
			t.Errorf("DisplayTitle() = %q, want %q", got, test.want)
		}
	}
}
