// Package playlist finds the room's songs and drives playback state
package playlist

import (
	"context"
	"fmt"
	"log"
	"time"

	"room-backend/audio"
	"room-backend/models"
	"room-backend/probe"
)

const (
	DefaultDir       = "songs"
	DefaultMaxTracks = 100
	DefaultArtist    = "Snitheads"
)

type Track struct {
	Number   int
	Src      string
	Title    string
	Artist   string
	Year     string
	Duration time.Duration
}

// DisplayTitle appends the year in parentheses when there is one.
func (t Track) DisplayTitle() string {
	if t.Year == "" {
		return t.Title
	}
	return fmt.Sprintf("%s (%s)", t.Title, t.Year)
}

// Inspector reads metadata from one audio file.
type Inspector interface {
	Inspect(name string, data []byte) (*models.AudioInfo, error)
}

type Options struct {
	Dir            string
	MaxTracks      int
	FallbackArtist string
}

func (o Options) withDefaults() Options {
	if o.Dir == "" {
		o.Dir = DefaultDir
	}
	if o.MaxTracks <= 0 {
		o.MaxTracks = DefaultMaxTracks
	}
	if o.FallbackArtist == "" {
		o.FallbackArtist = DefaultArtist
	}
	return o
}

// Discover probes {dir}/1.mp3, 1.wav, 1.ogg, then 2.*, and so on. Songs
// are expected to be numbered without gaps: discovery stops at the
// first number with no file.
func Discover(ctx context.Context, p probe.Prober, in Inspector, opts Options) []Track {
	opts = opts.withDefaults()

	var tracks []Track
	for n := 1; n <= opts.MaxTracks; n++ {
		if ctx.Err() != nil {
			break
		}
		track, ok := loadTrack(ctx, p, in, opts, n)
		if !ok {
			break
		}
		tracks = append(tracks, track)
	}
	return tracks
}

func loadTrack(ctx context.Context, p probe.Prober, in Inspector, opts Options, n int) (Track, bool) {
	for _, ext := range audio.Extensions {
		src := fmt.Sprintf("%s/%d.%s", opts.Dir, n, ext)
		if !p.Exists(ctx, src) {
			continue
		}

		info := readInfo(ctx, p, in, src, ext)
		track := Track{
			Number:   n,
			Src:      src,
			Title:    info.Title,
			Artist:   info.Artist,
			Year:     info.Year,
			Duration: info.Duration,
		}
		if track.Title == "" {
			track.Title = fmt.Sprintf("Track %d", n)
		}
		if track.Artist == "" {
			track.Artist = opts.FallbackArtist
		}
		log.Printf("Loaded: %s (%s)", src, track.DisplayTitle())
		return track, true
	}
	return Track{}, false
}

// readInfo never fails; a file that cannot be read just has no metadata.
func readInfo(ctx context.Context, p probe.Prober, in Inspector, src, ext string) models.AudioInfo {
	if ext == "ogg" {
		return models.AudioInfo{Format: ext}
	}
	data, err := p.Fetch(ctx, src)
	if err != nil {
		log.Printf("Warning: could not fetch %s: %v", src, err)
		return models.AudioInfo{Format: ext}
	}
	info, err := in.Inspect(src, data)
	if err != nil {
		log.Printf("Warning: could not inspect %s: %v", src, err)
		return models.AudioInfo{Format: ext}
	}
	return *info
}
