package playlist

import (
	"math/rand"
	"sync"
	"time"

	"room-backend/models"
)

const (
	DefaultVolume = 0.7

	// Previous restarts the current track instead once past this point.
	restartThreshold = 3 * time.Second
)

// Player holds playback state for a playlist. It is safe for
// concurrent use.
type Player struct {
	mu       sync.Mutex
	tracks   []Track
	current  int // -1 when nothing is selected
	playing  bool
	shuffle  bool
	loop     bool
	volume   float64
	position time.Duration
	rng      *rand.Rand
}

func NewPlayer(tracks []Track) *Player {
	return &Player{
		tracks:  tracks,
		current: -1,
		volume:  DefaultVolume,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetTracks replaces the playlist and deselects the current track.
func (p *Player) SetTracks(tracks []Track) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tracks = tracks
	p.resetLocked()
}

func (p *Player) Tracks() []Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Track(nil), p.tracks...)
}

// Select starts playing track i. Out of range indexes are ignored.
func (p *Player) Select(i int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selectLocked(i)
}

func (p *Player) selectLocked(i int) bool {
	if i < 0 || i >= len(p.tracks) {
		return false
	}
	p.current = i
	p.position = 0
	p.playing = true
	return true
}

func (p *Player) TogglePlay() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.tracks) == 0 {
		return
	}
	if p.current == -1 {
		p.selectLocked(0)
		return
	}
	p.playing = !p.playing
}

func (p *Player) Next() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextLocked()
}

func (p *Player) nextLocked() {
	if len(p.tracks) == 0 {
		return
	}
	if p.current == -1 {
		p.selectLocked(0)
		return
	}

	var next int
	if p.shuffle {
		for {
			next = p.rng.Intn(len(p.tracks))
			if next != p.current || len(p.tracks) == 1 {
				break
			}
		}
	} else {
		next = (p.current + 1) % len(p.tracks)
	}
	p.selectLocked(next)
}

func (p *Player) Previous() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.tracks) == 0 {
		return
	}
	if p.current == -1 {
		p.selectLocked(0)
		return
	}
	if p.position > restartThreshold {
		p.position = 0
		return
	}

	prev := p.current - 1
	if prev < 0 {
		prev = len(p.tracks) - 1
	}
	p.selectLocked(prev)
}

// OnTrackEnd is called when the current track finishes playing.
func (p *Player) OnTrackEnd() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loop {
		p.position = 0
		p.playing = true
		return
	}
	p.nextLocked()
}

func (p *Player) ToggleShuffle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shuffle = !p.shuffle
	return p.shuffle
}

func (p *Player) ToggleLoop() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loop = !p.loop
	return p.loop
}

// SetVolume clamps v to [0, 1] and returns the volume now in effect.
func (p *Player) SetVolume(v float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = max(0, min(1, v))
	return p.volume
}

// Seek moves to fraction of the current track. It does nothing when no
// track is selected or its length is unknown.
func (p *Player) Seek(fraction float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == -1 {
		return false
	}
	d := p.tracks[p.current].Duration
	if d <= 0 {
		return false
	}
	fraction = max(0, min(1, fraction))
	p.position = time.Duration(fraction * float64(d))
	return true
}

// SetPosition records how far playback of the current track has got.
func (p *Player) SetPosition(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == -1 || d < 0 {
		return
	}
	p.position = d
}

func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	p.position = 0
}

// Reset stops playback and deselects the current track.
func (p *Player) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetLocked()
}

func (p *Player) resetLocked() {
	p.playing = false
	p.position = 0
	p.current = -1
}

func (p *Player) State() models.PlayerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := models.PlayerState{
		CurrentTrack: p.current,
		IsPlaying:    p.playing,
		IsShuffle:    p.shuffle,
		IsLoop:       p.loop,
		Volume:       p.volume,
		Position:     p.position.Seconds(),
	}
	if p.current >= 0 {
		s.Title = p.tracks[p.current].Title
		s.Artist = p.tracks[p.current].Artist
	}
	return s
}
