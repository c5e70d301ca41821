package playlist

import (
	"math/rand"
	"testing"
	"time"
)

func threeTracks() []Track {
	return []Track{
		{Number: 1, Title: "One", Artist: "A", Duration: time.Minute},
		{Number: 2, Title: "Two", Artist: "B", Duration: 2 * time.Minute},
		{Number: 3, Title: "Three", Artist: "C"},
	}
}

func TestPlayerInitialState(t *testing.T) {
	s := NewPlayer(threeTracks()).State()
	if s.CurrentTrack != -1 || s.IsPlaying || s.Volume != DefaultVolume {
		t.Errorf("initial state = %+v", s)
	}
}

func TestPlayerEmpty(t *testing.T) {
	p := NewPlayer(nil)
	p.TogglePlay()
	p.Next()
	p.Previous()
	p.OnTrackEnd()
	if s := p.State(); s.CurrentTrack != -1 || s.IsPlaying {
		t.Errorf("empty player changed state: %+v", s)
	}
}

func TestPlayerTogglePlay(t *testing.T) {
	p := NewPlayer(threeTracks())

	p.TogglePlay()
	if s := p.State(); s.CurrentTrack != 0 || !s.IsPlaying || s.Title != "One" {
		t.Fatalf("first toggle: %+v", p.State())
	}
	p.TogglePlay()
	if p.State().IsPlaying {
		t.Error("second toggle should pause")
	}
	p.TogglePlay()
	if !p.State().IsPlaying {
		t.Error("third toggle should resume")
	}
}

func TestPlayerSelect(t *testing.T) {
	p := NewPlayer(threeTracks())
	if p.Select(3) || p.Select(-1) {
		t.Error("out of range Select accepted")
	}
	if !p.Select(2) {
		t.Fatal("Select(2) rejected")
	}
	if s := p.State(); s.CurrentTrack != 2 || s.Artist != "C" {
		t.Errorf("state = %+v", s)
	}
}

func TestPlayerNextPrevious(t *testing.T) {
	p := NewPlayer(threeTracks())

	p.Next()
	if got := p.State().CurrentTrack; got != 0 {
		t.Fatalf("Next from nothing = %d, want 0", got)
	}
	p.Next()
	p.Next()
	p.Next()
	if got := p.State().CurrentTrack; got != 0 {
		t.Errorf("Next should wrap to 0, got %d", got)
	}

	p.Previous()
	if got := p.State().CurrentTrack; got != 2 {
		t.Errorf("Previous should wrap to 2, got %d", got)
	}

	p.SetPosition(5 * time.Second)
	p.Previous()
	if s := p.State(); s.CurrentTrack != 2 || s.Position != 0 {
		t.Errorf("Previous past 3s should restart, got %+v", s)
	}

	p.SetPosition(3 * time.Second)
	p.Previous()
	if got := p.State().CurrentTrack; got != 1 {
		t.Errorf("Previous at 3s should go back, got %d", got)
	}
}

func TestPlayerPreviousFromNothing(t *testing.T) {
	p := NewPlayer(threeTracks())
	p.Previous()
	if got := p.State().CurrentTrack; got != 0 {
		t.Errorf("Previous from nothing = %d, want 0", got)
	}
}

func TestPlayerShuffle(t *testing.T) {
	p := NewPlayer(threeTracks())
	p.rng = rand.New(rand.NewSource(1))
	if !p.ToggleShuffle() {
		t.Fatal("shuffle not enabled")
	}

	p.Select(1)
	for i := 0; i < 50; i++ {
		before := p.State().CurrentTrack
		p.Next()
		after := p.State().CurrentTrack
		if after == before {
			t.Fatalf("shuffle repeated track %d", after)
		}
		if after < 0 || after > 2 {
			t.Fatalf("shuffle picked %d", after)
		}
	}

	single := NewPlayer(threeTracks()[:1])
	single.ToggleShuffle()
	single.Select(0)
	single.Next()
	if got := single.State().CurrentTrack; got != 0 {
		t.Errorf("single track shuffle = %d, want 0", got)
	}
}

func TestPlayerTrackEnd(t *testing.T) {
	p := NewPlayer(threeTracks())
	p.Select(0)
	p.OnTrackEnd()
	if got := p.State().CurrentTrack; got != 1 {
		t.Errorf("end without loop = %d, want 1", got)
	}

	if !p.ToggleLoop() {
		t.Fatal("loop not enabled")
	}
	p.SetPosition(time.Minute)
	p.OnTrackEnd()
	if s := p.State(); s.CurrentTrack != 1 || s.Position != 0 || !s.IsPlaying {
		t.Errorf("end with loop = %+v", s)
	}
}

func TestPlayerVolume(t *testing.T) {
	p := NewPlayer(nil)
	tests := []struct{ in, want float64 }{
		{0.5, 0.5},
		{-1, 0},
		{1.5, 1},
		{1, 1},
	}
	for _, test := range tests {
		if got := p.SetVolume(test.in); got != test.want {
			t.Errorf("SetVolume(%v) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestPlayerSeek(t *testing.T) {
	p := NewPlayer(threeTracks())
	if p.Seek(0.5) {
		t.Error("Seek without a track accepted")
	}
	p.Select(1)
	if !p.Seek(0.25) {
		t.Fatal("Seek rejected")
	}
	if got := p.State().Position; got != 30 {
		t.Errorf("Position = %v, want 30", got)
	}
	p.Select(2)
	if p.Seek(0.5) {
		t.Error("Seek on unknown duration accepted")
	}
}

func TestPlayerStopReset(t *testing.T) {
	p := NewPlayer(threeTracks())
	p.Select(1)
	p.SetPosition(10 * time.Second)

	p.Stop()
	if s := p.State(); s.IsPlaying || s.Position != 0 || s.CurrentTrack != 1 {
		t.Errorf("after Stop: %+v", s)
	}
	p.Reset()
	if s := p.State(); s.CurrentTrack != -1 || s.Title != "" {
		t.Errorf("after Reset: %+v", s)
	}
}

func TestPlayerSetTracks(t *testing.T) {
	p := NewPlayer(threeTracks())
	p.Select(2)
	p.SetTracks(threeTracks()[:1])
	if s := p.State(); s.CurrentTrack != -1 || s.IsPlaying {
		t.Errorf("after SetTracks: %+v", s)
	}
	if n := len(p.Tracks()); n != 1 {
		t.Errorf("Tracks() has %d entries, want 1", n)
	}
}
