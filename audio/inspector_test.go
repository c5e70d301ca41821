package audio

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// taggedMP3 is an ID3v2.3 tag with a title frame followed by frames
// copies of a silent 128 kbit/s MPEG-1 Layer III frame.
func taggedMP3(title string, frames int) []byte {
	body := append([]byte{0}, title...)
	frame := append([]byte("TIT2"), 0, 0, 0, byte(len(body)), 0, 0)
	frame = append(frame, body...)

	tag := append([]byte("ID3"), 3, 0, 0, 0, 0, 0, byte(len(frame)))
	tag = append(tag, frame...)

	mpeg := make([]byte, 417)
	copy(mpeg, []byte{0xFF, 0xFB, 0x90, 0x00})
	return append(tag, bytes.Repeat(mpeg, frames)...)
}

func wavFile(t *testing.T, sampleRate, seconds int) []byte {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "fixture_*.wav")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:   make([]int, sampleRate*seconds),
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestInspectMP3Tags(t *testing.T) {
	info, err := NewInspector().Inspect("songs/1.mp3", taggedMP3("Hello", 0))
	if err != nil {
		t.Fatal(err)
	}
	if info.Format != "mp3" || info.Title != "Hello" {
		t.Errorf("got %+v", info)
	}
	if info.Duration != 0 {
		t.Errorf("Duration = %v for a file without audio", info.Duration)
	}
}

func TestInspectMP3Duration(t *testing.T) {
	info, err := NewInspector().Inspect("1.MP3", taggedMP3("Hello", 40))
	if err != nil {
		t.Fatal(err)
	}
	if info.Title != "Hello" {
		t.Errorf("Title = %q", info.Title)
	}
	if info.Duration <= 0 || info.Duration > 2*time.Second {
		t.Errorf("Duration = %v, want about 1s", info.Duration)
	}
}

func TestInspectWAV(t *testing.T) {
	info, err := NewInspector().Inspect("songs/2.wav", wavFile(t, 8000, 2))
	if err != nil {
		t.Fatal(err)
	}
	if info.Format != "wav" || info.SampleRate != 8000 || info.Channels != 1 {
		t.Errorf("got %+v", info)
	}
	if d := info.Duration - 2*time.Second; d < -10*time.Millisecond || d > 10*time.Millisecond {
		t.Errorf("Duration = %v, want 2s", info.Duration)
	}
	if info.Title != "" {
		t.Errorf("wav files carry no tags, got title %q", info.Title)
	}
}

func TestInspectInvalidWAV(t *testing.T) {
	if _, err := NewInspector().Inspect("x.wav", []byte("not a wav")); err == nil {
		t.Error("expected error")
	}
}

func TestInspectOgg(t *testing.T) {
	info, err := NewInspector().Inspect("songs/3.ogg", []byte("OggS"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Format != "ogg" || info.Duration != 0 {
		t.Errorf("got %+v", info)
	}
}

func TestInspectUnsupported(t *testing.T) {
	_, err := NewInspector().Inspect("notes.txt", nil)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}
