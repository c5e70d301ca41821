// Package audio inspects the audio files the music section plays
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"room-backend/models"
	"room-backend/mp3parser"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tosone/minimp3"
)

// ErrUnsupportedFormat is returned for files that are not mp3, wav or ogg.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Extensions lists the formats the player can play, in probing order.
var Extensions = []string{"mp3", "wav", "ogg"}

type Inspector struct{}

func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect reads what it can about one audio file. Only mp3 files carry
// tag metadata; a file whose audio cannot be decoded still returns its
// tags with a zero duration.
func (in *Inspector) Inspect(name string, data []byte) (*models.AudioInfo, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	switch ext {
	case "mp3":
		return in.inspectMP3(data), nil
	case "wav":
		return in.inspectWAV(data)
	case "ogg":
		return &models.AudioInfo{Format: ext}, nil
	default:
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	}
}

func (in *Inspector) inspectMP3(data []byte) *models.AudioInfo {
	md := mp3parser.Decode(data)
	info := &models.AudioInfo{
		Format: "mp3",
		Title:  md.Title,
		Artist: md.Artist,
		Year:   md.Year,
	}

	if sampleRate, channels, d, err := decodeMP3(data); err == nil && d > 0 {
		info.SampleRate = sampleRate
		info.Channels = channels
		info.Duration = d
	} else {
		info.Duration = mp3parser.EstimateDuration(data)
	}
	return info
}

// decodeMP3 decodes the whole file to PCM to measure its length.
func decodeMP3(data []byte) (int, int, time.Duration, error) {
	if len(data) < 4 {
		return 0, 0, 0, errors.New("no MP3 data")
	}
	decoder, pcm, err := minimp3.DecodeFull(data)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to decode MP3: %v", err)
	}
	defer decoder.Close()

	if decoder.Channels == 0 || decoder.SampleRate == 0 {
		return 0, 0, 0, errors.New("MP3 decoder found no frames")
	}
	samplesPerChannel := len(pcm) / 2 / decoder.Channels // 2 bytes per 16-bit sample
	d := time.Duration(samplesPerChannel) * time.Second / time.Duration(decoder.SampleRate)
	return decoder.SampleRate, decoder.Channels, d, nil
}

func (in *Inspector) inspectWAV(data []byte) (*models.AudioInfo, error) {
	decoder := wav.NewDecoder(bytes.NewReader(data))
	if !decoder.IsValidFile() {
		return nil, errors.New("invalid WAV file")
	}

	d, err := decoder.Duration()
	if err != nil {
		return nil, fmt.Errorf("failed to read WAV duration: %v", err)
	}

	info := &models.AudioInfo{Format: "wav", Duration: d}
	info.SampleRate, info.Channels = formatInfo(decoder.Format())
	return info, nil
}

func formatInfo(f *audio.Format) (sampleRate, channels int) {
	if f == nil {
		return 0, 0
	}
	return f.SampleRate, f.NumChannels
}
