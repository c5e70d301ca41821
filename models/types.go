// Package models contain needed models
package models

import "time"

// Response is the envelope for errors and plain acknowledgements
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AudioInfo is what inspecting one audio file yields
type AudioInfo struct {
	Format     string        `json:"format"`
	Title      string        `json:"title,omitempty"`
	Artist     string        `json:"artist,omitempty"`
	Year       string        `json:"year,omitempty"`
	SampleRate int           `json:"sample_rate,omitempty"`
	Channels   int           `json:"channels,omitempty"`
	Duration   time.Duration `json:"-"`
}

// TagResponse represents the response after reading an uploaded file's tags
type TagResponse struct {
	Success  bool      `json:"success"`
	Filename string    `json:"filename"`
	Info     AudioInfo `json:"info"`
	Duration string    `json:"duration"`
}

// TrackResponse is one playlist entry as the music section renders it
type TrackResponse struct {
	Number       int     `json:"number"`
	Src          string  `json:"src"`
	Title        string  `json:"title"`
	Artist       string  `json:"artist"`
	Year         string  `json:"year"`
	DisplayTitle string  `json:"display_title"`
	Duration     float64 `json:"duration"`
	DurationText string  `json:"duration_text"`
}

// PlaylistResponse wraps the discovered tracks
type PlaylistResponse struct {
	Success bool            `json:"success"`
	Tracks  []TrackResponse `json:"tracks"`
	Message string          `json:"message,omitempty"`
}

// PlayerState is a snapshot of the player controller
type PlayerState struct {
	CurrentTrack int     `json:"current_track"`
	IsPlaying    bool    `json:"is_playing"`
	IsShuffle    bool    `json:"is_shuffle"`
	IsLoop       bool    `json:"is_loop"`
	Volume       float64 `json:"volume"`
	Position     float64 `json:"position"`
	Title        string  `json:"title,omitempty"`
	Artist       string  `json:"artist,omitempty"`
}

// VolumeRequest sets the player volume
type VolumeRequest struct {
	Volume *float64 `json:"volume" binding:"required"`
}

// PositionRequest reports how far playback has got, in seconds
type PositionRequest struct {
	Position *float64 `json:"position" binding:"required"`
}

// SeekRequest moves the playhead to a fraction of the track
type SeekRequest struct {
	Fraction *float64 `json:"fraction" binding:"required"`
}

// Video is one entry of the cartoons feed
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	PublishedAt time.Time `json:"published_at"`
	Published   string    `json:"published_text,omitempty"`
	Link        string    `json:"link"`
}

// Game is one entry of the toys catalog
type Game struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	EmbedURL    string    `json:"embed_url"`
	GameURL     string    `json:"game_url"`
	PublishedAt time.Time `json:"published_at"`
}

// Playable reports whether the game has a real embed rather than a placeholder
func (g Game) Playable() bool {
	return g.EmbedURL != "" && g.EmbedURL != "#"
}

// Artwork is one entry of the pix gallery
type Artwork struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

// ContentResponse wraps a list of videos, games or artwork
type ContentResponse[T any] struct {
	Success bool   `json:"success"`
	Items   []T    `json:"items"`
	Message string `json:"message,omitempty"`
}
