// Package handlers serves the room's HTTP API
package handlers

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"room-backend/audio"
	"room-backend/cache"
	"room-backend/format"
	"room-backend/models"
	"room-backend/playlist"
	"room-backend/probe"

	"github.com/gin-gonic/gin"
)

const tracksCacheKey = "tracks_cache"

type MusicHandler struct {
	prober    probe.Prober
	inspector *audio.Inspector
	opts      playlist.Options
	player    *playlist.Player
	cache     *cache.Manager

	mu     sync.Mutex
	loaded bool
}

func NewMusicHandler(p probe.Prober, opts playlist.Options, store cache.Store, ttl time.Duration) *MusicHandler {
	return &MusicHandler{
		prober:    p,
		inspector: audio.NewInspector(),
		opts:      opts,
		player:    playlist.NewPlayer(nil),
		cache:     cache.NewManager(store, tracksCacheKey, ttl),
	}
}

func (h *MusicHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Room API is running",
		"version": "1.0.0",
	})
}

// loadTracks discovers the playlist once and hands it to the player.
// Later calls reuse it unless refresh is set.
func (h *MusicHandler) loadTracks(ctx context.Context, refresh bool) []playlist.Track {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.loaded && !refresh {
		return h.player.Tracks()
	}

	var tracks []playlist.Track
	if refresh || !h.cache.Get(&tracks) {
		tracks = playlist.Discover(ctx, h.prober, h.inspector, h.opts)
		h.cache.Set(tracks)
		log.Printf("Discovered %d tracks", len(tracks))
	}
	h.player.SetTracks(tracks)
	h.loaded = true
	return tracks
}

func (h *MusicHandler) Tracks(c *gin.Context) {
	tracks := h.loadTracks(c.Request.Context(), c.Query("refresh") == "true")

	resp := models.PlaylistResponse{
		Success: true,
		Tracks:  make([]models.TrackResponse, 0, len(tracks)),
	}
	for _, t := range tracks {
		resp.Tracks = append(resp.Tracks, trackResponse(t))
	}
	if len(tracks) == 0 {
		resp.Message = "No songs found"
	}
	c.JSON(http.StatusOK, resp)
}

func trackResponse(t playlist.Track) models.TrackResponse {
	return models.TrackResponse{
		Number:       t.Number,
		Src:          t.Src,
		Title:        t.Title,
		Artist:       t.Artist,
		Year:         t.Year,
		DisplayTitle: t.DisplayTitle(),
		Duration:     t.Duration.Seconds(),
		DurationText: format.Duration(t.Duration),
	}
}

// ReadTags reads the tags and length of an uploaded MP3.
func (h *MusicHandler) ReadTags(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil { // 32MB limit
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: fmt.Sprintf("Failed to parse form: %v", err),
		})
		return
	}

	audioFile, audioHeader, err := c.Request.FormFile("audio_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Audio file is required",
		})
		return
	}
	defer audioFile.Close()

	if !isValidMP3File(audioHeader.Filename) {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid audio file format. Only MP3 files are supported",
		})
		return
	}

	audioData, err := io.ReadAll(audioFile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: fmt.Sprintf("Failed to read audio file: %v", err),
		})
		return
	}

	info, err := h.inspector.Inspect(audioHeader.Filename, audioData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: fmt.Sprintf("Failed to inspect audio file: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, models.TagResponse{
		Success:  true,
		Filename: audioHeader.Filename,
		Info:     *info,
		Duration: format.Duration(info.Duration),
	})
}

// playerAction wraps a state change so every player endpoint loads the
// playlist first and answers with the resulting state.
func (h *MusicHandler) playerAction(action func(*playlist.Player)) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.loadTracks(c.Request.Context(), false)
		if action != nil {
			action(h.player)
		}
		c.JSON(http.StatusOK, h.player.State())
	}
}

func (h *MusicHandler) PlayerState() gin.HandlerFunc { return h.playerAction(nil) }
func (h *MusicHandler) Play() gin.HandlerFunc { return h.playerAction((*playlist.Player).TogglePlay) }
func (h *MusicHandler) Next() gin.HandlerFunc { return h.playerAction((*playlist.Player).Next) }
func (h *MusicHandler) Previous() gin.HandlerFunc { return h.playerAction((*playlist.Player).Previous) }
func (h *MusicHandler) Stop() gin.HandlerFunc { return h.playerAction((*playlist.Player).Stop) }
func (h *MusicHandler) TrackEnded() gin.HandlerFunc { return h.playerAction((*playlist.Player).OnTrackEnd) }

func (h *MusicHandler) Shuffle() gin.HandlerFunc {
	return h.playerAction(func(p *playlist.Player) { p.ToggleShuffle() })
}

func (h *MusicHandler) Loop() gin.HandlerFunc {
	return h.playerAction(func(p *playlist.Player) { p.ToggleLoop() })
}

func (h *MusicHandler) Select(c *gin.Context) {
	h.loadTracks(c.Request.Context(), false)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || !h.player.Select(index) {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: fmt.Sprintf("Invalid track index %q", c.Param("index")),
		})
		return
	}
	c.JSON(http.StatusOK, h.player.State())
}

func (h *MusicHandler) Volume(c *gin.Context) {
	var req models.VolumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Volume is required",
		})
		return
	}
	h.player.SetVolume(*req.Volume)
	c.JSON(http.StatusOK, h.player.State())
}

// Position records the playhead reported by the client.
func (h *MusicHandler) Position(c *gin.Context) {
	h.loadTracks(c.Request.Context(), false)

	var req models.PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil || *req.Position < 0 {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Position must be a non-negative number of seconds",
		})
		return
	}
	h.player.SetPosition(time.Duration(*req.Position * float64(time.Second)))
	c.JSON(http.StatusOK, h.player.State())
}

func (h *MusicHandler) Seek(c *gin.Context) {
	h.loadTracks(c.Request.Context(), false)

	var req models.SeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Fraction is required",
		})
		return
	}
	if !h.player.Seek(*req.Fraction) {
		c.JSON(http.StatusConflict, models.Response{
			Success: false,
			Message: "Nothing to seek in",
		})
		return
	}
	c.JSON(http.StatusOK, h.player.State())
}

func isValidMP3File(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".mp3"
}
