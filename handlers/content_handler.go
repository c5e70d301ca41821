package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"room-backend/models"

	"github.com/gin-gonic/gin"
)

type VideoSource interface {
	Videos(ctx context.Context) ([]models.Video, error)
	Refresh(ctx context.Context) ([]models.Video, error)
}

type GameSource interface {
	Games(ctx context.Context) ([]models.Game, error)
}

type ArtworkSource interface {
	Discover(ctx context.Context) []models.Artwork
}

// ContentHandler serves the cartoons, toys and pix sections.
type ContentHandler struct {
	videos  VideoSource
	games   GameSource
	artwork ArtworkSource
}

func NewContentHandler(videos VideoSource, games GameSource, artwork ArtworkSource) *ContentHandler {
	return &ContentHandler{videos: videos, games: games, artwork: artwork}
}

func (h *ContentHandler) Videos(c *gin.Context) {
	videos, err := h.videos.Videos(c.Request.Context())
	respondVideos(c, videos, err)
}

// RefreshVideos drops the cached feed before fetching it.
func (h *ContentHandler) RefreshVideos(c *gin.Context) {
	videos, err := h.videos.Refresh(c.Request.Context())
	respondVideos(c, videos, err)
}

func respondVideos(c *gin.Context, videos []models.Video, err error) {
	if err != nil {
		log.Printf("YouTube fetch error: %v", err)
		c.JSON(http.StatusBadGateway, models.Response{
			Success: false,
			Message: fmt.Sprintf("Unable to load videos at this time: %v", err),
		})
		return
	}
	c.JSON(http.StatusOK, contentResponse(videos, "No cartoons available yet. Check back soon!"))
}

func (h *ContentHandler) Games(c *gin.Context) {
	games, err := h.games.Games(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: fmt.Sprintf("Error fetching games: %v", err),
		})
		return
	}
	c.JSON(http.StatusOK, contentResponse(games, "No games available yet"))
}

func (h *ContentHandler) Artwork(c *gin.Context) {
	items := h.artwork.Discover(c.Request.Context())
	c.JSON(http.StatusOK, contentResponse(items, "No artwork yet"))
}

func contentResponse[T any](items []T, empty string) models.ContentResponse[T] {
	resp := models.ContentResponse[T]{Success: true, Items: items}
	if resp.Items == nil {
		resp.Items = []T{}
	}
	if len(items) == 0 {
		resp.Message = empty
	}
	return resp
}
