package main

import (
	"log"

	"room-backend/cache"
	"room-backend/config"
	"room-backend/feeds"
	"room-backend/handlers"
	"room-backend/playlist"
	"room-backend/probe"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var prober probe.Prober
	if cfg.ContentBaseURL != "" {
		prober = probe.NewHTTPProber(cfg.ContentBaseURL)
		log.Printf("Serving content from %s", cfg.ContentBaseURL)
	} else {
		prober = probe.NewDirProber(cfg.ContentDir)
		log.Printf("Serving content from directory %s", cfg.ContentDir)
	}

	store, err := openStore(cfg.CachePath)
	if err != nil {
		log.Fatalf("Failed to open cache: %v", err)
	}
	defer store.Close()

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	musicHandler := handlers.NewMusicHandler(prober, playlist.Options{
		MaxTracks:      cfg.MaxTracks,
		FallbackArtist: cfg.FallbackArtist,
	}, store, cfg.CacheTTL)
	contentHandler := handlers.NewContentHandler(
		feeds.NewYouTube(cfg.YouTubeChannelID, store, cfg.CacheTTL),
		feeds.NewItch(cfg.ItchProfileURL),
		feeds.NewArtwork(prober),
	)

	handlers.RegisterRoutes(router, musicHandler, contentHandler)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("API endpoints:")
	log.Printf("  GET  /api/v1/tracks          - Discovered playlist with ID3 metadata")
	log.Printf("  POST /api/v1/tags            - Read tags from an uploaded MP3")
	log.Printf("  GET  /api/v1/player          - Player state (POST play/next/previous/...)")
	log.Printf("  GET  /api/v1/videos          - Cartoons from YouTube")
	log.Printf("  GET  /api/v1/games           - Toys from itch.io")
	log.Printf("  GET  /api/v1/artwork         - Pix gallery")
	log.Printf("  GET  /api/v1/health          - Health check")

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func openStore(path string) (cache.Store, error) {
	if path == "" {
		log.Printf("Cache kept in memory")
		return cache.NewMemoryStore(), nil
	}
	log.Printf("Cache stored in %s", path)
	return cache.NewLevelDBStore(path)
}
