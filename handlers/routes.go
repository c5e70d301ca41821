package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API under /api/v1.
func RegisterRoutes(router *gin.Engine, music *MusicHandler, content *ContentHandler) {
	api := router.Group("/api/v1")
	{
		api.GET("/health", music.HealthCheck)
		api.GET("/tracks", music.Tracks)
		api.POST("/tags", music.ReadTags)

		player := api.Group("/player")
		{
			player.GET("", music.PlayerState())
			player.POST("/play", music.Play())
			player.POST("/next", music.Next())
			player.POST("/previous", music.Previous())
			player.POST("/ended", music.TrackEnded())
			player.POST("/shuffle", music.Shuffle())
			player.POST("/loop", music.Loop())
			player.POST("/stop", music.Stop())
			player.POST("/select/:index", music.Select)
			player.POST("/volume", music.Volume)
			player.POST("/seek", music.Seek)
			player.POST("/position", music.Position)
		}

		api.GET("/videos", content.Videos)
		api.POST("/videos/refresh", content.RefreshVideos)
		api.GET("/games", content.Games)
		api.GET("/artwork", content.Artwork)
	}
}
