package http

import (
	"gomoku/internal/api/ws"
	"gomoku/internal/config"
	"gomoku/internal/session"

	"github.com/gin-gonic/gin"
)

func NewRouter(sm *session.Manager, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	r.GET("/healthz", HealthHandler)
	r.GET("/config", GetConfigHandler(cfg))

	// --- GAME ENDPOINTS ---
	games := r.Group("/games")
	games.POST("", CreateGameHandler(sm, cfg.DefaultMode))
	games.GET("", ListGamesHandler(sm))
	games.GET("/:code", GetGameHandler(sm))
	games.DELETE("/:code", DeleteGameHandler(sm))
	games.POST("/:code/moves", MoveHandler(sm))
	games.POST("/:code/reset", ResetHandler(sm))

	return r
}
