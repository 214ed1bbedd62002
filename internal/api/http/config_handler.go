package http

import (
	"net/http"

	"gomoku/internal/config"
	"gomoku/internal/game"

	"github.com/gin-gonic/gin"
)

// GetConfigHandler returns the engine constants clients need to draw the
// board and the server's default mode.
// @Summary Get engine parameters
// @Tags Config
// @Produce json
// @Router /config [get]
func GetConfigHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"board_size":     game.BoardSize,
			"win_length":     game.WinLength,
			"first_color":    game.White.String(),
			"computer_color": game.ComputerColor.String(),
			"default_mode":   cfg.DefaultMode,
			"modes":          []string{game.HumanVsHuman.String(), game.HumanVsComputer.String()},
		})
	}
}

func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
