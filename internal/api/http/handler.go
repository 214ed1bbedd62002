package http

import (
	"errors"
	"net/http"

	"gomoku/internal/game"
	"gomoku/internal/session"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrOutOfRange), errors.Is(err, game.ErrUnknownMode):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrCellOccupied), errors.Is(err, game.ErrGameAlreadyOver):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFor(err), errorResponse{Error: err.Error(), Kind: session.ErrorKind(err)})
}

// @Summary Create a new game
// @Tags Game
// @Accept json
// @Produce json
// @Param request body CreateGameRequest false "Game mode"
// @Router /games [post]
func CreateGameHandler(sm *session.Manager, defaultMode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateGameRequest
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload", Kind: "bad_request"})
				return
			}
		}
		if req.Mode == "" {
			req.Mode = defaultMode
		}
		mode, err := game.ParseMode(req.Mode)
		if err != nil {
			abortWithError(c, err)
			return
		}
		s, err := sm.Create(mode)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, s.View())
	}
}

// @Summary List running games
// @Tags Game
// @Produce json
// @Router /games [get]
func ListGamesHandler(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"games": sm.List()})
	}
}

// @Summary Get game state
// @Tags Game
// @Produce json
// @Param code path string true "Game code"
// @Router /games/{code} [get]
func GetGameHandler(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := sm.View(c.Param("code"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// @Summary Place a stone
// @Description Places a stone for the player to move. In computer mode the
// @Description response also contains the computer's reply.
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Game code"
// @Param request body MoveRequest true "Cell"
// @Router /games/{code}/moves [post]
func MoveHandler(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "row and col required", Kind: "bad_request"})
			return
		}
		res, err := sm.Move(c.Param("code"), *req.Row, *req.Col)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary Restart a game
// @Tags Game
// @Produce json
// @Param code path string true "Game code"
// @Router /games/{code}/reset [post]
func ResetHandler(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := sm.Reset(c.Param("code"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// @Summary Close a game
// @Tags Game
// @Param code path string true "Game code"
// @Router /games/{code} [delete]
func DeleteGameHandler(sm *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sm.Delete(c.Param("code")); err != nil {
			abortWithError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
