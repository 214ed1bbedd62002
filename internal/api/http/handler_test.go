package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gomoku/internal/api/ws"
	"gomoku/internal/config"
	"gomoku/internal/session"
	"gomoku/internal/shared"
	"gomoku/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{DefaultMode: "human_vs_computer", Seed: 5}
	sm := session.NewManager(store.NewMemoryStore(), cfg, nil)
	hub := ws.NewHub(sm, 0)
	sm.SetHub(hub)
	return NewRouter(sm, hub, cfg)
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func createGame(t *testing.T, r *gin.Engine, mode string) shared.GameView {
	t.Helper()
	var body interface{}
	if mode != "" {
		body = CreateGameRequest{Mode: mode}
	}
	w := do(t, r, http.MethodPost, "/games", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[shared.GameView](t, w)
}

func TestCreateGameUsesDefaultMode(t *testing.T) {
	r := newTestRouter(t)
	v := createGame(t, r, "")
	assert.Equal(t, "human_vs_computer", v.Mode)
	assert.Equal(t, "white", v.Board[7][7])
	assert.Equal(t, "black", v.Turn)
	assert.Equal(t, 15, v.BoardSize)
}

func TestCreateGameRejectsUnknownMode(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/games", CreateGameRequest{Mode: "ai_vs_ai"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "unknown_mode", decode[errorResponse](t, w).Kind)
}

func TestMoveEndpointErrors(t *testing.T) {
	r := newTestRouter(t)
	v := createGame(t, r, "hvh")
	path := "/games/" + v.Code + "/moves"

	w := do(t, r, http.MethodPost, path, gin.H{"row": 0, "col": 0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[shared.MoveResult](t, w)
	assert.Equal(t, "continue", res.Outcome)
	require.Len(t, res.Moves, 1)
	assert.Equal(t, "white", res.Moves[0].Color)

	w = do(t, r, http.MethodPost, path, gin.H{"row": 0, "col": 0})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "cell_occupied", decode[errorResponse](t, w).Kind)

	w = do(t, r, http.MethodPost, path, gin.H{"row": 3, "col": 15})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "out_of_range", decode[errorResponse](t, w).Kind)

	w = do(t, r, http.MethodPost, path, gin.H{"row": 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/games/ZZZZZZ/moves", gin.H{"row": 1, "col": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMoveAgainstComputerReturnsReply(t *testing.T) {
	r := newTestRouter(t)
	v := createGame(t, r, "human_vs_computer")

	w := do(t, r, http.MethodPost, "/games/"+v.Code+"/moves", gin.H{"row": 0, "col": 0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[shared.MoveResult](t, w)
	require.Len(t, res.Moves, 2)
	assert.Equal(t, "black", res.Moves[0].Color)
	assert.Equal(t, "white", res.Moves[1].Color)
	assert.Equal(t, "black", res.Game.Turn)
	assert.Len(t, res.Game.Moves, 3)
}

func TestFinishedGameRejectsMoves(t *testing.T) {
	r := newTestRouter(t)
	v := createGame(t, r, "human_vs_human")
	path := "/games/" + v.Code + "/moves"

	for _, mv := range [][2]int{{0, 0}, {5, 0}, {0, 1}, {5, 2}, {0, 2}, {5, 4}, {0, 3}, {5, 6}, {0, 4}} {
		w := do(t, r, http.MethodPost, path, gin.H{"row": mv[0], "col": mv[1]})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	w := do(t, r, http.MethodGet, "/games/"+v.Code, nil)
	got := decode[shared.GameView](t, w)
	assert.Equal(t, "finished", got.Status)
	require.NotNil(t, got.Winner)
	assert.Equal(t, "white", *got.Winner)

	w = do(t, r, http.MethodPost, path, gin.H{"row": 9, "col": 9})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "game_already_over", decode[errorResponse](t, w).Kind)

	w = do(t, r, http.MethodPost, "/games/"+v.Code+"/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	reset := decode[shared.GameView](t, w)
	assert.Equal(t, "in_progress", reset.Status)
	assert.Equal(t, "white", reset.Turn)
	assert.Empty(t, reset.Moves)
}

func TestListAndDeleteGames(t *testing.T) {
	r := newTestRouter(t)
	a := createGame(t, r, "hvh")
	createGame(t, r, "hvc")

	w := do(t, r, http.MethodGet, "/games", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[struct {
		Games []shared.GameView `json:"games"`
	}](t, w)
	assert.Len(t, list.Games, 2)

	w = do(t, r, http.MethodDelete, "/games/"+a.Code, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodGet, "/games/"+a.Code, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConfigEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/config", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]interface{}](t, w)
	assert.EqualValues(t, 15, body["board_size"])
	assert.EqualValues(t, 5, body["win_length"])
	assert.Equal(t, "white", body["computer_color"])
}
