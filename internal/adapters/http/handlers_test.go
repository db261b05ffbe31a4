package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokit/internal/domain"
	"svw.info/sudokit/internal/hint"
	"svw.info/sudokit/internal/infrastructure/storage"
	"svw.info/sudokit/internal/solver"
	"svw.info/sudokit/internal/usecase"
	"svw.info/sudokit/internal/validator"
)

const (
	givens   = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	solution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	uc := usecase.NewService(
		solver.NewCandidateSolver(),
		validator.New(),
		hint.NewSingles(),
		storage.NewFS(t.TempDir()),
	)
	reg := prometheus.NewRegistry()
	h := New(uc).WithMetrics(NewMetrics(reg))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(logger, h, reg)
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestSolveEndpoint(t *testing.T) {
	r := testRouter(t)
	w := do(r, http.MethodPost, "/api/solve", `{"board":"`+givens+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp solveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, solution, resp.Board)
}

func TestSolveEndpointRejectsBadInput(t *testing.T) {
	r := testRouter(t)

	w := do(r, http.MethodPost, "/api/solve", `{"board":"123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/solve", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// contradictory givens: two 5s in the first row
	w = do(r, http.MethodPost, "/api/solve", `{"board":"55`+givens[2:]+`"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestValidateEndpoint(t *testing.T) {
	r := testRouter(t)
	w := do(r, http.MethodPost, "/api/validate", `{"board":"55`+givens[2:]+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp validateResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.NotEmpty(t, resp.Conflicts)
}

func TestHintEndpoint(t *testing.T) {
	r := testRouter(t)
	board := "12345678." + strings.Repeat(".", 72)
	w := do(r, http.MethodPost, "/api/hint", `{"board":"`+board+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp hintResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	assert.Equal(t, uint8(9), uint8(resp.Hint.Symbol))
}

func TestSaveLoadListEndpoints(t *testing.T) {
	r := testRouter(t)

	w := do(r, http.MethodPost, "/api/save", `{"name":"classic","board":"`+givens+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var saved saveResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	require.NotEmpty(t, saved.ID)

	w = do(r, http.MethodPost, "/api/load", `{"id":"`+saved.ID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var loaded loadResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
	require.NotNil(t, loaded.Puzzle)
	assert.Equal(t, givens, loaded.Puzzle.Board.Symbols())

	w = do(r, http.MethodPost, "/api/load", `{"id":"missing"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/api/list", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed listResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed.Puzzles, 1)
}

func TestSampleEndpoint(t *testing.T) {
	r := testRouter(t)

	w := do(r, http.MethodGet, "/api/puzzles/sample?set=top95&n=3", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp sampleResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Board, domain.Cells)

	w = do(r, http.MethodGet, "/api/puzzles/sample?set=nope", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	r := testRouter(t)

	w := do(r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)

	// record one solve so the counter shows up in the scrape
	do(r, http.MethodPost, "/api/solve", `{"board":"`+givens+`"}`)
	w = do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sudokit_solves_total")
}
