package httpadapter

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"svw.info/sudokit/internal/domain"
	"svw.info/sudokit/internal/puzzles"
	"svw.info/sudokit/internal/solver"
	"svw.info/sudokit/internal/usecase"
)

// Handler exposes the use cases over a JSON API. Boards travel as their
// 81-character symbols strings.
type Handler struct {
	UC      *usecase.Service
	Metrics *Metrics
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// WithMetrics attaches solve metrics recording.
func (h *Handler) WithMetrics(m *Metrics) *Handler {
	h.Metrics = m
	return h
}

// Register mounts the API routes.
func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.POST("/solve", h.handleSolve)
	api.POST("/validate", h.handleValidate)
	api.POST("/hint", h.handleHint)
	api.POST("/save", h.handleSave)
	api.POST("/load", h.handleLoad)
	api.GET("/list", h.handleList)
	api.GET("/puzzles/sample", h.handleSample)
}

// ---- Solve ----

type solveReq struct {
	Board *domain.Board `json:"board" binding:"required"`
}

type solveResp struct {
	Board      string `json:"board,omitempty"`
	DurationMs int64  `json:"durationMs"`
	Nodes      int    `json:"nodes"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handleSolve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	out, st, err := h.UC.Solve(c.Request.Context(), req.Board)
	h.Metrics.observeSolve(st, err)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, solver.ErrContradiction) || errors.Is(err, solver.ErrUnsolvable) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
		return
	}
	c.JSON(http.StatusOK, solveResp{
		Board:      out.Symbols(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Validate ----

type validateReq struct {
	Board *domain.Board `json:"board" binding:"required"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(c *gin.Context) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(c.Request.Context(), req.Board)
	if err != nil {
		c.JSON(http.StatusInternalServerError, validateResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Board *domain.Board `json:"board" binding:"required"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(c *gin.Context) {
	var req hintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	hint, found, err := h.UC.Hint(c.Request.Context(), req.Board)
	if err != nil {
		c.JSON(http.StatusInternalServerError, hintResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, hintResp{Found: found, Hint: hint})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.Board == nil {
		c.JSON(http.StatusBadRequest, saveResp{Error: "missing board"})
		return
	}
	if err := h.UC.Save(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id" binding:"required"`
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(c *gin.Context) {
	var req loadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(c.Request.Context(), req.ID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, os.ErrNotExist) {
			status = http.StatusNotFound
		}
		c.JSON(status, loadResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(c *gin.Context) {
	ps, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, listResp{Puzzles: ps})
}

// ---- Samples ----

type sampleResp struct {
	Set   string `json:"set,omitempty"`
	Index int    `json:"index"`
	Board string `json:"board,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSample(c *gin.Context) {
	set := puzzles.Set(c.DefaultQuery("set", string(puzzles.Easy50)))
	n, err := strconv.Atoi(c.DefaultQuery("n", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, sampleResp{Error: "n must be an integer"})
		return
	}
	p, err := puzzles.Pick(set, n)
	if err != nil {
		c.JSON(http.StatusBadRequest, sampleResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, sampleResp{Set: string(set), Index: n, Board: p})
}
