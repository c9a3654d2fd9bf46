package httpadapter

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"svw.info/colorsudoku/internal/domain"
	"svw.info/colorsudoku/internal/generator"
	"svw.info/colorsudoku/internal/usecase"
	"svw.info/colorsudoku/internal/validator"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(e *gin.Engine) {
	v1 := e.Group("/api").Group("/v1")
	v1.POST("/generate", h.generate)
	v1.POST("/validate", h.validate)
	v1.POST("/check", h.checkCell)
	v1.POST("/puzzles", h.save)
	v1.GET("/puzzles", h.list)
	v1.GET("/puzzles/:id", h.load)
}

// ---- Generate ----

type generateReq struct {
	Size      int      `json:"size"`
	Algorithm string   `json:"algorithm"`
	Seed      *int64   `json:"seed,omitempty"`
	Colors    []string `json:"colors,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle,omitempty"`
	DurationMs int64          `json:"durationMs"`
	Nodes      int            `json:"nodes"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	alg, err := domain.ParseAlgorithm(req.Algorithm)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown algorithm", "message": err.Error()})
		return
	}
	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	var colors []domain.Color
	if req.Colors != nil {
		colors = make([]domain.Color, len(req.Colors))
		for i, s := range req.Colors {
			colors[i] = domain.Color(s)
		}
	}
	start := time.Now()
	p, st, err := h.UC.NewPuzzle(c.Request.Context(), generator.Options{
		Size:      req.Size,
		Algorithm: alg,
		Seed:      seed,
		Colors:    colors,
	})
	observeGenerate(alg, err, time.Since(start))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidConfig):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid configuration", "message": err.Error()})
		case errors.Is(err, domain.ErrNoSolution):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "generation failed, retry", "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "generation failed", "message": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, generateResp{
		Puzzle:     p,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Validate ----

type validateReq struct {
	Grid domain.Grid `json:"grid"`
}

type validateResp struct {
	Valid     bool               `json:"valid"`
	Solved    bool               `json:"solved"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func gridWellFormed(g *domain.Grid) bool {
	if g.Size < 4 || len(g.Cells) != g.Size {
		return false
	}
	// Rank rounds up, so a non-perfect-square size would make the box
	// scans index past the last row.
	if rank := g.Rank(); rank*rank != g.Size {
		return false
	}
	for _, row := range g.Cells {
		if len(row) != g.Size {
			return false
		}
	}
	return true
}

func (h *Handler) validate(c *gin.Context) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	if !gridWellFormed(&req.Grid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed grid"})
		return
	}
	ok, conflicts, err := h.UC.Check(c.Request.Context(), &req.Grid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "validation failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, validateResp{
		Valid:     ok,
		Solved:    h.UC.Solved(&req.Grid),
		Conflicts: conflicts,
	})
}

// ---- Check single cell (interactive edit validation) ----

type checkReq struct {
	Grid  domain.Grid `json:"grid"`
	Row   int         `json:"row"`
	Col   int         `json:"col"`
	Color string      `json:"color"`
}

func (h *Handler) checkCell(c *gin.Context) {
	var req checkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	if !gridWellFormed(&req.Grid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed grid"})
		return
	}
	if req.Row < 0 || req.Row >= req.Grid.Size || req.Col < 0 || req.Col >= req.Grid.Size {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cell out of range"})
		return
	}
	if req.Color == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing color"})
		return
	}
	legal := validator.Legal(&req.Grid, req.Row, req.Col, domain.Color(req.Color))
	c.JSON(http.StatusOK, gin.H{"legal": legal})
}

// ---- Save / Load / List ----

func (h *Handler) save(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	if p.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing id"})
		return
	}
	if !p.Algorithm.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown algorithm"})
		return
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID})
}

func (h *Handler) load(c *gin.Context) {
	p, err := h.UC.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, os.ErrNotExist) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "load failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzle": p})
}

func (h *Handler) list(c *gin.Context) {
	ps, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzles": ps})
}
