package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/renalplate/backend/internal/domain"
	"github.com/renalplate/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	resolver   *usecase.FoodResolver
	tracker    *usecase.Tracker
	sessions   domain.SessionStore
	limits     domain.LimitTable
	maxResults int
	logger     *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(
	resolver *usecase.FoodResolver,
	tracker *usecase.Tracker,
	sessions domain.SessionStore,
	limits domain.LimitTable,
	maxResults int,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxResults < 1 {
		maxResults = 5
	}
	return &Handler{
		resolver:   resolver,
		tracker:    tracker,
		sessions:   sessions,
		limits:     limits,
		maxResults: maxResults,
		logger:     logger,
	}
}

// HealthCheck returns the health status of the API.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "renalplate-backend",
		"version": "1.0.0",
	})
}

// SearchRequest is the body of POST /foods/search.
type SearchRequest struct {
	Query      string `json:"query" binding:"required"`
	MaxResults int    `json:"maxResults,omitempty"`
}

// SearchFoods handles candidate lookup for a free-text food name.
func (h *Handler) SearchFoods(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	query := usecase.CleanQuery(req.Query)
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidQuery.Error()})
		return
	}

	maxResults := req.MaxResults
	if maxResults < 1 || maxResults > h.maxResults {
		maxResults = h.maxResults
	}

	candidates := h.resolver.Resolve(c.Request.Context(), query, maxResults)
	c.JSON(http.StatusOK, gin.H{
		"query":      query,
		"candidates": candidates,
	})
}

// GetFood returns the nutrient reading for one FDC id.
func (h *Handler) GetFood(c *gin.Context) {
	fdcID, err := strconv.ParseInt(c.Param("fdcId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fdcId must be numeric"})
		return
	}

	reading := h.resolver.FetchNutrients(c.Request.Context(), fdcID)
	if reading.IsEmpty() {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrFoodNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fdcId":   fdcID,
		"reading": reading,
		"screen":  usecase.ScreenItem(reading),
	})
}

// CreateSession registers a new meal-log session.
func (h *Handler) CreateSession(c *gin.Context) {
	id, _ := h.sessions.Create(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{"sessionId": id})
}

// GetLog returns every entry in the session's log.
func (h *Handler) GetLog(c *gin.Context) {
	log, ok := h.sessionLog(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": log.Entries()})
}

// AddRequest is the body of POST /sessions/:id/log. Either a raw
// comma-separated input line or an explicit query list.
type AddRequest struct {
	Input   string   `json:"input,omitempty"`
	Queries []string `json:"queries,omitempty"`
}

// AddToLog resolves the submitted food names and appends them to the
// session's log. Failed lookups are reported as warnings, not errors.
func (h *Handler) AddToLog(c *gin.Context) {
	log, ok := h.sessionLog(c)
	if !ok {
		return
	}

	var req AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	queries := req.Queries
	if req.Input != "" {
		queries = append(queries, usecase.SplitQueries(req.Input)...)
	}
	if len(queries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidQuery.Error()})
		return
	}

	entries := h.tracker.AddFoods(c.Request.Context(), log, queries)

	var warnings []string
	for _, e := range entries {
		if e.Failed {
			warnings = append(warnings, e.Name)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"entries":  entries,
		"warnings": warnings,
	})
}

// ClearLog resets the session's log to empty.
func (h *Handler) ClearLog(c *gin.Context) {
	log, ok := h.sessionLog(c)
	if !ok {
		return
	}
	log.Clear()
	c.Status(http.StatusNoContent)
}

// GetSummary returns totals and safety verdicts for a CKD stage.
func (h *Handler) GetSummary(c *gin.Context) {
	log, ok := h.sessionLog(c)
	if !ok {
		return
	}

	stage := domain.StageModerate
	if s := c.Query("stage"); s != "" {
		parsed, ok := domain.ParseStage(s)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrUnknownStage.Error()})
			return
		}
		stage = parsed
	}

	summary, err := h.tracker.Summarize(log, stage)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ExportLog streams the session's log as CSV.
func (h *Handler) ExportLog(c *gin.Context) {
	log, ok := h.sessionLog(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="meal-log.csv"`)
	if err := usecase.ExportCSV(c.Writer, log); err != nil {
		h.logger.Error("csv export failed", zap.Error(err))
	}
}

// GetLimits returns the static stage limit table.
func (h *Handler) GetLimits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"limits": h.limits})
}

// sessionLog resolves the :id path param to its meal log, writing a 404
// when the session is unknown or expired.
func (h *Handler) sessionLog(c *gin.Context) (*domain.MealLog, bool) {
	log, err := h.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrSessionNotFound.Error()})
		return nil, false
	}
	return log, true
}
