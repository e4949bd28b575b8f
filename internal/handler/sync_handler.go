package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"polyglot/internal/model"
	"polyglot/internal/service"
)

type SyncHandler struct {
	service service.SyncService
}

type syncRequest struct {
	DryRun bool   `json:"dryRun"`
	Policy string `json:"policy"`
}

type obsoletePairResponse struct {
	ContentType string `json:"contentType"`
	Field       string `json:"field"`
	Records     int64  `json:"records"`
}

type syncReportResponse struct {
	RunID         string                 `json:"runId"`
	DryRun        bool                   `json:"dryRun"`
	Policy        string                 `json:"policy"`
	Scanned       int64                  `json:"scanned"`
	ObsoletePairs []obsoletePairResponse `json:"obsoletePairs"`
	Obsolete      int64                  `json:"obsolete"`
	Deleted       int64                  `json:"deleted"`
	Flagged       int64                  `json:"flagged"`
	StartedAt     string                 `json:"startedAt"`
	FinishedAt    string                 `json:"finishedAt"`
}

type syncRunResponse struct {
	ID         string `json:"id"`
	DryRun     bool   `json:"dryRun"`
	Policy     string `json:"policy"`
	Scanned    int64  `json:"scanned"`
	Obsolete   int64  `json:"obsolete"`
	Deleted    int64  `json:"deleted"`
	Flagged    int64  `json:"flagged"`
	StartedAt  string `json:"startedAt"`
	FinishedAt string `json:"finishedAt"`
}

func NewSyncHandler(service service.SyncService) *SyncHandler {
	return &SyncHandler{service: service}
}

func (h *SyncHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/sync", h.Sync)
	g.GET("/sync/runs", h.ListRuns)
}

func (h *SyncHandler) Sync(c echo.Context) error {
	var req syncRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request")
	}
	report, err := h.service.Sync(c.Request().Context(), service.SyncOptions{
		DryRun: req.DryRun,
		Policy: req.Policy,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toSyncReportResponse(report))
}

func (h *SyncHandler) ListRuns(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return errorJSON(c, http.StatusBadRequest, "invalid request")
		}
		limit = parsed
	}
	runs, err := h.service.Runs(c.Request().Context(), limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]syncRunResponse, 0, len(runs))
	for _, run := range runs {
		response = append(response, toSyncRunResponse(run))
	}
	return c.JSON(http.StatusOK, response)
}

func toSyncReportResponse(report *service.SyncReport) syncReportResponse {
	pairs := make([]obsoletePairResponse, 0, len(report.ObsoletePairs))
	for _, pair := range report.ObsoletePairs {
		pairs = append(pairs, obsoletePairResponse{
			ContentType: pair.ContentType,
			Field:       pair.Field,
			Records:     pair.Records,
		})
	}
	return syncReportResponse{
		RunID:         report.RunID,
		DryRun:        report.DryRun,
		Policy:        report.Policy,
		Scanned:       report.Scanned,
		ObsoletePairs: pairs,
		Obsolete:      report.Obsolete,
		Deleted:       report.Deleted,
		Flagged:       report.Flagged,
		StartedAt:     report.StartedAt.UTC().Format(time.RFC3339),
		FinishedAt:    report.FinishedAt.UTC().Format(time.RFC3339),
	}
}

func toSyncRunResponse(run model.SyncRun) syncRunResponse {
	return syncRunResponse{
		ID:         run.ID,
		DryRun:     run.DryRun,
		Policy:     run.Policy,
		Scanned:    run.Scanned,
		Obsolete:   run.Obsolete,
		Deleted:    run.Deleted,
		Flagged:    run.Flagged,
		StartedAt:  run.StartedAt.UTC().Format(time.RFC3339),
		FinishedAt: run.FinishedAt.UTC().Format(time.RFC3339),
	}
}
