package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"polyglot/internal/service"
)

type SuggestionHandler struct {
	service service.SuggestionService
}

type suggestRequest struct {
	ContentType    string            `json:"contentType"`
	SourceLanguage string            `json:"sourceLanguage"`
	TargetLanguage string            `json:"targetLanguage"`
	Source         map[string]string `json:"source"`
}

type suggestResponse struct {
	ContentType    string            `json:"contentType"`
	TargetLanguage string            `json:"targetLanguage"`
	Suggestions    map[string]string `json:"suggestions"`
}

func NewSuggestionHandler(service service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{service: service}
}

func (h *SuggestionHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/translations/suggest", h.Suggest)
}

func (h *SuggestionHandler) Suggest(c echo.Context) error {
	var req suggestRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request")
	}
	suggestions, err := h.service.Suggest(c.Request().Context(), req.ContentType, req.SourceLanguage, req.TargetLanguage, req.Source)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, suggestResponse{
		ContentType:    req.ContentType,
		TargetLanguage: req.TargetLanguage,
		Suggestions:    suggestions,
	})
}
