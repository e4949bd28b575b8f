package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"polyglot/internal/model"
	"polyglot/internal/service"
)

type TranslationHandler struct {
	service service.TranslationService
}

type setTranslationRequest struct {
	ContentType string `json:"contentType"`
	ObjectID    string `json:"objectId"`
	Field       string `json:"field"`
	Language    string `json:"language"`
	Text        string `json:"text"`
}

type replaceTranslationsRequest struct {
	ContentType string            `json:"contentType"`
	ObjectID    string            `json:"objectId"`
	Language    string            `json:"language"`
	Texts       map[string]string `json:"texts"`
}

type translationResponse struct {
	ID          int64  `json:"id"`
	ContentType string `json:"contentType"`
	ObjectID    string `json:"objectId"`
	Field       string `json:"field"`
	Language    string `json:"language"`
	Text        string `json:"text"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type objectTranslationsResponse struct {
	ContentType string            `json:"contentType"`
	ObjectID    string            `json:"objectId"`
	Language    string            `json:"language"`
	Fields      map[string]string `json:"fields"`
}

type batchTranslationsResponse struct {
	ContentType string                       `json:"contentType"`
	Language    string                       `json:"language"`
	Objects     map[string]map[string]string `json:"objects"`
}

type contentTypeResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	TranslationCount int64  `json:"translationCount"`
	Declared         bool   `json:"declared"`
}

func NewTranslationHandler(service service.TranslationService) *TranslationHandler {
	return &TranslationHandler{service: service}
}

func (h *TranslationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/translations", h.Get)
	g.PUT("/translations", h.Set)
	g.POST("/translations/replace", h.Replace)
	g.DELETE("/translations/:id", h.Delete)
	g.GET("/content-types", h.ListContentTypes)
}

// Get returns translations for one object, or for a batch when the objectIds
// query parameter carries a comma-separated list.
func (h *TranslationHandler) Get(c echo.Context) error {
	contentType := c.QueryParam("contentType")
	lang := c.QueryParam("language")

	if raw := strings.TrimSpace(c.QueryParam("objectIds")); raw != "" {
		var objectIDs []string
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				objectIDs = append(objectIDs, id)
			}
		}
		objects, err := h.service.GetForObjects(c.Request().Context(), contentType, objectIDs, lang)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(http.StatusOK, batchTranslationsResponse{
			ContentType: contentType,
			Language:    lang,
			Objects:     objects,
		})
	}

	objectID := strings.TrimSpace(c.QueryParam("objectId"))
	if objectID == "" {
		return errorJSON(c, http.StatusBadRequest, "invalid request")
	}
	fields, err := h.service.GetForObject(c.Request().Context(), contentType, objectID, lang)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, objectTranslationsResponse{
		ContentType: contentType,
		ObjectID:    objectID,
		Language:    lang,
		Fields:      fields,
	})
}

func (h *TranslationHandler) Set(c echo.Context) error {
	var req setTranslationRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request")
	}
	translation, err := h.service.Set(c.Request().Context(), req.ContentType, req.ObjectID, req.Field, req.Language, req.Text)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTranslationResponse(translation))
}

func (h *TranslationHandler) Replace(c echo.Context) error {
	var req replaceTranslationsRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request")
	}
	created, err := h.service.Replace(c.Request().Context(), req.ContentType, req.ObjectID, req.Language, req.Texts)
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]translationResponse, 0, len(created))
	for _, translation := range created {
		response = append(response, toTranslationResponse(translation))
	}
	return c.JSON(http.StatusOK, response)
}

func (h *TranslationHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request")
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TranslationHandler) ListContentTypes(c echo.Context) error {
	stats, err := h.service.ListContentTypes(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]contentTypeResponse, 0, len(stats))
	for _, stat := range stats {
		response = append(response, contentTypeResponse{
			ID:               stat.ID,
			Name:             stat.Name,
			TranslationCount: stat.TranslationCount,
			Declared:         stat.Declared,
		})
	}
	return c.JSON(http.StatusOK, response)
}

func toTranslationResponse(translation model.Translation) translationResponse {
	return translationResponse{
		ID:          translation.ID,
		ContentType: translation.ContentType,
		ObjectID:    translation.ObjectID,
		Field:       translation.Field,
		Language:    translation.Language,
		Text:        translation.Text,
		CreatedAt:   translation.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   translation.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
