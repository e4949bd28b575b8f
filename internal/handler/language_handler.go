package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"polyglot/internal/service"
)

type LanguageHandler struct {
	service service.LanguageService
}

type languagesResponse struct {
	Default   string   `json:"default"`
	Languages []string `json:"languages"`
}

func NewLanguageHandler(service service.LanguageService) *LanguageHandler {
	return &LanguageHandler{service: service}
}

func (h *LanguageHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/languages", h.List)
}

func (h *LanguageHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, languagesResponse{
		Default:   h.service.Default(),
		Languages: h.service.Languages(),
	})
}
