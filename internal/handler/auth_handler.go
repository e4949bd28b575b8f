package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"polyglot/internal/service"
)

// AuthCookieName is the cookie that carries the session token for browser
// clients; API clients send a bearer header instead.
const AuthCookieName = "polyglot_auth"

const authCookieMaxAge = 30 * 24 * time.Hour

type AuthHandler struct {
	service service.AuthService
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authStatusResponse struct {
	Exists bool `json:"exists"`
}

type userResponse struct {
	Username string `json:"username"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/status", h.GetStatus)
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
}

// GetStatus reports whether the admin account exists so clients know whether
// to show the setup or the login screen.
func (h *AuthHandler) GetStatus(c echo.Context) error {
	exists, err := h.service.CheckUserExists(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, authStatusResponse{Exists: exists})
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request")
	}
	resp, err := h.service.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeAuthError(c, err)
	}
	h.setAuthCookie(c, resp.Token)
	return c.JSON(http.StatusOK, toAuthResponse(resp))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request")
	}
	resp, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeAuthError(c, err)
	}
	h.setAuthCookie(c, resp.Token)
	return c.JSON(http.StatusOK, toAuthResponse(resp))
}

func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AuthHandler) setAuthCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(authCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func writeAuthError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrWrongPassword):
		return errorJSON(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrUserExists):
		return errorJSON(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUsernameRequired),
		errors.Is(err, service.ErrInvalidUsername),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	default:
		return writeServiceError(c, err)
	}
}

func toAuthResponse(resp *service.AuthResponse) authResponse {
	return authResponse{
		Token: resp.Token,
		User:  userResponse{Username: resp.User.Username},
	}
}
