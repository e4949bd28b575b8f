package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"polyglot/internal/handler"
	"polyglot/internal/service"
)

// syncRateLimit caps manual sync triggers to one per second with a small
// burst allowance.
const (
	syncRateLimit = rate.Limit(1)
	syncRateBurst = 3
)

// NewRouter builds the echo instance with every route registered. Auth routes
// are public; everything under /api requires a valid token.
func NewRouter(
	translationHandler *handler.TranslationHandler,
	syncHandler *handler.SyncHandler,
	languageHandler *handler.LanguageHandler,
	suggestionHandler *handler.SuggestionHandler,
	authHandler *handler.AuthHandler,
	authService service.AuthService,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	authGroup := e.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	api := e.Group("/api")
	api.Use(JWTAuthMiddleware(authService))

	translationHandler.RegisterRoutes(api)
	languageHandler.RegisterRoutes(api)
	suggestionHandler.RegisterRoutes(api)

	syncGroup := e.Group("/api", JWTAuthMiddleware(authService), RateLimitMiddleware(syncRateLimit, syncRateBurst))
	syncHandler.RegisterRoutes(syncGroup)

	return e
}
