package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"polyglot/internal/config"
	"polyglot/internal/db"
	"polyglot/internal/handler"
	polyhttp "polyglot/internal/http"
	"polyglot/internal/repository"
	"polyglot/internal/scheduler"
	"polyglot/internal/service"
	"polyglot/internal/service/ai"
	"polyglot/pkg/logger"
	"polyglot/pkg/snowflake"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := run(cfg); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := snowflake.Init(0); err != nil {
		return err
	}

	schema, err := config.LoadSchema(cfg.SchemaPath)
	if err != nil {
		return err
	}
	logger.Info("schema loaded",
		"path", cfg.SchemaPath,
		"languages", len(schema.Languages),
		"content_types", len(schema.ContentTypes),
	)

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	translationRepo := repository.NewTranslationRepository(conn)
	contentTypeRepo := repository.NewContentTypeRepository(conn)
	syncRunRepo := repository.NewSyncRunRepository(conn)
	settingsRepo := repository.NewSettingsRepository(conn)

	languageService := service.NewLanguageService(schema)
	translationService := service.NewTranslationService(schema, translationRepo, contentTypeRepo, languageService)
	syncService := service.NewSyncService(schema, translationRepo, syncRunRepo)
	authService := service.NewAuthService(settingsRepo, cfg.JWTSecret)

	var provider ai.Provider
	if cfg.AIAPIKey != "" {
		provider, err = ai.New(cfg.AIProvider, cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
		if err != nil {
			return err
		}
		logger.Info("suggestion provider configured", "provider", provider.Name())
	}
	suggestionService := service.NewSuggestionService(schema, languageService, provider)

	ctx := context.Background()
	if err := translationService.EnsureDeclared(ctx); err != nil {
		return err
	}

	e := polyhttp.NewRouter(
		handler.NewTranslationHandler(translationService),
		handler.NewSyncHandler(syncService),
		handler.NewLanguageHandler(languageService),
		handler.NewSuggestionHandler(suggestionService),
		handler.NewAuthHandler(authService),
		authService,
	)

	var sched *scheduler.Scheduler
	if cfg.SyncInterval > 0 {
		sched = scheduler.New(syncService, cfg.SyncInterval)
		sched.Start()
	}

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(stopCtx)
	g.Go(func() error {
		logger.Info("server starting", "addr", cfg.Addr)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		if sched != nil {
			sched.Stop()
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
