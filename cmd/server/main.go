package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"lingolab/internal/audio"
	"lingolab/internal/config"
	"lingolab/internal/database"
	"lingolab/internal/dictation"
	"lingolab/internal/handlers"
	"lingolab/internal/observe"
	"lingolab/internal/repository"
	"lingolab/internal/security"
	"lingolab/internal/service"
	"lingolab/internal/speaking"
)

var version = "dev"

const (
	evictEvery   = 10 * time.Minute
	sessionIdle  = time.Hour
	shutdownWait = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func run(ctx context.Context, cfg *config.Config) error {
	status := handlers.NewStartupStatus(
		handlers.StepDatabase,
		handlers.StepMigrations,
		handlers.StepTemplates,
		handlers.StepLibrary,
	)

	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		provider, err := observe.InitProvider(ctx, observe.ProviderConfig{ServiceVersion: version})
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), shutdownWait)
			defer cancel()
			if err := provider.Shutdown(sctx); err != nil {
				slog.Warn("telemetry shutdown", "err", err)
			}
		}()
		metricsHandler = provider.Handler()
	}
	metrics := observe.DefaultMetrics()

	status.SetCurrentStep(handlers.StepDatabase)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer db.Close()
	slog.Info("database connection established", "type", cfg.DatabaseType)
	status.CompleteStep(handlers.StepDatabase)

	status.SetCurrentStep(handlers.StepMigrations)
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	status.CompleteStep(handlers.StepMigrations)

	status.SetCurrentStep(handlers.StepTemplates)
	templates, err := loadTemplates(cfg.TemplatesPath)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	status.CompleteStep(handlers.StepTemplates)

	progressRepo := repository.NewProgressRepository(db)

	libraryService := service.NewLibraryService(cfg.LibraryPath, cfg.CatalogTTL)
	dictationService := service.NewDictationService(progressRepo, metrics)
	emailService, err := service.NewEmailService(ctx, cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		return fmt.Errorf("configure email: %w", err)
	}
	writingService := service.NewWritingService(cfg.WritingDuration, emailService, cfg.ReviewerEmail, metrics)
	defer writingService.StopAll()
	ttsService := audio.NewTTSService(cfg.TTSCachePath)

	secret := cfg.LearnerSecret
	if secret == "" {
		secret = rand.Text()
		slog.Warn("LEARNER_SECRET not set; learner cookies will not survive a restart")
	}
	limiter := security.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer limiter.Close()

	speakingHandler := handlers.NewSpeakingHandler(speaking.NewEvaluator(nil), metrics, cfg.UploadMaxSize)

	handler := newRouter(routes{
		status:     status,
		middleware: handlers.NewMiddleware(security.NewLearnerTokens(secret, cfg.LearnerTokenTTL), limiter),
		metrics:    metrics,
		metricsH:   metricsHandler,
		staticDir:  cfg.StaticFilesPath,
		home:       handlers.NewHomeHandler(templates, version),
		library:    handlers.NewLibraryHandler(libraryService),
		dictation:  handlers.NewDictationHandler(dictationService, libraryService, cfg.UploadMaxSize),
		listening:  handlers.NewListeningHandler(libraryService),
		quiz:       handlers.NewQuizHandler(metrics),
		writing:    handlers.NewWritingHandler(writingService),
		speaking:   speakingHandler,
		keywords:   handlers.NewKeywordsHandler(),
		tts:        handlers.NewTTSHandler(ttsService, metrics),
		visual:     handlers.NewVisualHandler(),
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("server starting", "addr", "http://localhost"+server.Addr, "version", version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		status.SetCurrentStep(handlers.StepLibrary)
		if _, err := libraryService.Refresh(gctx); err != nil {
			// the catalog is rescanned on demand, so a failed first scan is not fatal
			slog.Error("initial library scan failed", "root", cfg.LibraryPath, "err", err)
		}
		status.MarkReady()
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(evictEvery)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				dictations := dictationService.Evict(sessionIdle)
				timers := writingService.Evict(sessionIdle)
				recorders := speakingHandler.Evict(sessionIdle)
				if dictations+timers+recorders > 0 {
					slog.Info("evicted idle learner state",
						"dictation_sessions", dictations,
						"writing_timers", timers,
						"speaking_recorders", recorders)
				}
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("server shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownWait)
		defer cancel()
		return server.Shutdown(sctx)
	})

	return g.Wait()
}

// loadTemplates parses every template under templatesPath
func loadTemplates(templatesPath string) (*template.Template, error) {
	files, err := filepath.Glob(filepath.Join(templatesPath, "*.tmpl"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob templates: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found in %s", templatesPath)
	}

	funcMap := template.FuncMap{
		"title": func(s string) string {
			if s == "" {
				return s
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
		"passes": func() []int {
			out := make([]int, dictation.Passes)
			for i := range out {
				out[i] = i + 1
			}
			return out
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}
