// Package server exposes the digest service over a JSON API: article and
// category browsing, user preference management, digest previews and manual
// triggers for sync and digest runs.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/dkhrunov/newsdigest/pkg/category"
	"github.com/dkhrunov/newsdigest/pkg/domain"
)

//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/preference_store.go -pkg mocks -skip-ensure -fmt goimports . PreferenceStore
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/selector.go -pkg mocks -skip-ensure -fmt goimports . Selector

// Server represents HTTP server instance
type Server struct {
	config      ConfigProvider
	articles    ArticleStore
	preferences PreferenceStore
	scheduler   Scheduler
	selector    Selector
	registry    *category.Registry
	previewSpan time.Duration
	version     string
	debug       bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ArticleStore interface for article reads
type ArticleStore interface {
	GetArticle(ctx context.Context, id string) (*domain.CategorizedArticle, error)
	GetArticles(ctx context.Context, limit, offset int) ([]domain.CategorizedArticle, error)
	GetArticlesSince(ctx context.Context, since time.Time, limit int) ([]domain.CategorizedArticle, error)
}

// PreferenceStore interface for user preference operations
type PreferenceStore interface {
	CreateUser(ctx context.Context, pref *domain.UserPreference) error
	GetUser(ctx context.Context, userID string) (*domain.UserPreference, error)
	UpdatePreferences(ctx context.Context, pref *domain.UserPreference) error
}

// Scheduler interface for on-demand operations
type Scheduler interface {
	SyncNow(ctx context.Context) error
	RunDigestNow(ctx context.Context, dt domain.DigestType) error
}

// Selector interface for digest previews
type Selector interface {
	Select(user *domain.UserPreference, dt domain.DigestType, pool []domain.CategorizedArticle) *domain.DigestSelection
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Params holds all dependencies for the server
type Params struct {
	Config      ConfigProvider
	Articles    ArticleStore
	Preferences PreferenceStore
	Scheduler   Scheduler
	Selector    Selector
	Registry    *category.Registry
	PreviewSpan time.Duration // article lookback for digest previews
	Version     string
	Debug       bool
}

// New initializes a new server instance
func New(params Params) *Server {
	if params.PreviewSpan <= 0 {
		params.PreviewSpan = 24 * time.Hour
	}
	s := &Server{
		config:      params.Config,
		articles:    params.Articles,
		preferences: params.Preferences,
		scheduler:   params.Scheduler,
		selector:    params.Selector,
		registry:    params.Registry,
		previewSpan: params.PreviewSpan,
		version:     params.Version,
		debug:       params.Debug,
		router:      routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsdigest", "dkhrunov", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /articles", s.articlesHandler)
		r.HandleFunc("GET /articles/{id}", s.articleHandler)
		r.HandleFunc("GET /categories", s.categoriesHandler)

		r.HandleFunc("POST /users", s.createUserHandler)
		r.HandleFunc("GET /users/{id}/preferences", s.getPreferencesHandler)
		r.HandleFunc("PUT /users/{id}/preferences", s.updatePreferencesHandler)
		r.HandleFunc("GET /users/{id}/digest/preview", s.digestPreviewHandler)

		r.HandleFunc("POST /digest/{type}/run", s.runDigestHandler)
		r.HandleFunc("POST /sync", s.syncHandler)
	})
}
