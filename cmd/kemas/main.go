// Copyright (c) 2025-2026 PT Kemasindo Prima
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/kemasindo/kemas/internal/blocks"
	"github.com/kemasindo/kemas/internal/cache"
	"github.com/kemasindo/kemas/internal/config"
	"github.com/kemasindo/kemas/internal/geoip"
	"github.com/kemasindo/kemas/internal/handler"
	"github.com/kemasindo/kemas/internal/i18n"
	"github.com/kemasindo/kemas/internal/logging"
	"github.com/kemasindo/kemas/internal/middleware"
	"github.com/kemasindo/kemas/internal/render"
	"github.com/kemasindo/kemas/internal/scheduler"
	"github.com/kemasindo/kemas/internal/service"
	"github.com/kemasindo/kemas/internal/session"
	"github.com/kemasindo/kemas/internal/store"
	"github.com/kemasindo/kemas/internal/version"
	"github.com/kemasindo/kemas/web"
)

// Build metadata injected via ldflags.
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "kemas - PT Kemasindo Prima website and CMS\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  KEMAS_SESSION_SECRET   Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  KEMAS_DB_PATH          SQLite database path (default: ./data/kemas.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  KEMAS_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  KEMAS_SITE_URL         Public origin for sitemap/meta links\n")
		_, _ = fmt.Fprintf(os.Stderr, "  KEMAS_ENV              development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  KEMAS_REDIS_URL        Redis URL for caching (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  KEMAS_GEOIP_DB_PATH    GeoLite2-Country.mmdb path (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  KEMAS_DO_SEED          Seed the database on first run\n")
	}
	flag.Parse()

	if *showVersion {
		info := version.Info{Version: appVersion, GitCommit: appGitCommit, BuildTime: appBuildTime}
		_, _ = fmt.Printf("kemas %s\n", info)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.IsDevelopment())
	slog.SetDefault(logger)
	slog.Info("starting kemas",
		"version", appVersion, "commit", appGitCommit, "env", cfg.Env)

	if err := i18n.Init(logger); err != nil {
		return fmt.Errorf("loading translations: %w", err)
	}

	for _, dir := range []string{filepath.Dir(cfg.DBPath), cfg.UploadsDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	if cfg.DoSeed {
		if err := store.Seed(context.Background(), db); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
	}

	cacher := cache.New(cache.Config{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: time.Minute,
	}, logger)
	defer func() { _ = cacher.Close() }()

	geo := geoip.NewLookup()
	if cfg.GeoIPEnabled() {
		if err := geo.Init(cfg.GeoIPDBPath); err != nil {
			slog.Warn("geoip disabled", "error", err)
		}
		defer func() { _ = geo.Close() }()
	}

	sessionManager := session.New(db, cfg.IsDevelopment())

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("templates filesystem: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("parsing templates: %w", err)
	}

	blocksRenderer, err := blocks.NewRenderer()
	if err != nil {
		return fmt.Errorf("parsing block templates: %w", err)
	}

	mediaService := service.NewMediaService(db, cfg.UploadsDir)
	contactService := service.NewContactService(db, geo)
	settingsService := service.NewSettingsService(db, cacher)

	frontend := handler.NewFrontend(db, renderer, blocksRenderer, contactService, settingsService, cfg.SiteURL)
	sitemap := frontend.SitemapCache()
	location := cfg.Location()

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	authHandler := handler.NewAuthHandler(db, renderer, sessionManager, loginProtection)
	adminHandler := handler.NewAdminHandler(db, renderer, sessionManager)
	pagesHandler := handler.NewPagesHandler(db, renderer, sessionManager, sitemap, location)
	staticHandler := handler.NewStaticPagesHandler(db, renderer, sessionManager)
	postsHandler := handler.NewPostsHandler(db, renderer, sessionManager, sitemap)
	mediaHandler := handler.NewMediaHandler(db, renderer, sessionManager, mediaService)
	submissionsHandler := handler.NewSubmissionsHandler(db, renderer, sessionManager)
	settingsHandler := handler.NewSettingsHandler(settingsService, renderer, sessionManager, sitemap)
	usersHandler := handler.NewUsersHandler(db, renderer, sessionManager)

	sched := scheduler.New(db, logger, sitemap, geo)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	r := chi.NewRouter()
	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Compress(1024))
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())))
	r.Use(middleware.SkipCSRF("/contact", "/id/contact"))

	staticFS, err := fs.Sub(web.Static, "static/dist")
	if err != nil {
		return fmt.Errorf("static filesystem: %w", err)
	}
	r.With(middleware.StaticCache(86400)).
		Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(staticFS)))
	r.With(middleware.StaticCache(86400)).
		Handle("/uploads/*", http.StripPrefix("/uploads/",
			http.FileServer(http.Dir(cfg.UploadsDir))))

	// Admin routes. English URLs only; the panel language comes from the
	// session.
	r.Route("/admin", func(r chi.Router) {
		r.Get("/login", authHandler.LoginForm)
		r.With(loginProtection.Middleware()).Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(sessionManager))
			r.Use(middleware.LoadUser(sessionManager, db))

			r.Post("/logout", authHandler.Logout)
			r.Post("/language", authHandler.SetLanguage)
			r.Get("/", adminHandler.Dashboard)

			r.Route("/pages", func(r chi.Router) {
				r.Get("/", pagesHandler.List)
				r.Get("/new", pagesHandler.NewForm)
				r.Post("/", pagesHandler.Create)
				r.Get("/{id}", pagesHandler.EditForm)
				r.Post("/{id}", pagesHandler.Update)
				r.Post("/{id}/delete", pagesHandler.Delete)
				r.Get("/{id}/editor", pagesHandler.Editor)
				r.Post("/{id}/blocks", pagesHandler.BlockAdd)
				r.Post("/{id}/blocks/reorder", pagesHandler.BlockReorder)
				r.Post("/{id}/blocks/{blockId}", pagesHandler.BlockUpdate)
				r.Post("/{id}/blocks/{blockId}/delete", pagesHandler.BlockDelete)
			})

			r.Route("/static", func(r chi.Router) {
				r.Get("/", staticHandler.List)
				r.Get("/{key}", staticHandler.Editor)
				r.Post("/{key}", staticHandler.UpdateTitles)
				r.Post("/{key}/blocks", staticHandler.BlockAdd)
				r.Post("/{key}/blocks/reorder", staticHandler.BlockReorder)
				r.Post("/{key}/blocks/{blockId}", staticHandler.BlockUpdate)
				r.Post("/{key}/blocks/{blockId}/delete", staticHandler.BlockDelete)
			})

			r.Route("/posts", func(r chi.Router) {
				r.Get("/", postsHandler.List)
				r.Get("/new", postsHandler.NewForm)
				r.Post("/", postsHandler.Create)
				r.Get("/{id}", postsHandler.EditForm)
				r.Post("/{id}", postsHandler.Update)
				r.Post("/{id}/delete", postsHandler.Delete)
			})

			r.Route("/media", func(r chi.Router) {
				r.Get("/", mediaHandler.List)
				r.Post("/", mediaHandler.Upload)
				r.Post("/{id}/delete", mediaHandler.Delete)
			})

			r.Route("/submissions", func(r chi.Router) {
				r.Get("/", submissionsHandler.List)
				r.Get("/export", submissionsHandler.ExportCSV)
				r.Get("/{id}", submissionsHandler.View)
				r.Post("/{id}/delete", submissionsHandler.Delete)
			})

			r.Get("/settings", settingsHandler.Form)
			r.Post("/settings", settingsHandler.Update)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin())
				r.Get("/users", usersHandler.List)
				r.Get("/users/new", usersHandler.NewForm)
				r.Post("/users", usersHandler.Create)
				r.Post("/users/{id}/password", usersHandler.UpdatePassword)
				r.Post("/users/{id}/delete", usersHandler.Delete)
			})
		})
	})

	// Public routes, wrapped in the language middleware so /id/ URLs
	// reach the same handlers with language-neutral paths.
	public := chi.NewRouter()
	public.Use(middleware.StripTrailingSlash)
	public.Use(middleware.NewRateLimiter(10, 30).Middleware())

	public.Get("/", frontend.Home)
	for _, key := range store.StaticPageKeys {
		if key == "home" {
			continue
		}
		public.Get("/"+key, frontend.StaticPage(key))
	}
	public.Post("/contact", frontend.ContactSubmit)
	public.Get("/blog", frontend.BlogIndex)
	public.Get("/blog/{slug}", frontend.BlogPost)
	public.Get("/sitemap.xml", frontend.Sitemap)
	public.Get("/robots.txt", frontend.Robots)
	public.Get("/.well-known/security.txt", frontend.SecurityTxt)
	public.NotFound(frontend.CustomPage)

	r.NotFound(middleware.Language(public).ServeHTTP)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("listening", "addr", cfg.ServerAddr(), "site_url", cfg.SiteURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
