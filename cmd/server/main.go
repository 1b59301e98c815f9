package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"consultancy_site_go/config"
	"consultancy_site_go/handlers"
	"consultancy_site_go/middleware"
	"consultancy_site_go/services"
	"consultancy_site_go/templates/pages"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const staticDir = "static"

func main() {
	// Load configuration
	cfg := config.Load()

	middleware.InitAssetVersions(staticDir)

	// Initialize email, lead sheet and the intake pipeline
	services.InitializeTurnstile(cfg)
	pages.UseTurnstile(cfg.TurnstileSiteKey)
	services.InitializeMailer(cfg)
	services.InitializeLeadSheet(cfg)
	metrics := services.NewIntakeMetrics(prometheus.DefaultRegisterer)
	if err := services.InitializeIntake(cfg, metrics); err != nil {
		log.Fatalf("Failed to initialize intake: %v", err)
	}

	e := newServer(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[INFO] Shutting down")
	// Leave in-flight submissions time to finish their email sends
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.EmailSendTimeout+services.DefaultSheetTimeout+5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] Shutdown: %v", err)
	}
}

func newServer(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.Use(middleware.StaticCacheControl())
	e.Static("/static", staticDir)

	// Operational routes
	e.GET("/healthz", handlers.HealthzHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/robots.txt", handlers.GetRobotsHandler)

	// Marketing pages
	site := e.Group("", middleware.CSPNonce())
	{
		site.GET("/", handlers.WebsiteHomeHandler)
		site.GET("/about", handlers.WebsiteAboutHandler)
		site.GET("/services", handlers.WebsiteServicesHandler)
		site.GET("/pricing", handlers.WebsitePricingHandler)
		site.GET("/case-studies", handlers.WebsiteCaseStudiesHandler)
		site.GET("/case-studies/:slug", handlers.WebsiteCaseStudyHandler)
		site.GET("/contact", handlers.WebsiteContactHandler)
		site.GET("/get-started", handlers.WebsiteGetStartedHandler)
		site.GET("/privacy", handlers.WebsitePrivacyHandler)
		site.GET("/terms", handlers.WebsiteTermsHandler)
	}

	// Public form submissions
	forms := middleware.PublicFormRateLimiter.Middleware()
	e.POST("/api/contact", handlers.SubmitContactHandler, forms)
	e.POST("/contact", handlers.SubmitContactHandler, forms)
	e.POST("/api/submit-lead", handlers.SubmitLeadHandler, forms)
	e.POST("/submit-lead", handlers.SubmitLeadHandler, forms)

	// Unknown routes
	e.RouteNotFound("/*", handlers.WebsiteNotFoundHandler, middleware.CSPNonce())

	return e
}
