package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"binarybyte_site/config"
	"binarybyte_site/handlers"
	"binarybyte_site/middleware"
	"binarybyte_site/services"
	"binarybyte_site/services/i18n"
	"binarybyte_site/services/intake"
	"binarybyte_site/services/jobs"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg := config.Load()
	intake.BlockDomains(cfg.BlockedEmailDomains...)

	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	content, err := services.LoadSiteContent()
	if err != nil {
		log.Fatalf("Failed to load site content: %v", err)
	}

	middleware.InitAssetVersions(cfg.StaticDir)

	shutdownTracing, err := services.SetupTracing(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}

	// Lead intake: one collaborator for every form instance
	metrics := services.NewIntakeMetrics(prometheus.DefaultRegisterer)
	submitter := services.NewInstrumentedSubmitter(newSubmitter(cfg), cfg.IntakeDriver, metrics)
	forms := intake.NewRegistry(submitter, intake.Options{
		ResetDelay:    cfg.FormResetDelay,
		SubmitTimeout: cfg.FormSubmitTimeout,
	}, cfg.FormIdleTTL)

	scheduler := jobs.StartScheduler(forms)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(echomiddleware.Secure())
	e.Use(middleware.CSPNonce())
	e.Use(middleware.Locale(cfg))
	e.Use(middleware.CSRF(cfg))

	// Static files
	e.Static("/static", cfg.StaticDir)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	site := handlers.NewSite(cfg, content, forms, metrics)
	handlers.RegisterRoutes(e, site, middleware.ContactFormRateLimiter(newRateLimitStore(cfg)))

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	<-scheduler.Stop().Done()
	forms.Shutdown()
	if err := shutdownTracing(ctx); err != nil {
		log.Printf("Tracing shutdown error: %v", err)
	}
}

// newSubmitter picks the intake collaborator from INTAKE_DRIVER
func newSubmitter(cfg *config.Config) intake.Submitter {
	switch cfg.IntakeDriver {
	case config.IntakeDriverWebhook:
		return services.NewWebhookSubmitter(cfg.IntakeEndpointURL, cfg.IntakeAPIToken, nil)
	case config.IntakeDriverEmail:
		return services.NewEmailSubmitter(cfg)
	default:
		return services.LogSubmitter{}
	}
}

// newRateLimitStore shares counters through Redis when configured so limits
// hold across replicas
func newRateLimitStore(cfg *config.Config) middleware.RateLimitStore {
	if cfg.RedisURL == "" {
		return middleware.NewMemoryStore()
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Invalid REDIS_URL: %v", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[WARNING] Redis unavailable, rate limits fall back to memory: %v", err)
		_ = client.Close()
		return middleware.NewMemoryStore()
	}
	return middleware.NewRedisStore(client, "binarybyte:ratelimit")
}
