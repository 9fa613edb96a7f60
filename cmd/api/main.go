package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/jordanlanch/leadreach/config"
	"github.com/jordanlanch/leadreach/pkg/api/handlers"
	"github.com/jordanlanch/leadreach/pkg/cache"
	"github.com/jordanlanch/leadreach/pkg/campaigns"
	"github.com/jordanlanch/leadreach/pkg/database"
	"github.com/jordanlanch/leadreach/pkg/email"
	"github.com/jordanlanch/leadreach/pkg/enrichment"
	"github.com/jordanlanch/leadreach/pkg/jobs"
	"github.com/jordanlanch/leadreach/pkg/logger"
	"github.com/jordanlanch/leadreach/pkg/mailer"
	"github.com/jordanlanch/leadreach/pkg/metrics"
	custommiddleware "github.com/jordanlanch/leadreach/pkg/middleware"
	"github.com/jordanlanch/leadreach/pkg/replies"
	"github.com/jordanlanch/leadreach/pkg/storage"
	"github.com/jordanlanch/leadreach/pkg/workflow"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Structured logger for the domain services
	appLogger := logger.New(cfg.LogLevel)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)       // 5 req/min for login
	webhookRateLimiter := custommiddleware.NewRateLimiter(300, 50) // provider notifications come in bursts

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{
			"http://localhost:5173",   // Development
			"https://leadreach.io",    // Production
			"https://app.leadreach.io",
		},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())

	// Global rate limiting
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "LeadReach API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Mailbox provider client for campaign sends and reply polling
	mailerClient := mailer.NewClient(db.Ent, mailer.OAuthApp{
		GoogleClientID:        cfg.GoogleClientID,
		GoogleClientSecret:    cfg.GoogleClientSecret,
		MicrosoftClientID:     cfg.MicrosoftClientID,
		MicrosoftClientSecret: cfg.MicrosoftClientSecret,
	}, appLogger)

	// Attachment storage (optional)
	var store storage.Store
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3Store(context.Background(), cfg.AWSRegion, cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, cfg.S3Bucket)
		if err != nil {
			log.Fatalf("❌ Failed to initialize S3 storage: %v", err)
		}
		store = s3Store
		log.Printf("✅ S3 attachment storage initialized (bucket: %s)", cfg.S3Bucket)
	} else {
		log.Printf("ℹ️  Attachment storage disabled (no S3_BUCKET configured)")
	}

	// Durable workflow runner backing campaign sends and enrichment
	runner := workflow.NewRunner(db.Ent, appLogger)

	// Operator alert mail (SendGrid)
	alertService := email.NewService(cfg.AlertEmailFrom, "LeadReach", cfg.AlertEmailTo, cfg.SendGridAPIKey)

	// Domain services
	campaignService := campaigns.NewService(db.Ent, runner, mailerClient, store, redisClient, prometheusMetrics, appLogger, campaigns.Options{
		SendInterval: cfg.SendInterval,
		BaseURL:      cfg.BaseURL,
	})
	repliesService := replies.NewService(db.Ent, mailerClient, prometheusMetrics, appLogger, cfg.InboxPollCount)
	generator := enrichment.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	enrichmentService := enrichment.NewService(db.Ent, runner, generator, generator, appLogger, cfg.EnrichmentWorkers)
	log.Printf("✅ Domain services initialized")

	// Re-drive durable runs interrupted by the previous process. The sweep
	// runs in the background: a resumed campaign can legitimately take hours.
	resumer := jobs.NewResumer(db.Ent, campaignService, enrichmentService, appLogger)
	go func() {
		if resumed, err := resumer.ResumeInterrupted(context.Background()); err != nil {
			log.Printf("⚠️  Failed to resume interrupted workflow runs: %v", err)
		} else if resumed > 0 {
			log.Printf("🔁 Resumed %d interrupted workflow run(s)", resumed)
		}
	}()

	// Initialize cron manager
	cronManager := jobs.NewCronManager(db.Ent, repliesService, enrichmentService, alertService, log.Default())
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()
	log.Printf("✅ Cron jobs started successfully")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db.Ent, cfg)
	accountHandler := handlers.NewAccountHandler(db.Ent)
	leadHandler := handlers.NewLeadHandler(db.Ent)
	campaignHandler := handlers.NewCampaignHandler(db.Ent, campaignService)
	enrichmentHandler := handlers.NewEnrichmentHandler(db.Ent, enrichmentService, appLogger)
	trackingHandler := handlers.NewTrackingHandler(db.Ent, prometheusMetrics, appLogger)
	webhookHandler := handlers.NewWebhookHandler(repliesService, redisClient, appLogger)

	// Open-tracking pixel (public, referenced from sent emails)
	e.GET("/t/open.gif", trackingHandler.OpenPixel)

	// API v1 routes
	v1 := e.Group("/api/v1")

	// Ping endpoint (public)
	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Inbound mail notifications from providers (public, bursty)
	v1.POST("/webhooks/inbound", webhookHandler.Inbound, webhookRateLimiter.RateLimitMiddleware())

	// Authentication routes (public)
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register, authRateLimiter.RateLimitMiddleware())
		authRoutes.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
		authRoutes.GET("/me", authHandler.Me, custommiddleware.JWTMiddleware(cfg.JWTSecret))
	}

	// Protected routes (require JWT)
	protected := v1.Group("")
	protected.Use(custommiddleware.JWTMiddleware(cfg.JWTSecret))
	{
		accountsGroup := protected.Group("/accounts")
		{
			accountsGroup.POST("", accountHandler.Create)
			accountsGroup.GET("", accountHandler.List)
		}

		leadsGroup := protected.Group("/leads")
		{
			leadsGroup.POST("", leadHandler.Create)
			leadsGroup.GET("", leadHandler.List)
		}

		campaignsGroup := protected.Group("/campaigns")
		{
			campaignsGroup.POST("", campaignHandler.Create)
			campaignsGroup.GET("", campaignHandler.List)
			campaignsGroup.GET("/:id", campaignHandler.Get)
			campaignsGroup.GET("/:id/stats", campaignHandler.Stats)
			campaignsGroup.POST("/:id/launch", campaignHandler.Launch)
			campaignsGroup.POST("/:id/cancel", campaignHandler.Cancel)
		}

		companiesGroup := protected.Group("/companies")
		{
			companiesGroup.POST("/enrich", enrichmentHandler.Enrich)
			companiesGroup.GET("/:id", enrichmentHandler.Get)
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 LeadReach API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("📬 Send interval: %s, inbox poll count: %d", cfg.SendInterval, cfg.InboxPollCount)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
