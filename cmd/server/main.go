package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stars_admin/internal/pkg/config"
	"stars_admin/internal/pkg/middleware"
	"stars_admin/internal/pkg/notify"
	"stars_admin/internal/pkg/registry"
	"stars_admin/internal/pkg/upstream"
	"stars_admin/internal/pkg/worker"
	"stars_admin/pkg/cache"
	"stars_admin/pkg/database"
	"stars_admin/pkg/logger"
	"stars_admin/pkg/metrics"

	auditrepo "stars_admin/internal/domain/audit/repository"

	_ "stars_admin/internal/domain/analytics"
	_ "stars_admin/internal/domain/audit"
	_ "stars_admin/internal/domain/content"
	_ "stars_admin/internal/domain/moderation"
	_ "stars_admin/internal/domain/post"
	_ "stars_admin/internal/domain/token"
	_ "stars_admin/internal/domain/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger.Init()
	defer logger.Sync()

	metrics.InitMetrics()

	db := database.InitDatabase()
	redisClient := database.InitRedis()

	cacheService := cache.NewRedisCache(redisClient, config.GlobalConfig.App.Env)
	bus := cache.NewInvalidationBus(cacheService, logger.Log)

	httpClient := upstream.NewHTTPClient(
		time.Duration(config.GlobalConfig.Upstream.TimeoutSeconds)*time.Second,
		logger.Log,
	)
	upstreamClient := upstream.NewClient(
		config.GlobalConfig.Upstream.BaseURL,
		httpClient,
		cacheService,
		bus,
		logger.Log,
	)

	auditRepo := auditrepo.NewAuditRepository(db)
	auditPool := worker.NewWorkerPool(auditRepo, 2, 256)
	auditPool.Start()

	if config.GlobalConfig.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.TraceMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	corsConfig := cors.DefaultConfig()
	if len(config.GlobalConfig.App.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = config.GlobalConfig.App.AllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Trace-ID")
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	moduleCtx := &registry.ModuleContext{
		DB:       db,
		Redis:    redisClient,
		Router:   router,
		Cache:    cacheService,
		Bus:      bus,
		Upstream: upstreamClient,
		Notifier: notify.NewLogNotifier(logger.Log),
		Audit:    auditPool,
		Metrics:  metrics.GetGlobalCollector(),
	}
	if err := registry.InitModules(moduleCtx); err != nil {
		logger.Log.Fatal("failed to initialize modules", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    ":" + config.GlobalConfig.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("server starting", zap.String("port", config.GlobalConfig.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("forced shutdown", zap.Error(err))
	}

	// Flush audit records queued behind in-flight requests.
	auditPool.Stop()
}
