package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"whale-watch/internal/bot"
	"whale-watch/internal/cache"
	"whale-watch/internal/config"
	"whale-watch/internal/handler"
	"whale-watch/internal/history"
	"whale-watch/internal/job"
	"whale-watch/internal/provider"
	"whale-watch/internal/watch"
	"whale-watch/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "whale-watch/docs"
)

var (
	loadEnvFunc    = godotenv.Load
	loadConfigFunc = config.Load
	initRedisFunc  = cache.InitRedis
	initTracerFunc = tracing.InitTracer

	newDashboardClientFunc = func(cfg *config.Config, tracer trace.Tracer) watch.SectionFetcher {
		return provider.NewDashboardClient(
			cfg.DashboardAPIURL,
			cfg.DashboardAPIKey,
			time.Duration(cfg.UpstreamTimeoutSecs)*time.Second,
			tracer,
		)
	}
	newBotFunc   = bot.New
	startJobFunc = func(j *job.AlertJob, ctx context.Context) { go j.Start(ctx) }

	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Whale Watch API
// @version         1.0
// @description     Market telemetry aggregation, sentiment insight and whale alert service.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()
	configureLogging(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisClient := initRedisFunc(ctx, cfg.RedisURL)

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracer")
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("error shutting down tracer provider")
		}
	}()

	// Upstream client and snapshot aggregation
	fetcher := newDashboardClientFunc(cfg, tracer)
	watchService := watch.NewService(tracer, fetcher)

	auditLog := history.NewLog(tracer, nil, cfg.AlertHistoryLimit)
	if redisClient != nil {
		auditLog = history.NewLog(tracer, redisClient, cfg.AlertHistoryLimit)
	}

	// Telegram bot doubles as the operator-channel dispatcher
	b, err := newBotFunc(cfg.TelegramBotToken, cfg.AdminChatID, cfg.WhaleDisplayLimit, watchService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Telegram bot")
	}
	var dispatcher job.Dispatcher
	if b != nil {
		b.Start()
		if cfg.AdminChatID != 0 {
			dispatcher = b
		}
	}

	// Background alert cycle (stopped by ctx cancel)
	alertJob := job.NewAlertJob(tracer, watchService, dispatcher, auditLog, time.Duration(cfg.AlertPollSecs)*time.Second)
	startJobFunc(alertJob, ctx)

	// HTTP surface for command-triggered evaluations
	var historyReader handler.HistoryReader
	if redisClient != nil {
		historyReader = auditLog
	}
	h := handler.New(tracer, watchService, historyReader)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("whale-watch"))

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Info().Msg("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}

func configureLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
