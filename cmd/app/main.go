package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tg-info-backend/internal/cache/redis"
	"tg-info-backend/internal/common/config"
	"tg-info-backend/internal/common/logger"
	"tg-info-backend/internal/features/profile/repository/photos"
	"tg-info-backend/internal/features/profile/service"
	apphttp "tg-info-backend/internal/http"
	rplatform "tg-info-backend/internal/platform/redis"
	"tg-info-backend/internal/platform/telegram"
)

// @title           Telegram Info Dashboard API
// @version         1.0
// @description     Looks up public Telegram users, bots, groups and channels by username.

// @BasePath  /

// @securityDefinitions.apikey TelegramInitData
// @in header
// @name init_data
// @description Telegram Mini App init data, required when TELEGRAM_INIT_DATA_AUTH is on

// @tag.name profiles
// @tag.description Profile lookup

// @tag.name service
// @tag.description Health and smoke checks

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init("tg-info-backend", cfg.Debug)
	logger.Info().
		Bool("debug", cfg.Debug).
		Int("port", cfg.Server.Port).
		Msg("Starting Telegram Info Dashboard")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	photoStore, err := photos.NewStore(cfg.Lookup.PhotoDir, cfg.Lookup.PhotoURLPrefix)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.Lookup.PhotoDir).Msg("Failed to prepare photo directory")
	}

	var (
		resolveCache service.ResolveCache
		photoCache   service.PhotoCache
		cacheHealth  *rplatform.Client
	)
	if cfg.Redis.Enabled {
		rdb, err := rplatform.Open(ctx, cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn().Err(err).Msg("Redis unavailable, continuing without cache")
		} else {
			defer rdb.Close()
			cacheHealth = rdb
			resolveCache = redis.NewResolveCache(rdb, cfg.Redis.ResolveTTL)
			photoCache = redis.NewPhotoCache(rdb, cfg.Redis.PhotoTTL)
			logger.Info().Str("addr", cfg.RedisAddr()).Msg("Redis cache enabled")
		}
	}

	var remote service.RemoteClient
	if tgClient := startTelegram(ctx, cfg); tgClient != nil {
		defer tgClient.Stop()
		remote = tgClient
	}

	normalizer := service.NewNormalizer(remote, photoStore, photoCache, service.NormalizerOptions{
		ExposeEstimatedCreation: cfg.Lookup.ExposeEstimatedCreation,
	}, time.Now, logger.Component("normalizer"))

	profileService := service.NewProfileService(remote, resolveCache, normalizer, service.NewDemoGenerator(time.Now), service.Options{
		FallbackToDemoOnNotFound: cfg.Lookup.FallbackToDemoOnNotFound,
		DemoOnUnavailable:        cfg.Lookup.DemoOnUnavailable,
		RequestTimeout:           cfg.Telegram.RequestTimeout,
		MaxConcurrent:            cfg.Telegram.MaxConcurrent,
	}, logger.Component("lookup"))

	routerCfg := apphttp.RouterConfig{
		Debug:          cfg.Debug,
		Origin:         cfg.Server.Origin,
		PhotoDir:       photoStore.Dir(),
		PhotoURLPrefix: cfg.Lookup.PhotoURLPrefix,
		InitDataAuth:   cfg.Telegram.InitDataAuth,
		BotToken:       cfg.Telegram.BotToken,
		InitDataTTL:    cfg.Telegram.InitDataTTL,
		Now:            time.Now,
	}
	if cacheHealth != nil {
		routerCfg.Cache = cacheHealth
	}
	router := apphttp.NewRouter(routerCfg, profileService, logger.Component("http"))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Telegram.RequestTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Bool("live", profileService.LiveMode()).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

// startTelegram returns a connected client, or nil when credentials are
// missing or the connection fails. A nil client puts the service in demo mode.
func startTelegram(ctx context.Context, cfg *config.Config) *telegram.Client {
	if !cfg.HasTelegramCredentials() {
		logger.Warn().Msg("Telegram credentials not configured, running in demo mode")
		return nil
	}

	client, err := telegram.New(ctx, telegram.Config{
		APIID:         cfg.Telegram.APIID,
		APIHash:       cfg.Telegram.APIHash,
		BotToken:      cfg.Telegram.BotToken,
		SessionString: cfg.Telegram.SessionString,
		StartTimeout:  cfg.Telegram.StartTimeout,
		RateLimit:     cfg.Telegram.RateLimit,
		PeerCacheSize: cfg.Telegram.PeerCacheSize,
	}, logger.Component("telegram"))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create Telegram client, running in demo mode")
		return nil
	}

	if err := client.Start(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to start Telegram client, running in demo mode")
		return nil
	}
	return client
}
