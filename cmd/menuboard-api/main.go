// README: Entry point; loads config, wires services, starts HTTP server and the catalog refresher.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menuboard/internal/ai"
	"menuboard/internal/assistant"
	"menuboard/internal/catalog"
	"menuboard/internal/config"
	httptransport "menuboard/internal/http"
	"menuboard/internal/infra"
	"menuboard/internal/usage"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := infra.NewLogger(cfg.Log.Level, cfg.Log.Format)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("MENUBOARD_FIREBASE_PROJECT_ID is required")
	}
	rtdb, err := infra.NewFirebaseDB(ctx, cfg.Firebase.ProjectID, cfg.Firebase.DatabaseURL, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	store := catalog.NewStore(rtdb)
	cache := catalog.NewCache(redisClient, cfg.Catalog.CacheTTL)
	catalogSvc := catalog.NewService(store, cache, cfg.Catalog, logger)
	if err := catalogSvc.Refresh(ctx); err != nil {
		logger.Warn("initial catalog load failed, starting empty", zap.Error(err))
	}

	usageSvc := usage.NewService(usage.NewStore(dbPool))

	var gen assistant.Generator
	if cfg.Assistant.GeminiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, cfg.Assistant.GeminiKey, cfg.Assistant.StoreName)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer provider.Close()
		gen = provider
	} else {
		logger.Info("GEMINI_API_KEY not set, assistant runs local-only")
	}

	assistantSvc := assistant.NewService(assistant.ServiceDeps{
		Catalog:   catalogSvc,
		Generator: gen,
		Quota:     usageSvc,
		StoreName: cfg.Assistant.StoreName,
		Logger:    logger,
	})

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Assistant:   assistantSvc,
		Catalog:     catalogSvc,
		Store:       store,
		AdminKey:    cfg.HTTP.AdminKey,
		TurnTimeout: cfg.Assistant.RemoteTimeout,
		Logger:      logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go catalogSvc.RunRefresher(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
