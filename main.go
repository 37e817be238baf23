package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"soulfinder/auth"
	"soulfinder/config"
	"soulfinder/database"
	"soulfinder/handlers"
	"soulfinder/logging"
	"soulfinder/payments"
	"soulfinder/routes"
	"soulfinder/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	client, err := connectWithRetry(cfg.MongoURI, log)
	if err != nil {
		log.Fatal("mongodb connection failed", zap.Error(err))
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			log.Error("mongodb disconnect failed", zap.Error(err))
		}
	}()
	log.Info("mongodb connected", zap.String("db", cfg.MongoDB))

	verifier, err := buildVerifier(cfg)
	if err != nil {
		log.Fatal("auth verifier init failed", zap.Error(err))
	}
	log.Info("auth verifier ready", zap.String("mode", cfg.AuthMode))

	db := client.Database(cfg.MongoDB)
	handler := handlers.New(handlers.Deps{
		Biodata:   store.NewBiodataRepo(db),
		Users:     store.NewUserRepo(db),
		Favorites: store.NewFavoriteRepo(db),
		Contacts:  store.NewContactRepo(db),
		Premium:   store.NewPremiumRepo(db),
		Stories:   store.NewStoryRepo(db),
		Payments:  payments.NewStripeClient(cfg.StripeSecretKey),
		Log:       log,
	})

	gin.SetMode(cfg.GinMode)
	router := routes.SetupRouter(handler, verifier, cfg.AllowOrigins, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}

func connectWithRetry(uri string, log *zap.Logger) (*mongo.Client, error) {
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		client, err := database.Connect(uri)
		if err == nil {
			return client, nil
		}
		lastErr = err
		log.Warn("mongodb connection attempt failed", zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	return nil, lastErr
}

func buildVerifier(cfg *config.Config) (auth.Verifier, error) {
	if cfg.AuthMode == config.AuthModeLocal {
		return auth.NewHMACVerifier(cfg.JWTSecret), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return auth.NewFirebaseVerifier(ctx, cfg.FirebaseCredentialsFile)
}
