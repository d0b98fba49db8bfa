package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vedran77/barter/internal/config"
	"github.com/vedran77/barter/internal/database"
	mongorepo "github.com/vedran77/barter/internal/repository/mongodb"
	"github.com/vedran77/barter/internal/service"
	"github.com/vedran77/barter/internal/transport/http/handlers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file, using process environment")
	}

	var cfg config.Config
	if err := config.Load(&cfg); err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.Env)

	initCtx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelInit()

	client, err := database.Connect(initCtx, &cfg)
	if err != nil {
		slog.Error("connecting to database", "error", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())
	slog.Info("connected to mongodb", "database", cfg.MongoDB)

	db := client.Database(cfg.MongoDB)
	if err := database.EnsureIndexes(initCtx, db); err != nil {
		slog.Error("ensuring indexes", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := mongorepo.NewUserRepo(db.Collection(database.UsersCollection))
	productRepo := mongorepo.NewProductRepo(db.Collection(database.ProductsCollection))
	offerRepo := mongorepo.NewOfferRepo(db.Collection(database.OffersCollection))

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	profileService := service.NewProfileService(userRepo)
	productService := service.NewProductService(productRepo)
	offerService := service.NewOfferService(offerRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	productHandler := handlers.NewProductHandler(productService)
	offerHandler := handlers.NewOfferHandler(offerService)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      handlers.Router(authHandler, profileHandler, productHandler, offerHandler, cfg.JWTSecret),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
}

func setupLogger(env string) {
	var handler slog.Handler
	switch env {
	case "prod":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}
