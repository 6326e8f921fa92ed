package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	auction "vehicle-marketplace/internal/auctionService"
	"vehicle-marketplace/internal/cache"
	"vehicle-marketplace/internal/config"
	interaction "vehicle-marketplace/internal/interactionService"
	"vehicle-marketplace/internal/repository"
	"vehicle-marketplace/internal/server"
	vehicle "vehicle-marketplace/internal/vehicleService"
	"vehicle-marketplace/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}

	store, err := openStore(cfg)
	if err != nil {
		utils.Fatal("failed to open store", map[string]any{"store": cfg.Store, "error": err.Error()})
	}

	var preferenceCache interaction.PreferenceCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			utils.Warn("redis unreachable, preference caching disabled", map[string]any{
				"addr":  cfg.RedisAddr,
				"error": err.Error(),
			})
		} else {
			preferenceCache = cache.NewRedisPreferenceCache(client)
		}
	}

	interactionSvc := interaction.NewInteractionService(store, preferenceCache)
	auctionSvc := auction.NewAuctionService(store, store)
	vehicleSvc := vehicle.NewVehicleService(store, interactionSvc)

	router := server.SetupRouter(server.Services{
		Auction:     auctionSvc,
		Vehicle:     vehicleSvc,
		Interaction: interactionSvc,
		Tracker:     interactionSvc,
	})

	srv := &http.Server{Addr: cfg.Addr(), Handler: router}
	go func() {
		utils.Info("starting marketplace server", map[string]any{
			"addr":  cfg.Addr(),
			"store": cfg.Store,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Fatal("server failed", map[string]any{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Error("shutdown error", map[string]any{"error": err.Error()})
	}
	utils.Info("server stopped", nil)
}

// openStore selects the persistence backend from configuration
func openStore(cfg config.Config) (repository.Store, error) {
	if cfg.Store == "mysql" {
		return repository.OpenMySQL(cfg.MySQLDSN)
	}
	return repository.NewMemoryStore(), nil
}
