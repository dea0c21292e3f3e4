// @title        LanhCare Admin Gateway API
// @version      1.0
// @description  Server-side gateway for the LanhCare administration dashboard.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lanhcare/admin-gateway/internal/api"
	"github.com/lanhcare/admin-gateway/internal/api/handler"
	"github.com/lanhcare/admin-gateway/internal/backend"
	"github.com/lanhcare/admin-gateway/internal/infrastructure/config"
	"github.com/lanhcare/admin-gateway/internal/infrastructure/db/redis"
	"github.com/lanhcare/admin-gateway/internal/session"
	"github.com/lanhcare/admin-gateway/pkg/logger"
)

const shutdownGrace = 10 * time.Second

func main() {
	// Local development convenience; production supplies real env vars.
	_ = godotenv.Load()

	log := logger.Init(logger.Options{
		Level:   os.Getenv("LOG_LEVEL"),
		Service: "admin-gateway",
		Pretty:  os.Getenv("ENV") == "development",
	})

	cfg := config.Load(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer redisClient.Close()

	vault := redis.NewSessionVault(redisClient)

	client, err := backend.New(cfg.API.BaseURL, cfg.API.Timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("backend client setup failed")
	}

	auth := backend.NewAuth(client)
	store := session.NewStore(auth, vault, log)
	// The client needs the store for tokens and expiry; the store needs an
	// auth client built on the client. Bind closes the cycle.
	client.BindSession(store)

	handlers := api.Handlers{
		Auth:         handler.NewAuthHandler(store, log),
		Shell:        handler.NewShellHandler(store),
		Dashboard:    handler.NewDashboardHandler(backend.NewUsers(client), backend.NewPosts(client), backend.NewServicePlans(client), backend.NewRevenue(client), log),
		Users:        handler.NewUsersHandler(backend.NewUsers(client), log),
		Posts:        handler.NewPostsHandler(backend.NewPosts(client), log),
		Comments:     handler.NewCommentsHandler(backend.NewComments(client), log),
		Hospitals:    handler.NewHospitalsHandler(backend.NewHospitals(client), log),
		ServicePlans: handler.NewServicePlansHandler(backend.NewServicePlans(client), log),
		Revenue:      handler.NewRevenueHandler(backend.NewRevenue(client), log),
		ICD11:        handler.NewICD11Handler(backend.NewICD11(client), log),
		Nutrition:    handler.NewNutritionHandler(backend.NewNutrition(client), log),
		Dietary:      handler.NewDietaryRestrictionsHandler(backend.NewDietaryRestrictions(client), log),
		Exercise:     handler.NewExerciseTypesHandler(backend.NewExerciseTypes(client), log),
		Specialties:  handler.NewMedicalSpecialtiesHandler(backend.NewMedicalSpecialties(client), log),
		Health:       handler.NewHealthHandler(redisClient, client),
	}

	e := api.NewRouter(handlers, store, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("admin gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
