package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/kvasnikov/workorders/internal/adapters/database"
	"github.com/kvasnikov/workorders/internal/domain/entities"
	"github.com/kvasnikov/workorders/internal/infrastructure/clients/postgres"
	"github.com/kvasnikov/workorders/internal/infrastructure/observability"
	"github.com/kvasnikov/workorders/pkg/config"
)

// seedData mirrors data/seed.json: the static dataset loaded at setup time.
type seedData struct {
	Users  []entities.User  `json:"users"`
	Orders []entities.Order `json:"orders"`
	Offers []entities.Offer `json:"offers"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	observability.InitLogger("workorders-seed", cfg.Env)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to DB")
	}
	defer pgClient.Close()

	ctx := context.Background()

	schemaPath := getenvDefault("SCHEMA_FILE", "migrations/schema.sql")
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", schemaPath).Msg("failed to read schema")
	}
	if _, err := pgClient.DB().ExecContext(ctx, string(schema)); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, truncating tables before seeding")
		if _, err := pgClient.DB().ExecContext(ctx, `TRUNCATE TABLE offers, orders, users`); err != nil {
			log.Fatal().Err(err).Msg("failed to reset tables")
		}
	}

	dataPath := getenvDefault("SEED_FILE", "data/seed.json")
	raw, err := os.ReadFile(dataPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", dataPath).Msg("failed to read seed data")
	}

	var data seedData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Fatal().Err(err).Msg("failed to parse seed data")
	}

	userRepo := database.NewUserAdapter(pgClient)
	orderRepo := database.NewOrderAdapter(pgClient)
	offerRepo := database.NewOfferAdapter(pgClient)

	for _, user := range data.Users {
		if err := userRepo.Create(ctx, &user); err != nil {
			log.Warn().Err(err).Int("id", user.ID).Msg("failed to create user")
		}
	}
	for _, order := range data.Orders {
		if err := orderRepo.Create(ctx, &order); err != nil {
			log.Warn().Err(err).Int("id", order.ID).Msg("failed to create order")
		}
	}
	for _, offer := range data.Offers {
		if err := offerRepo.Create(ctx, &offer); err != nil {
			log.Warn().Err(err).Int("id", offer.ID).Msg("failed to create offer")
		}
	}

	log.Info().
		Int("users", len(data.Users)).
		Int("orders", len(data.Orders)).
		Int("offers", len(data.Offers)).
		Msg("seeding finished")
}

func getenvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
