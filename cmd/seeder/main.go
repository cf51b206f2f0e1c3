// Command seeder loads a recipe catalog from a JSON file into PostgreSQL.
// It is intended to be run once against a fresh database, not as part of
// the main server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/nstepura/pantry-keeper/internal/config"
	"github.com/nstepura/pantry-keeper/internal/migrate"
	"github.com/nstepura/pantry-keeper/internal/model"
	"github.com/nstepura/pantry-keeper/internal/repository/postgres"
)

// seedRecipe is the JSON shape of one catalog entry in the seed file.
type seedRecipe struct {
	Name        string             `json:"name"`
	Ingredients []model.Ingredient `json:"ingredients"`
	Nutrition   model.Nutrition    `json:"nutrition"`
	DietaryTags []string           `json:"dietaryTags"`
}

func main() {
	file := flag.String("file", "recipes.json", "path to the recipe catalog JSON file")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		logger.Fatal("read seed file", zap.String("file", *file), zap.Error(err))
	}

	var seeds []seedRecipe
	if err := json.Unmarshal(data, &seeds); err != nil {
		logger.Fatal("parse seed file", zap.String("file", *file), zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := migrate.Up(ctx, cfg.Database.DSN); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	db, err := postgres.New(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("postgres.New", zap.Error(err))
	}
	defer db.Close()

	repo := postgres.NewRecipeRepo(db)

	for _, s := range seeds {
		id, err := uuid.NewV4()
		if err != nil {
			logger.Fatal("generate id", zap.Error(err))
		}
		recipe := &model.Recipe{
			ID:          id,
			Name:        s.Name,
			Ingredients: s.Ingredients,
			Nutrition:   s.Nutrition,
			DietaryTags: s.DietaryTags,
		}
		if err := repo.Insert(ctx, recipe); err != nil {
			logger.Fatal("insert recipe", zap.String("name", s.Name), zap.Error(err))
		}
		logger.Info("seeded recipe", zap.String("name", s.Name), zap.String("id", id.String()))
	}

	logger.Info("done", zap.Int("recipes", len(seeds)))
}
