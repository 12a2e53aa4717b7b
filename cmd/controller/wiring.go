package main

import (
	"context"
	"log/slog"

	"github.com/voxforge/storage-api/internal/config"
	"github.com/voxforge/storage-api/internal/orchestrators/crafting"
	"github.com/voxforge/storage-api/internal/peripheral"
	"github.com/voxforge/storage-api/internal/peripheral/fake"
	"github.com/voxforge/storage-api/internal/peripheral/gateway"
	"github.com/voxforge/storage-api/internal/pkg/idgen"
	internalredis "github.com/voxforge/storage-api/internal/redis"
	"github.com/voxforge/storage-api/internal/repositories/recipes"
	"github.com/voxforge/storage-api/internal/storage"
)

// Fake-mode location names, matching the demo world seeded below.
const (
	fakeInputLocation  = "minecraft:crafter_0"
	fakeOutputLocation = "minecraft:barrel_0"
)

func loadConfig() (*config.Config, error) {
	if useFake {
		return &config.Config{
			Redis: config.RedisConfig{Address: "localhost:6379"},
			Storage: config.StorageConfig{
				InputLocation:  fakeInputLocation,
				OutputLocation: fakeOutputLocation,
				PeriodSeconds:  5,
			},
		}, nil
	}
	return config.Load(configPath)
}

// newRegistry returns the peripheral backend: a seeded in-memory world in
// fake mode, otherwise a live gateway session.
func newRegistry(cfg *config.Config) (peripheral.Registry, error) {
	if useFake {
		return newDemoWorld(), nil
	}
	return gateway.Dial(&gateway.Config{
		URL:        cfg.Gateway.URL,
		ClientName: cfg.Gateway.ClientName,
	})
}

func newDemoWorld() *fake.World {
	world := fake.NewWorld()
	world.AddInventory(fakeInputLocation, 9, 64)
	world.AddInventory(fakeOutputLocation, 27, 64)
	world.AddInventory("minecraft:chest_0", 27, 64)
	world.AddInventory("minecraft:chest_1", 27, 64)

	world.Seed("minecraft:chest_0", 1, "minecraft:cobblestone", 64)
	world.Seed("minecraft:chest_0", 2, "minecraft:cobblestone", 40)
	world.Seed("minecraft:chest_0", 5, "minecraft:iron_ingot", 10)
	world.Seed("minecraft:chest_1", 1, "minecraft:planks", 32)
	world.Seed("minecraft:chest_1", 2, "minecraft:redstone", 12)
	world.Seed(fakeOutputLocation, 1, "minecraft:stick", 16)
	return world
}

func newGroup(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*storage.Group, error) {
	registry, err := newRegistry(cfg)
	if err != nil {
		return nil, err
	}
	return storage.NewGroup(ctx, &storage.GroupConfig{
		Registry:         registry,
		InputNames:       []string{cfg.Storage.InputLocation},
		OutputNames:      []string{cfg.Storage.OutputLocation},
		MaxStackOverride: cfg.Storage.MaxStackOverride,
		Logger:           logger,
	})
}

func newRecipeRepository(cfg *config.Config) (recipes.Repository, error) {
	client, err := internalredis.NewClient(cfg.Redis.Address, &internalredis.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, err
	}
	return recipes.NewRedis(&recipes.RedisConfig{Client: client})
}

func newResolver(cfg *config.Config, group *storage.Group, logger *slog.Logger) (crafting.Service, error) {
	repo, err := newRecipeRepository(cfg)
	if err != nil {
		return nil, err
	}
	return crafting.NewOrchestrator(&crafting.Config{
		Stock:       group,
		RecipeRepo:  repo,
		IDGenerator: idgen.NewUUID("plan"),
		Logger:      logger,
	})
}
