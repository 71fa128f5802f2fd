//go:build wireinject
// +build wireinject

package main

import (
	"Shelved/cmd"
	"Shelved/database"
	"Shelved/internal/handlers"
	"Shelved/internal/repository"
	"Shelved/internal/services"
	"github.com/google/wire"
)

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		database.SetupDatabase,
		repository.NewBoxRepository,
		repository.NewItemRepository,
		repository.NewLocationRepository,
		repository.NewCategoryRepository,
		services.NewLogService,
		services.NewGateService,
		services.NewCatalogService,
		services.NewBoxService,
		services.NewItemService,
		services.NewLocationService,
		services.NewCategoryService,
		services.NewLabelService,
		services.NewJanitorService,
		handlers.NewAuthHandler,
		handlers.NewBoxHandler,
		handlers.NewItemHandler,
		handlers.NewLocationHandler,
		handlers.NewCategoryHandler,
		handlers.NewLabelHandler,
		Provider,
	)
	return nil, nil
}
