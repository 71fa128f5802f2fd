package cmd

import (
	"Shelved/internal/config"
	"Shelved/internal/handlers"
	"Shelved/internal/services"

	"gorm.io/gorm"
)

type Server struct {
	Configuration   *config.Configuration
	DB              *gorm.DB
	LogService      services.LogService
	CatalogService  services.CatalogService
	JanitorService  *services.Janitor
	AuthHandler     *handlers.AuthHandler
	BoxHandler      *handlers.BoxHandler
	ItemHandler     *handlers.ItemHandler
	LocationHandler *handlers.LocationHandler
	CategoryHandler *handlers.CategoryHandler
	LabelHandler    *handlers.LabelHandler
}

func NewServer(
	configuration *config.Configuration,
	db *gorm.DB,
	logService services.LogService,
	catalogService services.CatalogService,
	janitorService *services.Janitor,
	authHandler *handlers.AuthHandler,
	boxHandler *handlers.BoxHandler,
	itemHandler *handlers.ItemHandler,
	locationHandler *handlers.LocationHandler,
	categoryHandler *handlers.CategoryHandler,
	labelHandler *handlers.LabelHandler,
) *Server {
	return &Server{
		Configuration:   configuration,
		DB:              db,
		LogService:      logService,
		CatalogService:  catalogService,
		JanitorService:  janitorService,
		AuthHandler:     authHandler,
		BoxHandler:      boxHandler,
		ItemHandler:     itemHandler,
		LocationHandler: locationHandler,
		CategoryHandler: categoryHandler,
		LabelHandler:    labelHandler,
	}
}
