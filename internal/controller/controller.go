package controller

import (
	"gorm.io/gorm"

	"github.com/skillswap/swap-backend/internal/store"
	"github.com/skillswap/swap-backend/internal/utils/config"
	"github.com/skillswap/swap-backend/internal/utils/logger"
)

type Controller struct {
	db        *gorm.DB
	store     *store.Store
	logger    *logger.Logger
	appConfig *config.AppConfig
}

func New(db *gorm.DB, store *store.Store, logger *logger.Logger, appConfig *config.AppConfig) IController {
	return &Controller{
		db:        db,
		store:     store,
		logger:    logger,
		appConfig: appConfig,
	}
}
