package app

import (
	"github.com/openretail/storeapi/config"
	"github.com/openretail/storeapi/internal/store"
	"gorm.io/gorm"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides the persistence gateway
type StoreProvider interface {
	Store() *store.Store
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface.
type AppContext interface {
	DBProvider
	ConfigProvider
	StoreProvider

	// Application lifecycle methods
	MigrateDB() error
	InitDb()
	DropAll()
}
