package migrations

import (
	"gorm.io/gorm"

	carspostgres "github.com/Apurer/devcars-api/internal/domains/cars/adapters/persistence/postgres"
	customerspostgres "github.com/Apurer/devcars-api/internal/domains/customers/adapters/persistence/postgres"
	orderspostgres "github.com/Apurer/devcars-api/internal/domains/orders/adapters/persistence/postgres"
)

// Models returns every GORM record owned by the bounded contexts.
func Models() []any {
	var models []any
	models = append(models, carspostgres.Models()...)
	models = append(models, customerspostgres.Models()...)
	models = append(models, orderspostgres.Models()...)
	return models
}

// Run applies the schema for the bounded contexts.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(Models()...)
}
