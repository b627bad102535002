//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/Apurer/devcars-api/internal/domains/orders/domain"
	"github.com/Apurer/devcars-api/internal/domains/orders/ports"
	platformpostgres "github.com/Apurer/devcars-api/internal/platform/postgres"
)

func setupOrdersPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("devcars_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { pgContainer.Terminate(ctx) })

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := platformpostgres.Connect(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(Models()...))
	t.Cleanup(func() {
		if sqlDB, _ := db.DB(); sqlDB != nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestRepository_SaveWithItems(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	repo := NewRepository(setupOrdersPostgres(t))
	ctx := context.Background()

	order := domain.NewOrder(1, 2, decimal.NewFromInt(120000), []domain.ExtraOrderItem{
		domain.NewExtraOrderItem("Insurance", decimal.NewFromInt(5000)),
		domain.NewExtraOrderItem("Mats", decimal.RequireFromString("150.25")),
	})
	saved, err := repo.Save(ctx, order)
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("125150.25").Equal(fetched.TotalCost))
	assert.Equal(t, []string{"Insurance", "Mats"}, fetched.ItemDescriptions())

	exists, err := repo.Exists(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	byCustomer, err := repo.ListByCustomer(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, byCustomer, 1)
}

func TestRepository_DuplicateExplicitID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	repo := NewRepository(setupOrdersPostgres(t))
	ctx := context.Background()

	order := domain.NewOrder(1, 2, decimal.NewFromInt(10), nil)
	order.ID = 42
	_, err := repo.Save(ctx, order)
	require.NoError(t, err)

	_, err = repo.Save(ctx, order)
	require.ErrorIs(t, err, ports.ErrDuplicate)

	_, err = repo.GetByID(ctx, 4242)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
