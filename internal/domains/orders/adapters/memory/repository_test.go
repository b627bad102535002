package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/devcars-api/internal/domains/orders/domain"
	"github.com/Apurer/devcars-api/internal/domains/orders/ports"
)

func newOrder(customerID int64, items ...string) *domain.Order {
	extras := make([]domain.ExtraOrderItem, 0, len(items))
	for _, description := range items {
		extras = append(extras, domain.NewExtraOrderItem(description, decimal.NewFromInt(10)))
	}
	return domain.NewOrder(1, customerID, decimal.NewFromInt(100), extras)
}

func TestRepository_SaveAssignsOrderAndItemIDs(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	first, err := repo.Save(ctx, newOrder(1, "Insurance", "Mats"))
	require.NoError(t, err)
	second, err := repo.Save(ctx, newOrder(1, "Tint"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, int64(1), first.ExtraItems[0].ID)
	assert.Equal(t, int64(2), first.ExtraItems[1].ID)
	assert.Equal(t, int64(3), second.ExtraItems[0].ID)
}

func TestRepository_Exists(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	exists, err := repo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Save(ctx, newOrder(1))
	require.NoError(t, err)
	exists, err = repo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_ListByCustomer(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	for _, customerID := range []int64{1, 2, 1} {
		_, err := repo.Save(ctx, newOrder(customerID))
		require.NoError(t, err)
	}

	mine, err := repo.ListByCustomer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, int64(1), mine[0].ID)
	assert.Equal(t, int64(3), mine[1].ID)

	none, err := repo.ListByCustomer(ctx, 99)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestRepository_GetByIDReturnsDeepCopy(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newOrder(1, "Insurance"))
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	fetched.ExtraItems[0].Description = "changed"

	again, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Insurance", again.ExtraItems[0].Description)
}

func TestRepository_ExplicitIDs(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	order := newOrder(1)
	order.ID = 5
	saved, err := repo.Save(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, int64(5), saved.ID)

	_, err = repo.Save(ctx, order)
	require.ErrorIs(t, err, ports.ErrDuplicate)

	next, err := repo.Save(ctx, newOrder(1))
	require.NoError(t, err)
	assert.Equal(t, int64(6), next.ID)
}
