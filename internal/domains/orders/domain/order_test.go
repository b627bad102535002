package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder_TotalIsCarPricePlusItems(t *testing.T) {
	order := NewOrder(1, 2, decimal.NewFromInt(120000), []ExtraOrderItem{
		NewExtraOrderItem("Insurance", decimal.NewFromInt(5000)),
	})

	assert.True(t, decimal.NewFromInt(125000).Equal(order.TotalCost))
	assert.Equal(t, int64(1), order.CarID)
	assert.Equal(t, int64(2), order.CustomerID)
	assert.Equal(t, []string{"Insurance"}, order.ItemDescriptions())
}

func TestNewOrder_NoItems(t *testing.T) {
	order := NewOrder(1, 2, decimal.RequireFromString("99.99"), nil)
	assert.Equal(t, "99.99", order.TotalCost.String())
	assert.NotNil(t, order.ExtraItems)
	assert.Empty(t, order.ItemDescriptions())
}

func TestNewOrder_ExactSumWithoutDrift(t *testing.T) {
	items := make([]ExtraOrderItem, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, NewExtraOrderItem("part", decimal.RequireFromString("0.10")))
	}
	order := NewOrder(1, 1, decimal.RequireFromString("0.20"), items)
	assert.Equal(t, "1.2", order.TotalCost.String())
}

func TestValidateItems(t *testing.T) {
	require.NoError(t, ValidateItems(nil))
	require.NoError(t, ValidateItems([]ExtraOrderItem{NewExtraOrderItem("free mats", decimal.Zero)}))
	require.ErrorIs(t, ValidateItems([]ExtraOrderItem{NewExtraOrderItem("refund", decimal.NewFromInt(-1))}), ErrNegativeItemPrice)
	require.NoError(t, ValidateItems([]ExtraOrderItem{NewExtraOrderItem("wax", decimal.RequireFromString("49.90"))}))
	require.ErrorIs(t, ValidateItems([]ExtraOrderItem{NewExtraOrderItem("wax", decimal.RequireFromString("49.905"))}), ErrItemPricePrecision)
}

func TestOrderClone_IsDeep(t *testing.T) {
	order := NewOrder(1, 1, decimal.NewFromInt(10), []ExtraOrderItem{NewExtraOrderItem("a", decimal.NewFromInt(1))})
	clone := order.Clone()
	clone.ExtraItems[0].Description = "changed"
	assert.Equal(t, "a", order.ExtraItems[0].Description)
}
