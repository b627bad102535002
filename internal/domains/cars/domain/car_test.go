package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCar() *Car {
	return NewCar("ABC123", "Honda", "Civic", 2021, decimal.NewFromInt(120000), "Silver", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestNewCar_StartsAvailable(t *testing.T) {
	car := newTestCar()
	assert.Equal(t, StatusAvailable, car.Status)
	assert.True(t, car.IsAvailable())
	assert.Zero(t, car.ID)
}

func TestCar_StatusTransitions(t *testing.T) {
	car := newTestCar()

	car.SetAsSold()
	assert.Equal(t, StatusSold, car.Status)
	car.SetAsSold()
	assert.Equal(t, StatusSold, car.Status)

	car.SetAsAvailable()
	assert.True(t, car.IsAvailable())

	car.SetAsSuspended()
	assert.Equal(t, StatusSuspended, car.Status)
	assert.False(t, car.IsAvailable())
}

func TestCar_UpdateKeepsStatus(t *testing.T) {
	car := newTestCar()
	car.SetAsSuspended()

	car.Update("Black", decimal.NewFromInt(100000))

	assert.Equal(t, "Black", car.Color)
	assert.True(t, decimal.NewFromInt(100000).Equal(car.Price))
	assert.Equal(t, StatusSuspended, car.Status)
}

func TestValidateModel(t *testing.T) {
	require.NoError(t, ValidateModel("Civic"))
	require.NoError(t, ValidateModel(strings.Repeat("a", MaxModelLength)))
	require.ErrorIs(t, ValidateModel(strings.Repeat("a", MaxModelLength+1)), ErrModelTooLong)
}

func TestValidatePrice(t *testing.T) {
	require.NoError(t, ValidatePrice(decimal.Zero))
	require.ErrorIs(t, ValidatePrice(decimal.NewFromInt(-1)), ErrNegativePrice)
	require.NoError(t, ValidatePrice(decimal.RequireFromString("120000.99")))
	require.NoError(t, ValidatePrice(decimal.RequireFromString("120000.500")))
	require.ErrorIs(t, ValidatePrice(decimal.RequireFromString("120000.999")), ErrPricePrecision)
}

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"":          StatusAvailable,
		"available": StatusAvailable,
		"Sold":      StatusSold,
		"SUSPENDED": StatusSuspended,
	}
	for raw, want := range cases {
		got, err := ParseStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	_, err := ParseStatus("reserved")
	require.ErrorIs(t, err, ErrInvalidStatus)
}
