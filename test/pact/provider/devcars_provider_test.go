//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	pacttest "github.com/Apurer/devcars-api/test/pact"

	"github.com/Apurer/devcars-api/internal/app/api"
	carstypes "github.com/Apurer/devcars-api/internal/domains/cars/application/types"
	ordersworkflows "github.com/Apurer/devcars-api/internal/domains/orders/adapters/workflows"
	orderstypes "github.com/Apurer/devcars-api/internal/domains/orders/application/types"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDevCarsProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	reset := func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
		app.reset()
		return nil, nil
	}
	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateCarsBaseline: reset,
		pacttest.StateCarMissing:   reset,
		pacttest.StateCarExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset()
			if setup {
				return nil, app.seedCar()
			}
			return nil, nil
		},
		pacttest.StateCustomerHasOrder: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset()
			if setup {
				return nil, app.seedOrder()
			}
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.reset()
			return nil
		},
	})
	require.NoError(t, err)
}

// contractProviderApp serves a fresh in-memory DevCars instance per provider state.
type contractProviderApp struct {
	mu       sync.RWMutex
	services api.Services
	router   *gin.Engine
	server   *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()
	app := &contractProviderApp{}
	app.reset()
	app.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.mu.RLock()
		router := app.router
		app.mu.RUnlock()
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(app.server.Close)
	return app
}

func (a *contractProviderApp) reset() {
	services := api.BuildServices(nil, nil)
	router := api.NewRouter(pacttest.ProviderName, services, ordersworkflows.NewInlineOrderWorkflows(services.Orders))
	a.mu.Lock()
	a.services = services
	a.router = router
	a.mu.Unlock()
}

func (a *contractProviderApp) seedCar() error {
	a.mu.RLock()
	services := a.services
	a.mu.RUnlock()
	_, err := services.Cars.RegisterCar(context.Background(), carstypes.RegisterCarInput{
		VinCode:        "ABC123",
		Brand:          "Honda",
		Model:          "Civic",
		Year:           2021,
		Price:          decimal.NewFromInt(120000),
		Color:          "Silver",
		ProductionDate: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	return err
}

func (a *contractProviderApp) seedOrder() error {
	if err := a.seedCar(); err != nil {
		return err
	}
	a.mu.RLock()
	services := a.services
	a.mu.RUnlock()
	ctx := context.Background()
	if _, err := services.Customers.RegisterCustomer(ctx, "John Smith", "XYZ1", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		return err
	}
	_, err := services.Orders.PlaceOrder(ctx, orderstypes.PlaceOrderInput{
		CarID:      pacttest.ExistingCarID,
		CustomerID: pacttest.ExistingCustomerID,
		ExtraItems: []orderstypes.ExtraItemInput{{Description: "Insurance", Price: decimal.NewFromInt(5000)}},
	})
	return err
}
