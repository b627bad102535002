package devcarsserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, e.g. 120000 rather than "120000".
	decimal.MarshalJSONWithoutQuotes = true
}

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the handlers for every bounded context.
type ApiHandleFunctions struct {
	CarAPI      CarAPI
	CustomerAPI CustomerAPI
	OrderAPI    OrderAPI
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the DevCars routes to an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

// DefaultHandleFunc answers routes that have no handler wired.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{"ListCars", http.MethodGet, "/cars", handleFunctions.CarAPI.ListCars},
		{"RegisterCar", http.MethodPost, "/cars", handleFunctions.CarAPI.RegisterCar},
		{"GetCar", http.MethodGet, "/cars/:id", handleFunctions.CarAPI.GetCar},
		{"UpdateCar", http.MethodPut, "/cars/:id", handleFunctions.CarAPI.UpdateCar},
		{"SuspendCar", http.MethodDelete, "/cars/:id", handleFunctions.CarAPI.SuspendCar},
		{"ListCustomers", http.MethodGet, "/customers", handleFunctions.CustomerAPI.ListCustomers},
		{"RegisterCustomer", http.MethodPost, "/customers", handleFunctions.CustomerAPI.RegisterCustomer},
		{"GetCustomer", http.MethodGet, "/customers/:id", handleFunctions.CustomerAPI.GetCustomer},
		{"ListCustomerOrders", http.MethodGet, "/customers/:id/orders", handleFunctions.OrderAPI.ListCustomerOrders},
		{"PlaceOrder", http.MethodPost, "/customers/:id/orders", handleFunctions.OrderAPI.PlaceOrder},
		{"GetCustomerOrder", http.MethodGet, "/customers/:id/orders/:orderId", handleFunctions.OrderAPI.GetCustomerOrder},
		{"ListOrders", http.MethodGet, "/orders", handleFunctions.OrderAPI.ListOrders},
	}
}
