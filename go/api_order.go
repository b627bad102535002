package devcarsserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/Apurer/devcars-api/internal/domains/orders/adapters/http/mapper"
	ordertypes "github.com/Apurer/devcars-api/internal/domains/orders/application/types"
	orderdomain "github.com/Apurer/devcars-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/devcars-api/internal/domains/orders/ports"
)

// OrderAPI wires HTTP transport with the orders bounded context service and workflows.
type OrderAPI struct {
	service   orderports.Service
	workflows orderports.WorkflowOrchestrator
}

// NewOrderAPI creates an OrderAPI. workflows may be nil to place orders through the service directly.
func NewOrderAPI(service orderports.Service, workflows orderports.WorkflowOrchestrator) OrderAPI {
	return OrderAPI{service: service, workflows: workflows}
}

// Post /customers/:id/orders
// The path id is the requested order identifier; the customer comes from the body.
func (api *OrderAPI) PlaceOrder(c *gin.Context) {
	requestedID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload orderhttpmapper.PlaceOrder
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	order, err := api.placeOrder(c.Request.Context(), orderhttpmapper.ToPlaceOrderInput(requestedID, payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/customers/%d/orders/%d", order.CustomerID, order.ID))
	c.JSON(http.StatusCreated, orderhttpmapper.ToOrderDetails(order))
}

func (api *OrderAPI) placeOrder(ctx context.Context, input ordertypes.PlaceOrderInput) (*orderdomain.Order, error) {
	if api.workflows != nil {
		return api.workflows.PlaceOrder(ctx, input)
	}
	return api.service.PlaceOrder(ctx, input)
}

// Get /customers/:id/orders/:orderId
func (api *OrderAPI) GetCustomerOrder(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.GetCustomerOrder(c.Request.Context(), customerID, orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.ToOrderDetails(order))
}

// Get /customers/:id/orders
func (api *OrderAPI) ListCustomerOrders(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	orders, err := api.service.ListCustomerOrders(c.Request.Context(), customerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.ToOrderSummaryList(orders))
}

// Get /orders
func (api *OrderAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.ToOrderSummaryList(orders))
}
