package devcarsserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	customerhttpmapper "github.com/Apurer/devcars-api/internal/domains/customers/adapters/http/mapper"
	customerports "github.com/Apurer/devcars-api/internal/domains/customers/ports"
)

// CustomerAPI wires HTTP transport with the customers bounded context service.
type CustomerAPI struct {
	service customerports.Service
}

func NewCustomerAPI(service customerports.Service) CustomerAPI {
	return CustomerAPI{service: service}
}

// Get /customers
func (api *CustomerAPI) ListCustomers(c *gin.Context) {
	customers, err := api.service.ListCustomers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerhttpmapper.ToCustomerList(customers))
}

// Get /customers/:id
func (api *CustomerAPI) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	customer, err := api.service.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerhttpmapper.ToCustomer(customer))
}

// Post /customers
func (api *CustomerAPI) RegisterCustomer(c *gin.Context) {
	var payload customerhttpmapper.CreateCustomer
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	customer, err := api.service.RegisterCustomer(c.Request.Context(), payload.FullName, payload.Document, payload.BirthDate.Time)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/customers/%d", customer.ID))
	c.JSON(http.StatusCreated, customerhttpmapper.ToCustomer(customer))
}
