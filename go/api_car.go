package devcarsserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	carhttpmapper "github.com/Apurer/devcars-api/internal/domains/cars/adapters/http/mapper"
	cardomain "github.com/Apurer/devcars-api/internal/domains/cars/domain"
	carports "github.com/Apurer/devcars-api/internal/domains/cars/ports"
)

// CarAPI wires HTTP transport with the cars bounded context service.
type CarAPI struct {
	service carports.Service
}

func NewCarAPI(service carports.Service) CarAPI {
	return CarAPI{service: service}
}

// Get /cars?status=available|sold|suspended
// Lists cars in a status; available when omitted.
func (api *CarAPI) ListCars(c *gin.Context) {
	status, err := cardomain.ParseStatus(c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	cars, err := api.service.ListByStatus(c.Request.Context(), status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carhttpmapper.ToCarItemList(cars))
}

// Get /cars/:id
func (api *CarAPI) GetCar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	car, err := api.service.GetCar(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carhttpmapper.ToCarDetails(car))
}

// Post /cars
func (api *CarAPI) RegisterCar(c *gin.Context) {
	var payload carhttpmapper.CreateCar
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	car, err := api.service.RegisterCar(c.Request.Context(), carhttpmapper.ToRegisterInput(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/cars/%d", car.ID))
	c.JSON(http.StatusCreated, carhttpmapper.ToCarDetails(car))
}

// Put /cars/:id
// Overwrites color and price.
func (api *CarAPI) UpdateCar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload carhttpmapper.UpdateCar
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	car, err := api.service.UpdateCar(c.Request.Context(), carhttpmapper.ToUpdateInput(id, payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carhttpmapper.ToCarDetails(car))
}

// Delete /cars/:id
// Withdraws the car from sale; cars are never removed.
func (api *CarAPI) SuspendCar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.SuspendCar(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
