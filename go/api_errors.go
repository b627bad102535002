package devcarsserver

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	carapp "github.com/Apurer/devcars-api/internal/domains/cars/application"
	cardomain "github.com/Apurer/devcars-api/internal/domains/cars/domain"
	carports "github.com/Apurer/devcars-api/internal/domains/cars/ports"
	customerapp "github.com/Apurer/devcars-api/internal/domains/customers/application"
	customerports "github.com/Apurer/devcars-api/internal/domains/customers/ports"
	orderapp "github.com/Apurer/devcars-api/internal/domains/orders/application"
	orderports "github.com/Apurer/devcars-api/internal/domains/orders/ports"
	apierrors "github.com/Apurer/devcars-api/internal/shared/errors"
)

var responder = newResponder(nil)

// errorRules classifies application failures. Order matters: a requested order
// id that is already taken is a bad request, not a validation failure.
var errorRules = []apierrors.Rule{
	{Kind: apierrors.KindNotFound, Errors: []error{
		carports.ErrNotFound,
		customerports.ErrNotFound,
		orderports.ErrNotFound,
		orderapp.ErrCarNotFound,
		orderapp.ErrCustomerNotFound,
	}},
	{Kind: apierrors.KindBadRequest, Errors: []error{orderapp.ErrOrderConflict}},
	{Kind: apierrors.KindValidation, Errors: []error{
		carapp.ErrInvalidInput,
		customerapp.ErrInvalidInput,
		orderapp.ErrInvalidInput,
		cardomain.ErrInvalidStatus,
	}},
	{Kind: apierrors.KindConflict, Errors: []error{
		carapp.ErrNotAvailable,
		carports.ErrVersionConflict,
		orderapp.ErrCarUnavailable,
		orderports.ErrDuplicate,
	}},
}

func newResponder(logger *slog.Logger) *apierrors.Responder {
	return apierrors.NewResponder(
		apierrors.WithBodylessNotFound(),
		apierrors.WithRules(errorRules...),
		apierrors.WithLogger(logger),
	)
}

// respondServiceError maps application errors onto status codes.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

// respondBadRequest reports malformed requests such as unparsable JSON.
func respondBadRequest(c *gin.Context, err error) {
	responder.Problem(c, apierrors.KindBadRequest, err.Error())
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		respondBadRequest(c, errors.New(name+" must be an integer"))
		return 0, false
	}
	return id, true
}
