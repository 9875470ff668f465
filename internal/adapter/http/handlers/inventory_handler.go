package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "smart_oficina/internal/adapter/http/dto/request"
	response "smart_oficina/internal/adapter/http/dto/response"
	"smart_oficina/internal/usecase"
	"smart_oficina/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInventoryPayload = pkg.NewDomainErrorSimple("INVALID_INVENTORY_INPUT", "Invalid inventory payload", http.StatusBadRequest)
)

// InventoryHandler exposes the two stock checks of the diagnosis stage.

type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

// CheckAvailability runs the advisory batch check over every inventory part of
// the order.
func (h *InventoryHandler) CheckAvailability(c *gin.Context) {
	var payload request.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInventoryPayload.HTTPStatus, errInvalidInventoryPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.CheckOrderAvailability(c.Request.Context(), payload.ResolveID())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPartsAvailability(result))
}

// GetPartStock answers the blocking single-item check. Quantity comes from the
// query string and defaults to 1.
func (h *InventoryHandler) GetPartStock(c *gin.Context) {
	quantity := 1
	if raw := c.Query("quantity"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(errInvalidInventoryPayload.HTTPStatus, errInvalidInventoryPayload.ToHTTPError())
			return
		}
		quantity = parsed
	}

	check, err := h.usecase.CheckPartStock(c.Request.Context(), c.Param("id"), quantity)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPartStockCheck(check))
}

func mapInventoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPartID),
		errors.Is(err, usecase.ErrInvalidPartQuantity),
		errors.Is(err, usecase.ErrInvalidServiceOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartsGatewayNotReady):
		return pkg.NewDomainErrorSimple("PARTS_GATEWAY_UNAVAILABLE", "Parts inventory service unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
