package handlers

import (
	"context"
	"errors"
	"net/http"

	request "smart_oficina/internal/adapter/http/dto/request"
	response "smart_oficina/internal/adapter/http/dto/response"
	"smart_oficina/internal/domain/entities"
	"smart_oficina/internal/usecase"
	"smart_oficina/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidServiceOrderPayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)
)

// ServiceOrderHandler handles the service-order lifecycle routes: intake,
// diagnosis, budget decisions, execution moves, completion and delivery.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// Create opens a new order. When the payload sets start_diagnosis the order is
// saved and immediately moved into diagnosis in a single call.
func (h *ServiceOrderHandler) Create(c *gin.Context) {
	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}

	draft := payload.ToEntity()

	var (
		order entities.ServiceOrder
		err   error
	)
	if payload.StartDiagnosis {
		order, err = h.usecase.CreateAndStartDiagnosis(c.Request.Context(), draft)
	} else {
		order, err = h.usecase.Create(c.Request.Context(), draft)
	}
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) Edit(c *gin.Context) {
	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}
	if payload.ResolveID() == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	order, err := h.usecase.Update(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) Remove(c *gin.Context) {
	var payload request.ServiceOrderIDRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Remove(c.Request.Context(), payload.ResolveID()); err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ServiceOrderHandler) GetByID(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) List(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

// UpdateStatus applies a manual status move. The target must be a legal move
// from the current status or the call answers 409.
func (h *ServiceOrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateStatus(c.Request.Context(), payload.ResolveID(), payload.ResolveStatus(), payload.Notes)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) StartDiagnosis(c *gin.Context) {
	var payload request.ServiceOrderIDRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.StartDiagnosis(c.Request.Context(), payload.ResolveID())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// Diagnostic saves the diagnosis payload and sends the budget for approval.
func (h *ServiceOrderHandler) Diagnostic(c *gin.Context) {
	var payload request.DiagnosticRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.GenerateDiagnosticAndBudget(c.Request.Context(), payload.ResolveID(), usecase.DiagnosticInput{
		IdentifiedProblems:      payload.IdentifiedProblems,
		RequiredParts:           payload.Parts(),
		Services:                payload.ServiceItems(),
		EstimatedCompletionDate: payload.EstimatedCompletionDate,
		TechnicalObservations:   payload.TechnicalObservations,
	})
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) ApproveBudget(c *gin.Context) {
	h.patchOrderByRequest(c, h.usecase.ApproveBudget)
}

func (h *ServiceOrderHandler) RejectBudget(c *gin.Context) {
	h.patchOrderByRequest(c, h.usecase.RejectBudget)
}

func (h *ServiceOrderHandler) Complete(c *gin.Context) {
	var payload request.CompleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Complete(c.Request.Context(), payload.ResolveID(), usecase.CompletionInput{
		ExitChecklist:      toChecklistEntities(payload.ExitChecklist),
		TestDrive:          entities.TestDrive(payload.TestDrive),
		InvoiceNumber:      payload.InvoiceNumber,
		PaymentMethod:      payload.PaymentMethod,
		FinalTotalParts:    payload.FinalTotalParts,
		FinalTotalServices: payload.FinalTotalServices,
		FinalTotal:         payload.FinalTotal,
	})
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) Deliver(c *gin.Context) {
	var payload request.DeliverRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Deliver(c.Request.Context(), payload.ResolveID(), payload.PaymentMethod, payload.InvoiceNumber)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) patchOrderByRequest(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.ServiceOrder, error),
) {
	var payload request.ServiceOrderIDRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}

	order, err := updater(c.Request.Context(), payload.ResolveID())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func toChecklistEntities(items []request.ChecklistItemRequest) []entities.ChecklistItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.ChecklistItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.ChecklistItem(it))
	}
	return out
}

func mapServiceOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceOrderID),
		errors.Is(err, usecase.ErrMissingVehicle),
		errors.Is(err, usecase.ErrMissingReportedProblem),
		errors.Is(err, usecase.ErrMissingCompletionDate),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPaymentMethod):
		return pkg.NewDomainErrorSimple("MISSING_PAYMENT_METHOD", "Payment method is required before delivery", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrTransitionNotAllowed):
		return pkg.NewDomainErrorSimple("TRANSITION_NOT_ALLOWED", "Status transition not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
