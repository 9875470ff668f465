package handlers

import (
	"context"
	"errors"
	"net/http"

	request "smart_oficina/internal/adapter/http/dto/request"
	response "smart_oficina/internal/adapter/http/dto/response"
	"smart_oficina/internal/usecase"
	"smart_oficina/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidApprovalPayload = pkg.NewDomainErrorSimple("INVALID_APPROVAL_INPUT", "Invalid approval payload", http.StatusBadRequest)
)

// BudgetApprovalHandler covers the employee-side link generation and the
// public token-scoped approval routes. The token routes carry no auth; the
// token itself is the credential.

type BudgetApprovalHandler struct {
	usecase usecase.IBudgetApprovalUseCase
}

func NewBudgetApprovalHandler(uc usecase.IBudgetApprovalUseCase) *BudgetApprovalHandler {
	return &BudgetApprovalHandler{usecase: uc}
}

func (h *BudgetApprovalHandler) GenerateApprovalLink(c *gin.Context) {
	var payload request.GenerateApprovalLinkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApprovalPayload.HTTPStatus, errInvalidApprovalPayload.ToHTTPError())
		return
	}

	link, err := h.usecase.GenerateApprovalLink(c.Request.Context(), payload.ResolveID())
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApprovalLink(link))
}

// ApprovalDetails resolves the order behind a token. After a decision it keeps
// answering 200 with the outcome message so the shared link never dead-ends.
func (h *BudgetApprovalHandler) ApprovalDetails(c *gin.Context) {
	details, err := h.usecase.GetApprovalDetails(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApprovalDetails(details))
}

func (h *BudgetApprovalHandler) ApproveExternal(c *gin.Context) {
	h.decideByToken(c, h.usecase.ApproveExternal)
}

func (h *BudgetApprovalHandler) RejectExternal(c *gin.Context) {
	h.decideByToken(c, h.usecase.RejectExternal)
}

func (h *BudgetApprovalHandler) decideByToken(
	c *gin.Context,
	decide func(ctx context.Context, token string) (usecase.BudgetApprovalDetails, error),
) {
	var payload request.ExternalDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApprovalPayload.HTTPStatus, errInvalidApprovalPayload.ToHTTPError())
		return
	}

	details, err := decide(c.Request.Context(), payload.ResolveToken())
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApprovalDetails(details))
}

func mapApprovalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidApprovalToken), errors.Is(err, usecase.ErrInvalidServiceOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrApprovalNotFound), errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainErrorSimple("APPROVAL_NOT_FOUND", "Approval not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotAwaitingApproval):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_AWAITING_APPROVAL", "Budget is not awaiting approval", http.StatusConflict)
	case errors.Is(err, usecase.ErrApprovalAlreadyDecided):
		return pkg.NewDomainErrorSimple("APPROVAL_ALREADY_DECIDED", "Budget approval already decided", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
