package routes

import (
	"smart_oficina/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/service-orders"
	PathParts         = "/parts"
)

func addServiceOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.ServiceOrderHandler, approvalHandler *handlers.BudgetApprovalHandler) {
	orders := rg.Group(PathServiceOrders)
	{
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.GetByID)
		orders.POST("/create", orderHandler.Create)
		orders.POST("/edit", orderHandler.Edit)
		orders.POST("/remove", orderHandler.Remove)
		orders.POST("/status/update", orderHandler.UpdateStatus)
		orders.POST("/start-diagnosis", orderHandler.StartDiagnosis)
		orders.POST("/diagnostic", orderHandler.Diagnostic)
		orders.POST("/budget/approve", orderHandler.ApproveBudget)
		orders.POST("/budget/reject", orderHandler.RejectBudget)
		orders.POST("/budget/generate-approval-link", approvalHandler.GenerateApprovalLink)
		orders.POST("/complete", orderHandler.Complete)
		orders.POST("/deliver", orderHandler.Deliver)
	}
}

func addInventoryRoutes(rg *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler) {
	parts := rg.Group(PathParts)
	{
		parts.POST("/check-availability", inventoryHandler.CheckAvailability)
		parts.GET("/:id/stock", inventoryHandler.GetPartStock)
	}
}

// addPublicApprovalRoutes registers the token-scoped approval flow. These
// routes are unauthenticated; the opaque token scopes every call to one order.
func addPublicApprovalRoutes(rg *gin.RouterGroup, approvalHandler *handlers.BudgetApprovalHandler) {
	budget := rg.Group(PathServiceOrders + "/budget")
	{
		budget.GET("/approval-details/:token", approvalHandler.ApprovalDetails)
		budget.POST("/approve-external", approvalHandler.ApproveExternal)
		budget.POST("/reject-external", approvalHandler.RejectExternal)
	}
}
