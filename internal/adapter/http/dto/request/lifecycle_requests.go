package request

import (
	"strings"
	"time"

	"smart_oficina/internal/domain/entities"
)

// The lifecycle routes all take the order id in the body, mirroring the
// surface the web client already calls.

type ServiceOrderIDRequest struct {
	ID string `json:"id" binding:"required"`
}

func (r ServiceOrderIDRequest) ResolveID() string {
	return strings.TrimSpace(r.ID)
}

type StatusUpdateRequest struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

func (r StatusUpdateRequest) ResolveID() string {
	return strings.TrimSpace(r.ID)
}

func (r StatusUpdateRequest) ResolveStatus() entities.ServiceOrderStatus {
	return entities.ServiceOrderStatus(strings.TrimSpace(r.Status))
}

type DiagnosticRequest struct {
	ID                      string               `json:"id" binding:"required"`
	IdentifiedProblems      []string             `json:"identified_problems"`
	RequiredParts           []PartItemRequest    `json:"required_parts"`
	Services                []ServiceItemRequest `json:"services"`
	EstimatedCompletionDate time.Time            `json:"estimated_completion_date"`
	TechnicalObservations   string               `json:"technical_observations"`
}

func (r DiagnosticRequest) ResolveID() string {
	return strings.TrimSpace(r.ID)
}

func (r DiagnosticRequest) Parts() []entities.PartItem {
	return toPartItems(r.RequiredParts)
}

func (r DiagnosticRequest) ServiceItems() []entities.ServiceItem {
	return toServiceItems(r.Services)
}

// CompleteRequest finalizes an order. Final totals are optional; zero values
// fall back to the recomputed estimate totals.
type CompleteRequest struct {
	ID                 string                 `json:"id" binding:"required"`
	ExitChecklist      []ChecklistItemRequest `json:"exit_checklist"`
	TestDrive          TestDriveRequest       `json:"test_drive"`
	InvoiceNumber      string                 `json:"invoice_number"`
	PaymentMethod      string                 `json:"payment_method"`
	FinalTotalParts    float64                `json:"final_total_parts"`
	FinalTotalServices float64                `json:"final_total_services"`
	FinalTotal         float64                `json:"final_total"`
}

func (r CompleteRequest) ResolveID() string {
	return strings.TrimSpace(r.ID)
}

type DeliverRequest struct {
	ID            string `json:"id" binding:"required"`
	PaymentMethod string `json:"payment_method"`
	InvoiceNumber string `json:"invoice_number"`
}

func (r DeliverRequest) ResolveID() string {
	return strings.TrimSpace(r.ID)
}

type GenerateApprovalLinkRequest struct {
	ServiceOrderID string `json:"service_order_id" binding:"required"`
}

func (r GenerateApprovalLinkRequest) ResolveID() string {
	return strings.TrimSpace(r.ServiceOrderID)
}

type CheckAvailabilityRequest struct {
	ServiceOrderID string `json:"service_order_id" binding:"required"`
}

func (r CheckAvailabilityRequest) ResolveID() string {
	return strings.TrimSpace(r.ServiceOrderID)
}

type ExternalDecisionRequest struct {
	Token string `json:"token" binding:"required"`
}

func (r ExternalDecisionRequest) ResolveToken() string {
	return strings.TrimSpace(r.Token)
}
