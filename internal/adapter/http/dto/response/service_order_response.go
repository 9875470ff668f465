package response

import (
	"time"

	"smart_oficina/internal/domain/entities"
)

// ServiceOrderResponse is the wire view of an order plus the derived stepper
// state, so clients render enablement straight from the server's transition
// rules instead of re-deriving them.

type ServiceOrderResponse struct {
	ID          string `json:"id"`
	OrderNumber int64  `json:"order_number"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	BadgeClass  string `json:"badge_class"`
	Stage       int    `json:"stage"`
	ActiveTab   string `json:"active_tab"`

	Steps []entities.StepState `json:"steps"`

	VehicleID string                   `json:"vehicle_id"`
	Vehicle   entities.VehicleSnapshot `json:"vehicle"`
	Client    entities.ClientSnapshot  `json:"client"`

	OpeningDate     time.Time                `json:"opening_date"`
	CurrentMileage  int                      `json:"current_mileage,omitempty"`
	ReportedProblem string                   `json:"reported_problem"`
	EntryChecklist  []entities.ChecklistItem `json:"entry_checklist,omitempty"`
	FuelLevel       string                   `json:"fuel_level,omitempty"`
	VisibleDamages  []string                 `json:"visible_damages,omitempty"`

	IdentifiedProblems      []string               `json:"identified_problems,omitempty"`
	RequiredParts           []entities.PartItem    `json:"required_parts,omitempty"`
	Services                []entities.ServiceItem `json:"services,omitempty"`
	EstimatedTotalParts     float64                `json:"estimated_total_parts"`
	EstimatedTotalServices  float64                `json:"estimated_total_services"`
	EstimatedTotal          float64                `json:"estimated_total"`
	EstimatedCompletionDate time.Time              `json:"estimated_completion_date,omitempty"`
	TechnicalObservations   string                 `json:"technical_observations,omitempty"`

	ApprovalLink   string `json:"approval_link,omitempty"`
	BudgetModified bool   `json:"budget_modified"`

	StatusHistory []entities.StatusHistoryEntry `json:"status_history,omitempty"`

	ExitChecklist      []entities.ChecklistItem `json:"exit_checklist,omitempty"`
	TestDrive          entities.TestDrive       `json:"test_drive"`
	InvoiceNumber      string                   `json:"invoice_number,omitempty"`
	PaymentMethod      string                   `json:"payment_method,omitempty"`
	FinalTotalParts    float64                  `json:"final_total_parts"`
	FinalTotalServices float64                  `json:"final_total_services"`
	FinalTotal         float64                  `json:"final_total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	steps := entities.StepperStates(o.Status, false)
	return ServiceOrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Status:      string(o.Status),
		StatusLabel: o.Status.Label(),
		BadgeClass:  o.Status.BadgeClass(),
		Stage:       o.Status.Stage(),
		ActiveTab:   string(entities.TabForStatus(o.Status, false)),
		Steps:       steps[:],

		VehicleID: o.VehicleID,
		Vehicle:   o.Vehicle,
		Client:    o.Client,

		OpeningDate:     o.OpeningDate,
		CurrentMileage:  o.CurrentMileage,
		ReportedProblem: o.ReportedProblem,
		EntryChecklist:  o.EntryChecklist,
		FuelLevel:       o.FuelLevel,
		VisibleDamages:  o.VisibleDamages,

		IdentifiedProblems:      o.IdentifiedProblems,
		RequiredParts:           o.RequiredParts,
		Services:                o.Services,
		EstimatedTotalParts:     o.EstimatedTotalParts,
		EstimatedTotalServices:  o.EstimatedTotalServices,
		EstimatedTotal:          o.EstimatedTotal,
		EstimatedCompletionDate: o.EstimatedCompletionDate,
		TechnicalObservations:   o.TechnicalObservations,

		ApprovalLink:   o.ApprovalLink,
		BudgetModified: o.BudgetModified,

		StatusHistory: o.StatusHistory,

		ExitChecklist:      o.ExitChecklist,
		TestDrive:          o.TestDrive,
		InvoiceNumber:      o.InvoiceNumber,
		PaymentMethod:      o.PaymentMethod,
		FinalTotalParts:    o.FinalTotalParts,
		FinalTotalServices: o.FinalTotalServices,
		FinalTotal:         o.FinalTotal,

		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
