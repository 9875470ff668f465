package request

import (
	"strings"
	"time"

	"smart_oficina/internal/domain/entities"
)

type VehicleSnapshotRequest struct {
	Plate string `json:"plate"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

type ClientSnapshotRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type ChecklistItemRequest struct {
	Description string `json:"description" binding:"required"`
	Checked     bool   `json:"checked"`
	Notes       string `json:"notes"`
}

type TestDriveRequest struct {
	Performed bool   `json:"performed"`
	Notes     string `json:"notes"`
}

// PartItemRequest and ServiceItemRequest intentionally omit total_price: row
// totals are always recomputed server-side.

type PartItemRequest struct {
	PartID        string  `json:"part_id"`
	Code          string  `json:"code"`
	Description   string  `json:"description" binding:"required"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	FromInventory bool    `json:"from_inventory"`
}

type ServiceItemRequest struct {
	ServiceID      string  `json:"service_id"`
	Code           string  `json:"code"`
	Description    string  `json:"description" binding:"required"`
	EstimatedHours float64 `json:"estimated_hours"`
	PricePerHour   float64 `json:"price_per_hour"`
}

// ServiceOrderRequest is the payload of the create and edit routes. The
// start_diagnosis flag covers the intake shortcut that saves a new draft and
// immediately opens the diagnosis stage.
type ServiceOrderRequest struct {
	ID                      string                 `json:"id"`
	VehicleID               string                 `json:"vehicle_id"`
	Vehicle                 VehicleSnapshotRequest `json:"vehicle"`
	Client                  ClientSnapshotRequest  `json:"client"`
	OpeningDate             time.Time              `json:"opening_date"`
	CurrentMileage          int                    `json:"current_mileage"`
	ReportedProblem         string                 `json:"reported_problem"`
	EntryChecklist          []ChecklistItemRequest `json:"entry_checklist"`
	FuelLevel               string                 `json:"fuel_level"`
	VisibleDamages          []string               `json:"visible_damages"`
	IdentifiedProblems      []string               `json:"identified_problems"`
	RequiredParts           []PartItemRequest      `json:"required_parts"`
	Services                []ServiceItemRequest   `json:"services"`
	EstimatedCompletionDate time.Time              `json:"estimated_completion_date"`
	TechnicalObservations   string                 `json:"technical_observations"`
	ExitChecklist           []ChecklistItemRequest `json:"exit_checklist"`
	TestDrive               TestDriveRequest       `json:"test_drive"`
	InvoiceNumber           string                 `json:"invoice_number"`
	PaymentMethod           string                 `json:"payment_method"`
	StartDiagnosis          bool                   `json:"start_diagnosis"`
}

func (r ServiceOrderRequest) ResolveID() string {
	return strings.TrimSpace(r.ID)
}

func (r ServiceOrderRequest) ToEntity() entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:                      r.ResolveID(),
		VehicleID:               r.VehicleID,
		Vehicle:                 entities.VehicleSnapshot(r.Vehicle),
		Client:                  entities.ClientSnapshot(r.Client),
		OpeningDate:             r.OpeningDate,
		CurrentMileage:          r.CurrentMileage,
		ReportedProblem:         r.ReportedProblem,
		EntryChecklist:          toChecklist(r.EntryChecklist),
		FuelLevel:               r.FuelLevel,
		VisibleDamages:          r.VisibleDamages,
		IdentifiedProblems:      r.IdentifiedProblems,
		RequiredParts:           toPartItems(r.RequiredParts),
		Services:                toServiceItems(r.Services),
		EstimatedCompletionDate: r.EstimatedCompletionDate,
		TechnicalObservations:   r.TechnicalObservations,
		ExitChecklist:           toChecklist(r.ExitChecklist),
		TestDrive:               entities.TestDrive(r.TestDrive),
		InvoiceNumber:           r.InvoiceNumber,
		PaymentMethod:           r.PaymentMethod,
	}
}

func toChecklist(items []ChecklistItemRequest) []entities.ChecklistItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.ChecklistItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.ChecklistItem(it))
	}
	return out
}

func toPartItems(items []PartItemRequest) []entities.PartItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.PartItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.PartItem{
			PartID:        it.PartID,
			Code:          it.Code,
			Description:   it.Description,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			FromInventory: it.FromInventory,
		})
	}
	return out
}

func toServiceItems(items []ServiceItemRequest) []entities.ServiceItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.ServiceItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.ServiceItem{
			ServiceID:      it.ServiceID,
			Code:           it.Code,
			Description:    it.Description,
			EstimatedHours: it.EstimatedHours,
			PricePerHour:   it.PricePerHour,
		})
	}
	return out
}
