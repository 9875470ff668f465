package entities

import (
	"strings"
	"time"
)

// PartItem is one required-part row of a diagnosis.
//
// TotalPrice is always recomputed from Quantity and UnitPrice; it is never
// accepted from callers as an independently edited value.

type PartItem struct {
	PartID        string  `json:"part_id,omitempty"`
	Code          string  `json:"code,omitempty"`
	Description   string  `json:"description"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	TotalPrice    float64 `json:"total_price"`
	FromInventory bool    `json:"from_inventory"`
}

// ServiceItem is one labor row of a diagnosis. Same recomputation rule as
// PartItem, over EstimatedHours and PricePerHour.

type ServiceItem struct {
	ServiceID      string  `json:"service_id,omitempty"`
	Code           string  `json:"code,omitempty"`
	Description    string  `json:"description"`
	EstimatedHours float64 `json:"estimated_hours"`
	PricePerHour   float64 `json:"price_per_hour"`
	TotalPrice     float64 `json:"total_price"`
}

type ChecklistItem struct {
	Description string `json:"description"`
	Checked     bool   `json:"checked"`
	Notes       string `json:"notes,omitempty"`
}

type TestDrive struct {
	Performed bool   `json:"performed"`
	Notes     string `json:"notes,omitempty"`
}

// StatusHistoryEntry is one append-only record of a status change. The history
// is owned by the server; clients never write it directly.

type StatusHistoryEntry struct {
	Status    ServiceOrderStatus `json:"status"`
	Notes     string             `json:"notes,omitempty"`
	ChangedAt time.Time          `json:"changed_at"`
}

// VehicleSnapshot and ClientSnapshot are denormalized display copies taken at
// intake time; the authoritative records live in the fleet/client services.

type VehicleSnapshot struct {
	Plate string `json:"plate,omitempty"`
	Brand string `json:"brand,omitempty"`
	Model string `json:"model,omitempty"`
	Year  int    `json:"year,omitempty"`
}

type ClientSnapshot struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// ServiceOrder is the repair ticket aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (approval_token-index): approval_token
//
// Monetary representation follows the estimate convention: float64 totals,
// recomputed server-side on every mutation. Totals sent by clients are
// previews only and are discarded.

type ServiceOrder struct {
	ID          string             `json:"id"`
	OrderNumber int64              `json:"order_number"`
	Status      ServiceOrderStatus `json:"status"`

	VehicleID string          `json:"vehicle_id"`
	Vehicle   VehicleSnapshot `json:"vehicle,omitempty"`
	Client    ClientSnapshot  `json:"client,omitempty"`

	// Opening stage.
	OpeningDate     time.Time       `json:"opening_date"`
	CurrentMileage  int             `json:"current_mileage,omitempty"`
	ReportedProblem string          `json:"reported_problem"`
	EntryChecklist  []ChecklistItem `json:"entry_checklist,omitempty"`
	FuelLevel       string          `json:"fuel_level,omitempty"`
	VisibleDamages  []string        `json:"visible_damages,omitempty"`

	// Diagnosis stage.
	IdentifiedProblems      []string      `json:"identified_problems,omitempty"`
	RequiredParts           []PartItem    `json:"required_parts,omitempty"`
	Services                []ServiceItem `json:"services,omitempty"`
	EstimatedTotalParts     float64       `json:"estimated_total_parts"`
	EstimatedTotalServices  float64       `json:"estimated_total_services"`
	EstimatedTotal          float64       `json:"estimated_total"`
	EstimatedCompletionDate time.Time     `json:"estimated_completion_date,omitempty"`
	TechnicalObservations   string        `json:"technical_observations,omitempty"`

	// Budget approval.
	ApprovalToken  string `json:"approval_token,omitempty"`
	ApprovalLink   string `json:"approval_link,omitempty"`
	BudgetModified bool   `json:"budget_modified"`

	// Execution stage.
	StatusHistory []StatusHistoryEntry `json:"status_history,omitempty"`

	// Completion stage.
	ExitChecklist      []ChecklistItem `json:"exit_checklist,omitempty"`
	TestDrive          TestDrive       `json:"test_drive,omitempty"`
	InvoiceNumber      string          `json:"invoice_number,omitempty"`
	PaymentMethod      string          `json:"payment_method,omitempty"`
	FinalTotalParts    float64         `json:"final_total_parts"`
	FinalTotalServices float64         `json:"final_total_services"`
	FinalTotal         float64         `json:"final_total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultEntryChecklist returns the 12 intake inspection points seeded on
// every new order whose checklist is still empty.
func DefaultEntryChecklist() []ChecklistItem {
	points := []string{
		"Faróis e lanternas",
		"Setas e pisca-alerta",
		"Buzina",
		"Freios",
		"Pneus e estepe",
		"Nível de óleo",
		"Bateria",
		"Limpadores de para-brisa",
		"Retrovisores",
		"Vidros e travas",
		"Estofados e acabamento interno",
		"Documentos no veículo",
	}
	items := make([]ChecklistItem, 0, len(points))
	for _, p := range points {
		items = append(items, ChecklistItem{Description: p})
	}
	return items
}

// RecomputeTotals re-derives every row total and the order-level estimate
// totals. Called on every mutation so stored totals never drift from their
// inputs.
func (o *ServiceOrder) RecomputeTotals() {
	o.EstimatedTotalParts = 0
	for i := range o.RequiredParts {
		p := &o.RequiredParts[i]
		p.TotalPrice = float64(p.Quantity) * p.UnitPrice
		o.EstimatedTotalParts += p.TotalPrice
	}
	o.EstimatedTotalServices = 0
	for i := range o.Services {
		s := &o.Services[i]
		s.TotalPrice = s.EstimatedHours * s.PricePerHour
		o.EstimatedTotalServices += s.TotalPrice
	}
	o.EstimatedTotal = o.EstimatedTotalParts + o.EstimatedTotalServices
}

// AppendHistory records a status change. History is append-only.
func (o *ServiceOrder) AppendHistory(status ServiceOrderStatus, notes string, at time.Time) {
	o.StatusHistory = append(o.StatusHistory, StatusHistoryEntry{
		Status:    status,
		Notes:     notes,
		ChangedAt: at,
	})
}

// HasReportedProblem reports whether intake captured a non-blank problem
// description.
func (o *ServiceOrder) HasReportedProblem() bool {
	return strings.TrimSpace(o.ReportedProblem) != ""
}

// InventoryParts returns the required-part rows backed by the parts inventory.
func (o *ServiceOrder) InventoryParts() []PartItem {
	var out []PartItem
	for _, p := range o.RequiredParts {
		if p.FromInventory && strings.TrimSpace(p.PartID) != "" {
			out = append(out, p)
		}
	}
	return out
}
