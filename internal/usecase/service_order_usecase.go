package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"smart_oficina/internal/domain/entities"
	"smart_oficina/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceOrderNotFound   = errors.New("service order not found")
	ErrInvalidServiceOrderID  = errors.New("invalid service order id")
	ErrMissingVehicle         = errors.New("missing vehicle")
	ErrMissingReportedProblem = errors.New("missing reported problem")
	ErrMissingCompletionDate  = errors.New("missing estimated completion date")
	ErrMissingPaymentMethod   = errors.New("missing payment method")
	ErrInvalidStatus          = errors.New("invalid status")
)

// DiagnosticInput carries the diagnosis payload of POST /service-orders/diagnostic.
// Row and order totals sent by clients are previews; the use case recomputes
// everything before persisting.

type DiagnosticInput struct {
	IdentifiedProblems      []string
	RequiredParts           []entities.PartItem
	Services                []entities.ServiceItem
	EstimatedCompletionDate time.Time
	TechnicalObservations   string
}

// CompletionInput carries the payload of POST /service-orders/complete. Final
// totals left at zero default to the recomputed estimate totals.

type CompletionInput struct {
	ExitChecklist      []entities.ChecklistItem
	TestDrive          entities.TestDrive
	InvoiceNumber      string
	PaymentMethod      string
	FinalTotalParts    float64
	FinalTotalServices float64
	FinalTotal         float64
}

// IServiceOrderUseCase exposes the service-order lifecycle operations.
//
// Each mutating operation consults the transition table before touching the
// repository and returns the full recomputed order; callers adopt the returned
// record wholesale.

type IServiceOrderUseCase interface {
	Create(ctx context.Context, draft entities.ServiceOrder) (entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Remove(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	StartDiagnosis(ctx context.Context, id string) (entities.ServiceOrder, error)
	CreateAndStartDiagnosis(ctx context.Context, draft entities.ServiceOrder) (entities.ServiceOrder, error)
	GenerateDiagnosticAndBudget(ctx context.Context, id string, diag DiagnosticInput) (entities.ServiceOrder, error)
	ApproveBudget(ctx context.Context, id string) (entities.ServiceOrder, error)
	RejectBudget(ctx context.Context, id string) (entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.ServiceOrderStatus, notes string) (entities.ServiceOrder, error)
	Complete(ctx context.Context, id string, input CompletionInput) (entities.ServiceOrder, error)
	Deliver(ctx context.Context, id, paymentMethod, invoiceNumber string) (entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	repo interfaces.IServiceOrderRepository
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(repo interfaces.IServiceOrderRepository) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo}
}

// Create opens a new order. Opening validation requires a vehicle and a
// non-blank reported problem before anything is persisted.
func (u *ServiceOrderUseCase) Create(ctx context.Context, draft entities.ServiceOrder) (entities.ServiceOrder, error) {
	draft.VehicleID = strings.TrimSpace(draft.VehicleID)
	if draft.VehicleID == "" {
		return entities.ServiceOrder{}, ErrMissingVehicle
	}
	if !draft.HasReportedProblem() {
		return entities.ServiceOrder{}, ErrMissingReportedProblem
	}

	number, err := u.repo.NextOrderNumber(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.OrderNumber = number
	draft.Status = entities.StatusAberta
	if draft.OpeningDate.IsZero() {
		draft.OpeningDate = now
	}
	if len(draft.EntryChecklist) == 0 {
		draft.EntryChecklist = entities.DefaultEntryChecklist()
	}
	draft.StatusHistory = nil
	draft.AppendHistory(entities.StatusAberta, "Ordem de serviço aberta", now)
	draft.ApprovalToken = ""
	draft.ApprovalLink = ""
	draft.BudgetModified = false
	draft.RecomputeTotals()
	draft.CreatedAt = now
	draft.UpdatedAt = now

	return u.repo.Create(ctx, draft)
}

// Update is the generic save. Server-owned fields (status, history, approval
// token, order number) are carried over from the stored record. Editing the
// budget of an already decided order flips the budget-modified flag so the
// next save re-routes into budget generation.
func (u *ServiceOrderUseCase) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	current, err := u.load(ctx, o.ID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	merged := current
	merged.VehicleID = strings.TrimSpace(o.VehicleID)
	if merged.VehicleID == "" {
		return entities.ServiceOrder{}, ErrMissingVehicle
	}
	merged.Vehicle = o.Vehicle
	merged.Client = o.Client
	if !o.OpeningDate.IsZero() {
		merged.OpeningDate = o.OpeningDate
	}
	merged.CurrentMileage = o.CurrentMileage
	merged.ReportedProblem = o.ReportedProblem
	if len(o.EntryChecklist) > 0 {
		merged.EntryChecklist = o.EntryChecklist
	}
	merged.FuelLevel = o.FuelLevel
	merged.VisibleDamages = o.VisibleDamages
	merged.IdentifiedProblems = o.IdentifiedProblems
	merged.RequiredParts = o.RequiredParts
	merged.Services = o.Services
	merged.EstimatedCompletionDate = o.EstimatedCompletionDate
	merged.TechnicalObservations = o.TechnicalObservations
	merged.ExitChecklist = o.ExitChecklist
	merged.TestDrive = o.TestDrive
	merged.InvoiceNumber = o.InvoiceNumber
	merged.PaymentMethod = o.PaymentMethod
	merged.RecomputeTotals()

	if budgetChanged(current, merged) {
		switch current.Status {
		case entities.StatusAprovada, entities.StatusRejeitada, entities.StatusAguardandoAprovacao:
			merged.BudgetModified = true
		}
	}
	merged.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, merged)
}

func budgetChanged(before, after entities.ServiceOrder) bool {
	return !reflect.DeepEqual(before.RequiredParts, after.RequiredParts) ||
		!reflect.DeepEqual(before.Services, after.Services)
}

func (u *ServiceOrderUseCase) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceOrderID
	}
	if _, err := u.load(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.load(ctx, id)
}

func (u *ServiceOrderUseCase) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.repo.List(ctx)
}

// StartDiagnosis moves an open order into diagnosis.
func (u *ServiceOrderUseCase) StartDiagnosis(ctx context.Context, id string) (entities.ServiceOrder, error) {
	o, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.transition(ctx, o, entities.OpStartDiagnosis, "Diagnóstico iniciado")
}

// CreateAndStartDiagnosis covers the intake shortcut: a draft with no id is
// persisted and immediately moved into diagnosis.
func (u *ServiceOrderUseCase) CreateAndStartDiagnosis(ctx context.Context, draft entities.ServiceOrder) (entities.ServiceOrder, error) {
	created, err := u.Create(ctx, draft)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.transition(ctx, created, entities.OpStartDiagnosis, "Diagnóstico iniciado")
}

// GenerateDiagnosticAndBudget persists the diagnosis and sends the budget for
// client approval. A missing estimated completion date aborts before any
// repository call.
func (u *ServiceOrderUseCase) GenerateDiagnosticAndBudget(ctx context.Context, id string, diag DiagnosticInput) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	if diag.EstimatedCompletionDate.IsZero() {
		return entities.ServiceOrder{}, ErrMissingCompletionDate
	}

	o, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	next, err := entities.NextStatus(o.Status, entities.OpGenerateBudget)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	now := time.Now().UTC()
	o.IdentifiedProblems = diag.IdentifiedProblems
	o.RequiredParts = diag.RequiredParts
	o.Services = diag.Services
	o.EstimatedCompletionDate = diag.EstimatedCompletionDate
	o.TechnicalObservations = diag.TechnicalObservations
	o.RecomputeTotals()
	if o.ApprovalToken == "" {
		o.ApprovalToken = uuid.NewString()
	}
	o.BudgetModified = false
	o.Status = next
	o.AppendHistory(next, "Orçamento gerado e enviado para aprovação", now)
	o.UpdatedAt = now

	return u.repo.Update(ctx, o)
}

func (u *ServiceOrderUseCase) ApproveBudget(ctx context.Context, id string) (entities.ServiceOrder, error) {
	o, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	o.ApprovalLink = ""
	return u.transition(ctx, o, entities.OpApproveBudget, "Orçamento aprovado pelo cliente")
}

func (u *ServiceOrderUseCase) RejectBudget(ctx context.Context, id string) (entities.ServiceOrder, error) {
	o, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	o.ApprovalLink = ""
	return u.transition(ctx, o, entities.OpRejectBudget, "Orçamento rejeitado pelo cliente")
}

// UpdateStatus applies a manual status move from the execution stage. Legality
// comes from the transition table, not from the caller.
func (u *ServiceOrderUseCase) UpdateStatus(ctx context.Context, id string, status entities.ServiceOrderStatus, notes string) (entities.ServiceOrder, error) {
	if !status.IsValid() {
		return entities.ServiceOrder{}, ErrInvalidStatus
	}
	o, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if !entities.CanMoveTo(o.Status, status) {
		return entities.ServiceOrder{}, entities.ErrTransitionNotAllowed
	}

	now := time.Now().UTC()
	o.Status = status
	if status == entities.StatusAguardandoAprovacao && o.ApprovalToken == "" {
		o.ApprovalToken = uuid.NewString()
	}
	o.AppendHistory(status, notes, now)
	o.UpdatedAt = now

	return u.repo.Update(ctx, o)
}

// Complete finalizes the order. Final totals default to the estimate totals
// when the payload leaves them at zero.
func (u *ServiceOrderUseCase) Complete(ctx context.Context, id string, input CompletionInput) (entities.ServiceOrder, error) {
	o, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	next, err := entities.NextStatus(o.Status, entities.OpComplete)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	now := time.Now().UTC()
	o.ExitChecklist = input.ExitChecklist
	o.TestDrive = input.TestDrive
	o.InvoiceNumber = strings.TrimSpace(input.InvoiceNumber)
	if pm := strings.TrimSpace(input.PaymentMethod); pm != "" {
		o.PaymentMethod = pm
	}
	o.RecomputeTotals()
	o.FinalTotalParts = input.FinalTotalParts
	o.FinalTotalServices = input.FinalTotalServices
	o.FinalTotal = input.FinalTotal
	if o.FinalTotalParts == 0 {
		o.FinalTotalParts = o.EstimatedTotalParts
	}
	if o.FinalTotalServices == 0 {
		o.FinalTotalServices = o.EstimatedTotalServices
	}
	if o.FinalTotal == 0 {
		o.FinalTotal = o.FinalTotalParts + o.FinalTotalServices
	}
	o.Status = next
	o.AppendHistory(next, "Serviço finalizado", now)
	o.UpdatedAt = now

	return u.repo.Update(ctx, o)
}

// Deliver hands the vehicle back. A payment method must exist, either stored
// or in the request, before any transition is attempted.
func (u *ServiceOrderUseCase) Deliver(ctx context.Context, id, paymentMethod, invoiceNumber string) (entities.ServiceOrder, error) {
	o, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if pm := strings.TrimSpace(paymentMethod); pm != "" {
		o.PaymentMethod = pm
	}
	if strings.TrimSpace(o.PaymentMethod) == "" {
		return entities.ServiceOrder{}, ErrMissingPaymentMethod
	}
	if inv := strings.TrimSpace(invoiceNumber); inv != "" {
		o.InvoiceNumber = inv
	}
	return u.transition(ctx, o, entities.OpDeliver, "Veículo entregue ao cliente")
}

func (u *ServiceOrderUseCase) transition(ctx context.Context, o entities.ServiceOrder, op entities.Operation, notes string) (entities.ServiceOrder, error) {
	next, err := entities.NextStatus(o.Status, op)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	now := time.Now().UTC()
	o.Status = next
	o.AppendHistory(next, notes, now)
	o.UpdatedAt = now
	return u.repo.Update(ctx, o)
}

func (u *ServiceOrderUseCase) load(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return o, nil
}
