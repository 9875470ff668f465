package entities

import "errors"

// ErrTransitionNotAllowed is returned when an operation is not legal for the
// order's current status.
var ErrTransitionNotAllowed = errors.New("status transition not allowed")

// Operation identifies a lifecycle action on a service order.
//
// The legacy client enforced transition legality through status comparisons
// scattered across components; here the whole table lives in one place and
// every mutating use case consults it before touching the repository.

type Operation string

const (
	OpStartDiagnosis Operation = "start_diagnosis"
	OpGenerateBudget Operation = "generate_budget"
	OpApproveBudget  Operation = "approve_budget"
	OpRejectBudget   Operation = "reject_budget"
	OpComplete       Operation = "complete"
	OpDeliver        Operation = "deliver"
	OpCancel         Operation = "cancel"
)

// transitions maps (operation, current status) to the resulting status.
// GenerateBudget accepts the approved/rejected states on purpose: editing an
// already decided budget re-routes the save into budget regeneration.
var transitions = map[Operation]map[ServiceOrderStatus]ServiceOrderStatus{
	OpStartDiagnosis: {
		StatusAberta: StatusEmDiagnostico,
	},
	OpGenerateBudget: {
		StatusEmDiagnostico:       StatusAguardandoAprovacao,
		StatusRejeitada:           StatusAguardandoAprovacao,
		StatusAprovada:            StatusAguardandoAprovacao,
		StatusAguardandoAprovacao: StatusAguardandoAprovacao,
	},
	OpApproveBudget: {
		StatusAguardandoAprovacao: StatusAprovada,
	},
	OpRejectBudget: {
		StatusAguardandoAprovacao: StatusRejeitada,
	},
	OpComplete: {
		StatusAprovada:        StatusFinalizada,
		StatusEmExecucao:      StatusFinalizada,
		StatusAguardandoPecas: StatusFinalizada,
	},
	OpDeliver: {
		StatusFinalizada: StatusEntregue,
	},
}

// NextStatus resolves the status an operation moves the order into.
func NextStatus(current ServiceOrderStatus, op Operation) (ServiceOrderStatus, error) {
	if op == OpCancel {
		if !current.IsValid() || current.IsTerminal() {
			return "", ErrTransitionNotAllowed
		}
		return StatusCancelada, nil
	}
	next, ok := transitions[op][current]
	if !ok {
		return "", ErrTransitionNotAllowed
	}
	return next, nil
}

// manualMoves lists the free-form status updates the execution stage may
// request directly (plus the rework edge out of a rejected budget).
var manualMoves = map[ServiceOrderStatus][]ServiceOrderStatus{
	StatusAberta:              {StatusEmDiagnostico},
	StatusEmDiagnostico:       {StatusAguardandoAprovacao},
	StatusAguardandoAprovacao: {StatusAprovada, StatusRejeitada},
	StatusRejeitada:           {StatusEmDiagnostico},
	StatusAprovada:            {StatusEmExecucao},
	StatusEmExecucao:          {StatusAguardandoPecas, StatusFinalizada},
	StatusAguardandoPecas:     {StatusEmExecucao, StatusFinalizada},
}

// CanMoveTo reports whether a manual status update from current to target is
// legal. Cancellation is always available outside terminal states.
func CanMoveTo(current, target ServiceOrderStatus) bool {
	if !current.IsValid() || !target.IsValid() {
		return false
	}
	if target == StatusCancelada {
		return !current.IsTerminal()
	}
	for _, allowed := range manualMoves[current] {
		if allowed == target {
			return true
		}
	}
	return false
}
