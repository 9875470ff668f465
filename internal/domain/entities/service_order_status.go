package entities

// ServiceOrderStatus represents the lifecycle of a service order (ordem de serviço).
//
// Domain notes:
//   - The OS service is the source of truth for order state.
//   - Wire values are the pt-BR strings the web client already persists.
//   - Every status maps to a display label, a badge class and a stage ordinal.
//     The ordinal drives the stepper and the tab derivation: 0 canceled,
//     1 opening, 2 diagnosis, 3 execution, 4 completion.

type ServiceOrderStatus string

const (
	StatusAberta              ServiceOrderStatus = "aberta"
	StatusEmDiagnostico       ServiceOrderStatus = "em_diagnostico"
	StatusAguardandoAprovacao ServiceOrderStatus = "aguardando_aprovacao"
	StatusRejeitada           ServiceOrderStatus = "rejeitada"
	StatusAprovada            ServiceOrderStatus = "aprovada"
	StatusEmExecucao          ServiceOrderStatus = "em_execucao"
	StatusAguardandoPecas     ServiceOrderStatus = "aguardando_pecas"
	StatusFinalizada          ServiceOrderStatus = "finalizada"
	StatusEntregue            ServiceOrderStatus = "entregue"
	StatusCancelada           ServiceOrderStatus = "cancelada"
)

type statusInfo struct {
	Label      string
	BadgeClass string
	Stage      int
}

var statusTable = map[ServiceOrderStatus]statusInfo{
	StatusCancelada:           {Label: "Cancelada", BadgeClass: "bg-gray-100 text-gray-800", Stage: 0},
	StatusAberta:              {Label: "Aberta", BadgeClass: "bg-blue-100 text-blue-800", Stage: 1},
	StatusEmDiagnostico:       {Label: "Em diagnóstico", BadgeClass: "bg-yellow-100 text-yellow-800", Stage: 2},
	StatusAguardandoAprovacao: {Label: "Aguardando aprovação", BadgeClass: "bg-orange-100 text-orange-800", Stage: 2},
	StatusRejeitada:           {Label: "Rejeitada", BadgeClass: "bg-red-100 text-red-800", Stage: 2},
	StatusAprovada:            {Label: "Aprovada", BadgeClass: "bg-green-100 text-green-800", Stage: 3},
	StatusEmExecucao:          {Label: "Em execução", BadgeClass: "bg-indigo-100 text-indigo-800", Stage: 3},
	StatusAguardandoPecas:     {Label: "Aguardando peças", BadgeClass: "bg-amber-100 text-amber-800", Stage: 3},
	StatusFinalizada:          {Label: "Finalizada", BadgeClass: "bg-emerald-100 text-emerald-800", Stage: 4},
	StatusEntregue:            {Label: "Entregue", BadgeClass: "bg-teal-100 text-teal-800", Stage: 4},
}

// AllStatuses lists every valid status in stage order.
var AllStatuses = []ServiceOrderStatus{
	StatusCancelada,
	StatusAberta,
	StatusEmDiagnostico,
	StatusAguardandoAprovacao,
	StatusRejeitada,
	StatusAprovada,
	StatusEmExecucao,
	StatusAguardandoPecas,
	StatusFinalizada,
	StatusEntregue,
}

func (s ServiceOrderStatus) IsValid() bool {
	_, ok := statusTable[s]
	return ok
}

func (s ServiceOrderStatus) Label() string {
	return statusTable[s].Label
}

func (s ServiceOrderStatus) BadgeClass() string {
	return statusTable[s].BadgeClass
}

// Stage returns the stepper stage ordinal, or -1 for unknown statuses.
func (s ServiceOrderStatus) Stage() int {
	info, ok := statusTable[s]
	if !ok {
		return -1
	}
	return info.Stage
}

// IsTerminal reports whether no further operation is accepted for the status.
func (s ServiceOrderStatus) IsTerminal() bool {
	return s == StatusEntregue || s == StatusCancelada
}

// IsStatusEqualOrAfter compares stage ordinals. Unknown statuses never match.
func IsStatusEqualOrAfter(current, compare ServiceOrderStatus) bool {
	if !current.IsValid() || !compare.IsValid() {
		return false
	}
	return current.Stage() >= compare.Stage()
}
