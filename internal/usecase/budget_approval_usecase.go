package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"smart_oficina/internal/domain/entities"
	"smart_oficina/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidApprovalToken        = errors.New("invalid approval token")
	ErrApprovalNotFound            = errors.New("approval not found")
	ErrBudgetNotAwaitingApproval   = errors.New("budget not awaiting approval")
	ErrApprovalAlreadyDecided      = errors.New("budget approval already decided")
	ErrMissingApprovalBaseURL      = errors.New("missing approval base url")
	errApprovalOrderMissingMessage = "O orçamento não está mais disponível."
)

// ApprovalLink is the sharable client-facing approval bundle: the opaque link
// plus the pre-filled message for each share channel.

type ApprovalLink struct {
	Token       string `json:"token"`
	Link        string `json:"link"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
	MailtoURL   string `json:"mailto_url"`
}

// BudgetApprovalDetails is what the unauthenticated approval page renders:
// the order snapshot, whether a decision is still pending and, once decided,
// the outcome message shown instead of the action buttons.

type BudgetApprovalDetails struct {
	ServiceOrder    entities.ServiceOrder `json:"service_order"`
	ApprovalPending bool                  `json:"approval_pending"`
	Message         string                `json:"message,omitempty"`
}

// IBudgetApprovalUseCase covers the token-scoped external approval flow and
// the employee-side link generation.

type IBudgetApprovalUseCase interface {
	GenerateApprovalLink(ctx context.Context, serviceOrderID string) (ApprovalLink, error)
	GetApprovalDetails(ctx context.Context, token string) (BudgetApprovalDetails, error)
	ApproveExternal(ctx context.Context, token string) (BudgetApprovalDetails, error)
	RejectExternal(ctx context.Context, token string) (BudgetApprovalDetails, error)
}

type BudgetApprovalUseCase struct {
	repo    interfaces.IServiceOrderRepository
	baseURL string
}

var _ IBudgetApprovalUseCase = (*BudgetApprovalUseCase)(nil)

func NewBudgetApprovalUseCase(repo interfaces.IServiceOrderRepository, baseURL string) *BudgetApprovalUseCase {
	return &BudgetApprovalUseCase{repo: repo, baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
}

// GenerateApprovalLink is idempotent: an order that already carries a token
// gets the same link back, so reloading the diagnosis tab never mints a second
// token for the same budget.
func (u *BudgetApprovalUseCase) GenerateApprovalLink(ctx context.Context, serviceOrderID string) (ApprovalLink, error) {
	serviceOrderID = strings.TrimSpace(serviceOrderID)
	if serviceOrderID == "" {
		return ApprovalLink{}, ErrInvalidServiceOrderID
	}
	if u.baseURL == "" {
		return ApprovalLink{}, ErrMissingApprovalBaseURL
	}

	o, err := u.repo.GetByID(ctx, serviceOrderID)
	if err != nil {
		return ApprovalLink{}, err
	}
	if o.ID == "" {
		return ApprovalLink{}, ErrServiceOrderNotFound
	}
	if o.Status != entities.StatusAguardandoAprovacao {
		return ApprovalLink{}, ErrBudgetNotAwaitingApproval
	}

	link := u.linkFor(o.ApprovalToken)
	if o.ApprovalToken == "" || o.ApprovalLink != link {
		if o.ApprovalToken == "" {
			o.ApprovalToken = uuid.NewString()
			link = u.linkFor(o.ApprovalToken)
		}
		o.ApprovalLink = link
		o.UpdatedAt = time.Now().UTC()
		if o, err = u.repo.Update(ctx, o); err != nil {
			return ApprovalLink{}, err
		}
	}

	msg := composeShareMessage(o, link)
	return ApprovalLink{
		Token:       o.ApprovalToken,
		Link:        link,
		Message:     msg,
		WhatsAppURL: "https://wa.me/" + digitsOnly(o.Client.Phone) + "?text=" + url.QueryEscape(msg),
		MailtoURL: "mailto:" + o.Client.Email +
			"?subject=" + url.QueryEscape(fmt.Sprintf("Orçamento da OS nº %d", o.OrderNumber)) +
			"&body=" + url.QueryEscape(msg),
	}, nil
}

func (u *BudgetApprovalUseCase) GetApprovalDetails(ctx context.Context, token string) (BudgetApprovalDetails, error) {
	o, err := u.loadByToken(ctx, token)
	if err != nil {
		return BudgetApprovalDetails{}, err
	}
	return detailsFor(o), nil
}

// ApproveExternal mirrors the employee-side approval, scoped by token. Once a
// decision is recorded the flow becomes read-only.
func (u *BudgetApprovalUseCase) ApproveExternal(ctx context.Context, token string) (BudgetApprovalDetails, error) {
	return u.decideExternal(ctx, token, entities.OpApproveBudget, "Orçamento aprovado pelo cliente (link externo)")
}

func (u *BudgetApprovalUseCase) RejectExternal(ctx context.Context, token string) (BudgetApprovalDetails, error) {
	return u.decideExternal(ctx, token, entities.OpRejectBudget, "Orçamento rejeitado pelo cliente (link externo)")
}

func (u *BudgetApprovalUseCase) decideExternal(ctx context.Context, token string, op entities.Operation, notes string) (BudgetApprovalDetails, error) {
	o, err := u.loadByToken(ctx, token)
	if err != nil {
		return BudgetApprovalDetails{}, err
	}
	if o.Status != entities.StatusAguardandoAprovacao {
		return BudgetApprovalDetails{}, ErrApprovalAlreadyDecided
	}
	next, err := entities.NextStatus(o.Status, op)
	if err != nil {
		return BudgetApprovalDetails{}, err
	}

	now := time.Now().UTC()
	o.Status = next
	o.ApprovalLink = ""
	o.AppendHistory(next, notes, now)
	o.UpdatedAt = now

	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return BudgetApprovalDetails{}, err
	}
	return detailsFor(updated), nil
}

func (u *BudgetApprovalUseCase) loadByToken(ctx context.Context, token string) (entities.ServiceOrder, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.ServiceOrder{}, ErrInvalidApprovalToken
	}
	o, err := u.repo.GetByApprovalToken(ctx, token)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrApprovalNotFound
	}
	return o, nil
}

func (u *BudgetApprovalUseCase) linkFor(token string) string {
	if token == "" {
		return ""
	}
	return u.baseURL + "/budget-approval/" + token
}

func detailsFor(o entities.ServiceOrder) BudgetApprovalDetails {
	d := BudgetApprovalDetails{ServiceOrder: o}
	if o.Status == entities.StatusAguardandoAprovacao {
		d.ApprovalPending = true
		return d
	}
	switch o.Status {
	case entities.StatusRejeitada:
		d.Message = "O orçamento foi rejeitado."
	case entities.StatusCancelada:
		d.Message = "A ordem de serviço foi cancelada."
	case entities.StatusAberta, entities.StatusEmDiagnostico:
		d.Message = errApprovalOrderMissingMessage
	default:
		d.Message = "O orçamento foi aprovado."
	}
	return d
}

func composeShareMessage(o entities.ServiceOrder, link string) string {
	name := strings.TrimSpace(o.Client.Name)
	if name == "" {
		name = "cliente"
	}
	return fmt.Sprintf(
		"Olá %s! O orçamento da sua ordem de serviço nº %d está pronto. Valor total: %s. Acesse o link para aprovar ou rejeitar: %s",
		name, o.OrderNumber, FormatBRL(o.EstimatedTotal), link,
	)
}

// FormatBRL renders a float as Brazilian currency ("R$ 1.234,56").
func FormatBRL(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	cents := int64(v*100 + 0.5)
	intPart := strconv.FormatInt(cents/100, 10)

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := fmt.Sprintf("R$ %s,%02d", b.String(), cents%100)
	if neg {
		out = "-" + out
	}
	return out
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
