package response

import (
	"smart_oficina/internal/usecase"
)

type ApprovalLinkResponse struct {
	ApprovalLink string `json:"approval_link"`
	Token        string `json:"token"`
	Message      string `json:"message"`
	WhatsAppURL  string `json:"whatsapp_url"`
	MailtoURL    string `json:"mailto_url"`
}

func FromApprovalLink(l usecase.ApprovalLink) ApprovalLinkResponse {
	return ApprovalLinkResponse{
		ApprovalLink: l.Link,
		Token:        l.Token,
		Message:      l.Message,
		WhatsAppURL:  l.WhatsAppURL,
		MailtoURL:    l.MailtoURL,
	}
}

// ApprovalDetailsResponse is rendered by the public approval page. When the
// decision was already recorded the message replaces the action buttons.

type ApprovalDetailsResponse struct {
	ApprovalPending bool                 `json:"approval_pending"`
	Message         string               `json:"message,omitempty"`
	ServiceOrder    ServiceOrderResponse `json:"service_order"`
}

func FromApprovalDetails(d usecase.BudgetApprovalDetails) ApprovalDetailsResponse {
	return ApprovalDetailsResponse{
		ApprovalPending: d.ApprovalPending,
		Message:         d.Message,
		ServiceOrder:    FromServiceOrder(d.ServiceOrder),
	}
}
