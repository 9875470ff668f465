package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smart_oficina/internal/domain/entities"
	mock_interfaces "smart_oficina/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const approvalBase = "https://oficina.example"

func TestBudgetApprovalUseCase_GenerateApprovalLink(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBudgetApprovalUseCase(nil, approvalBase)
		_, err := uc.GenerateApprovalLink(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidServiceOrderID) {
			t.Fatalf("expected ErrInvalidServiceOrderID, got %v", err)
		}
	})

	t.Run("missing base url", func(t *testing.T) {
		uc := NewBudgetApprovalUseCase(nil, "  ")
		_, err := uc.GenerateApprovalLink(context.Background(), "os-1")
		if !errors.Is(err, ErrMissingApprovalBaseURL) {
			t.Fatalf("expected ErrMissingApprovalBaseURL, got %v", err)
		}
	})

	t.Run("not awaiting approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewBudgetApprovalUseCase(repo, approvalBase)
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.StatusAberta}, nil)

		_, err := uc.GenerateApprovalLink(context.Background(), "os-1")
		if !errors.Is(err, ErrBudgetNotAwaitingApproval) {
			t.Fatalf("expected ErrBudgetNotAwaitingApproval, got %v", err)
		}
	})

	t.Run("mints token and persists link on first call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewBudgetApprovalUseCase(repo, approvalBase+"/")

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{
			ID:             "os-1",
			OrderNumber:    42,
			Status:         entities.StatusAguardandoAprovacao,
			EstimatedTotal: 180,
			Client:         entities.ClientSnapshot{Name: "Maria", Phone: "+55 (11) 99888-7766", Email: "maria@example.com"},
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.ApprovalToken == "" {
					t.Fatalf("expected minted token")
				}
				if o.ApprovalLink != approvalBase+"/budget-approval/"+o.ApprovalToken {
					t.Fatalf("unexpected link %q", o.ApprovalLink)
				}
				return o, nil
			},
		)

		link, err := uc.GenerateApprovalLink(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if link.Token == "" || !strings.HasPrefix(link.Link, approvalBase+"/budget-approval/") {
			t.Fatalf("unexpected link: %+v", link)
		}
		if !strings.Contains(link.Message, "Maria") || !strings.Contains(link.Message, "R$ 180,00") || !strings.Contains(link.Message, link.Link) {
			t.Fatalf("unexpected message: %q", link.Message)
		}
		if !strings.HasPrefix(link.WhatsAppURL, "https://wa.me/5511998887766?text=") {
			t.Fatalf("unexpected whatsapp url: %q", link.WhatsAppURL)
		}
		if !strings.HasPrefix(link.MailtoURL, "mailto:maria@example.com?subject=") {
			t.Fatalf("unexpected mailto url: %q", link.MailtoURL)
		}
	})

	t.Run("second call with cached link does not persist again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewBudgetApprovalUseCase(repo, approvalBase)

		stored := entities.ServiceOrder{
			ID:            "os-1",
			Status:        entities.StatusAguardandoAprovacao,
			ApprovalToken: "tok-1",
			ApprovalLink:  approvalBase + "/budget-approval/tok-1",
		}
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(stored, nil)

		link, err := uc.GenerateApprovalLink(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if link.Token != "tok-1" || link.Link != stored.ApprovalLink {
			t.Fatalf("expected cached link returned, got %+v", link)
		}
	})
}

func TestBudgetApprovalUseCase_GetApprovalDetails(t *testing.T) {
	t.Run("invalid token", func(t *testing.T) {
		uc := NewBudgetApprovalUseCase(nil, approvalBase)
		_, err := uc.GetApprovalDetails(context.Background(), " ")
		if !errors.Is(err, ErrInvalidApprovalToken) {
			t.Fatalf("expected ErrInvalidApprovalToken, got %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewBudgetApprovalUseCase(repo, approvalBase)
		repo.EXPECT().GetByApprovalToken(gomock.Any(), "tok-x").Return(entities.ServiceOrder{}, nil)

		_, err := uc.GetApprovalDetails(context.Background(), "tok-x")
		if !errors.Is(err, ErrApprovalNotFound) {
			t.Fatalf("expected ErrApprovalNotFound, got %v", err)
		}
	})

	t.Run("pending budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewBudgetApprovalUseCase(repo, approvalBase)
		repo.EXPECT().GetByApprovalToken(gomock.Any(), "tok-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.StatusAguardandoAprovacao}, nil)

		d, err := uc.GetApprovalDetails(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.ApprovalPending || d.Message != "" {
			t.Fatalf("expected pending details, got %+v", d)
		}
	})

	t.Run("approved budget shows outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewBudgetApprovalUseCase(repo, approvalBase)
		repo.EXPECT().GetByApprovalToken(gomock.Any(), "tok-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.StatusAprovada}, nil)

		d, err := uc.GetApprovalDetails(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ApprovalPending {
			t.Fatalf("expected decided details")
		}
		if d.Message != "O orçamento foi aprovado." {
			t.Fatalf("unexpected message %q", d.Message)
		}
	})

	t.Run("rejected budget shows outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewBudgetApprovalUseCase(repo, approvalBase)
		repo.EXPECT().GetByApprovalToken(gomock.Any(), "tok-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.StatusRejeitada}, nil)

		d, err := uc.GetApprovalDetails(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Message != "O orçamento foi rejeitado." {
			t.Fatalf("unexpected message %q", d.Message)
		}
	})
}

func TestBudgetApprovalUseCase_ExternalDecisions(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *BudgetApprovalUseCase, ctx context.Context, token string) (BudgetApprovalDetails, error)
		status entities.ServiceOrderStatus
	}{
		{name: "approve", call: (*BudgetApprovalUseCase).ApproveExternal, status: entities.StatusAprovada},
		{name: "reject", call: (*BudgetApprovalUseCase).RejectExternal, status: entities.StatusRejeitada},
	}

	for _, tc := range cases {
		t.Run(tc.name+" already decided", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
			uc := NewBudgetApprovalUseCase(repo, approvalBase)
			repo.EXPECT().GetByApprovalToken(gomock.Any(), "tok-1").Return(entities.ServiceOrder{ID: "os-1", Status: entities.StatusAprovada}, nil)

			_, err := tc.call(uc, context.Background(), "tok-1")
			if !errors.Is(err, ErrApprovalAlreadyDecided) {
				t.Fatalf("expected ErrApprovalAlreadyDecided, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
			uc := NewBudgetApprovalUseCase(repo, approvalBase)
			repo.EXPECT().GetByApprovalToken(gomock.Any(), "tok-1").Return(entities.ServiceOrder{
				ID:           "os-1",
				Status:       entities.StatusAguardandoAprovacao,
				ApprovalLink: approvalBase + "/budget-approval/tok-1",
			}, nil)
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
					if o.Status != tc.status {
						t.Fatalf("expected %s, got %s", tc.status, o.Status)
					}
					if o.ApprovalLink != "" {
						t.Fatalf("expected approval link cleared")
					}
					last := o.StatusHistory[len(o.StatusHistory)-1]
					if !strings.Contains(last.Notes, "link externo") {
						t.Fatalf("expected external note, got %+v", last)
					}
					return o, nil
				},
			)

			d, err := tc.call(uc, context.Background(), "tok-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.ApprovalPending {
				t.Fatalf("expected decided details")
			}
			if d.ServiceOrder.Status != tc.status {
				t.Fatalf("expected %s, got %s", tc.status, d.ServiceOrder.Status)
			}
		})
	}
}

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{0, "R$ 0,00"},
		{180, "R$ 180,00"},
		{1234.56, "R$ 1.234,56"},
		{1234567.8, "R$ 1.234.567,80"},
		{-99.9, "-R$ 99,90"},
	}
	for _, tc := range cases {
		if got := FormatBRL(tc.in); got != tc.out {
			t.Fatalf("FormatBRL(%v): expected %q, got %q", tc.in, tc.out, got)
		}
	}
}
