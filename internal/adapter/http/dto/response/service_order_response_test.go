package response

import (
	"testing"
	"time"

	"smart_oficina/internal/domain/entities"
	"smart_oficina/internal/usecase"
)

func TestFromServiceOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.ServiceOrder{
		ID:             "os-1",
		OrderNumber:    7,
		Status:         entities.StatusAprovada,
		VehicleID:      "v-1",
		EstimatedTotal: 180,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	res := FromServiceOrder(o)
	if res.ID != "os-1" || res.OrderNumber != 7 {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "aprovada" || res.StatusLabel != o.Status.Label() {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if res.Stage != 3 || res.ActiveTab != "execution" {
		t.Fatalf("unexpected derived fields: %+v", res)
	}
	if len(res.Steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(res.Steps))
	}
	if !res.Steps[0].Completed || !res.Steps[1].Completed {
		t.Fatalf("expected earlier steps completed: %+v", res.Steps)
	}
	if !res.Steps[2].Active || res.Steps[2].Disabled {
		t.Fatalf("expected execution step active and enabled: %+v", res.Steps)
	}
	if !res.Steps[3].Disabled {
		t.Fatalf("expected completion step disabled: %+v", res.Steps)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromApprovalDetails(t *testing.T) {
	res := FromApprovalDetails(usecase.BudgetApprovalDetails{
		ServiceOrder:    entities.ServiceOrder{ID: "os-1", Status: entities.StatusAprovada},
		ApprovalPending: false,
		Message:         "O orçamento foi aprovado.",
	})
	if res.ApprovalPending {
		t.Fatalf("expected decided details")
	}
	if res.Message != "O orçamento foi aprovado." {
		t.Fatalf("unexpected message: %q", res.Message)
	}
	if res.ServiceOrder.Status != "aprovada" {
		t.Fatalf("unexpected order status: %+v", res.ServiceOrder)
	}
}

func TestFromPartsAvailability(t *testing.T) {
	res := FromPartsAvailability(entities.PartsAvailabilityResult{
		AllAvailable:    false,
		HasMissingParts: true,
		Items: []entities.PartAvailability{
			{PartID: "p-1", Requested: 2, CurrentStock: 1, Available: false},
		},
	})
	if res.AllAvailable || !res.HasMissingParts {
		t.Fatalf("unexpected flags: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].CurrentStock != 1 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
}
