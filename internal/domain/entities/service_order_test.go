package entities

import (
	"testing"
	"time"
)

func TestRecomputeTotals(t *testing.T) {
	o := ServiceOrder{
		RequiredParts: []PartItem{
			{Description: "Pastilha de freio", Quantity: 2, UnitPrice: 50, TotalPrice: 999},
		},
		Services: []ServiceItem{
			{Description: "Troca de pastilhas", EstimatedHours: 1, PricePerHour: 80, TotalPrice: 999},
		},
		EstimatedTotal: 999,
	}

	o.RecomputeTotals()

	if o.RequiredParts[0].TotalPrice != 100 {
		t.Fatalf("expected part total 100, got %v", o.RequiredParts[0].TotalPrice)
	}
	if o.Services[0].TotalPrice != 80 {
		t.Fatalf("expected service total 80, got %v", o.Services[0].TotalPrice)
	}
	if o.EstimatedTotalParts != 100 || o.EstimatedTotalServices != 80 {
		t.Fatalf("unexpected stage totals: %v / %v", o.EstimatedTotalParts, o.EstimatedTotalServices)
	}
	if o.EstimatedTotal != 180 {
		t.Fatalf("expected estimated total 180, got %v", o.EstimatedTotal)
	}
}

func TestRecomputeTotalsEmptyOrder(t *testing.T) {
	o := ServiceOrder{EstimatedTotalParts: 10, EstimatedTotalServices: 20, EstimatedTotal: 30}
	o.RecomputeTotals()
	if o.EstimatedTotalParts != 0 || o.EstimatedTotalServices != 0 || o.EstimatedTotal != 0 {
		t.Fatalf("expected zeroed totals, got %+v", o)
	}
}

func TestDefaultEntryChecklist(t *testing.T) {
	items := DefaultEntryChecklist()
	if len(items) != 12 {
		t.Fatalf("expected 12 inspection points, got %d", len(items))
	}
	seen := map[string]bool{}
	for _, it := range items {
		if it.Description == "" {
			t.Fatalf("expected non-empty description")
		}
		if it.Checked {
			t.Fatalf("expected items to start unchecked")
		}
		if seen[it.Description] {
			t.Fatalf("duplicate checklist item %q", it.Description)
		}
		seen[it.Description] = true
	}
}

func TestAppendHistory(t *testing.T) {
	now := time.Now().UTC()
	o := ServiceOrder{}
	o.AppendHistory(StatusAberta, "Ordem de serviço aberta", now)
	o.AppendHistory(StatusEmDiagnostico, "", now.Add(time.Hour))

	if len(o.StatusHistory) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(o.StatusHistory))
	}
	if o.StatusHistory[0].Status != StatusAberta || !o.StatusHistory[0].ChangedAt.Equal(now) {
		t.Fatalf("unexpected first entry: %+v", o.StatusHistory[0])
	}
	if o.StatusHistory[1].Status != StatusEmDiagnostico {
		t.Fatalf("unexpected second entry: %+v", o.StatusHistory[1])
	}
}

func TestInventoryParts(t *testing.T) {
	o := ServiceOrder{
		RequiredParts: []PartItem{
			{PartID: "p-1", FromInventory: true, Quantity: 2},
			{Description: "item avulso", FromInventory: false},
			{PartID: "   ", FromInventory: true},
			{PartID: "p-2", FromInventory: true, Quantity: 1},
		},
	}
	parts := o.InventoryParts()
	if len(parts) != 2 {
		t.Fatalf("expected 2 inventory parts, got %d", len(parts))
	}
	if parts[0].PartID != "p-1" || parts[1].PartID != "p-2" {
		t.Fatalf("unexpected parts: %+v", parts)
	}
}

func TestHasReportedProblem(t *testing.T) {
	o := ServiceOrder{ReportedProblem: "   "}
	if o.HasReportedProblem() {
		t.Fatalf("expected blank problem to not count")
	}
	o.ReportedProblem = "Barulho na suspensão"
	if !o.HasReportedProblem() {
		t.Fatalf("expected problem to count")
	}
}
