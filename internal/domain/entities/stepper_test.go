package entities

import "testing"

func TestStepperStatesForApprovedOrder(t *testing.T) {
	steps := StepperStates(StatusAprovada, false)

	if !steps[0].Completed || !steps[1].Completed {
		t.Fatalf("expected general and diagnosis completed: %+v", steps)
	}
	if !steps[2].Active || steps[2].Disabled {
		t.Fatalf("expected execution active and enabled: %+v", steps[2])
	}
	if !steps[3].Disabled {
		t.Fatalf("expected completion disabled: %+v", steps[3])
	}
}

func TestStepperStatesOpening(t *testing.T) {
	steps := StepperStates(StatusAberta, false)

	if steps[0].Disabled {
		t.Fatalf("opening step is never disabled")
	}
	if !steps[0].Active {
		t.Fatalf("expected general active for aberta")
	}
	for i := 1; i < 4; i++ {
		if !steps[i].Disabled {
			t.Fatalf("expected step %d disabled for aberta", i)
		}
	}
}

func TestStepperStatesDelivered(t *testing.T) {
	steps := StepperStates(StatusEntregue, false)
	for i := 0; i < 3; i++ {
		if !steps[i].Completed {
			t.Fatalf("expected step %d completed for entregue", i)
		}
	}
	if !steps[3].Active || steps[3].Disabled {
		t.Fatalf("expected completion active and enabled for entregue: %+v", steps[3])
	}
}

func TestStepperReadonlyEnablesAllSteps(t *testing.T) {
	for _, status := range AllStatuses {
		steps := StepperStates(status, true)
		for i, s := range steps {
			if s.Disabled {
				t.Fatalf("%s: expected step %d enabled in readonly mode", status, i)
			}
		}
	}
}

func TestTabForStatus(t *testing.T) {
	cases := []struct {
		status ServiceOrderStatus
		tab    Tab
	}{
		{StatusAberta, TabGeneral},
		{StatusCancelada, TabGeneral},
		{StatusEmDiagnostico, TabDiagnosis},
		{StatusAguardandoAprovacao, TabDiagnosis},
		{StatusRejeitada, TabDiagnosis},
		{StatusAprovada, TabExecution},
		{StatusEmExecucao, TabExecution},
		{StatusAguardandoPecas, TabExecution},
		{StatusFinalizada, TabCompletion},
		{StatusEntregue, TabCompletion},
	}
	for _, tc := range cases {
		if got := TabForStatus(tc.status, false); got != tc.tab {
			t.Fatalf("%s: expected tab %s, got %s", tc.status, tc.tab, got)
		}
		if got := TabForStatus(tc.status, true); got != TabGeneral {
			t.Fatalf("%s: expected readonly tab general, got %s", tc.status, got)
		}
	}
}
