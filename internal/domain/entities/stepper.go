package entities

// Tab identifies one of the four stage views of a service order.

type Tab string

const (
	TabGeneral    Tab = "general"
	TabDiagnosis  Tab = "diagnosis"
	TabExecution  Tab = "execution"
	TabCompletion Tab = "completion"
)

// stepperTabs in stage order. Stage ordinal for tab i is i+1.
var stepperTabs = [4]Tab{TabGeneral, TabDiagnosis, TabExecution, TabCompletion}

// StepState is the view state of one stepper step.

type StepState struct {
	Tab       Tab  `json:"tab"`
	Completed bool `json:"completed"`
	Active    bool `json:"active"`
	Disabled  bool `json:"disabled"`
}

// StepperStates derives the four step states from the current status.
//
// Rules:
//   - a step is completed once the order's stage ordinal has passed it;
//   - a step is active when the order sits exactly on its stage;
//   - a step is disabled unless the previous step is completed (Opening is
//     never disabled);
//   - readonly mode clears every Disabled flag so a reviewer can navigate
//     freely regardless of status.
func StepperStates(status ServiceOrderStatus, readonly bool) [4]StepState {
	stage := status.Stage()

	var steps [4]StepState
	for i, tab := range stepperTabs {
		stepStage := i + 1
		steps[i] = StepState{
			Tab:       tab,
			Completed: stage > stepStage,
			Active:    stage == stepStage,
		}
	}
	for i := range steps {
		if i == 0 {
			steps[i].Disabled = false
			continue
		}
		steps[i].Disabled = !steps[i-1].Completed
	}
	if readonly {
		for i := range steps {
			steps[i].Disabled = false
		}
	}
	return steps
}

// TabForStatus resolves the stage tab an order should open on. Readonly review
// always starts on the general tab.
func TabForStatus(status ServiceOrderStatus, readonly bool) Tab {
	if readonly {
		return TabGeneral
	}
	switch status.Stage() {
	case 2:
		return TabDiagnosis
	case 3:
		return TabExecution
	case 4:
		return TabCompletion
	default:
		return TabGeneral
	}
}
