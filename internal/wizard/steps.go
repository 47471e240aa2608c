package wizard

// Step is one page of the itinerary editor, in fixed order.
type Step int

const (
	StepSummary Step = iota
	StepDays
	StepDetails
	StepPolicies
)

// Steps lists every step in order.
var Steps = []Step{StepSummary, StepDays, StepDetails, StepPolicies}

func (s Step) Valid() bool { return s >= StepSummary && s <= StepPolicies }

func (s Step) String() string {
	switch s {
	case StepSummary:
		return "summary"
	case StepDays:
		return "itinerary"
	case StepDetails:
		return "details"
	case StepPolicies:
		return "policies"
	default:
		return "unknown"
	}
}

// Title is the label shown on the step indicator.
func (s Step) Title() string {
	switch s {
	case StepSummary:
		return "Summary"
	case StepDays:
		return "Day Plans"
	case StepDetails:
		return "Inclusions & Pricing"
	case StepPolicies:
		return "Policies & Bank"
	default:
		return ""
	}
}
