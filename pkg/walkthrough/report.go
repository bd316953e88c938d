package walkthrough

// Step - identifies one API call of the walkthrough
type Step string

// Steps in the order they are executed
const (
	StepRegister Step = "register"
	StepLogin    Step = "login"
	StepFamily   Step = "family"
	StepBaby     Step = "baby"
	StepRecord   Step = "record"
)

// Steps - all steps in execution order
var Steps = []Step{StepRegister, StepLogin, StepFamily, StepBaby, StepRecord}

// Kind - how a step ended
type Kind string

const (
	// KindOK - 200 with everything the next step needs
	KindOK Kind = "ok"
	// KindTransport - no HTTP response was received
	KindTransport Kind = "transport"
	// KindStatus - server responded with other status than 200
	KindStatus Kind = "status"
	// KindMalformed - 200 with a body that is not JSON
	KindMalformed Kind = "malformed"
	// KindMissingField - 200 but the expected identifier is absent
	KindMissingField Kind = "missing-field"
	// KindSkipped - never attempted because an earlier step halted the chain
	KindSkipped Kind = "skipped"
)

// StepOutcome - result of a single step
type StepOutcome struct {
	Step       Step
	Kind       Kind
	StatusCode int
	ID         string
	Err        error
}

// Report - ordered outcomes of a walkthrough run
type Report struct {
	Outcomes []StepOutcome
}

// Outcome - returns outcome of the given step
func (r *Report) Outcome(step Step) (StepOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.Step == step {
			return o, true
		}
	}

	return StepOutcome{}, false
}

// Completed - whether every step succeeded
func (r *Report) Completed() bool {
	if len(r.Outcomes) != len(Steps) {
		return false
	}

	for _, o := range r.Outcomes {
		if o.Kind != KindOK {
			return false
		}
	}

	return true
}

// FirstFailure - first gating step which did not succeed
// Registration does not gate the chain and is never reported here.
func (r *Report) FirstFailure() (StepOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.Step != StepRegister && o.Kind != KindOK && o.Kind != KindSkipped {
			return o, true
		}
	}

	return StepOutcome{}, false
}

func (r *Report) add(o StepOutcome) {
	r.Outcomes = append(r.Outcomes, o)
}

func (r *Report) skip(steps ...Step) {
	for _, s := range steps {
		r.add(StepOutcome{Step: s, Kind: KindSkipped})
	}
}
