package view

import (
	"fmt"
	"strings"
)

// SubmitPhase is the phase of the order submission state machine.
type SubmitPhase int

const (
	SubmitIdle SubmitPhase = iota
	SubmitValidating
	SubmitRejected
	SubmitSubmitting
	SubmitSucceeded
	SubmitFailed
)

// String returns the wire name of the phase.
func (p SubmitPhase) String() string {
	switch p {
	case SubmitIdle:
		return "idle"
	case SubmitValidating:
		return "validating"
	case SubmitRejected:
		return "rejected"
	case SubmitSubmitting:
		return "submitting"
	case SubmitSucceeded:
		return "succeeded"
	case SubmitFailed:
		return "failed"
	}
	return "unknown"
}

// MarshalJSON serializes the phase by name.
func (p SubmitPhase) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON parses a phase from its wire name.
func (p *SubmitPhase) UnmarshalJSON(data []byte) error {
	name := strings.Trim(string(data), `"`)
	for phase := SubmitIdle; phase <= SubmitFailed; phase++ {
		if phase.String() == name {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("unknown submission phase %q", name)
}

// Submission is the tagged state of the order form. Reason is set only
// for Rejected and Failed, so a success and an error message can never
// coexist. Values are built through the constructors below.
type Submission struct {
	Phase  SubmitPhase `json:"phase"`
	Reason string      `json:"reason,omitempty"`
}

func submitIdle() Submission       { return Submission{Phase: SubmitIdle} }
func submitValidating() Submission { return Submission{Phase: SubmitValidating} }
func submitSubmitting() Submission { return Submission{Phase: SubmitSubmitting} }
func submitSucceeded() Submission  { return Submission{Phase: SubmitSucceeded} }

func submitRejected(reason string) Submission {
	return Submission{Phase: SubmitRejected, Reason: reason}
}

func submitFailed(reason string) Submission {
	return Submission{Phase: SubmitFailed, Reason: reason}
}
