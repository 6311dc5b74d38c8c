package form

import "user-form/internal/domain/user"

type State string

const (
	Idle         State = "idle"
	Validating   State = "validating"
	Invalid      State = "invalid"
	Submitting   State = "submitting"
	Submitted    State = "submitted"
	SubmitFailed State = "submit_failed"
	Fetching     State = "fetching"
)

var transitions = map[State][]State{
	Idle:         {Validating, Fetching},
	Validating:   {Invalid, Submitting},
	Invalid:      {Idle},
	Submitting:   {Submitted, SubmitFailed},
	Submitted:    {Idle},
	SubmitFailed: {Idle},
	Fetching:     {Idle},
}

// CanTransition reports whether a form may move from one state to the next.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Snapshot is a copy of a form's state safe to hand to a renderer.
type Snapshot struct {
	State State
	// Outcome is the last settled submit state: Invalid, Submitted or SubmitFailed.
	Outcome State
	Values  user.User
	Errors  user.ValidationErrors
	Touched map[user.Field]bool
	Users   user.Users
	Fetches int
	// Err is the last network failure, cleared by the next successful call.
	Err error
}

// VisibleErrors keeps the failures of touched fields only.
func (s Snapshot) VisibleErrors() map[string]string {
	out := make(map[string]string)
	for f, fail := range s.Errors {
		if s.Touched[f] {
			out[string(f)] = fail.Message
		}
	}
	return out
}
