// Package wizard models one in-progress registration as a small state
// machine: three input steps, a submit phase and a terminal success state.
// Advancing is gated on the fields of the current step only; retreating is
// never validated. A Wizard is not safe for concurrent use — it represents
// a single participant's session and callers serialize access to it.
package wizard

import (
	"context"
	"errors"
	"fmt"

	"carbonx/internal/domain"
	"carbonx/internal/domain/entities"
	"carbonx/internal/domain/validation"
	"carbonx/internal/ports/input"
)

type State int

const (
	StateStep1 State = iota + 1
	StateStep2
	StateStep3
	StateSubmitting
	StateSuccess
)

func (s State) String() string {
	switch s {
	case StateStep1:
		return "step1"
	case StateStep2:
		return "step2"
	case StateStep3:
		return "step3"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	}
	return "unknown"
}

var (
	ErrNotEditable       = errors.New("fields cannot be edited in this state")
	ErrInvalidTransition = errors.New("invalid transition for current state")
)

// stepFields lists the fields each advance guard checks. teamName is
// editable on step 2 but never gated; the step 3 selects ship with
// defaults, so the final guard re-checks them mostly as a formality.
var stepFields = map[State][]string{
	StateStep1: {"name", "email", "phone", "college"},
	StateStep2: {"course", "year", "experience"},
	StateStep3: {"food", "shirtSize"},
}

// StepFields returns the field names gated by the given input step, or nil
// for non-input states.
func StepFields(s State) []string {
	return stepFields[s]
}

// Wizard is the form controller for one registration session.
type Wizard struct {
	state     State
	locale    string
	reg       entities.Registration
	schema    *validation.Schema
	submitter input.RegistrationUseCase
	result    *entities.Participant
}

func New(schema *validation.Schema, submitter input.RegistrationUseCase, locale string) *Wizard {
	w := &Wizard{
		schema:    schema,
		submitter: submitter,
		locale:    locale,
	}
	w.reset()
	return w
}

// reset returns to step 1 with cleared fields and the form's select
// defaults (experience, food preference, shirt size).
func (w *Wizard) reset() {
	w.state = StateStep1
	w.result = nil
	w.reg = entities.Registration{
		Experience: "Beginner",
		Food:       "Veg",
		ShirtSize:  "M",
	}
}

func (w *Wizard) State() State { return w.state }

// Registration returns a copy of the working candidate record.
func (w *Wizard) Registration() entities.Registration { return w.reg }

// Result returns the persisted record once the wizard reached success.
func (w *Wizard) Result() *entities.Participant { return w.result }

// SetField stores one field value. Setting an optional field to the empty
// string clears it. Only the three input steps accept edits.
func (w *Wizard) SetField(name, value string) error {
	if w.state != StateStep1 && w.state != StateStep2 && w.state != StateStep3 {
		return ErrNotEditable
	}
	switch name {
	case "name":
		w.reg.Name = value
	case "email":
		w.reg.Email = value
	case "phone":
		w.reg.Phone = value
	case "college":
		w.reg.College = value
	case "course":
		w.reg.Course = value
	case "year":
		w.reg.Year = value
	case "teamName":
		w.reg.TeamName = optional(value)
	case "experience":
		w.reg.Experience = value
	case "interest":
		w.reg.Interest = optional(value)
	case "food":
		w.reg.Food = value
	case "shirtSize":
		w.reg.ShirtSize = value
	default:
		return fmt.Errorf("unknown field %q", name)
	}
	return nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// Advance moves to the next step when the current step's fields validate.
// On failure the state is unchanged and the per-field errors are returned.
func (w *Wizard) Advance() (domain.FieldErrors, error) {
	if w.state != StateStep1 && w.state != StateStep2 {
		return nil, ErrInvalidTransition
	}
	if errs := w.schema.ValidateFields(w.locale, &w.reg, stepFields[w.state]); errs != nil {
		return errs, nil
	}
	w.state++
	return nil, nil
}

// Retreat moves back one step without validation. On step 1 it is a no-op.
func (w *Wizard) Retreat() error {
	switch w.state {
	case StateStep1:
		return nil
	case StateStep2, StateStep3:
		w.state--
		return nil
	}
	return ErrInvalidTransition
}

// Submit runs the full-record guard, then hands the candidate to the
// submission pipeline and awaits exactly one outcome. Validation failures
// (from the guard or the server) keep the wizard on step 3 with field
// errors; storage failures keep it on step 3 and are returned as-is;
// success is terminal until Restart.
func (w *Wizard) Submit(ctx context.Context) (*entities.Participant, domain.FieldErrors, error) {
	if w.state != StateStep3 {
		return nil, nil, ErrInvalidTransition
	}
	if errs := w.schema.Validate(w.locale, &w.reg); errs != nil {
		return nil, errs, nil
	}

	w.state = StateSubmitting
	participant, err := w.submitter.Register(ctx, w.locale, &w.reg)
	if err != nil {
		w.state = StateStep3
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return nil, verr.Fields, nil
		}
		return nil, nil, err
	}
	w.state = StateSuccess
	w.result = participant
	return participant, nil, nil
}

// Restart re-initializes the session to step 1 with all fields cleared.
func (w *Wizard) Restart() {
	w.reset()
}
