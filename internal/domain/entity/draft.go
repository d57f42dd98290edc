package entity

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrStepOutOfRange = errors.New("step out of range")
	// ErrForwardJump is returned by GoToStep: arbitrary jumps are only allowed
	// to steps at or before the current one.
	ErrForwardJump = errors.New("cannot jump forward past the current step")
	ErrAtFinalStep = errors.New("already at the final step")
	ErrAtFirstStep = errors.New("already at the first step")
)

// StepValidationError carries the field-level messages of an incomplete step.
type StepValidationError struct {
	Step   FormStep
	Fields FieldErrors
}

func (e *StepValidationError) Error() string {
	return fmt.Sprintf("step %s is incomplete (%d field errors)", e.Step, len(e.Fields))
}

// FormDraft is an in-progress, auto-saved snapshot of the application form
// for one property. Drafts older than the configured TTL are discarded on
// load.
type FormDraft struct {
	PropertyID  string    `json:"propertyId"`
	Data        FormData  `json:"formData"`
	CurrentStep FormStep  `json:"currentStep"`
	SavedAt     time.Time `json:"savedAt"`
}

func NewFormDraft(propertyID string) *FormDraft {
	return &FormDraft{
		PropertyID:  propertyID,
		CurrentStep: FirstFormStep,
		SavedAt:     time.Now().UTC(),
	}
}

// Advance moves to the next step. Forward navigation hard-blocks on the
// current step's validation; incomplete steps surface a StepValidationError.
func (d *FormDraft) Advance() error {
	if errs := d.Data.ValidateStep(d.CurrentStep); len(errs) > 0 {
		return &StepValidationError{Step: d.CurrentStep, Fields: errs}
	}
	if d.CurrentStep >= LastFormStep {
		return ErrAtFinalStep
	}
	d.CurrentStep++
	return nil
}

func (d *FormDraft) Back() error {
	if d.CurrentStep <= FirstFormStep {
		return ErrAtFirstStep
	}
	d.CurrentStep--
	return nil
}

// GoToStep jumps to an already-visited step. Forward skips are rejected.
func (d *FormDraft) GoToStep(step FormStep) error {
	if !step.Valid() {
		return ErrStepOutOfRange
	}
	if step > d.CurrentStep {
		return ErrForwardJump
	}
	d.CurrentStep = step
	return nil
}

// Expired reports whether the draft fell outside the restore window.
func (d *FormDraft) Expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(d.SavedAt) > ttl
}
