package entity

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormStep identifies one section of the six-step application form.
type FormStep int

const (
	StepPersonalDetails FormStep = iota + 1
	StepStudyDetails
	StepResidenceFunder
	StepNextOfKin
	StepDocumentUploads
	StepReviewSubmit
)

const (
	FirstFormStep = StepPersonalDetails
	LastFormStep  = StepReviewSubmit
)

func (s FormStep) Valid() bool {
	return s >= FirstFormStep && s <= LastFormStep
}

func (s FormStep) String() string {
	switch s {
	case StepPersonalDetails:
		return "personal_details"
	case StepStudyDetails:
		return "study_details"
	case StepResidenceFunder:
		return "residence_funder"
	case StepNextOfKin:
		return "next_of_kin"
	case StepDocumentUploads:
		return "document_uploads"
	case StepReviewSubmit:
		return "review_submit"
	default:
		return fmt.Sprintf("step_%d", int(s))
	}
}

// FormData is the flat record shared by all form steps. Every field is
// optional at the storage level; each step enforces its own subset below.
// Document fields hold opaque file references from the device media picker,
// or the stored object URL once uploaded.
type FormData struct {
	FirstName   string `json:"firstName,omitempty" validate:"required"`
	Surname     string `json:"surname,omitempty" validate:"required"`
	Email       string `json:"email,omitempty" validate:"required,email"`
	Phone       string `json:"phone,omitempty"`
	IDNumber    string `json:"idNumber,omitempty" validate:"required"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Gender      string `json:"gender,omitempty"`

	Institution   string `json:"institution,omitempty" validate:"required"`
	Campus        string `json:"campus,omitempty"`
	StudentNumber string `json:"studentNumber,omitempty" validate:"required"`
	Course        string `json:"course,omitempty"`
	YearOfStudy   string `json:"yearOfStudy,omitempty"`

	FundingType    string `json:"fundingType,omitempty" validate:"required,oneof=nsfas bursary self_funded"`
	FunderName     string `json:"funderName,omitempty"`
	FunderEmail    string `json:"funderEmail,omitempty" validate:"omitempty,email"`
	FunderPhone    string `json:"funderPhone,omitempty"`
	RoomPreference string `json:"roomPreference,omitempty"`

	NextOfKinName     string `json:"nextOfKinName,omitempty" validate:"required"`
	NextOfKinRelation string `json:"nextOfKinRelation,omitempty"`
	NextOfKinPhone    string `json:"nextOfKinPhone,omitempty" validate:"required"`
	NextOfKinEmail    string `json:"nextOfKinEmail,omitempty" validate:"omitempty,email"`

	IDDocument          string `json:"idDocument,omitempty" validate:"required"`
	ProofOfRegistration string `json:"proofOfRegistration,omitempty" validate:"required"`
	ProofOfFunding      string `json:"proofOfFunding,omitempty"`
}

// FieldErrors maps a form field's JSON name to a display message.
type FieldErrors map[string]string

// stepFields names the constrained fields checked per step. Fields without
// validate tags never fail, so they are left out.
var stepFields = map[FormStep][]string{
	StepPersonalDetails: {"FirstName", "Surname", "Email", "IDNumber"},
	StepStudyDetails:    {"Institution", "StudentNumber"},
	StepResidenceFunder: {"FundingType", "FunderEmail"},
	StepNextOfKin:       {"NextOfKinName", "NextOfKinPhone", "NextOfKinEmail"},
	StepDocumentUploads: {"IDDocument", "ProofOfRegistration"},
}

var validate = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateStep runs the step's predicate and returns field-level messages.
// An empty map means the step is complete. Validation is advisory data, not
// an error path: callers decide whether to block on it.
func (d FormData) ValidateStep(step FormStep) FieldErrors {
	if step == StepReviewSubmit {
		return d.ValidateAll()
	}
	fields, ok := stepFields[step]
	if !ok {
		return FieldErrors{}
	}

	errs := FieldErrors{}
	err := validate.StructPartial(d, fields...)
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "form could not be validated"
		return errs
	}
	for _, fe := range verrs {
		errs[fe.Field()] = fieldMessage(fe)
	}
	return errs
}

// ValidateAll merges every step's field errors. Used by the review step and
// by submission.
func (d FormData) ValidateAll() FieldErrors {
	all := FieldErrors{}
	for step := FirstFormStep; step < StepReviewSubmit; step++ {
		for field, msg := range d.ValidateStep(step) {
			all[field] = msg
		}
	}
	return all
}

// StepComplete reports whether the step's predicate holds.
func (d FormData) StepComplete(step FormStep) bool {
	return len(d.ValidateStep(step)) == 0
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "oneof":
		return "Select a valid option"
	default:
		return "Invalid value"
	}
}
