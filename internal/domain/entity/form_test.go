package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeFormData() FormData {
	return FormData{
		FirstName:           "Thandi",
		Surname:             "Mokoena",
		Email:               "thandi@example.com",
		Phone:               "0821234567",
		IDNumber:            "0101016000087",
		Institution:         "University of the Witwatersrand",
		StudentNumber:       "2203456",
		Course:              "BSc Computer Science",
		FundingType:         "nsfas",
		NextOfKinName:       "Sipho Mokoena",
		NextOfKinPhone:      "0837654321",
		IDDocument:          "id_scan.pdf",
		ProofOfRegistration: "registration.pdf",
	}
}

func TestFormData_ValidateStep_PersonalDetails(t *testing.T) {
	errs := FormData{}.ValidateStep(StepPersonalDetails)

	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "firstName")
	assert.Contains(t, errs, "surname")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "idNumber")

	assert.Empty(t, completeFormData().ValidateStep(StepPersonalDetails))
}

func TestFormData_ValidateStep_EmailFormat(t *testing.T) {
	d := completeFormData()
	d.Email = "not-an-email"

	errs := d.ValidateStep(StepPersonalDetails)

	assert.Equal(t, FieldErrors{"email": "Enter a valid email address"}, errs)
}

func TestFormData_ValidateStep_FundingType(t *testing.T) {
	d := completeFormData()
	d.FundingType = "scholarship"

	errs := d.ValidateStep(StepResidenceFunder)

	assert.Contains(t, errs, "fundingType")
	assert.Equal(t, "Select a valid option", errs["fundingType"])

	for _, valid := range []string{"nsfas", "bursary", "self_funded"} {
		d.FundingType = valid
		assert.Empty(t, d.ValidateStep(StepResidenceFunder), valid)
	}
}

func TestFormData_ValidateStep_OptionalEmailsOnlyCheckedWhenSet(t *testing.T) {
	d := completeFormData()
	assert.Empty(t, d.ValidateStep(StepResidenceFunder), "empty funder email is fine")

	d.FunderEmail = "broken@"
	assert.Contains(t, d.ValidateStep(StepResidenceFunder), "funderEmail")

	d = completeFormData()
	d.NextOfKinEmail = "also broken"
	assert.Contains(t, d.ValidateStep(StepNextOfKin), "nextOfKinEmail")
}

func TestFormData_ValidateStep_DocumentUploads(t *testing.T) {
	d := completeFormData()
	d.IDDocument = ""

	errs := d.ValidateStep(StepDocumentUploads)

	assert.Len(t, errs, 1)
	assert.Contains(t, errs, "idDocument")
	assert.Equal(t, "This field is required", errs["idDocument"])
}

func TestFormData_ValidateStep_ReviewRunsEverything(t *testing.T) {
	d := FormData{}

	errs := d.ValidateStep(StepReviewSubmit)

	assert.Contains(t, errs, "firstName")
	assert.Contains(t, errs, "institution")
	assert.Contains(t, errs, "fundingType")
	assert.Contains(t, errs, "nextOfKinName")
	assert.Contains(t, errs, "proofOfRegistration")
}

func TestFormData_ValidateAll_CompleteFormPasses(t *testing.T) {
	assert.Empty(t, completeFormData().ValidateAll())
}

func TestFormData_StepComplete(t *testing.T) {
	d := completeFormData()

	for step := FirstFormStep; step <= LastFormStep; step++ {
		assert.True(t, d.StepComplete(step), step.String())
	}
	assert.False(t, FormData{}.StepComplete(StepStudyDetails))
}

func TestFormStep_Valid(t *testing.T) {
	assert.True(t, StepPersonalDetails.Valid())
	assert.True(t, StepReviewSubmit.Valid())
	assert.False(t, FormStep(0).Valid())
	assert.False(t, FormStep(7).Valid())
}
