package entity

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewApplicationReference_Format(t *testing.T) {
	ref := NewApplicationReference(time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC))

	assert.Regexp(t, regexp.MustCompile(`^APP-\d{8}$`), ref)
}

func TestNewApplication(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	data := completeFormData()

	app := NewApplication("p1", data, now)

	assert.Equal(t, NewApplicationReference(now), app.ID)
	assert.Equal(t, "p1", app.PropertyID)
	assert.Equal(t, ApplicationPending, app.Status)
	assert.Equal(t, now, app.SubmittedAt)
	assert.Equal(t, data, app.FormData)
}
