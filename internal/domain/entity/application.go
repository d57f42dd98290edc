package entity

import (
	"fmt"
	"time"
)

type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationApproved  ApplicationStatus = "approved"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationInterview ApplicationStatus = "interview"
)

// Application is a submitted accommodation application. Locally it is
// immutable after creation: only the (absent) backend moves its status.
type Application struct {
	ID          string            `json:"id"`
	PropertyID  string            `json:"propertyId"`
	Status      ApplicationStatus `json:"status"`
	SubmittedAt time.Time         `json:"submittedAt"`
	FormData    FormData          `json:"formData"`
}

// NewApplicationReference synthesizes an APP-XXXXXXXX reference code from the
// given timestamp.
func NewApplicationReference(now time.Time) string {
	return fmt.Sprintf("APP-%08d", now.UnixMilli()%100000000)
}

func NewApplication(propertyID string, data FormData, now time.Time) Application {
	return Application{
		ID:          NewApplicationReference(now),
		PropertyID:  propertyID,
		Status:      ApplicationPending,
		SubmittedAt: now.UTC(),
		FormData:    data,
	}
}
