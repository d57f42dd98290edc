package entity

import (
	"fmt"
	"time"
)

type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferDeclined OfferStatus = "declined"
)

// Offer is a host-issued proposal of a specific accommodation to the
// resident, with a pending -> accepted/declined lifecycle.
type Offer struct {
	ID          string      `json:"id"`
	PropertyID  string      `json:"propertyId"`
	Title       string      `json:"title"`
	Location    string      `json:"location"`
	HostName    string      `json:"hostName"`
	RoomType    string      `json:"roomType"`
	MonthlyRent float64     `json:"monthlyRent"`
	MoveInDate  string      `json:"moveInDate,omitempty"`
	Status      OfferStatus `json:"status"`
	IssuedAt    time.Time   `json:"issuedAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

var offerTransitions = map[OfferStatus][]OfferStatus{
	OfferPending:  {OfferAccepted, OfferDeclined},
	OfferAccepted: {},
	OfferDeclined: {},
}

// UpdateStatus enforces the offer lifecycle; accepted and declined are
// terminal.
func (o *Offer) UpdateStatus(newStatus OfferStatus) error {
	if o.Status == newStatus {
		return nil
	}
	allowed, ok := offerTransitions[o.Status]
	if !ok {
		return fmt.Errorf("cannot transition from unknown status %s", o.Status)
	}
	for _, s := range allowed {
		if s == newStatus {
			o.Status = newStatus
			o.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid offer status transition from %s to %s", o.Status, newStatus)
}

// ApprovedAccommodation is the record created when the resident accepts an
// offer: the offer's fields plus the acceptance timestamp.
type ApprovedAccommodation struct {
	OfferID     string    `json:"offerId"`
	PropertyID  string    `json:"propertyId"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	HostName    string    `json:"hostName"`
	RoomType    string    `json:"roomType"`
	MonthlyRent float64   `json:"monthlyRent"`
	MoveInDate  string    `json:"moveInDate,omitempty"`
	AcceptedAt  time.Time `json:"acceptedAt"`
}

func NewApprovedAccommodation(o Offer, now time.Time) ApprovedAccommodation {
	return ApprovedAccommodation{
		OfferID:     o.ID,
		PropertyID:  o.PropertyID,
		Title:       o.Title,
		Location:    o.Location,
		HostName:    o.HostName,
		RoomType:    o.RoomType,
		MonthlyRent: o.MonthlyRent,
		MoveInDate:  o.MoveInDate,
		AcceptedAt:  now.UTC(),
	}
}

// UserStatus is the resident's global accommodation status.
type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
)
