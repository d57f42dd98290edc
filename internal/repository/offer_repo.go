package repository

import (
	"context"

	"github.com/UniStayTeam/resident-service/internal/domain/entity"
)

type OfferRepository interface {
	List(ctx context.Context) ([]entity.Offer, error)
	GetByID(ctx context.Context, id string) (*entity.Offer, error)
	Update(ctx context.Context, offer entity.Offer) error
	// Replace overwrites the whole offer pool. Used for seeding.
	Replace(ctx context.Context, offers []entity.Offer) error
}

// StatusRepository owns the resident's global status and the approved
// accommodation record.
type StatusRepository interface {
	UserStatus(ctx context.Context) (entity.UserStatus, error)
	SetUserStatus(ctx context.Context, status entity.UserStatus) error
	Approved(ctx context.Context) (*entity.ApprovedAccommodation, error)
	SetApproved(ctx context.Context, acc entity.ApprovedAccommodation) error
	ClearApproved(ctx context.Context) error
}
