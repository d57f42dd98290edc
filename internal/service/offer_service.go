package service

import (
	"context"
	"errors"
	"time"

	"github.com/UniStayTeam/resident-service/internal/adapter/events"
	"github.com/UniStayTeam/resident-service/internal/catalog"
	"github.com/UniStayTeam/resident-service/internal/domain/entity"
	"github.com/UniStayTeam/resident-service/internal/platform/logger"
	"github.com/UniStayTeam/resident-service/internal/repository"
)

// ErrAlreadyApproved enforces the single-approval invariant: only one
// accommodation may be approved at a time.
var ErrAlreadyApproved = errors.New("an accommodation is already approved")

// OfferService owns the offer lifecycle and the resident's global status.
type OfferService interface {
	Offers(ctx context.Context) ([]entity.Offer, error)
	AcceptOffer(ctx context.Context, id string) (*entity.ApprovedAccommodation, error)
	DeclineOffer(ctx context.Context, id string) error
	UserStatus(ctx context.Context) (entity.UserStatus, error)
	Approved(ctx context.Context) (*entity.ApprovedAccommodation, error)
}

type offerService struct {
	offers    repository.OfferRepository
	status    repository.StatusRepository
	publisher events.Publisher
	log       logger.Logger
}

func NewOfferService(offers repository.OfferRepository, status repository.StatusRepository, publisher events.Publisher, log logger.Logger) OfferService {
	return &offerService{offers: offers, status: status, publisher: publisher, log: log}
}

// Offers returns the offer pool, seeding it from the mock fixtures when the
// stored list is empty.
func (s *offerService) Offers(ctx context.Context) ([]entity.Offer, error) {
	offers, err := s.offers.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(offers) == 0 {
		offers = catalog.SeedOffers(time.Now())
		if err := s.offers.Replace(ctx, offers); err != nil {
			s.log.Errorf("OfferService.Offers: failed to seed offer pool: %v", err)
			return nil, err
		}
		s.log.Infof("OfferService.Offers: seeded %d offers", len(offers))
	}
	return offers, nil
}

// AcceptOffer copies the offer into the approved-accommodation record, marks
// the source offer accepted and flips the global status to approved. The
// three writes are sequential with no atomicity across them; the store is
// single-writer by design.
func (s *offerService) AcceptOffer(ctx context.Context, id string) (*entity.ApprovedAccommodation, error) {
	if _, err := s.status.Approved(ctx); err == nil {
		return nil, ErrAlreadyApproved
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	offer, err := s.offers.GetByID(ctx, id)
	if err != nil {
		s.log.Warnf("OfferService.AcceptOffer: offer %s not found: %v", id, err)
		return nil, err
	}
	if err := offer.UpdateStatus(entity.OfferAccepted); err != nil {
		return nil, err
	}

	approved := entity.NewApprovedAccommodation(*offer, time.Now())
	if err := s.status.SetApproved(ctx, approved); err != nil {
		s.log.Errorf("OfferService.AcceptOffer: failed to save approved accommodation: %v", err)
		return nil, err
	}
	if err := s.offers.Update(ctx, *offer); err != nil {
		s.log.Errorf("OfferService.AcceptOffer: failed to update offer %s: %v", id, err)
		return nil, err
	}
	if err := s.status.SetUserStatus(ctx, entity.UserStatusApproved); err != nil {
		s.log.Errorf("OfferService.AcceptOffer: failed to flip user status: %v", err)
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.SubjectOfferAccepted, approved); err != nil {
		s.log.Warnf("OfferService.AcceptOffer: failed to publish event: %v", err)
	}

	s.log.Infof("OfferService.AcceptOffer: offer %s accepted", id)
	return &approved, nil
}

// DeclineOffer flips only that offer's status; everything else is untouched.
func (s *offerService) DeclineOffer(ctx context.Context, id string) error {
	offer, err := s.offers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := offer.UpdateStatus(entity.OfferDeclined); err != nil {
		return err
	}
	if err := s.offers.Update(ctx, *offer); err != nil {
		s.log.Errorf("OfferService.DeclineOffer: failed to update offer %s: %v", id, err)
		return err
	}

	if err := s.publisher.Publish(ctx, events.SubjectOfferDeclined, offer); err != nil {
		s.log.Warnf("OfferService.DeclineOffer: failed to publish event: %v", err)
	}
	return nil
}

func (s *offerService) UserStatus(ctx context.Context) (entity.UserStatus, error) {
	return s.status.UserStatus(ctx)
}

func (s *offerService) Approved(ctx context.Context) (*entity.ApprovedAccommodation, error) {
	return s.status.Approved(ctx)
}
