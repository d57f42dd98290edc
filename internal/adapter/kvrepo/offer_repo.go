package kvrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/UniStayTeam/resident-service/internal/domain/entity"
	"github.com/UniStayTeam/resident-service/internal/repository"
	"github.com/UniStayTeam/resident-service/internal/storage"
)

type offerRepository struct {
	store storage.Store
}

func NewOfferRepository(store storage.Store) repository.OfferRepository {
	return &offerRepository{store: store}
}

func (r *offerRepository) List(ctx context.Context) ([]entity.Offer, error) {
	raw, err := r.store.Get(ctx, keyOffers)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []entity.Offer{}, nil
		}
		return nil, fmt.Errorf("failed to load offers: %w", err)
	}
	var offers []entity.Offer
	if err := json.Unmarshal(raw, &offers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal offers: %w", err)
	}
	return offers, nil
}

func (r *offerRepository) GetByID(ctx context.Context, id string) (*entity.Offer, error) {
	offers, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range offers {
		if offers[i].ID == id {
			return &offers[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *offerRepository) Update(ctx context.Context, offer entity.Offer) error {
	offers, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range offers {
		if offers[i].ID == offer.ID {
			offers[i] = offer
			return r.Replace(ctx, offers)
		}
	}
	return repository.ErrNotFound
}

func (r *offerRepository) Replace(ctx context.Context, offers []entity.Offer) error {
	data, err := json.Marshal(offers)
	if err != nil {
		return fmt.Errorf("failed to marshal offers: %w", err)
	}
	if err := r.store.Set(ctx, keyOffers, data); err != nil {
		return fmt.Errorf("failed to save offers: %w", err)
	}
	return nil
}
