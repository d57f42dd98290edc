package kvrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/UniStayTeam/resident-service/internal/repository"
	"github.com/UniStayTeam/resident-service/internal/storage"
)

type favoriteRepository struct {
	store storage.Store
}

func NewFavoriteRepository(store storage.Store) repository.FavoriteRepository {
	return &favoriteRepository{store: store}
}

func (r *favoriteRepository) List(ctx context.Context) ([]string, error) {
	raw, err := r.store.Get(ctx, keyLikedProps)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to load liked properties: %w", err)
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal liked properties: %w", err)
	}
	return ids, nil
}

func (r *favoriteRepository) Add(ctx context.Context, propertyID string) error {
	ids, err := r.List(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == propertyID {
			return repository.ErrAlreadyExists
		}
	}
	return r.writeAll(ctx, append(ids, propertyID))
}

func (r *favoriteRepository) Remove(ctx context.Context, propertyID string) error {
	ids, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, id := range ids {
		if id != propertyID {
			kept = append(kept, id)
		}
	}
	return r.writeAll(ctx, kept)
}

func (r *favoriteRepository) Contains(ctx context.Context, propertyID string) (bool, error) {
	ids, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == propertyID {
			return true, nil
		}
	}
	return false, nil
}

func (r *favoriteRepository) writeAll(ctx context.Context, ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal liked properties: %w", err)
	}
	if err := r.store.Set(ctx, keyLikedProps, data); err != nil {
		return fmt.Errorf("failed to save liked properties: %w", err)
	}
	return nil
}
