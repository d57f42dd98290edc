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

type statusRepository struct {
	store storage.Store
}

func NewStatusRepository(store storage.Store) repository.StatusRepository {
	return &statusRepository{store: store}
}

func (r *statusRepository) UserStatus(ctx context.Context) (entity.UserStatus, error) {
	raw, err := r.store.Get(ctx, keyUserStatus)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return entity.UserStatusPending, nil
		}
		return "", fmt.Errorf("failed to load user status: %w", err)
	}
	return entity.UserStatus(raw), nil
}

func (r *statusRepository) SetUserStatus(ctx context.Context, status entity.UserStatus) error {
	if err := r.store.Set(ctx, keyUserStatus, []byte(status)); err != nil {
		return fmt.Errorf("failed to save user status: %w", err)
	}
	return nil
}

func (r *statusRepository) Approved(ctx context.Context) (*entity.ApprovedAccommodation, error) {
	raw, err := r.store.Get(ctx, keyApproved)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load approved accommodation: %w", err)
	}
	var acc entity.ApprovedAccommodation
	if err := json.Unmarshal(raw, &acc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal approved accommodation: %w", err)
	}
	return &acc, nil
}

func (r *statusRepository) SetApproved(ctx context.Context, acc entity.ApprovedAccommodation) error {
	data, err := json.Marshal(acc)
	if err != nil {
		return fmt.Errorf("failed to marshal approved accommodation: %w", err)
	}
	if err := r.store.Set(ctx, keyApproved, data); err != nil {
		return fmt.Errorf("failed to save approved accommodation: %w", err)
	}
	return nil
}

func (r *statusRepository) ClearApproved(ctx context.Context) error {
	if err := r.store.Delete(ctx, keyApproved); err != nil {
		return fmt.Errorf("failed to clear approved accommodation: %w", err)
	}
	return nil
}
