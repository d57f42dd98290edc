package kvrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/UniStayTeam/resident-service/internal/domain/entity"
	"github.com/UniStayTeam/resident-service/internal/repository"
	"github.com/UniStayTeam/resident-service/internal/storage"
)

type draftRepository struct {
	store storage.Store
}

func NewDraftRepository(store storage.Store) repository.DraftRepository {
	return &draftRepository{store: store}
}

func (r *draftRepository) Get(ctx context.Context, propertyID string) (*entity.FormDraft, error) {
	raw, err := r.store.Get(ctx, draftKey(propertyID))
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load draft for property %s: %w", propertyID, err)
	}
	var draft entity.FormDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft for property %s: %w", propertyID, err)
	}
	return &draft, nil
}

func (r *draftRepository) Save(ctx context.Context, draft *entity.FormDraft) error {
	if draft == nil || draft.PropertyID == "" {
		return errors.New("cannot save nil draft or draft with empty propertyID")
	}
	draft.SavedAt = time.Now().UTC()

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft for property %s: %w", draft.PropertyID, err)
	}
	if err := r.store.Set(ctx, draftKey(draft.PropertyID), data); err != nil {
		return fmt.Errorf("failed to save draft for property %s: %w", draft.PropertyID, err)
	}
	return nil
}

func (r *draftRepository) Delete(ctx context.Context, propertyID string) error {
	if err := r.store.Delete(ctx, draftKey(propertyID)); err != nil {
		return fmt.Errorf("failed to delete draft for property %s: %w", propertyID, err)
	}
	return nil
}
