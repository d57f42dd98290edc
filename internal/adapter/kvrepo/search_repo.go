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

type searchStateRepository struct {
	store storage.Store
}

func NewSearchStateRepository(store storage.Store) repository.SearchStateRepository {
	return &searchStateRepository{store: store}
}

func (r *searchStateRepository) Filters(ctx context.Context) (*entity.SearchFilters, error) {
	raw, err := r.store.Get(ctx, keyFilters)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load search filters: %w", err)
	}
	var f entity.SearchFilters
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search filters: %w", err)
	}
	return &f, nil
}

func (r *searchStateRepository) SaveFilters(ctx context.Context, f entity.SearchFilters) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal search filters: %w", err)
	}
	if err := r.store.Set(ctx, keyFilters, data); err != nil {
		return fmt.Errorf("failed to save search filters: %w", err)
	}
	return nil
}

func (r *searchStateRepository) History(ctx context.Context) ([]string, error) {
	return r.loadStrings(ctx, keyHistory)
}

func (r *searchStateRepository) SaveHistory(ctx context.Context, history []string) error {
	return r.saveStrings(ctx, keyHistory, history)
}

func (r *searchStateRepository) Suggestions(ctx context.Context) ([]string, error) {
	return r.loadStrings(ctx, keySuggestions)
}

func (r *searchStateRepository) SaveSuggestions(ctx context.Context, suggestions []string) error {
	return r.saveStrings(ctx, keySuggestions, suggestions)
}

func (r *searchStateRepository) loadStrings(ctx context.Context, key string) ([]string, error) {
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return values, nil
}

func (r *searchStateRepository) saveStrings(ctx context.Context, key string, values []string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
