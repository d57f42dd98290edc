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

type applicationRepository struct {
	store storage.Store
}

func NewApplicationRepository(store storage.Store) repository.ApplicationRepository {
	return &applicationRepository{store: store}
}

func (r *applicationRepository) List(ctx context.Context) ([]entity.Application, error) {
	raw, err := r.store.Get(ctx, keyApplications)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []entity.Application{}, nil
		}
		return nil, fmt.Errorf("failed to load applications: %w", err)
	}
	var apps []entity.Application
	if err := json.Unmarshal(raw, &apps); err != nil {
		return nil, fmt.Errorf("failed to unmarshal applications: %w", err)
	}
	return apps, nil
}

func (r *applicationRepository) Append(ctx context.Context, app entity.Application) error {
	apps, err := r.List(ctx)
	if err != nil {
		return err
	}
	apps = append(apps, app)
	data, err := json.Marshal(apps)
	if err != nil {
		return fmt.Errorf("failed to marshal applications: %w", err)
	}
	if err := r.store.Set(ctx, keyApplications, data); err != nil {
		return fmt.Errorf("failed to save applications: %w", err)
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*entity.Application, error) {
	apps, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range apps {
		if apps[i].ID == id {
			return &apps[i], nil
		}
	}
	return nil, repository.ErrNotFound
}
