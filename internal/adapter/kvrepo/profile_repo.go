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

type profileRepository struct {
	store storage.Store
}

func NewProfileRepository(store storage.Store) repository.ProfileRepository {
	return &profileRepository{store: store}
}

func (r *profileRepository) UserName(ctx context.Context) (string, error) {
	return r.loadString(ctx, keyUserName)
}

func (r *profileRepository) SetUserName(ctx context.Context, name string) error {
	if err := r.store.Set(ctx, keyUserName, []byte(name)); err != nil {
		return fmt.Errorf("failed to save user name: %w", err)
	}
	return nil
}

// ProfileImage returns the opaque media-picker reference; it is never parsed.
func (r *profileRepository) ProfileImage(ctx context.Context) (string, error) {
	return r.loadString(ctx, keyProfileImage)
}

func (r *profileRepository) SetProfileImage(ctx context.Context, ref string) error {
	if err := r.store.Set(ctx, keyProfileImage, []byte(ref)); err != nil {
		return fmt.Errorf("failed to save profile image: %w", err)
	}
	return nil
}

func (r *profileRepository) PersonalInfo(ctx context.Context) (*entity.PersonalInfo, error) {
	raw, err := r.store.Get(ctx, keyPersonalInfo)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load personal info: %w", err)
	}
	var info entity.PersonalInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal personal info: %w", err)
	}
	return &info, nil
}

func (r *profileRepository) SetPersonalInfo(ctx context.Context, info entity.PersonalInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal personal info: %w", err)
	}
	if err := r.store.Set(ctx, keyPersonalInfo, data); err != nil {
		return fmt.Errorf("failed to save personal info: %w", err)
	}
	return nil
}

func (r *profileRepository) loadString(ctx context.Context, key string) (string, error) {
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load %s: %w", key, err)
	}
	return string(raw), nil
}
