package repository

import (
	"context"

	"github.com/UniStayTeam/resident-service/internal/domain/entity"
)

type ProfileRepository interface {
	UserName(ctx context.Context) (string, error)
	SetUserName(ctx context.Context, name string) error
	ProfileImage(ctx context.Context) (string, error)
	SetProfileImage(ctx context.Context, ref string) error
	PersonalInfo(ctx context.Context) (*entity.PersonalInfo, error)
	SetPersonalInfo(ctx context.Context, info entity.PersonalInfo) error
}

// FavoriteRepository stores the liked property ids as one list.
type FavoriteRepository interface {
	Add(ctx context.Context, propertyID string) error
	Remove(ctx context.Context, propertyID string) error
	List(ctx context.Context) ([]string, error)
	Contains(ctx context.Context, propertyID string) (bool, error)
}
