package service

import (
	"context"
	"errors"

	"github.com/UniStayTeam/resident-service/internal/domain/entity"
	"github.com/UniStayTeam/resident-service/internal/platform/logger"
	"github.com/UniStayTeam/resident-service/internal/repository"
)

// ProfileService owns the resident profile keys and the liked-property list.
type ProfileService interface {
	UserName(ctx context.Context) (string, error)
	SetUserName(ctx context.Context, name string) error
	ProfileImage(ctx context.Context) (string, error)
	SetProfileImage(ctx context.Context, ref string) error
	PersonalInfo(ctx context.Context) (entity.PersonalInfo, error)
	SetPersonalInfo(ctx context.Context, info entity.PersonalInfo) error
	LikeProperty(ctx context.Context, propertyID string) error
	UnlikeProperty(ctx context.Context, propertyID string) error
	IsLiked(ctx context.Context, propertyID string) (bool, error)
	LikedProperties(ctx context.Context) ([]entity.Listing, error)
}

type profileService struct {
	listings  []entity.Listing
	profile   repository.ProfileRepository
	favorites repository.FavoriteRepository
	log       logger.Logger
}

func NewProfileService(listings []entity.Listing, profile repository.ProfileRepository, favorites repository.FavoriteRepository, log logger.Logger) ProfileService {
	return &profileService{listings: listings, profile: profile, favorites: favorites, log: log}
}

func (s *profileService) UserName(ctx context.Context) (string, error) {
	return s.profile.UserName(ctx)
}

func (s *profileService) SetUserName(ctx context.Context, name string) error {
	return s.profile.SetUserName(ctx, name)
}

func (s *profileService) ProfileImage(ctx context.Context) (string, error) {
	return s.profile.ProfileImage(ctx)
}

func (s *profileService) SetProfileImage(ctx context.Context, ref string) error {
	return s.profile.SetProfileImage(ctx, ref)
}

func (s *profileService) PersonalInfo(ctx context.Context) (entity.PersonalInfo, error) {
	info, err := s.profile.PersonalInfo(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return entity.PersonalInfo{}, nil
		}
		return entity.PersonalInfo{}, err
	}
	return *info, nil
}

func (s *profileService) SetPersonalInfo(ctx context.Context, info entity.PersonalInfo) error {
	return s.profile.SetPersonalInfo(ctx, info)
}

func (s *profileService) LikeProperty(ctx context.Context, propertyID string) error {
	err := s.favorites.Add(ctx, propertyID)
	if errors.Is(err, repository.ErrAlreadyExists) {
		// Liking twice is a no-op.
		return nil
	}
	return err
}

func (s *profileService) UnlikeProperty(ctx context.Context, propertyID string) error {
	return s.favorites.Remove(ctx, propertyID)
}

func (s *profileService) IsLiked(ctx context.Context, propertyID string) (bool, error) {
	return s.favorites.Contains(ctx, propertyID)
}

// LikedProperties resolves the stored ids against the catalog; ids without a
// matching listing are skipped.
func (s *profileService) LikedProperties(ctx context.Context) ([]entity.Listing, error) {
	ids, err := s.favorites.List(ctx)
	if err != nil {
		return nil, err
	}
	liked := make([]entity.Listing, 0, len(ids))
	for _, id := range ids {
		for _, l := range s.listings {
			if l.ID == id {
				liked = append(liked, l)
				break
			}
		}
	}
	return liked, nil
}
