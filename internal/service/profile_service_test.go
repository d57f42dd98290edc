package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/UniStayTeam/resident-service/internal/domain/entity"
	"github.com/UniStayTeam/resident-service/internal/platform/logger"
	"github.com/UniStayTeam/resident-service/internal/repository"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) UserName(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockProfileRepository) SetUserName(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockProfileRepository) ProfileImage(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockProfileRepository) SetProfileImage(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func (m *MockProfileRepository) PersonalInfo(ctx context.Context) (*entity.PersonalInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PersonalInfo), args.Error(1)
}

func (m *MockProfileRepository) SetPersonalInfo(ctx context.Context, info entity.PersonalInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, propertyID string) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, propertyID string) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFavoriteRepository) Contains(ctx context.Context, propertyID string) (bool, error) {
	args := m.Called(ctx, propertyID)
	return args.Bool(0), args.Error(1)
}

func TestProfileService_PersonalInfo_ZeroValueWhenUnset(t *testing.T) {
	profile := new(MockProfileRepository)
	profile.On("PersonalInfo", mock.Anything).Return(nil, repository.ErrNotFound).Once()
	svc := NewProfileService(testListings(), profile, new(MockFavoriteRepository), logger.NewNoOp())

	info, err := svc.PersonalInfo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.PersonalInfo{}, info)
}

func TestProfileService_LikeProperty_TwiceIsNoOp(t *testing.T) {
	favorites := new(MockFavoriteRepository)
	favorites.On("Add", mock.Anything, "p1").Return(nil).Once()
	favorites.On("Add", mock.Anything, "p1").Return(repository.ErrAlreadyExists).Once()
	svc := NewProfileService(testListings(), new(MockProfileRepository), favorites, logger.NewNoOp())

	require.NoError(t, svc.LikeProperty(context.Background(), "p1"))
	require.NoError(t, svc.LikeProperty(context.Background(), "p1"))
	favorites.AssertExpectations(t)
}

func TestProfileService_LikedProperties_ResolvesAgainstCatalog(t *testing.T) {
	favorites := new(MockFavoriteRepository)
	favorites.On("List", mock.Anything).Return([]string{"p3", "p1", "p99"}, nil).Once()
	svc := NewProfileService(testListings(), new(MockProfileRepository), favorites, logger.NewNoOp())

	liked, err := svc.LikedProperties(context.Background())

	require.NoError(t, err)
	require.Len(t, liked, 2, "unknown ids are skipped")
	assert.Equal(t, "p3", liked[0].ID, "stored like order is preserved")
	assert.Equal(t, "p1", liked[1].ID)
}

func TestProfileService_IsLiked(t *testing.T) {
	favorites := new(MockFavoriteRepository)
	favorites.On("Contains", mock.Anything, "p1").Return(true, nil).Once()
	svc := NewProfileService(testListings(), new(MockProfileRepository), favorites, logger.NewNoOp())

	ok, err := svc.IsLiked(context.Background(), "p1")

	require.NoError(t, err)
	assert.True(t, ok)
}
