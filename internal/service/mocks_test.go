package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/UniStayTeam/resident-service/internal/domain/entity"
)

type MockDraftRepository struct {
	mock.Mock
}

func (m *MockDraftRepository) Get(ctx context.Context, propertyID string) (*entity.FormDraft, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FormDraft), args.Error(1)
}

func (m *MockDraftRepository) Save(ctx context.Context, draft *entity.FormDraft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func (m *MockDraftRepository) Delete(ctx context.Context, propertyID string) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Append(ctx context.Context, app entity.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) List(ctx context.Context) ([]entity.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id string) (*entity.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Application), args.Error(1)
}

type MockConversationRepository struct {
	mock.Mock
}

func (m *MockConversationRepository) List(ctx context.Context) ([]entity.Conversation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Conversation), args.Error(1)
}

func (m *MockConversationRepository) Get(ctx context.Context, id string) (*entity.Conversation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Conversation), args.Error(1)
}

func (m *MockConversationRepository) Save(ctx context.Context, conv *entity.Conversation) error {
	args := m.Called(ctx, conv)
	return args.Error(0)
}

func (m *MockConversationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) List(ctx context.Context) ([]entity.Offer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Offer), args.Error(1)
}

func (m *MockOfferRepository) GetByID(ctx context.Context, id string) (*entity.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Offer), args.Error(1)
}

func (m *MockOfferRepository) Update(ctx context.Context, offer entity.Offer) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

func (m *MockOfferRepository) Replace(ctx context.Context, offers []entity.Offer) error {
	args := m.Called(ctx, offers)
	return args.Error(0)
}

type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) UserStatus(ctx context.Context) (entity.UserStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(entity.UserStatus), args.Error(1)
}

func (m *MockStatusRepository) SetUserStatus(ctx context.Context, status entity.UserStatus) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockStatusRepository) Approved(ctx context.Context) (*entity.ApprovedAccommodation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ApprovedAccommodation), args.Error(1)
}

func (m *MockStatusRepository) SetApproved(ctx context.Context, acc entity.ApprovedAccommodation) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

func (m *MockStatusRepository) ClearApproved(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockSearchStateRepository struct {
	mock.Mock
}

func (m *MockSearchStateRepository) Filters(ctx context.Context) (*entity.SearchFilters, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SearchFilters), args.Error(1)
}

func (m *MockSearchStateRepository) SaveFilters(ctx context.Context, f entity.SearchFilters) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockSearchStateRepository) History(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSearchStateRepository) SaveHistory(ctx context.Context, history []string) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

func (m *MockSearchStateRepository) Suggestions(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSearchStateRepository) SaveSuggestions(ctx context.Context, suggestions []string) error {
	args := m.Called(ctx, suggestions)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, subject string, message interface{}) error {
	args := m.Called(ctx, subject, message)
	return args.Error(0)
}

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Upload(ctx context.Context, fileName string, data []byte) (string, error) {
	args := m.Called(ctx, fileName, data)
	return args.String(0), args.Error(1)
}

func testListings() []entity.Listing {
	return []entity.Listing{
		{ID: "p1", Title: "The Yard Braamfontein", Location: "Braamfontein, Johannesburg", University: "University of the Witwatersrand", PriceNumeric: 4850, Rating: 4.6, Availability: entity.ListingAvailability{Available: true}},
		{ID: "p2", Title: "Obz Square Annex", Location: "Observatory, Cape Town", University: "University of Cape Town", PriceNumeric: 3200, Rating: 4.1, Availability: entity.ListingAvailability{Available: false, MoveInDate: "2026-07-01"}},
		{ID: "p3", Title: "Hatfield Studios", Location: "Hatfield, Pretoria", University: "University of Pretoria", PriceNumeric: 6200, Rating: 4.3, Availability: entity.ListingAvailability{Available: true}},
	}
}

func completeFormData() entity.FormData {
	return entity.FormData{
		FirstName:           "Thandi",
		Surname:             "Mokoena",
		Email:               "thandi@example.com",
		IDNumber:            "0101016000087",
		Institution:         "University of the Witwatersrand",
		StudentNumber:       "2203456",
		FundingType:         "nsfas",
		NextOfKinName:       "Sipho Mokoena",
		NextOfKinPhone:      "0837654321",
		IDDocument:          "id_scan.pdf",
		ProofOfRegistration: "registration.pdf",
	}
}
