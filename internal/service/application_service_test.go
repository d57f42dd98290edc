package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/UniStayTeam/resident-service/internal/adapter/events"
	"github.com/UniStayTeam/resident-service/internal/domain/entity"
	"github.com/UniStayTeam/resident-service/internal/platform/logger"
	"github.com/UniStayTeam/resident-service/internal/repository"
)

func newApplicationService(drafts *MockDraftRepository, apps *MockApplicationRepository, docs DocumentStore, publisher *MockPublisher) ApplicationService {
	return NewApplicationService(testListings(), drafts, apps, docs, publisher, logger.NewNoOp(), 24*time.Hour)
}

func TestApplicationService_Draft_UnknownProperty(t *testing.T) {
	svc := newApplicationService(new(MockDraftRepository), new(MockApplicationRepository), nil, new(MockPublisher))

	_, err := svc.Draft(context.Background(), "p99")

	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestApplicationService_Draft_StartsFreshWhenNoneSaved(t *testing.T) {
	drafts := new(MockDraftRepository)
	drafts.On("Get", mock.Anything, "p1").Return(nil, repository.ErrNotFound).Once()
	svc := newApplicationService(drafts, new(MockApplicationRepository), nil, new(MockPublisher))

	draft, err := svc.Draft(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "p1", draft.PropertyID)
	assert.Equal(t, entity.FirstFormStep, draft.CurrentStep)
	drafts.AssertExpectations(t)
}

func TestApplicationService_Draft_RestoresWithinTTL(t *testing.T) {
	saved := &entity.FormDraft{
		PropertyID:  "p1",
		Data:        entity.FormData{FirstName: "Thandi"},
		CurrentStep: entity.StepStudyDetails,
		SavedAt:     time.Now().UTC().Add(-23 * time.Hour),
	}
	drafts := new(MockDraftRepository)
	drafts.On("Get", mock.Anything, "p1").Return(saved, nil).Once()
	svc := newApplicationService(drafts, new(MockApplicationRepository), nil, new(MockPublisher))

	draft, err := svc.Draft(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "Thandi", draft.Data.FirstName)
	assert.Equal(t, entity.StepStudyDetails, draft.CurrentStep)
	drafts.AssertExpectations(t)
}

func TestApplicationService_Draft_DiscardsExpiredDraft(t *testing.T) {
	stale := &entity.FormDraft{
		PropertyID:  "p1",
		Data:        entity.FormData{FirstName: "Thandi"},
		CurrentStep: entity.StepNextOfKin,
		SavedAt:     time.Now().UTC().Add(-25 * time.Hour),
	}
	drafts := new(MockDraftRepository)
	drafts.On("Get", mock.Anything, "p1").Return(stale, nil).Once()
	drafts.On("Delete", mock.Anything, "p1").Return(nil).Once()
	svc := newApplicationService(drafts, new(MockApplicationRepository), nil, new(MockPublisher))

	draft, err := svc.Draft(context.Background(), "p1")

	require.NoError(t, err)
	assert.Empty(t, draft.Data.FirstName, "expired drafts start over")
	assert.Equal(t, entity.FirstFormStep, draft.CurrentStep)
	drafts.AssertExpectations(t)
}

func TestApplicationService_NextStep_AdvancesAndSaves(t *testing.T) {
	saved := &entity.FormDraft{
		PropertyID:  "p1",
		Data:        completeFormData(),
		CurrentStep: entity.StepPersonalDetails,
		SavedAt:     time.Now().UTC(),
	}
	drafts := new(MockDraftRepository)
	drafts.On("Get", mock.Anything, "p1").Return(saved, nil).Once()
	drafts.On("Save", mock.Anything, mock.MatchedBy(func(d *entity.FormDraft) bool {
		return d.CurrentStep == entity.StepStudyDetails
	})).Return(nil).Once()
	svc := newApplicationService(drafts, new(MockApplicationRepository), nil, new(MockPublisher))

	draft, app, err := svc.NextStep(context.Background(), "p1")

	require.NoError(t, err)
	assert.Nil(t, app)
	assert.Equal(t, entity.StepStudyDetails, draft.CurrentStep)
	drafts.AssertExpectations(t)
}

func TestApplicationService_NextStep_BlocksOnIncompleteStep(t *testing.T) {
	saved := &entity.FormDraft{
		PropertyID:  "p1",
		CurrentStep: entity.StepPersonalDetails,
		SavedAt:     time.Now().UTC(),
	}
	drafts := new(MockDraftRepository)
	drafts.On("Get", mock.Anything, "p1").Return(saved, nil).Once()
	svc := newApplicationService(drafts, new(MockApplicationRepository), nil, new(MockPublisher))

	draft, app, err := svc.NextStep(context.Background(), "p1")

	var stepErr *entity.StepValidationError
	require.True(t, errors.As(err, &stepErr))
	assert.Nil(t, app)
	assert.Equal(t, entity.StepPersonalDetails, draft.CurrentStep)
	drafts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestApplicationService_NextStep_SubmitsAtReviewStep(t *testing.T) {
	saved := &entity.FormDraft{
		PropertyID:  "p1",
		Data:        completeFormData(),
		CurrentStep: entity.LastFormStep,
		SavedAt:     time.Now().UTC(),
	}
	drafts := new(MockDraftRepository)
	drafts.On("Get", mock.Anything, "p1").Return(saved, nil).Twice()
	drafts.On("Delete", mock.Anything, "p1").Return(nil).Once()
	apps := new(MockApplicationRepository)
	apps.On("List", mock.Anything).Return([]entity.Application{}, nil).Once()
	apps.On("Append", mock.Anything, mock.MatchedBy(func(a entity.Application) bool {
		return a.PropertyID == "p1" && a.Status == entity.ApplicationPending
	})).Return(nil).Once()
	publisher := new(MockPublisher)
	publisher.On("Publish", mock.Anything, events.SubjectApplicationSubmitted, mock.Anything).Return(nil).Once()
	svc := newApplicationService(drafts, apps, nil, publisher)

	draft, app, err := svc.NextStep(context.Background(), "p1")

	require.NoError(t, err)
	assert.Nil(t, draft)
	require.NotNil(t, app)
	assert.Regexp(t, `^APP-\d{8}$`, app.ID)
	drafts.AssertExpectations(t)
	apps.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestApplicationService_Submit_RejectsIncompleteForm(t *testing.T) {
	saved := &entity.FormDraft{
		PropertyID:  "p1",
		Data:        entity.FormData{FirstName: "Thandi"},
		CurrentStep: entity.LastFormStep,
		SavedAt:     time.Now().UTC(),
	}
	drafts := new(MockDraftRepository)
	drafts.On("Get", mock.Anything, "p1").Return(saved, nil).Once()
	apps := new(MockApplicationRepository)
	svc := newApplicationService(drafts, apps, nil, new(MockPublisher))

	_, err := svc.Submit(context.Background(), "p1")

	var stepErr *entity.StepValidationError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, entity.StepReviewSubmit, stepErr.Step)
	apps.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestApplicationService_Submit_RejectsDuplicateProperty(t *testing.T) {
	saved := &entity.FormDraft{
		PropertyID:  "p1",
		Data:        completeFormData(),
		CurrentStep: entity.LastFormStep,
		SavedAt:     time.Now().UTC(),
	}
	drafts := new(MockDraftRepository)
	drafts.On("Get", mock.Anything, "p1").Return(saved, nil).Once()
	apps := new(MockApplicationRepository)
	apps.On("List", mock.Anything).Return([]entity.Application{
		{ID: "APP-00000001", PropertyID: "p1", Status: entity.ApplicationPending},
	}, nil).Once()
	svc := newApplicationService(drafts, apps, nil, new(MockPublisher))

	_, err := svc.Submit(context.Background(), "p1")

	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	apps.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestApplicationService_Submit_NoDraft(t *testing.T) {
	drafts := new(MockDraftRepository)
	drafts.On("Get", mock.Anything, "p1").Return(nil, repository.ErrNotFound).Once()
	svc := newApplicationService(drafts, new(MockApplicationRepository), nil, new(MockPublisher))

	_, err := svc.Submit(context.Background(), "p1")

	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestApplicationService_AttachDocument_UploadsWhenStoreConfigured(t *testing.T) {
	saved := &entity.FormDraft{PropertyID: "p1", CurrentStep: entity.StepDocumentUploads, SavedAt: time.Now().UTC()}
	drafts := new(MockDraftRepository)
	drafts.On("Get", mock.Anything, "p1").Return(saved, nil).Once()
	drafts.On("Save", mock.Anything, mock.MatchedBy(func(d *entity.FormDraft) bool {
		return d.Data.IDDocument == "http://localhost:9000/resident-documents/abc.pdf"
	})).Return(nil).Once()
	docs := new(MockDocumentStore)
	docs.On("Upload", mock.Anything, "id_scan.pdf", []byte("pdfbytes")).
		Return("http://localhost:9000/resident-documents/abc.pdf", nil).Once()
	svc := newApplicationService(drafts, new(MockApplicationRepository), docs, new(MockPublisher))

	draft, err := svc.AttachDocument(context.Background(), "p1", "idDocument", "id_scan.pdf", []byte("pdfbytes"))

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/resident-documents/abc.pdf", draft.Data.IDDocument)
	docs.AssertExpectations(t)
}

func TestApplicationService_AttachDocument_KeepsPickerReferenceWithoutStore(t *testing.T) {
	saved := &entity.FormDraft{PropertyID: "p1", CurrentStep: entity.StepDocumentUploads, SavedAt: time.Now().UTC()}
	drafts := new(MockDraftRepository)
	drafts.On("Get", mock.Anything, "p1").Return(saved, nil).Once()
	drafts.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
	svc := newApplicationService(drafts, new(MockApplicationRepository), nil, new(MockPublisher))

	draft, err := svc.AttachDocument(context.Background(), "p1", "proofOfRegistration", "registration.pdf", nil)

	require.NoError(t, err)
	assert.Equal(t, "registration.pdf", draft.Data.ProofOfRegistration)
}

func TestApplicationService_AttachDocument_UnknownField(t *testing.T) {
	saved := &entity.FormDraft{PropertyID: "p1", SavedAt: time.Now().UTC()}
	drafts := new(MockDraftRepository)
	drafts.On("Get", mock.Anything, "p1").Return(saved, nil).Once()
	svc := newApplicationService(drafts, new(MockApplicationRepository), nil, new(MockPublisher))

	_, err := svc.AttachDocument(context.Background(), "p1", "passport", "x.pdf", nil)

	assert.ErrorIs(t, err, ErrUnknownDocumentField)
}

func TestApplicationService_Applications_MostRecentFirst(t *testing.T) {
	apps := new(MockApplicationRepository)
	apps.On("List", mock.Anything).Return([]entity.Application{
		{ID: "APP-00000001", PropertyID: "p1"},
		{ID: "APP-00000002", PropertyID: "p2"},
	}, nil).Once()
	svc := newApplicationService(new(MockDraftRepository), apps, nil, new(MockPublisher))

	got, err := svc.Applications(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "APP-00000002", got[0].ID)
	assert.Equal(t, "APP-00000001", got[1].ID)
}
