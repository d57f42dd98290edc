package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UniStayTeam/resident-service/internal/adapter/events"
	"github.com/UniStayTeam/resident-service/internal/domain/entity"
	"github.com/UniStayTeam/resident-service/internal/platform/logger"
	"github.com/UniStayTeam/resident-service/internal/repository"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrNoDraft          = errors.New("no draft in progress for this property")
	// ErrAlreadySubmitted guards against double submission: one application
	// per property.
	ErrAlreadySubmitted     = errors.New("an application for this property was already submitted")
	ErrUnknownDocumentField = errors.New("unknown document field")
)

// DocumentStore uploads an application document and returns its stored
// reference. Optional: without one, picker references are kept as-is.
type DocumentStore interface {
	Upload(ctx context.Context, fileName string, data []byte) (string, error)
}

// ApplicationService drives the six-step application form: drafts are
// auto-saved on every mutation and restored across sessions within the TTL
// window; submission appends an immutable Application record.
type ApplicationService interface {
	Draft(ctx context.Context, propertyID string) (*entity.FormDraft, error)
	UpdateDraft(ctx context.Context, propertyID string, data entity.FormData) (*entity.FormDraft, error)
	NextStep(ctx context.Context, propertyID string) (*entity.FormDraft, *entity.Application, error)
	PreviousStep(ctx context.Context, propertyID string) (*entity.FormDraft, error)
	GoToStep(ctx context.Context, propertyID string, step entity.FormStep) (*entity.FormDraft, error)
	ValidateStep(ctx context.Context, propertyID string, step entity.FormStep) (entity.FieldErrors, error)
	AttachDocument(ctx context.Context, propertyID, field, fileName string, data []byte) (*entity.FormDraft, error)
	Submit(ctx context.Context, propertyID string) (*entity.Application, error)
	DiscardDraft(ctx context.Context, propertyID string) error
	Applications(ctx context.Context) ([]entity.Application, error)
	Application(ctx context.Context, id string) (*entity.Application, error)
}

type applicationService struct {
	listings  []entity.Listing
	drafts    repository.DraftRepository
	apps      repository.ApplicationRepository
	docs      DocumentStore
	publisher events.Publisher
	log       logger.Logger
	draftTTL  time.Duration
}

func NewApplicationService(
	listings []entity.Listing,
	drafts repository.DraftRepository,
	apps repository.ApplicationRepository,
	docs DocumentStore,
	publisher events.Publisher,
	log logger.Logger,
	draftTTL time.Duration,
) ApplicationService {
	return &applicationService{
		listings:  listings,
		drafts:    drafts,
		apps:      apps,
		docs:      docs,
		publisher: publisher,
		log:       log,
		draftTTL:  draftTTL,
	}
}

// Draft restores the saved snapshot for the property, or starts a fresh one.
// Snapshots older than the TTL are discarded silently.
func (s *applicationService) Draft(ctx context.Context, propertyID string) (*entity.FormDraft, error) {
	if !s.propertyExists(propertyID) {
		return nil, ErrPropertyNotFound
	}

	draft, err := s.drafts.Get(ctx, propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return entity.NewFormDraft(propertyID), nil
		}
		s.log.Errorf("ApplicationService.Draft: failed to load draft for %s: %v", propertyID, err)
		return nil, err
	}

	if draft.Expired(s.draftTTL, time.Now().UTC()) {
		s.log.Infof("ApplicationService.Draft: draft for %s expired, discarding", propertyID)
		if err := s.drafts.Delete(ctx, propertyID); err != nil {
			s.log.Warnf("ApplicationService.Draft: failed to delete expired draft for %s: %v", propertyID, err)
		}
		return entity.NewFormDraft(propertyID), nil
	}
	return draft, nil
}

func (s *applicationService) UpdateDraft(ctx context.Context, propertyID string, data entity.FormData) (*entity.FormDraft, error) {
	draft, err := s.Draft(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	draft.Data = data
	if err := s.drafts.Save(ctx, draft); err != nil {
		s.log.Errorf("ApplicationService.UpdateDraft: failed to save draft for %s: %v", propertyID, err)
		return nil, err
	}
	return draft, nil
}

// NextStep advances the pointer, hard-blocking on the current step's
// validation. At the review step it triggers submission instead.
func (s *applicationService) NextStep(ctx context.Context, propertyID string) (*entity.FormDraft, *entity.Application, error) {
	draft, err := s.Draft(ctx, propertyID)
	if err != nil {
		return nil, nil, err
	}

	if draft.CurrentStep == entity.LastFormStep {
		app, err := s.Submit(ctx, propertyID)
		if err != nil {
			return draft, nil, err
		}
		return nil, app, nil
	}

	if err := draft.Advance(); err != nil {
		return draft, nil, err
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		s.log.Errorf("ApplicationService.NextStep: failed to save draft for %s: %v", propertyID, err)
		return nil, nil, err
	}
	return draft, nil, nil
}

func (s *applicationService) PreviousStep(ctx context.Context, propertyID string) (*entity.FormDraft, error) {
	draft, err := s.Draft(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if err := draft.Back(); err != nil {
		return draft, err
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		s.log.Errorf("ApplicationService.PreviousStep: failed to save draft for %s: %v", propertyID, err)
		return nil, err
	}
	return draft, nil
}

func (s *applicationService) GoToStep(ctx context.Context, propertyID string, step entity.FormStep) (*entity.FormDraft, error) {
	draft, err := s.Draft(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if err := draft.GoToStep(step); err != nil {
		return draft, err
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		s.log.Errorf("ApplicationService.GoToStep: failed to save draft for %s: %v", propertyID, err)
		return nil, err
	}
	return draft, nil
}

func (s *applicationService) ValidateStep(ctx context.Context, propertyID string, step entity.FormStep) (entity.FieldErrors, error) {
	if !step.Valid() {
		return nil, entity.ErrStepOutOfRange
	}
	draft, err := s.Draft(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return draft.Data.ValidateStep(step), nil
}

// AttachDocument records a document reference on the draft. With a configured
// DocumentStore and payload the file is uploaded first; otherwise the opaque
// picker reference is stored untouched.
func (s *applicationService) AttachDocument(ctx context.Context, propertyID, field, fileName string, data []byte) (*entity.FormDraft, error) {
	draft, err := s.Draft(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	ref := fileName
	if s.docs != nil && len(data) > 0 {
		uploaded, err := s.docs.Upload(ctx, fileName, data)
		if err != nil {
			s.log.Errorf("ApplicationService.AttachDocument: upload failed for %s: %v", fileName, err)
			return nil, err
		}
		ref = uploaded
	}

	switch field {
	case "idDocument":
		draft.Data.IDDocument = ref
	case "proofOfRegistration":
		draft.Data.ProofOfRegistration = ref
	case "proofOfFunding":
		draft.Data.ProofOfFunding = ref
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDocumentField, field)
	}

	if err := s.drafts.Save(ctx, draft); err != nil {
		s.log.Errorf("ApplicationService.AttachDocument: failed to save draft for %s: %v", propertyID, err)
		return nil, err
	}
	return draft, nil
}

// Submit validates the whole form, appends exactly one Application record and
// deletes the draft key. Submitting twice for the same property is rejected.
func (s *applicationService) Submit(ctx context.Context, propertyID string) (*entity.Application, error) {
	if !s.propertyExists(propertyID) {
		return nil, ErrPropertyNotFound
	}

	draft, err := s.drafts.Get(ctx, propertyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoDraft
		}
		return nil, err
	}

	if errs := draft.Data.ValidateAll(); len(errs) > 0 {
		return nil, &entity.StepValidationError{Step: entity.StepReviewSubmit, Fields: errs}
	}

	existing, err := s.apps.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range existing {
		if a.PropertyID == propertyID {
			return nil, ErrAlreadySubmitted
		}
	}

	app := entity.NewApplication(propertyID, draft.Data, time.Now())
	if err := s.apps.Append(ctx, app); err != nil {
		s.log.Errorf("ApplicationService.Submit: failed to append application for %s: %v", propertyID, err)
		return nil, err
	}
	if err := s.drafts.Delete(ctx, propertyID); err != nil {
		s.log.Warnf("ApplicationService.Submit: failed to delete draft for %s: %v", propertyID, err)
	}

	if err := s.publisher.Publish(ctx, events.SubjectApplicationSubmitted, app); err != nil {
		s.log.Warnf("ApplicationService.Submit: failed to publish event: %v", err)
	}

	s.log.Infof("ApplicationService.Submit: application %s submitted for property %s", app.ID, propertyID)
	return &app, nil
}

func (s *applicationService) DiscardDraft(ctx context.Context, propertyID string) error {
	return s.drafts.Delete(ctx, propertyID)
}

func (s *applicationService) Applications(ctx context.Context) ([]entity.Application, error) {
	apps, err := s.apps.List(ctx)
	if err != nil {
		return nil, err
	}
	// Most recent first.
	for i, j := 0, len(apps)-1; i < j; i, j = i+1, j-1 {
		apps[i], apps[j] = apps[j], apps[i]
	}
	return apps, nil
}

func (s *applicationService) Application(ctx context.Context, id string) (*entity.Application, error) {
	return s.apps.GetByID(ctx, id)
}

func (s *applicationService) propertyExists(id string) bool {
	for _, l := range s.listings {
		if l.ID == id {
			return true
		}
	}
	return false
}
