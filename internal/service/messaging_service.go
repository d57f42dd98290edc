package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/UniStayTeam/resident-service/internal/adapter/events"
	"github.com/UniStayTeam/resident-service/internal/domain/entity"
	"github.com/UniStayTeam/resident-service/internal/platform/logger"
	"github.com/UniStayTeam/resident-service/internal/repository"
)

var ErrEmptyMessage = errors.New("message text cannot be empty")

// welcomePool seeds a new conversation with one host greeting, picked
// pseudo-randomly.
var welcomePool = []string{
	"Hi! Thanks for reaching out about the property. How can I help?",
	"Hello! Great to hear from you. Would you like to arrange a viewing?",
	"Hi there! I'm happy to answer any questions about the room.",
	"Welcome! Let me know if you need more details about the accommodation.",
	"Hello! Thanks for your interest — the place is still available.",
}

// MessagingService manages the resident's direct-message threads with hosts.
type MessagingService interface {
	Conversations(ctx context.Context) ([]entity.Conversation, error)
	Conversation(ctx context.Context, id string) (*entity.Conversation, error)
	SendMessage(ctx context.Context, propertyID, contactName, text string) (*entity.Conversation, error)
	RecordHostMessage(ctx context.Context, propertyID, contactName, text string) (*entity.Conversation, error)
	MarkRead(ctx context.Context, id string) error
	SetArchived(ctx context.Context, id string, archived bool) error
	Delete(ctx context.Context, id string) error
}

type messagingService struct {
	repo      repository.ConversationRepository
	publisher events.Publisher
	log       logger.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewMessagingService(repo repository.ConversationRepository, publisher events.Publisher, log logger.Logger) MessagingService {
	return &messagingService{
		repo:      repo,
		publisher: publisher,
		log:       log,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *messagingService) Conversations(ctx context.Context) ([]entity.Conversation, error) {
	return s.repo.List(ctx)
}

func (s *messagingService) Conversation(ctx context.Context, id string) (*entity.Conversation, error) {
	return s.repo.Get(ctx, id)
}

// SendMessage appends a resident message, creating the thread lazily. A new
// thread is seeded with a synthesized host welcome before the first message.
func (s *messagingService) SendMessage(ctx context.Context, propertyID, contactName, text string) (*entity.Conversation, error) {
	return s.appendMessage(ctx, propertyID, contactName, text, entity.SenderResident)
}

// RecordHostMessage appends a host message, bumping the unread counter.
func (s *messagingService) RecordHostMessage(ctx context.Context, propertyID, contactName, text string) (*entity.Conversation, error) {
	return s.appendMessage(ctx, propertyID, contactName, text, entity.SenderHost)
}

func (s *messagingService) appendMessage(ctx context.Context, propertyID, contactName, text string, sender entity.MessageSender) (*entity.Conversation, error) {
	if text == "" {
		return nil, ErrEmptyMessage
	}

	id := entity.ConversationID(propertyID, contactName)
	conv, err := s.repo.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Errorf("MessagingService: failed to load conversation %s: %v", id, err)
			return nil, err
		}
		conv = entity.NewConversation(propertyID, contactName)
		conv.Append(entity.Message{
			ID:     uuid.New().String(),
			Sender: entity.SenderHost,
			Text:   s.pickWelcome(),
			SentAt: time.Now().UTC(),
		})
	}

	conv.Append(entity.Message{
		ID:     uuid.New().String(),
		Sender: sender,
		Text:   text,
		SentAt: time.Now().UTC(),
	})

	if err := s.repo.Save(ctx, conv); err != nil {
		s.log.Errorf("MessagingService: failed to save conversation %s: %v", id, err)
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.SubjectMessageSent, conv); err != nil {
		s.log.Warnf("MessagingService: failed to publish message event: %v", err)
	}
	return conv, nil
}

func (s *messagingService) MarkRead(ctx context.Context, id string) error {
	conv, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	conv.MarkRead()
	return s.repo.Save(ctx, conv)
}

func (s *messagingService) SetArchived(ctx context.Context, id string, archived bool) error {
	conv, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	conv.IsArchived = archived
	return s.repo.Save(ctx, conv)
}

func (s *messagingService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *messagingService) pickWelcome() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return welcomePool[s.rng.Intn(len(welcomePool))]
}
