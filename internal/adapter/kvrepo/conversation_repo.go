package kvrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/UniStayTeam/resident-service/internal/domain/entity"
	"github.com/UniStayTeam/resident-service/internal/repository"
	"github.com/UniStayTeam/resident-service/internal/storage"
)

type conversationRepository struct {
	store storage.Store
}

func NewConversationRepository(store storage.Store) repository.ConversationRepository {
	return &conversationRepository{store: store}
}

func (r *conversationRepository) List(ctx context.Context) ([]entity.Conversation, error) {
	raw, err := r.store.Get(ctx, keyConversations)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []entity.Conversation{}, nil
		}
		return nil, fmt.Errorf("failed to load conversations: %w", err)
	}
	var convs []entity.Conversation
	if err := json.Unmarshal(raw, &convs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversations: %w", err)
	}
	return convs, nil
}

func (r *conversationRepository) Get(ctx context.Context, id string) (*entity.Conversation, error) {
	convs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range convs {
		if convs[i].ID == id {
			return &convs[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// Save upserts the conversation and rewrites the whole list ordered by last
// message time descending.
func (r *conversationRepository) Save(ctx context.Context, conv *entity.Conversation) error {
	if conv == nil || conv.ID == "" {
		return errors.New("cannot save nil conversation or conversation with empty id")
	}
	convs, err := r.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range convs {
		if convs[i].ID == conv.ID {
			convs[i] = *conv
			replaced = true
			break
		}
	}
	if !replaced {
		convs = append(convs, *conv)
	}

	sort.SliceStable(convs, func(i, j int) bool {
		return convs[i].LastMessageTime.After(convs[j].LastMessageTime)
	})

	return r.writeAll(ctx, convs)
}

func (r *conversationRepository) Delete(ctx context.Context, id string) error {
	convs, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := convs[:0]
	for _, c := range convs {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return r.writeAll(ctx, kept)
}

func (r *conversationRepository) writeAll(ctx context.Context, convs []entity.Conversation) error {
	data, err := json.Marshal(convs)
	if err != nil {
		return fmt.Errorf("failed to marshal conversations: %w", err)
	}
	if err := r.store.Set(ctx, keyConversations, data); err != nil {
		return fmt.Errorf("failed to save conversations: %w", err)
	}
	return nil
}
