package repository

import (
	"context"

	"github.com/UniStayTeam/resident-service/internal/domain/entity"
)

// ConversationRepository keeps every conversation in one stored list, ordered
// by last message time descending. Save upserts and re-sorts.
type ConversationRepository interface {
	List(ctx context.Context) ([]entity.Conversation, error)
	Get(ctx context.Context, id string) (*entity.Conversation, error)
	Save(ctx context.Context, conv *entity.Conversation) error
	Delete(ctx context.Context, id string) error
}
