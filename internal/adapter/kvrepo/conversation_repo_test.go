package kvrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UniStayTeam/resident-service/internal/domain/entity"
	"github.com/UniStayTeam/resident-service/internal/repository"
)

func conversationAt(propertyID, contactName string, last time.Time) *entity.Conversation {
	c := entity.NewConversation(propertyID, contactName)
	c.Append(entity.Message{ID: "m", Sender: entity.SenderResident, Text: "hi", SentAt: last})
	return c
}

func TestConversationRepository_SaveOrdersByLastMessageTime(t *testing.T) {
	repo := NewConversationRepository(newMemStore())
	ctx := context.Background()
	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, conversationAt("p1", "John", base)))
	require.NoError(t, repo.Save(ctx, conversationAt("p2", "Mary", base.Add(time.Hour))))
	require.NoError(t, repo.Save(ctx, conversationAt("p3", "Ann", base.Add(30*time.Minute))))

	convs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, convs, 3)
	assert.Equal(t, "p2_mary", convs[0].ID)
	assert.Equal(t, "p3_ann", convs[1].ID)
	assert.Equal(t, "p1_john", convs[2].ID)
}

func TestConversationRepository_SaveUpserts(t *testing.T) {
	repo := NewConversationRepository(newMemStore())
	ctx := context.Background()
	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	conv := conversationAt("p1", "John", base)
	require.NoError(t, repo.Save(ctx, conv))

	conv.Append(entity.Message{ID: "m2", Sender: entity.SenderHost, Text: "hello back", SentAt: base.Add(time.Minute)})
	require.NoError(t, repo.Save(ctx, conv))

	convs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Len(t, convs[0].Messages, 2)
	assert.Equal(t, "hello back", convs[0].LastMessage)
}

func TestConversationRepository_GetAndDelete(t *testing.T) {
	repo := NewConversationRepository(newMemStore())
	ctx := context.Background()

	_, err := repo.Get(ctx, "p1_john")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Save(ctx, conversationAt("p1", "John", time.Now())))

	got, err := repo.Get(ctx, "p1_john")
	require.NoError(t, err)
	assert.Equal(t, "John", got.ContactName)

	require.NoError(t, repo.Delete(ctx, "p1_john"))
	_, err = repo.Get(ctx, "p1_john")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
