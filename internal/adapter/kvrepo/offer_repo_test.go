package kvrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UniStayTeam/resident-service/internal/catalog"
	"github.com/UniStayTeam/resident-service/internal/domain/entity"
	"github.com/UniStayTeam/resident-service/internal/repository"
)

func TestOfferRepository_ReplaceAndList(t *testing.T) {
	repo := NewOfferRepository(newMemStore())
	ctx := context.Background()

	offers, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, offers)

	seed := catalog.SeedOffers(time.Now())
	require.NoError(t, repo.Replace(ctx, seed))

	offers, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, offers, len(seed))
}

func TestOfferRepository_Update(t *testing.T) {
	repo := NewOfferRepository(newMemStore())
	ctx := context.Background()
	require.NoError(t, repo.Replace(ctx, catalog.SeedOffers(time.Now())))

	offer, err := repo.GetByID(ctx, "offer-1")
	require.NoError(t, err)
	require.NoError(t, offer.UpdateStatus(entity.OfferDeclined))
	require.NoError(t, repo.Update(ctx, *offer))

	got, err := repo.GetByID(ctx, "offer-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OfferDeclined, got.Status)

	other, err := repo.GetByID(ctx, "offer-2")
	require.NoError(t, err)
	assert.Equal(t, entity.OfferPending, other.Status, "other offers are untouched")
}

func TestOfferRepository_UpdateUnknownOffer(t *testing.T) {
	repo := NewOfferRepository(newMemStore())

	err := repo.Update(context.Background(), entity.Offer{ID: "offer-99"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
