package repository

import (
	"context"

	"github.com/UniStayTeam/resident-service/internal/domain/entity"
)

// SearchStateRepository persists the filter selection, the recent query
// history and the suggestion pool.
type SearchStateRepository interface {
	Filters(ctx context.Context) (*entity.SearchFilters, error)
	SaveFilters(ctx context.Context, f entity.SearchFilters) error
	History(ctx context.Context) ([]string, error)
	SaveHistory(ctx context.Context, history []string) error
	Suggestions(ctx context.Context) ([]string, error)
	SaveSuggestions(ctx context.Context, suggestions []string) error
}
