package service

import (
	"context"
	"errors"
	"strings"

	"github.com/UniStayTeam/resident-service/internal/domain/entity"
	"github.com/UniStayTeam/resident-service/internal/platform/logger"
	"github.com/UniStayTeam/resident-service/internal/repository"
)

const (
	historyLimit     = 20
	suggestionsLimit = 8
)

// SearchService runs the filter/sort pipeline over the static catalog and
// persists the user's filter selection, query history and suggestions.
type SearchService interface {
	Search(ctx context.Context, query string, sort entity.SortMode) ([]entity.Listing, error)
	Filters(ctx context.Context) (entity.SearchFilters, error)
	SaveFilters(ctx context.Context, f entity.SearchFilters) error
	ResetFilters(ctx context.Context) error
	History(ctx context.Context) ([]string, error)
	ClearHistory(ctx context.Context) error
	Suggestions(ctx context.Context, prefix string) ([]string, error)
}

type searchService struct {
	listings []entity.Listing
	repo     repository.SearchStateRepository
	log      logger.Logger
}

func NewSearchService(listings []entity.Listing, repo repository.SearchStateRepository, log logger.Logger) SearchService {
	return &searchService{listings: listings, repo: repo, log: log}
}

// Search recomputes the full pipeline on every call: linear scan, no index,
// no result caching. Results group available units first, then apply the
// selected sort as a stable secondary key.
func (s *searchService) Search(ctx context.Context, query string, sort entity.SortMode) ([]entity.Listing, error) {
	filters, err := s.Filters(ctx)
	if err != nil {
		return nil, err
	}

	results := entity.FilterListings(s.listings, filters, query)
	entity.SortListings(results, sort)

	if q := strings.TrimSpace(query); q != "" {
		// History upkeep is best-effort: a failed write must not fail the search.
		if err := s.recordQuery(ctx, q); err != nil {
			s.log.Warnf("SearchService.Search: failed to record query %q: %v", q, err)
		}
	}

	s.log.Debugf("SearchService.Search: query=%q sort=%s results=%d", query, sort, len(results))
	return results, nil
}

func (s *searchService) Filters(ctx context.Context) (entity.SearchFilters, error) {
	f, err := s.repo.Filters(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return entity.DefaultSearchFilters(), nil
		}
		s.log.Errorf("SearchService.Filters: failed to load filters: %v", err)
		return entity.SearchFilters{}, err
	}
	return *f, nil
}

func (s *searchService) SaveFilters(ctx context.Context, f entity.SearchFilters) error {
	if err := s.repo.SaveFilters(ctx, f); err != nil {
		s.log.Errorf("SearchService.SaveFilters: %v", err)
		return err
	}
	return nil
}

func (s *searchService) ResetFilters(ctx context.Context) error {
	return s.SaveFilters(ctx, entity.DefaultSearchFilters())
}

func (s *searchService) History(ctx context.Context) ([]string, error) {
	return s.repo.History(ctx)
}

func (s *searchService) ClearHistory(ctx context.Context) error {
	return s.repo.SaveHistory(ctx, []string{})
}

// Suggestions merges recorded queries with catalog terms and returns up to
// suggestionsLimit case-insensitive substring matches on the prefix.
func (s *searchService) Suggestions(ctx context.Context, prefix string) ([]string, error) {
	stored, err := s.repo.Suggestions(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]string, 0, len(stored)+len(s.listings)*3)
	candidates = append(candidates, stored...)
	for _, l := range s.listings {
		candidates = append(candidates, l.Title, l.Location, l.University)
	}

	p := strings.ToLower(strings.TrimSpace(prefix))
	seen := map[string]bool{}
	out := []string{}
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if seen[lc] {
			continue
		}
		if p != "" && !strings.Contains(lc, p) {
			continue
		}
		seen[lc] = true
		out = append(out, c)
		if len(out) >= suggestionsLimit {
			break
		}
	}
	return out, nil
}

// recordQuery moves the query to the front of the history (deduped, capped)
// and adds it to the suggestion pool.
func (s *searchService) recordQuery(ctx context.Context, query string) error {
	history, err := s.repo.History(ctx)
	if err != nil {
		return err
	}

	updated := []string{query}
	for _, h := range history {
		if !strings.EqualFold(h, query) {
			updated = append(updated, h)
		}
	}
	if len(updated) > historyLimit {
		updated = updated[:historyLimit]
	}
	if err := s.repo.SaveHistory(ctx, updated); err != nil {
		return err
	}

	suggestions, err := s.repo.Suggestions(ctx)
	if err != nil {
		return err
	}
	for _, sg := range suggestions {
		if strings.EqualFold(sg, query) {
			return nil
		}
	}
	return s.repo.SaveSuggestions(ctx, append(suggestions, query))
}
