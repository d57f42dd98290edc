package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/UniStayTeam/resident-service/internal/domain/entity"
)

func (h *Handler) HandleListListings(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.listings)
}

func (h *Handler) HandleGetListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, l := range h.listings {
		if l.ID == id {
			h.respondJSON(w, http.StatusOK, l)
			return
		}
	}
	h.respondJSON(w, http.StatusNotFound, errorResponse{Error: "listing not found"})
}

func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	sort := entity.SortMode(r.URL.Query().Get("sort"))
	if sort == "" {
		sort = entity.SortRelevance
	}

	results, err := h.search.Search(r.Context(), query, sort)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, results)
}

func (h *Handler) HandleGetFilters(w http.ResponseWriter, r *http.Request) {
	filters, err := h.search.Filters(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, filters)
}

func (h *Handler) HandleSaveFilters(w http.ResponseWriter, r *http.Request) {
	var filters entity.SearchFilters
	if !h.decode(w, r, &filters) {
		return
	}
	if err := h.search.SaveFilters(r.Context(), filters); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, filters)
}

func (h *Handler) HandleResetFilters(w http.ResponseWriter, r *http.Request) {
	if err := h.search.ResetFilters(r.Context()); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) HandleSearchHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.search.History(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, history)
}

func (h *Handler) HandleClearSearchHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.search.ClearHistory(r.Context()); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.search.Suggestions(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, suggestions)
}

type favoriteRequest struct {
	PropertyID string `json:"propertyId"`
}

func (h *Handler) HandleListFavorites(w http.ResponseWriter, r *http.Request) {
	liked, err := h.profile.LikedProperties(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, liked)
}

func (h *Handler) HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.profile.LikeProperty(r.Context(), req.PropertyID); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) HandleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	if err := h.profile.UnlikeProperty(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}
