package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/UniStayTeam/resident-service/internal/domain/entity"
	"github.com/UniStayTeam/resident-service/internal/repository"
)

func (h *Handler) HandleListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.offers.Offers(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, offers)
}

func (h *Handler) HandleAcceptOffer(w http.ResponseWriter, r *http.Request) {
	approved, err := h.offers.AcceptOffer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, approved)
}

func (h *Handler) HandleDeclineOffer(w http.ResponseWriter, r *http.Request) {
	if err := h.offers.DeclineOffer(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}

type statusResponse struct {
	UserStatus            entity.UserStatus             `json:"userStatus"`
	ApprovedAccommodation *entity.ApprovedAccommodation `json:"approvedAccommodation,omitempty"`
}

func (h *Handler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.offers.UserStatus(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	resp := statusResponse{UserStatus: status}
	approved, err := h.offers.Approved(r.Context())
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		h.respondError(w, err)
		return
	}
	if err == nil {
		resp.ApprovedAccommodation = approved
	}
	h.respondJSON(w, http.StatusOK, resp)
}
