// Package http exposes the resident-service operations over a small
// localhost JSON API. Handlers stay thin and delegate to the services.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/UniStayTeam/resident-service/internal/auth"
	"github.com/UniStayTeam/resident-service/internal/domain/entity"
	"github.com/UniStayTeam/resident-service/internal/platform/logger"
	"github.com/UniStayTeam/resident-service/internal/repository"
	"github.com/UniStayTeam/resident-service/internal/service"
)

type Handler struct {
	listings []entity.Listing
	search   service.SearchService
	apps     service.ApplicationService
	messages service.MessagingService
	offers   service.OfferService
	profile  service.ProfileService
	session  *auth.Session
	log      logger.Logger
}

func NewHandler(
	listings []entity.Listing,
	search service.SearchService,
	apps service.ApplicationService,
	messages service.MessagingService,
	offers service.OfferService,
	profile service.ProfileService,
	session *auth.Session,
	log logger.Logger,
) *Handler {
	return &Handler{
		listings: listings,
		search:   search,
		apps:     apps,
		messages: messages,
		offers:   offers,
		profile:  profile,
		session:  session,
		log:      log,
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Errorf("failed to encode response: %v", err)
	}
}

type errorResponse struct {
	Error  string             `json:"error"`
	Fields entity.FieldErrors `json:"fields,omitempty"`
}

// respondError maps domain errors onto HTTP statuses. Incomplete form steps
// surface their field-level messages.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var stepErr *entity.StepValidationError
	if errors.As(err, &stepErr) {
		h.respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: stepErr.Error(), Fields: stepErr.Fields})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrPropertyNotFound),
		errors.Is(err, service.ErrNoDraft):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrAlreadySubmitted),
		errors.Is(err, service.ErrAlreadyApproved):
		status = http.StatusConflict
	case errors.Is(err, entity.ErrForwardJump),
		errors.Is(err, entity.ErrAtFinalStep),
		errors.Is(err, entity.ErrAtFirstStep),
		errors.Is(err, entity.ErrStepOutOfRange),
		errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrUnknownDocumentField),
		errors.Is(err, auth.ErrInvalidToken):
		status = http.StatusBadRequest
	case errors.Is(err, auth.ErrNoSession):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		h.log.Errorf("request failed: %v", err)
	}
	h.respondJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
