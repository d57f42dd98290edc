package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/UniStayTeam/resident-service/internal/domain/entity"
)

func (h *Handler) HandleListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.apps.Applications(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, apps)
}

func (h *Handler) HandleGetApplication(w http.ResponseWriter, r *http.Request) {
	app, err := h.apps.Application(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, app)
}

func (h *Handler) HandleGetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.apps.Draft(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, draft)
}

func (h *Handler) HandleUpdateDraft(w http.ResponseWriter, r *http.Request) {
	var data entity.FormData
	if !h.decode(w, r, &data) {
		return
	}
	draft, err := h.apps.UpdateDraft(r.Context(), chi.URLParam(r, "id"), data)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, draft)
}

// HandleNextStep advances the draft, or submits it from the review step.
func (h *Handler) HandleNextStep(w http.ResponseWriter, r *http.Request) {
	draft, app, err := h.apps.NextStep(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	if app != nil {
		h.respondJSON(w, http.StatusCreated, app)
		return
	}
	h.respondJSON(w, http.StatusOK, draft)
}

func (h *Handler) HandlePreviousStep(w http.ResponseWriter, r *http.Request) {
	draft, err := h.apps.PreviousStep(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, draft)
}

type goToStepRequest struct {
	Step int `json:"step"`
}

func (h *Handler) HandleGoToStep(w http.ResponseWriter, r *http.Request) {
	var req goToStepRequest
	if !h.decode(w, r, &req) {
		return
	}
	draft, err := h.apps.GoToStep(r.Context(), chi.URLParam(r, "id"), entity.FormStep(req.Step))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, draft)
}

func (h *Handler) HandleValidateStep(w http.ResponseWriter, r *http.Request) {
	step, err := strconv.Atoi(r.URL.Query().Get("step"))
	if err != nil {
		h.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "step must be an integer"})
		return
	}
	fieldErrs, err := h.apps.ValidateStep(r.Context(), chi.URLParam(r, "id"), entity.FormStep(step))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"complete": len(fieldErrs) == 0,
		"fields":   fieldErrs,
	})
}

type attachDocumentRequest struct {
	Field    string `json:"field"`
	FileName string `json:"fileName"`
	// Data is base64-encoded file content; empty when only a picker
	// reference is attached.
	Data []byte `json:"data,omitempty"`
}

func (h *Handler) HandleAttachDocument(w http.ResponseWriter, r *http.Request) {
	var req attachDocumentRequest
	if !h.decode(w, r, &req) {
		return
	}
	draft, err := h.apps.AttachDocument(r.Context(), chi.URLParam(r, "id"), req.Field, req.FileName, req.Data)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, draft)
}

func (h *Handler) HandleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	app, err := h.apps.Submit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, app)
}

func (h *Handler) HandleDiscardDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.apps.DiscardDraft(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}
