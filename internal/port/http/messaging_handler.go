package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) HandleListConversations(w http.ResponseWriter, r *http.Request) {
	convs, err := h.messages.Conversations(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, convs)
}

func (h *Handler) HandleGetConversation(w http.ResponseWriter, r *http.Request) {
	conv, err := h.messages.Conversation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, conv)
}

type sendMessageRequest struct {
	PropertyID  string `json:"propertyId"`
	ContactName string `json:"contactName"`
	Text        string `json:"text"`
}

func (h *Handler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if !h.decode(w, r, &req) {
		return
	}
	conv, err := h.messages.SendMessage(r.Context(), req.PropertyID, req.ContactName, req.Text)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, conv)
}

// HandleRecordHostMessage records an inbound host reply into a conversation.
// Used by the local notification bridge, not the resident-facing client.
func (h *Handler) HandleRecordHostMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if !h.decode(w, r, &req) {
		return
	}
	conv, err := h.messages.RecordHostMessage(r.Context(), req.PropertyID, req.ContactName, req.Text)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, conv)
}

func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.messages.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}

type archiveRequest struct {
	Archived bool `json:"archived"`
}

func (h *Handler) HandleArchiveConversation(w http.ResponseWriter, r *http.Request) {
	var req archiveRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.messages.SetArchived(r.Context(), chi.URLParam(r, "id"), req.Archived); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) HandleDeleteConversation(w http.ResponseWriter, r *http.Request) {
	if err := h.messages.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}
