package http

import (
	"net/http"

	"github.com/UniStayTeam/resident-service/internal/domain/entity"
)

type profileResponse struct {
	UserName     string              `json:"userName"`
	ProfileImage string              `json:"profileImage,omitempty"`
	PersonalInfo entity.PersonalInfo `json:"personalInfo"`
}

func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	name, err := h.profile.UserName(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	image, err := h.profile.ProfileImage(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	info, err := h.profile.PersonalInfo(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, profileResponse{UserName: name, ProfileImage: image, PersonalInfo: info})
}

type updateProfileRequest struct {
	UserName     *string              `json:"userName,omitempty"`
	ProfileImage *string              `json:"profileImage,omitempty"`
	PersonalInfo *entity.PersonalInfo `json:"personalInfo,omitempty"`
}

func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !h.decode(w, r, &req) {
		return
	}
	ctx := r.Context()
	if req.UserName != nil {
		if err := h.profile.SetUserName(ctx, *req.UserName); err != nil {
			h.respondError(w, err)
			return
		}
	}
	if req.ProfileImage != nil {
		if err := h.profile.SetProfileImage(ctx, *req.ProfileImage); err != nil {
			h.respondError(w, err)
			return
		}
	}
	if req.PersonalInfo != nil {
		if err := h.profile.SetPersonalInfo(ctx, *req.PersonalInfo); err != nil {
			h.respondError(w, err)
			return
		}
	}
	h.HandleGetProfile(w, r)
}

type sessionRequest struct {
	Token string `json:"token"`
}

func (h *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.session.SignIn(r.Context(), req.Token); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.session.SignOut(r.Context()); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.session.CurrentUser(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"user": user})
}
