package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(middleware.Recoverer)

	mux.Get("/api/listings", h.HandleListListings)
	mux.Get("/api/listings/{id}", h.HandleGetListing)
	mux.Get("/api/search", h.HandleSearch)
	mux.Get("/api/search/filters", h.HandleGetFilters)
	mux.Put("/api/search/filters", h.HandleSaveFilters)
	mux.Delete("/api/search/filters", h.HandleResetFilters)
	mux.Get("/api/search/history", h.HandleSearchHistory)
	mux.Delete("/api/search/history", h.HandleClearSearchHistory)
	mux.Get("/api/search/suggestions", h.HandleSuggestions)

	mux.Get("/api/favorites", h.HandleListFavorites)
	mux.Post("/api/favorites", h.HandleAddFavorite)
	mux.Delete("/api/favorites/{id}", h.HandleRemoveFavorite)

	mux.Get("/api/applications", h.HandleListApplications)
	mux.Get("/api/applications/{id}", h.HandleGetApplication)

	mux.Route("/api/properties/{id}/draft", func(r chi.Router) {
		r.Get("/", h.HandleGetDraft)
		r.Put("/", h.HandleUpdateDraft)
		r.Delete("/", h.HandleDiscardDraft)
		r.Post("/next", h.HandleNextStep)
		r.Post("/previous", h.HandlePreviousStep)
		r.Post("/step", h.HandleGoToStep)
		r.Get("/validate", h.HandleValidateStep)
		r.Post("/documents", h.HandleAttachDocument)
	})
	mux.Post("/api/properties/{id}/submit", h.HandleSubmitApplication)

	mux.Get("/api/conversations", h.HandleListConversations)
	mux.Get("/api/conversations/{id}", h.HandleGetConversation)
	mux.Post("/api/conversations/{id}/read", h.HandleMarkRead)
	mux.Post("/api/conversations/{id}/archive", h.HandleArchiveConversation)
	mux.Delete("/api/conversations/{id}", h.HandleDeleteConversation)
	mux.Post("/api/messages", h.HandleSendMessage)
	mux.Post("/api/messages/host", h.HandleRecordHostMessage)

	mux.Get("/api/offers", h.HandleListOffers)
	mux.Post("/api/offers/{id}/accept", h.HandleAcceptOffer)
	mux.Post("/api/offers/{id}/decline", h.HandleDeclineOffer)
	mux.Get("/api/status", h.HandleGetStatus)

	mux.Get("/api/profile", h.HandleGetProfile)
	mux.Put("/api/profile", h.HandleUpdateProfile)

	mux.Post("/api/session", h.HandleSignIn)
	mux.Delete("/api/session", h.HandleSignOut)
	mux.Get("/api/session", h.HandleCurrentUser)

	return mux
}
