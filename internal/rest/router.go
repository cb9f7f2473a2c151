package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the gateway's REST surface on the router.
func RegisterRoutes(router chi.Router, h *Handler) {
	router.Route("/api", func(r chi.Router) {
		r.Route("/chat", func(r chi.Router) {
			r.Get("/token", h.GetConnectToken)
			r.Get("/summary", h.GetChatSummary)

			r.Route("/peers/{peer_id}", func(r chi.Router) {
				r.Post("/messages", func(w http.ResponseWriter, req *http.Request) {
					h.SendMessage(w, req, chi.URLParam(req, "peer_id"))
				})
				r.Get("/messages", func(w http.ResponseWriter, req *http.Request) {
					h.GetMessages(w, req, chi.URLParam(req, "peer_id"))
				})
				r.Put("/messages/{message_id}", func(w http.ResponseWriter, req *http.Request) {
					h.EditMessage(w, req, chi.URLParam(req, "peer_id"), chi.URLParam(req, "message_id"))
				})
				r.Get("/presence", func(w http.ResponseWriter, req *http.Request) {
					h.GetPresence(w, req, chi.URLParam(req, "peer_id"))
				})
			})
		})

		r.Route("/call", func(r chi.Router) {
			r.Get("/channels/{channel_id}/token", func(w http.ResponseWriter, req *http.Request) {
				h.GetJoinToken(w, req, chi.URLParam(req, "channel_id"))
			})
			r.Post("/schedule", h.ScheduleCall)
			r.Delete("/schedule/{schedule_id}", func(w http.ResponseWriter, req *http.Request) {
				h.CancelCall(w, req, chi.URLParam(req, "schedule_id"))
			})
		})

		r.Get("/coach", h.GetCoach)
		r.Put("/presence", h.SetPresence)
	})
}
