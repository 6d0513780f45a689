package routers

import (
	"github.com/go-chi/chi/v5"

	"smarthire/interview/internal/handlers"
	"smarthire/interview/internal/middleware"
	"smarthire/interview/internal/models"
)

func InterviewRoutes(router *chi.Mux, interviewHandler *handlers.InterviewHandler, assessmentHandler *handlers.AssessmentHandler) {
	router.Route("/api/v1/interview", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.StartInterviewRequest]()).Post("/start", interviewHandler.StartHandler)
		r.With(middleware.ValidateRequest[*models.RespondRequest]()).Post("/{session_id}/respond", interviewHandler.RespondHandler)
		r.Get("/{session_id}/history", interviewHandler.HistoryHandler)
		r.Post("/{session_id}/reset", interviewHandler.ResetHandler)
		r.Post("/{session_id}/assessment", assessmentHandler.AssessHandler)
	})
}

func ProfileRoutes(router *chi.Mux, profileHandler *handlers.ProfileHandler) {
	router.Route("/api/v1/profile", func(r chi.Router) {
		r.Get("/", profileHandler.GetHandler)
		r.With(middleware.ValidateRequest[*models.SaveProfileRequest]()).Put("/", profileHandler.SaveHandler)
		r.Delete("/", profileHandler.DeleteHandler)
	})
}

func SpeechRoutes(router *chi.Mux, speechHandler *handlers.SpeechHandler) {
	router.Route("/api/v1/speech", func(r chi.Router) {
		r.Get("/capabilities", speechHandler.CapabilitiesHandler)
		r.Post("/synthesize", speechHandler.SynthesizeHandler)
	})
}
