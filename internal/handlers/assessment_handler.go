package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"smarthire/interview/internal/assessment"
	"smarthire/interview/internal/models"
	"smarthire/interview/internal/session"
	"smarthire/interview/internal/utils"
)

// AssessmentHandler produces feedback on the latest candidate answer of a
// session.
type AssessmentHandler struct {
	registry  *session.Registry
	generator *assessment.Generator
	logger    *zap.Logger
}

func NewAssessmentHandler(registry *session.Registry, generator *assessment.Generator, logger *zap.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		registry:  registry,
		generator: generator,
		logger:    logger,
	}
}

// AssessHandler scores the most recent candidate answer against the
// question it was given.
func (h *AssessmentHandler) AssessHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	s.Lock()
	transcript := s.Engine.History()
	ictx := s.Engine.Context()
	s.Unlock()

	feedback, err := h.generator.Assess(r.Context(), transcript, ictx)
	if err != nil {
		h.writeAssessError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, feedback)
}

func (h *AssessmentHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "session_id")
	s, ok := h.registry.Get(id)
	if !ok {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "Interview session not found or expired",
		})
		return nil, false
	}
	return s, true
}

func (h *AssessmentHandler) writeAssessError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, assessment.ErrNoHistory):
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "no_history",
			Message: "No conversation history to analyze",
		})
	case errors.Is(err, assessment.ErrNoCandidateTurn):
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "no_candidate_turn",
			Message: "No candidate response found to analyze",
		})
	case errors.Is(err, assessment.ErrMalformedFeedback):
		h.logger.Error("malformed feedback from AI", zap.Error(err))
		utils.JSON(w, http.StatusBadGateway, models.ErrorResponse{
			Code:    "malformed_feedback",
			Message: "Failed to generate feedback. Please try again.",
		})
	default:
		h.logger.Error("feedback generation failed", zap.Error(err))
		utils.JSON(w, http.StatusBadGateway, models.ErrorResponse{
			Code:    "ai_error",
			Message: "Failed to generate feedback. Please try again.",
		})
	}
}
