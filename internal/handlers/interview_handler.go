package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"smarthire/interview/internal/engine"
	"smarthire/interview/internal/llm"
	"smarthire/interview/internal/metrics"
	"smarthire/interview/internal/middleware"
	"smarthire/interview/internal/models"
	"smarthire/interview/internal/prompts"
	"smarthire/interview/internal/repositories"
	"smarthire/interview/internal/session"
	"smarthire/interview/internal/utils"
)

// InterviewHandler drives interview sessions over HTTP. It owns no
// conversation state itself; each session's engine does.
type InterviewHandler struct {
	registry       *session.Registry
	profiles       *repositories.ProfileRepository
	questions      engine.QuestionStore
	provider       llm.Provider
	renderer       *prompts.Renderer
	logger         *zap.Logger
	exclusionLimit int
}

func NewInterviewHandler(
	registry *session.Registry,
	profiles *repositories.ProfileRepository,
	questions engine.QuestionStore,
	provider llm.Provider,
	renderer *prompts.Renderer,
	logger *zap.Logger,
	exclusionLimit int,
) *InterviewHandler {
	return &InterviewHandler{
		registry:       registry,
		profiles:       profiles,
		questions:      questions,
		provider:       provider,
		renderer:       renderer,
		logger:         logger,
		exclusionLimit: exclusionLimit,
	}
}

// StartHandler creates a session from the stored profile and opens the
// interview.
func (h *InterviewHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.StartInterviewRequest](r)

	profile, err := h.profiles.Load(r.Context(), req.ProfileID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			utils.JSON(w, http.StatusConflict, models.ErrorResponse{
				Code:    "configuration_missing",
				Message: "No recruiter profile configured. Save a profile before starting an interview.",
			})
			return
		}
		h.logger.Error("failed to load profile", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to load recruiter profile",
		})
		return
	}

	ictx := repositories.Context(profile)
	if !ictx.Complete() {
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "configuration_missing",
			Message: "Recruiter profile is incomplete: recruiter name, interview type and candidate name are required.",
		})
		return
	}

	eng := engine.New(ictx, h.provider, h.questions, h.renderer, h.logger)
	eng.SetExclusionLimit(h.exclusionLimit)
	s := h.registry.Create(eng)

	s.Lock()
	defer s.Unlock()

	reply, err := s.Engine.Start(r.Context())
	metrics.ObserveTurn("start", err)
	if err != nil {
		h.registry.Delete(s.ID)
		h.writeEngineError(w, err)
		return
	}

	h.logger.Info("interview started",
		zap.String("session_id", s.ID),
		zap.String("interview_type", ictx.InterviewType),
		zap.String("provider", h.provider.GetProviderName()))

	utils.JSON(w, http.StatusOK, models.InterviewResponse{
		SessionID:  s.ID,
		Reply:      reply,
		Transcript: s.Engine.History(),
		RequestID:  req.RequestID,
	})
}

// RespondHandler forwards one candidate answer to the session's engine.
func (h *InterviewHandler) RespondHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.RespondRequest](r)

	s, ok := h.session(w, r)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	reply, err := s.Engine.Respond(r.Context(), req.Message)
	metrics.ObserveTurn("respond", err)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, models.InterviewResponse{
		SessionID:  s.ID,
		Reply:      reply,
		Transcript: s.Engine.History(),
		RequestID:  req.RequestID,
	})
}

// HistoryHandler returns the transcript snapshot for a session.
func (h *InterviewHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	utils.JSON(w, http.StatusOK, models.InterviewResponse{
		SessionID:  s.ID,
		Transcript: s.Engine.History(),
	})
}

// ResetHandler discards the session transcript, keeping the session and its
// configuration alive.
func (h *InterviewHandler) ResetHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	s.Lock()
	defer s.Unlock()

	s.Engine.Reset()
	utils.JSON(w, http.StatusOK, models.InterviewResponse{
		SessionID:  s.ID,
		Transcript: s.Engine.History(),
	})
}

func (h *InterviewHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
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

// writeEngineError maps engine failures onto the HTTP taxonomy: validation
// failures are 400s, protocol misuse is 409, provider trouble is 502.
func (h *InterviewHandler) writeEngineError(w http.ResponseWriter, err error) {
	var validation *models.ErrorResponse
	switch {
	case errors.As(err, &validation):
		utils.JSON(w, http.StatusBadRequest, *validation)
	case errors.Is(err, engine.ErrAlreadyStarted) || errors.Is(err, engine.ErrNotStarted):
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "invalid_session_state",
			Message: err.Error(),
		})
	case errors.Is(err, engine.ErrEmptyResponse):
		h.logger.Error("AI returned empty response")
		utils.JSON(w, http.StatusBadGateway, models.ErrorResponse{
			Code:    "empty_ai_response",
			Message: "The AI returned an empty response. Please try again.",
		})
	default:
		h.logger.Error("AI provider error", zap.Error(err))
		utils.JSON(w, http.StatusBadGateway, models.ErrorResponse{
			Code:    "ai_error",
			Message: "Failed to generate interview question",
		})
	}
}
