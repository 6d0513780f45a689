package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"smarthire/interview/internal/middleware"
	"smarthire/interview/internal/models"
	"smarthire/interview/internal/repositories"
	"smarthire/interview/internal/utils"
)

// ProfileHandler exposes the Session Context Store.
type ProfileHandler struct {
	profiles *repositories.ProfileRepository
	logger   *zap.Logger
}

func NewProfileHandler(profiles *repositories.ProfileRepository, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, logger: logger}
}

// GetHandler loads the stored recruiter configuration.
func (h *ProfileHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.Load(r.Context(), models.DefaultProfileID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
				Code:    "profile_not_found",
				Message: "No recruiter profile saved yet",
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

	utils.JSON(w, http.StatusOK, models.ProfileResponse{
		ID:            profile.ID,
		RecruiterName: profile.RecruiterName,
		Difficulty:    profile.Difficulty,
		InterviewType: profile.InterviewType,
		CandidateName: profile.CandidateName,
		ContextFile:   profile.ContextFile,
	})
}

// SaveHandler upserts the recruiter configuration.
func (h *ProfileHandler) SaveHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SaveProfileRequest](r)

	profile := &models.RecruiterProfile{
		ID:            req.ID,
		RecruiterName: req.RecruiterName,
		Difficulty:    req.Difficulty,
		InterviewType: req.InterviewType,
		CandidateName: req.CandidateName,
		ContextFile:   req.ContextFile,
	}

	if err := h.profiles.Save(r.Context(), profile); err != nil {
		var validation *models.ErrorResponse
		if errors.As(err, &validation) {
			utils.JSON(w, http.StatusBadRequest, *validation)
			return
		}
		h.logger.Error("failed to save profile", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to save recruiter profile",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.Resp{OK: true, Info: "profile saved"})
}

// DeleteHandler removes the recruiter configuration.
func (h *ProfileHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.profiles.Delete(r.Context(), models.DefaultProfileID); err != nil {
		h.logger.Error("failed to delete profile", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to delete recruiter profile",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.Resp{OK: true, Info: "profile deleted"})
}
