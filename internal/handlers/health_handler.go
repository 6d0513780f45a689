package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"smarthire/interview/internal/config"
	"smarthire/interview/internal/llm"
	"smarthire/interview/internal/prompts"
	"smarthire/interview/internal/utils"
)

type ReadinessCheck struct {
	Status  string `json:"status"` // "ok" | "failed"
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status  string                    `json:"status"`  // "ready" | "not_ready"
	Service string                    `json:"service"` // Service name
	Checks  map[string]ReadinessCheck `json:"checks"`  // Individual check results
}

type HealthHandler struct {
	provider llm.Provider
	renderer *prompts.Renderer
	config   *config.Config
	db       *gorm.DB
}

func NewHealthHandler(provider llm.Provider, renderer *prompts.Renderer, cfg *config.Config, db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		provider: provider,
		renderer: renderer,
		config:   cfg,
		db:       db,
	}
}

func (handler *HealthHandler) HealthzHandler(writer http.ResponseWriter, request *http.Request) {
	utils.JSON(writer, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "interview",
		"version": "1.0.0",
	})
}

func (handler *HealthHandler) ReadyzHandler(writer http.ResponseWriter, request *http.Request) {
	checks := make(map[string]ReadinessCheck)
	allChecksPass := true

	// verify AI provider is initialized
	if handler.provider == nil {
		checks["provider"] = ReadinessCheck{
			Status:  "failed",
			Message: "AI provider not initialized",
		}
		allChecksPass = false
	} else {
		checks["provider"] = ReadinessCheck{
			Status: "ok",
		}
	}

	// verify prompt templates loaded
	if handler.renderer == nil {
		checks["prompts"] = ReadinessCheck{
			Status:  "failed",
			Message: "Prompt renderer not initialized",
		}
		allChecksPass = false
	} else {
		checks["prompts"] = ReadinessCheck{
			Status: "ok",
		}
	}

	// verify configuration is valid
	if handler.config == nil {
		checks["configuration"] = ReadinessCheck{
			Status:  "failed",
			Message: "Configuration not loaded",
		}
		allChecksPass = false
	} else {
		checks["configuration"] = ReadinessCheck{
			Status: "ok",
		}
	}

	// verify database connectivity
	if handler.db == nil {
		checks["database"] = ReadinessCheck{
			Status:  "failed",
			Message: "Database not initialized",
		}
		allChecksPass = false
	} else if sqlDB, err := handler.db.DB(); err != nil || sqlDB.Ping() != nil {
		checks["database"] = ReadinessCheck{
			Status:  "failed",
			Message: "Database unreachable",
		}
		allChecksPass = false
	} else {
		checks["database"] = ReadinessCheck{
			Status: "ok",
		}
	}

	response := ReadinessResponse{
		Service: "interview",
		Checks:  checks,
	}

	if allChecksPass {
		response.Status = "ready"
		utils.JSON(writer, http.StatusOK, response)
	} else {
		response.Status = "not_ready"
		utils.JSON(writer, http.StatusServiceUnavailable, response)
	}
}
