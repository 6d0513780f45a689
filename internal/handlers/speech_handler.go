package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"smarthire/interview/internal/models"
	"smarthire/interview/internal/speech"
	"smarthire/interview/internal/utils"
)

// SpeechHandler exposes the speech capability boundary. Capture runs in the
// browser; the server only reports capabilities and performs best-effort
// synthesis.
type SpeechHandler struct {
	recognizer  speech.Recognizer
	synthesizer speech.Synthesizer
	logger      *zap.Logger
}

func NewSpeechHandler(recognizer speech.Recognizer, synthesizer speech.Synthesizer, logger *zap.Logger) *SpeechHandler {
	return &SpeechHandler{
		recognizer:  recognizer,
		synthesizer: synthesizer,
		logger:      logger,
	}
}

// CapabilitiesHandler tells the UI which speech features it can offer.
func (h *SpeechHandler) CapabilitiesHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]bool{
		"recognition": h.recognizer.IsSupported(),
		"synthesis":   h.synthesizer.IsSupported(),
	})
}

type synthesizeBody struct {
	Text string `json:"text"`
}

// SynthesizeHandler converts recruiter text to audio. Synthesis is
// best-effort: failures are logged and reported as unavailable rather than
// as errors, so voice playback never blocks the text flow.
func (h *SpeechHandler) SynthesizeHandler(w http.ResponseWriter, r *http.Request) {
	var body synthesizeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "invalid_json",
			Message: "text field is required",
		})
		return
	}

	audio, err := h.synthesizer.Synthesize(r.Context(), body.Text)
	if err != nil {
		h.logger.Warn("speech synthesis failed", zap.Error(err))
		utils.JSON(w, http.StatusOK, models.Resp{OK: false, Info: "speech synthesis unavailable"})
		return
	}

	utils.JSON(w, http.StatusOK, audio)
}
