package models

import (
	"strings"
	"unicode/utf8"
)

type StartInterviewRequest struct {
	ProfileID string `json:"profile_id"`
	RequestID string `json:"request_id"`
}

// implements the Validator interface
func (r *StartInterviewRequest) Validate() error {
	if strings.TrimSpace(r.ProfileID) == "" {
		r.ProfileID = DefaultProfileID
	}
	return nil
}

type RespondRequest struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// Validate rejects empty and oversized candidate responses before any
// remote call is made.
func (r *RespondRequest) Validate() error {
	trimmed := strings.TrimSpace(r.Message)
	if trimmed == "" {
		return &ErrorResponse{
			Code:    "empty_response",
			Message: "Response cannot be empty",
		}
	}
	if utf8.RuneCountInString(trimmed) > MaxResponseLength {
		return &ErrorResponse{
			Code:    "response_too_long",
			Message: "Response is too long. Please keep it under 10000 characters.",
		}
	}
	r.Message = trimmed
	return nil
}

type SaveProfileRequest struct {
	ID            string `json:"id"`
	RecruiterName string `json:"recruiter_name"`
	Difficulty    string `json:"difficulty"`
	InterviewType string `json:"interview_type"`
	CandidateName string `json:"candidate_name"`
	ContextFile   string `json:"context_file"`
}

func (r *SaveProfileRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		r.ID = DefaultProfileID
	}

	if strings.TrimSpace(r.RecruiterName) == "" {
		return &ErrorResponse{Code: "missing_recruiter_name", Message: "Recruiter name is required"}
	}
	if len(r.RecruiterName) > MaxNameLength {
		return &ErrorResponse{Code: "recruiter_name_too_long", Message: "Recruiter name too long"}
	}

	if strings.TrimSpace(r.CandidateName) == "" {
		return &ErrorResponse{Code: "missing_candidate_name", Message: "Candidate name is required"}
	}
	if len(r.CandidateName) > MaxNameLength {
		return &ErrorResponse{Code: "candidate_name_too_long", Message: "Candidate name too long"}
	}

	if strings.TrimSpace(r.InterviewType) == "" {
		return &ErrorResponse{Code: "missing_interview_type", Message: "Interview type is required"}
	}
	if !ValidInterviewTypes[strings.ToLower(strings.TrimSpace(r.InterviewType))] {
		return &ErrorResponse{
			Code:    "invalid_interview_type",
			Message: "Interview type must be one of: " + strings.Join(ValidInterviewTypesList(), ", "),
		}
	}

	// Difficulty may be empty; when present it must be a known level.
	if r.Difficulty != "" && !ValidDifficulties[strings.ToLower(strings.TrimSpace(r.Difficulty))] {
		return &ErrorResponse{
			Code:    "invalid_difficulty",
			Message: "Difficulty must be one of: " + strings.Join(ValidDifficultiesList(), ", "),
		}
	}

	if len(r.ContextFile) > MaxContextLength {
		return &ErrorResponse{Code: "context_too_large", Message: "Context file too large"}
	}

	return nil
}

// Context converts the request into the session configuration it describes.
func (r *SaveProfileRequest) Context() InterviewContext {
	return InterviewContext{
		RecruiterName: r.RecruiterName,
		Difficulty:    r.Difficulty,
		InterviewType: r.InterviewType,
		CandidateName: r.CandidateName,
		ContextFile:   r.ContextFile,
	}
}
