package models

import (
	"errors"
	"strings"
	"testing"
)

func TestStartInterviewRequestDefaultsProfileID(t *testing.T) {
	req := &StartInterviewRequest{}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ProfileID != DefaultProfileID {
		t.Fatalf("expected default profile id, got %q", req.ProfileID)
	}

	req = &StartInterviewRequest{ProfileID: "7"}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ProfileID != "7" {
		t.Fatalf("explicit profile id must survive, got %q", req.ProfileID)
	}
}

func TestRespondRequestValidate(t *testing.T) {
	req := &RespondRequest{Message: "  a solid answer  "}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Message != "a solid answer" {
		t.Fatalf("expected trimmed message, got %q", req.Message)
	}
}

func TestRespondRequestEmpty(t *testing.T) {
	for _, message := range []string{"", "   ", "\n\t "} {
		req := &RespondRequest{Message: message}
		err := req.Validate()
		assertErrorCode(t, err, "empty_response")
	}
}

func TestRespondRequestTooLong(t *testing.T) {
	req := &RespondRequest{Message: strings.Repeat("a", MaxResponseLength+1)}
	assertErrorCode(t, req.Validate(), "response_too_long")

	// exactly at the limit is fine
	req = &RespondRequest{Message: strings.Repeat("a", MaxResponseLength)}
	if err := req.Validate(); err != nil {
		t.Fatalf("message at the limit must pass, got %v", err)
	}
}

func TestRespondRequestLengthCountsRunes(t *testing.T) {
	// 4000 runes, 12000 bytes: within the character limit
	req := &RespondRequest{Message: strings.Repeat("答", 4000)}
	if err := req.Validate(); err != nil {
		t.Fatalf("multibyte message within the limit was rejected: %v", err)
	}

	req = &RespondRequest{Message: strings.Repeat("答", MaxResponseLength+1)}
	assertErrorCode(t, req.Validate(), "response_too_long")
}

func TestSaveProfileRequestValidate(t *testing.T) {
	req := &SaveProfileRequest{
		RecruiterName: "Ava",
		Difficulty:    "Hard",
		InterviewType: "Technical",
		CandidateName: "Sam",
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ID != DefaultProfileID {
		t.Fatalf("expected default profile id, got %q", req.ID)
	}
}

func TestSaveProfileRequestInterviewType(t *testing.T) {
	req := &SaveProfileRequest{
		RecruiterName: "Ava",
		CandidateName: "Sam",
		InterviewType: "Napkin Folding",
	}
	assertErrorCode(t, req.Validate(), "invalid_interview_type")

	// every enumerated type passes, case-insensitively
	for _, interviewType := range ValidInterviewTypesList() {
		req := &SaveProfileRequest{
			RecruiterName: "Ava",
			CandidateName: "Sam",
			InterviewType: strings.ToUpper(interviewType),
		}
		if err := req.Validate(); err != nil {
			t.Fatalf("interview type %q rejected: %v", interviewType, err)
		}
	}
}

func TestSaveProfileRequestDifficultyOptional(t *testing.T) {
	req := &SaveProfileRequest{
		RecruiterName: "Ava",
		InterviewType: "Technical",
		CandidateName: "Sam",
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("empty difficulty must be allowed, got %v", err)
	}

	req.Difficulty = "Extreme"
	assertErrorCode(t, req.Validate(), "invalid_difficulty")
}

func TestFeedbackValid(t *testing.T) {
	cases := []struct {
		name     string
		feedback Feedback
		want     bool
	}{
		{"complete", Feedback{Score: 50, Critique: "ok", BetterResponse: "better"}, true},
		{"zero score", Feedback{Score: 0, Critique: "ok", BetterResponse: "better"}, true},
		{"max score", Feedback{Score: 100, Critique: "ok", BetterResponse: "better"}, true},
		{"score too high", Feedback{Score: 101, Critique: "ok", BetterResponse: "better"}, false},
		{"negative score", Feedback{Score: -1, Critique: "ok", BetterResponse: "better"}, false},
		{"missing critique", Feedback{Score: 50, BetterResponse: "better"}, false},
		{"missing better response", Feedback{Score: 50, Critique: "ok"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.feedback.Valid(); got != tc.want {
				t.Fatalf("Valid() = %v, want %v", got, tc.want)
			}
		})
	}
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var errResp *ErrorResponse
	if !errors.As(err, &errResp) {
		t.Fatalf("expected ErrorResponse, got %v", err)
	}
	if errResp.Code != code {
		t.Fatalf("expected code %q, got %q", code, errResp.Code)
	}
}
