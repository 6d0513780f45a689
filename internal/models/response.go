package models

// uniform error responses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// Resp is the generic OK/info envelope used by non-domain endpoints.
type Resp struct {
	OK   bool        `json:"ok"`
	Info interface{} `json:"info,omitempty"`
}

// InterviewResponse carries one completed turn back to the UI together
// with a wholesale transcript snapshot.
type InterviewResponse struct {
	SessionID  string     `json:"session_id"`
	Reply      string     `json:"reply"`
	Transcript Transcript `json:"transcript"`
	RequestID  string     `json:"request_id,omitempty"`
}

// ProfileResponse mirrors the stored recruiter configuration.
type ProfileResponse struct {
	ID            string `json:"id"`
	RecruiterName string `json:"recruiter_name"`
	Difficulty    string `json:"difficulty"`
	InterviewType string `json:"interview_type"`
	CandidateName string `json:"candidate_name"`
	ContextFile   string `json:"context_file"`
}
