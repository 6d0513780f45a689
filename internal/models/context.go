package models

// field limits enforced before anything touches the database or the LLM;
// MaxResponseLength counts runes so multibyte answers are not penalized
const (
	MaxNameLength     = 100
	MaxContextLength  = 500000
	MaxResponseLength = 10000
)

// InterviewContext is the immutable-per-session configuration driving one
// interview: who the recruiter pretends to be, how hard the questions get,
// and what job description they are grounded in.
type InterviewContext struct {
	RecruiterName string `json:"recruiter_name"`
	Difficulty    string `json:"difficulty"`
	InterviewType string `json:"interview_type"`
	CandidateName string `json:"candidate_name"`
	ContextFile   string `json:"context_file"`
}

// Complete reports whether the required fields are set. Difficulty and the
// job-context text may legitimately be empty.
func (c InterviewContext) Complete() bool {
	return c.RecruiterName != "" && c.InterviewType != "" && c.CandidateName != ""
}
