package models

// Feedback is the ephemeral quality assessment of one candidate answer.
// It is produced per request and never persisted.
type Feedback struct {
	Score          int    `json:"score"`
	Critique       string `json:"critique"`
	BetterResponse string `json:"betterResponse"`
}

// Valid reports whether the parsed assessment has all required fields in range.
func (f Feedback) Valid() bool {
	return f.Score >= 0 && f.Score <= 100 && f.Critique != "" && f.BetterResponse != ""
}
