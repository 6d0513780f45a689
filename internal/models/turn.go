package models

// Role identifies the author of a transcript turn.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleModel     Role = "model"
)

// Turn is a single utterance in an interview transcript.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Transcript is the ordered, append-only sequence of turns for one session.
type Transcript []Turn

// Clone returns an independent copy so callers can treat the transcript
// as an immutable snapshot.
func (t Transcript) Clone() Transcript {
	if t == nil {
		return nil
	}
	out := make(Transcript, len(t))
	copy(out, t)
	return out
}

// LastCandidate returns the index of the most recent candidate turn, or -1.
func (t Transcript) LastCandidate() int {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Role == RoleCandidate {
			return i
		}
	}
	return -1
}
