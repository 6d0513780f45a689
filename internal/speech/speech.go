package speech

import "context"

// Audio is a playable synthesis result. Content is base64-encoded so it can
// travel to the browser as a data URL.
type Audio struct {
	MIMEType string `json:"mime_type"`
	Content  string `json:"content"`
}

// Recognizer is the speech-capture capability: non-continuous, at most one
// final transcript per recording session. Capture normally runs in the
// browser via the Web Speech API, so the server-side implementation mostly
// reports whether a fallback exists.
type Recognizer interface {
	StartListening(onResult func(text string), onError func(err error)) error
	StopListening()
	IsSupported() bool
}

// Synthesizer is the text-to-speech capability. Failures are best-effort:
// callers log and continue, voice playback never blocks the text flow.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (*Audio, error)
	IsSupported() bool
}
