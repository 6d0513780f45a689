package speech

import (
	"context"
	"errors"
)

var ErrNotSupported = errors.New("speech capability not configured")

// Disabled is the capability used when no speech credentials are
// configured. The UI falls back to text entry.
type Disabled struct{}

func (Disabled) StartListening(func(string), func(error)) error { return ErrNotSupported }

func (Disabled) StopListening() {}

func (Disabled) Synthesize(context.Context, string) (*Audio, error) {
	return nil, ErrNotSupported
}

func (Disabled) IsSupported() bool { return false }
