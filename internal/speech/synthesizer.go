package speech

import "context"

// Synthesizer turns text into encoded audio (mp3). Implementations are
// expected to be stateless and safe for concurrent use.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
