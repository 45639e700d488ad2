package service

import "context"

// CompletionService is the thin adapter around an external text-completion
// provider: one chat-style round trip (system + user message, fixed model,
// sampling temperature), returning the first completion's text. A single
// attempt per call; transport errors propagate to the caller.
type CompletionService interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error)
}

// Sampling temperatures for the two pipeline calls. Question generation
// wants variety, scoring wants consistency.
const (
	questionTemperature float32 = 0.8
	scoringTemperature  float32 = 0.3
)
