// Package llm is the boundary to the generative-language service.
// The dialogue core only depends on the Generator interface; concrete
// clients exist for Anthropic and Google Gemini, selected by config.
package llm

import "context"

// Generator produces raw text from a prompt. Implementations run the
// request to completion or failure; timeout policy belongs to the
// client configuration, not the caller.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}
