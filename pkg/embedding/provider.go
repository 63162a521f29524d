// Package embedding provides vector representations of text for the
// semantic scorer: a hosted Azure OpenAI provider and a bag-of-words
// fallback that is always available.
package embedding

import (
	"context"
	"errors"
)

// ErrEmptyText is returned when there is nothing to embed. Callers use
// it to tell "input was empty" apart from "call failed".
var ErrEmptyText = errors.New("embedding: empty text")

// Provider generates a fixed-length embedding for one text.
// Two vectors are only comparable when produced by the same provider:
// hosted embeddings share the model dimension, the bag-of-words
// fallback builds both vectors of a pair jointly.
type Provider interface {
	Generate(ctx context.Context, text string) ([]float64, error)
}
