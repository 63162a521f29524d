// Package scoring turns vector or text comparisons into bounded survey
// scores. Two strategies live here: cosine scoring over embeddings and
// LLM-judged scoring of raw answer pairs.
package scoring

import "math"

// Similarity returns the cosine similarity of two vectors in [-1, 1].
// Mismatched lengths or a zero-norm vector yield 0.0; the result is
// never NaN.
func Similarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Score maps two vectors to a survey score in [0.0, 1.0]: cosine
// similarity with negatives clamped to zero, rounded to one decimal.
// Clamping is deliberate: dissimilarity scores the same as total
// unrelatedness. The one-decimal rounding is a contract; aggregation
// and the already-scored check downstream depend on it.
func Score(a, b []float64) float64 {
	sim := Similarity(a, b)
	if sim < 0 {
		sim = 0.0
	}
	return Round1(sim)
}

// Round1 rounds to one decimal digit, the granularity used for every
// persisted score.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
