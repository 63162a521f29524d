package embedding

import (
	"math"

	"olyph-ai-be/pkg/textnorm"
)

// BagOfWordsPair builds a joint bag-of-words embedding for two texts so
// both vectors share the same dimensions. The vocabulary is the union
// of tokens from either text in first-seen order (a before b), each
// vector holds per-text token counts and is L2-normalized. An empty
// text stays the zero vector; normalization is skipped to avoid a
// divide by zero.
func BagOfWordsPair(aText, bText string) ([]float64, []float64) {
	aTokens := textnorm.Tokenize(aText)
	bTokens := textnorm.Tokenize(bText)

	vocab := make(map[string]int)
	order := make([]string, 0, len(aTokens)+len(bTokens))
	for _, tok := range aTokens {
		if _, ok := vocab[tok]; !ok {
			vocab[tok] = len(order)
			order = append(order, tok)
		}
	}
	for _, tok := range bTokens {
		if _, ok := vocab[tok]; !ok {
			vocab[tok] = len(order)
			order = append(order, tok)
		}
	}

	aVec := make([]float64, len(order))
	for _, tok := range aTokens {
		aVec[vocab[tok]]++
	}
	bVec := make([]float64, len(order))
	for _, tok := range bTokens {
		bVec[vocab[tok]]++
	}

	return l2Normalize(aVec), l2Normalize(bVec)
}

func l2Normalize(vec []float64) []float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return vec
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}
