package embedding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func l2Norm(vec []float64) float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func TestBagOfWordsPairEqualLength(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{"disjoint texts", "paperless records everywhere", "faster insurance claims"},
		{"overlapping texts", "better trust by patients", "patients trust us more"},
		{"identical texts", "stand out from competition", "stand out from competition"},
		{"one empty", "no manual entries", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aVec, bVec := BagOfWordsPair(tt.a, tt.b)
			assert.Equal(t, len(aVec), len(bVec))
		})
	}
}

func TestBagOfWordsPairUnitNorm(t *testing.T) {
	aVec, bVec := BagOfWordsPair("paperless hospital workflow", "hospital without paper")
	assert.InDelta(t, 1.0, l2Norm(aVec), 1e-9)
	assert.InDelta(t, 1.0, l2Norm(bVec), 1e-9)
}

func TestBagOfWordsPairEmptyTextStaysZero(t *testing.T) {
	aVec, bVec := BagOfWordsPair("some model answer", "")
	assert.InDelta(t, 1.0, l2Norm(aVec), 1e-9)
	assert.Equal(t, 0.0, l2Norm(bVec))
}

func TestBagOfWordsPairVocabularyOrder(t *testing.T) {
	// Vocabulary is first-seen order across a then b, so the first
	// dimensions belong to a's tokens.
	aVec, bVec := BagOfWordsPair("alpha beta", "beta gamma")
	assert.Len(t, aVec, 3)

	// a = (1,1,0)/sqrt(2), b = (0,1,1)/sqrt(2)
	assert.InDelta(t, 1/math.Sqrt2, aVec[0], 1e-9)
	assert.InDelta(t, 1/math.Sqrt2, aVec[1], 1e-9)
	assert.Equal(t, 0.0, aVec[2])
	assert.Equal(t, 0.0, bVec[0])
	assert.InDelta(t, 1/math.Sqrt2, bVec[1], 1e-9)
	assert.InDelta(t, 1/math.Sqrt2, bVec[2], 1e-9)
}

func TestBagOfWordsPairRepeatedTokens(t *testing.T) {
	aVec, _ := BagOfWordsPair("data data data", "data")
	assert.Len(t, aVec, 1)
	assert.InDelta(t, 1.0, aVec[0], 1e-9)
}
