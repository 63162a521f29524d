package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1.0},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0.0},
		{"anti-parallel", []float64{1, 2}, []float64{-1, -2}, -1.0},
		{"zero vector left", []float64{0, 0}, []float64{1, 1}, 0.0},
		{"zero vector right", []float64{1, 1}, []float64{0, 0}, 0.0},
		{"both zero", []float64{0, 0}, []float64{0, 0}, 0.0},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0.0},
		{"empty", []float64{}, []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestScoreBounds(t *testing.T) {
	vectors := [][]float64{
		{1, 2, 3},
		{-1, -2, -3},
		{0, 0, 0},
		{3, -1, 2},
		{0.001, 0, 0},
	}
	for _, a := range vectors {
		for _, b := range vectors {
			s := Score(a, b)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	}
}

func TestScoreClampsAntiParallel(t *testing.T) {
	assert.Equal(t, 0.0, Score([]float64{1, 2}, []float64{-1, -2}))
}

func TestScoreRoundsToOneDecimal(t *testing.T) {
	// cos(45°) ≈ 0.7071 rounds to 0.7
	assert.Equal(t, 0.7, Score([]float64{1, 0}, []float64{1, 1}))
	assert.Equal(t, 1.0, Score([]float64{2, 4}, []float64{1, 2}))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 0.5, Round1(0.45))
	assert.Equal(t, 0.4, Round1(0.44999))
	assert.Equal(t, 2.3, Round1(2.2999999999999998))
	assert.Equal(t, 0.0, Round1(0.0))
	assert.Equal(t, 1.0, Round1(0.96))
}
