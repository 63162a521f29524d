package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var faqQuestions = []string{
	"What is Olyphaunt Solutions?",
	"How do I book an appointment?",
	"What insurance providers are supported?",
	"Is my medical data secure?",
}

func TestFitEmptyCorpus(t *testing.T) {
	_, err := Fit(nil)
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	_, err = Fit([]string{})
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestFitAllStopwords(t *testing.T) {
	_, err := Fit([]string{"what is this", "how and why"})
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestFitDimension(t *testing.T) {
	ix, err := Fit(faqQuestions)
	require.NoError(t, err)
	assert.Equal(t, len(faqQuestions), ix.Len())
	assert.Greater(t, ix.Dimension(), 0)
}

func TestBestMatchSelfSimilarity(t *testing.T) {
	ix, err := Fit(faqQuestions)
	require.NoError(t, err)

	// A query identical to a stored question must return that entry
	// with similarity 1.0, regardless of case.
	for i, q := range faqQuestions {
		idx, score := ix.BestMatch(q)
		assert.Equal(t, i, idx, "query %q", q)
		assert.InDelta(t, 1.0, score, 1e-9, "query %q", q)
	}

	idx, score := ix.BestMatch("WHAT IS OLYPHAUNT SOLUTIONS?")
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestBestMatchOutOfVocabulary(t *testing.T) {
	ix, err := Fit(faqQuestions)
	require.NoError(t, err)

	idx, score := ix.BestMatch("zebra migration patterns")
	assert.Equal(t, -1, idx)
	assert.Equal(t, 0.0, score)
}

func TestBestMatchPartialOverlap(t *testing.T) {
	ix, err := Fit(faqQuestions)
	require.NoError(t, err)

	idx, score := ix.BestMatch("how can I book appointment slots")
	assert.Equal(t, 1, idx)
	assert.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestBestMatchTieBreakStable(t *testing.T) {
	// Two identical questions: the first one must win.
	ix, err := Fit([]string{"billing question about invoices", "billing question about invoices"})
	require.NoError(t, err)

	idx, score := ix.BestMatch("billing question about invoices")
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 1.0, score, 1e-9)
}
