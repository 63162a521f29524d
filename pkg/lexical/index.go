// Package lexical implements the TF-IDF similarity index used for FAQ
// matching. The index is fitted once over the reference questions and is
// safe for concurrent reads afterwards; it is never mutated.
package lexical

import (
	"errors"
	"math"

	"olyph-ai-be/pkg/textnorm"
)

// ErrEmptyCorpus is returned by Fit when no usable vocabulary remains,
// either because the corpus is empty or every question is stopwords.
// Callers must treat a missing index as "always fall through".
var ErrEmptyCorpus = errors.New("lexical: no usable vocabulary in corpus")

// Index is a fitted TF-IDF vector space over a fixed question corpus.
type Index struct {
	vocab map[string]int // token -> dimension
	idf   []float64      // smoothed inverse document frequency per dimension
	rows  [][]float64    // one L2-normalized row vector per question
}

// Fit builds a TF-IDF index from the ordered reference questions.
// Stopwords are removed before the vocabulary is built.
func Fit(questions []string) (*Index, error) {
	docs := make([][]string, len(questions))
	vocab := make(map[string]int)
	for i, q := range questions {
		tokens := textnorm.RemoveStopwords(textnorm.Tokenize(q))
		docs[i] = tokens
		for _, tok := range tokens {
			if _, ok := vocab[tok]; !ok {
				vocab[tok] = len(vocab)
			}
		}
	}
	if len(vocab) == 0 {
		return nil, ErrEmptyCorpus
	}

	// Document frequency per term.
	df := make([]int, len(vocab))
	for _, tokens := range docs {
		seen := make(map[int]bool, len(tokens))
		for _, tok := range tokens {
			dim := vocab[tok]
			if !seen[dim] {
				seen[dim] = true
				df[dim]++
			}
		}
	}

	// Smoothed IDF, sklearn-style: ln((1+n)/(1+df)) + 1.
	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for dim, count := range df {
		idf[dim] = math.Log((1+n)/(1+float64(count))) + 1
	}

	ix := &Index{vocab: vocab, idf: idf}
	ix.rows = make([][]float64, len(docs))
	for i, tokens := range docs {
		ix.rows[i] = ix.vectorize(tokens)
	}
	return ix, nil
}

// vectorize maps tokens into the fitted space and L2-normalizes the
// result. Out-of-vocabulary tokens contribute nothing; an all-stopword
// text yields the zero vector.
func (ix *Index) vectorize(tokens []string) []float64 {
	vec := make([]float64, len(ix.vocab))
	for _, tok := range tokens {
		if dim, ok := ix.vocab[tok]; ok {
			vec[dim] += ix.idf[dim]
		}
	}
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for dim := range vec {
			vec[dim] /= norm
		}
	}
	return vec
}

// BestMatch vectorizes the query into the fitted space and returns the
// index of the most similar reference question along with its cosine
// similarity in [0,1]. Ties resolve to the first index in corpus order.
// A query with no in-vocabulary tokens returns (-1, 0).
func (ix *Index) BestMatch(query string) (int, float64) {
	qvec := ix.vectorize(textnorm.RemoveStopwords(textnorm.Tokenize(query)))

	best, bestScore := -1, 0.0
	for i, row := range ix.rows {
		// Rows and query are unit length, so the dot product is the
		// cosine similarity.
		var sim float64
		for dim, v := range row {
			sim += v * qvec[dim]
		}
		if best == -1 || sim > bestScore {
			best = i
			bestScore = sim
		}
	}
	if bestScore == 0 {
		return -1, 0
	}
	return best, bestScore
}

// Dimension returns the vocabulary size of the fitted space.
func (ix *Index) Dimension() int {
	return len(ix.vocab)
}

// Len returns the number of reference questions in the index.
func (ix *Index) Len() int {
	return len(ix.rows)
}
