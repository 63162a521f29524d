// Package textnorm provides the text normalization used by every scorer:
// lowercase, whitespace tokenization, optional stopword removal.
// No stemming or lemmatization.
package textnorm

import "strings"

// Tokenize lowercases the text and splits it on whitespace.
// Empty or blank input returns an empty slice, never nil panics downstream.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return []string{}
	}
	return fields
}

// IsStopword reports whether the token is in the English stopword set.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// RemoveStopwords filters stopwords out of a token slice, preserving order.
func RemoveStopwords(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !IsStopword(tok) {
			filtered = append(filtered, tok)
		}
	}
	return filtered
}
