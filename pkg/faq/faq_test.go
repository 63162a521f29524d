package faq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `
Olyphaunt Solutions FAQ

Q1. What is Olyphaunt Solutions?
Ans. Olyphaunt Solutions is a healthcare technology company.

Q2) How do I reset my password?
A: Open the login page.
Click on forgot password and follow the steps.

Is my medical data secure?
Yes, data is encrypted at rest and in transit.
`

func TestParseText(t *testing.T) {
	entries := ParseText(sampleDoc)
	require.Len(t, entries, 3)

	assert.Equal(t, "What is Olyphaunt Solutions?", entries[0].Question)
	assert.Equal(t, "Olyphaunt Solutions is a healthcare technology company.", entries[0].Answer)

	assert.Equal(t, "How do I reset my password?", entries[1].Question)
	assert.Equal(t, "Open the login page. Click on forgot password and follow the steps.", entries[1].Answer)

	// A bare line ending in "?" also starts a question.
	assert.Equal(t, "Is my medical data secure?", entries[2].Question)
	assert.Equal(t, "Yes, data is encrypted at rest and in transit.", entries[2].Answer)
}

func TestParseTextEmpty(t *testing.T) {
	assert.Empty(t, ParseText(""))
	assert.Empty(t, ParseText("no markers here at all"))
}

func TestParseTextQuestionWithoutAnswerDropped(t *testing.T) {
	entries := ParseText("Q: First question?\nQ: Second question?\nA: only the second has one")
	require.Len(t, entries, 1)
	assert.Equal(t, "Second question?", entries[0].Question)
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	entries := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Equal(t, Placeholder(), entries)
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0644))

	entries := Load(path)
	assert.Len(t, entries, 3)
}

func TestLoadEmptyFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n  "), 0644))

	assert.Equal(t, Placeholder(), Load(path))
}

func TestQuestions(t *testing.T) {
	qs := Questions([]Entry{
		{Question: "What Is X?", Answer: "x"},
		{Question: "HOW about Y?", Answer: "y"},
	})
	assert.Equal(t, []string{"what is x?", "how about y?"}, qs)
}
