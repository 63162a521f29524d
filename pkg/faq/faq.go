// Package faq loads the FAQ corpus: an ordered list of question/answer
// pairs parsed from pre-extracted document text. The corpus is built
// once at startup and never mutated.
package faq

import (
	"os"
	"regexp"
	"strings"
)

// Entry is one immutable question/answer pair. Order of entries follows
// document order.
type Entry struct {
	Question string
	Answer   string
}

// Prefix heuristics for question and answer lines, e.g. "Q1.", "Q:",
// "Question)", "A:", "Ans.". A line ending in "?" also starts a question.
var (
	questionPrefix = regexp.MustCompile(`(?i)^(q\d*[.):]*|question[.):]*|q:)\s*`)
	answerPrefix   = regexp.MustCompile(`(?i)^(a\d*[.):]*|a:|ans[.):]*|answer[.):]*)\s*`)
)

// ParseText walks the lines of extracted document text and pairs each
// question with the answer lines that follow it. Lines that are neither
// a question nor an answer marker continue the current answer.
func ParseText(text string) []Entry {
	var entries []Entry
	var question string
	var answer strings.Builder

	flush := func() {
		if question != "" && strings.TrimSpace(answer.String()) != "" {
			entries = append(entries, Entry{
				Question: strings.TrimSpace(question),
				Answer:   strings.TrimSpace(answer.String()),
			})
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case questionPrefix.MatchString(line) || strings.HasSuffix(line, "?"):
			flush()
			question = strings.TrimSpace(questionPrefix.ReplaceAllString(line, ""))
			answer.Reset()
		case answerPrefix.MatchString(line):
			answer.WriteString(" ")
			answer.WriteString(strings.TrimSpace(answerPrefix.ReplaceAllString(line, "")))
		case question != "":
			answer.WriteString(" ")
			answer.WriteString(line)
		}
	}
	flush()

	return entries
}

// Load reads pre-extracted FAQ text from path and parses it. A missing
// file or a document that yields no pairs falls back to the built-in
// placeholder so the chatbot always has at least one entry.
func Load(path string) []Entry {
	data, err := os.ReadFile(path)
	if err != nil {
		return Placeholder()
	}
	entries := ParseText(string(data))
	if len(entries) == 0 {
		return Placeholder()
	}
	return entries
}

// Placeholder is the single built-in pair used when no corpus is
// available.
func Placeholder() []Entry {
	return []Entry{
		{
			Question: "What is Olyphaunt Solutions?",
			Answer:   "Olyphaunt Solutions is a healthcare technology company.",
		},
	}
}

// Questions returns the lowercased question texts in corpus order,
// ready for lexical fitting.
func Questions(entries []Entry) []string {
	questions := make([]string, len(entries))
	for i, e := range entries {
		questions[i] = strings.ToLower(e.Question)
	}
	return questions
}
