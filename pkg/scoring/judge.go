package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"olyph-ai-be/pkg/llm"
)

// JudgeResult holds per-question scores and their sum for one survey row.
type JudgeResult struct {
	Scores map[string]float64
	Total  float64
}

// JudgeScorer grades a row of free-text answers by asking a hosted chat
// model for a strict JSON score object. One call per row, no retries.
type JudgeScorer struct {
	provider llm.LLMProvider
}

func NewJudgeScorer(provider llm.LLMProvider) *JudgeScorer {
	return &JudgeScorer{provider: provider}
}

const judgeSystemPrompt = `You are a strict survey grader. Compare each user answer against the reference answer and score how well it covers the same points. Respond with ONLY a JSON object of the exact shape {"scores": {"<question id>": <score between 0 and 1>, ...}, "total": <sum of scores>}. No prose, no markdown.`

// ScoreRow asks the judge model to grade every question of one row in a
// single call. Fail-open: any transport failure, non-JSON reply or
// missing field returns the all-zero result along with the reason, so
// a batch run never aborts on one bad row. The caller decides what to
// log; the returned result is always usable.
func (j *JudgeScorer) ScoreRow(ctx context.Context, order []string, modelAnswers, userAnswers map[string]string) (JudgeResult, error) {
	var sb strings.Builder
	sb.WriteString("Grade the following answers.\n")
	for _, qid := range order {
		fmt.Fprintf(&sb, "\nQuestion %s\nReference answer: %s\nUser answer: %s\n",
			qid, modelAnswers[qid], userAnswers[qid])
	}

	reply, err := j.provider.Chat(ctx, []llm.Message{
		{Role: "system", Content: judgeSystemPrompt},
		{Role: "user", Content: sb.String()},
	}, llm.WithTemperature(0))
	if err != nil {
		return zeroResult(order), fmt.Errorf("judge call failed: %w", err)
	}

	var parsed struct {
		Scores map[string]float64 `json:"scores"`
		Total  float64            `json:"total"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(reply)), &parsed); err != nil {
		return zeroResult(order), fmt.Errorf("judge reply is not valid JSON: %w", err)
	}
	if parsed.Scores == nil {
		return zeroResult(order), fmt.Errorf("judge reply is missing the scores object")
	}
	for _, qid := range order {
		score, ok := parsed.Scores[qid]
		if !ok {
			return zeroResult(order), fmt.Errorf("judge reply is missing a score for %s", qid)
		}
		if score < 0 || score > 1 {
			return zeroResult(order), fmt.Errorf("judge score for %s out of range: %v", qid, score)
		}
	}

	scores := make(map[string]float64, len(order))
	for _, qid := range order {
		scores[qid] = parsed.Scores[qid]
	}
	return JudgeResult{Scores: scores, Total: parsed.Total}, nil
}

func zeroResult(order []string) JudgeResult {
	scores := make(map[string]float64, len(order))
	for _, qid := range order {
		scores[qid] = 0.0
	}
	return JudgeResult{Scores: scores, Total: 0.0}
}

// stripCodeFences unwraps a reply the model insisted on fencing as a
// markdown code block.
func stripCodeFences(reply string) string {
	trimmed := strings.TrimSpace(reply)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
