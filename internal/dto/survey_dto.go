package dto

// ScoreRowRequest scores one set of answers without persisting them.
type ScoreRowRequest struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

type ScoreRowResponse struct {
	Scores map[string]float64 `json:"scores"`
}

// SubmitResponseRequest stores one survey submission for later batch
// scoring.
type SubmitResponseRequest struct {
	AnswerQ1 string `json:"answer_q1"`
	AnswerQ2 string `json:"answer_q2"`
	AnswerQ3 string `json:"answer_q3"`
}

type RunBatchResponse struct {
	Summary string `json:"summary"`
}
