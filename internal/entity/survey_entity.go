package entity

import (
	"time"

	"github.com/google/uuid"
)

// SurveyResponse is one submitted survey row. Answer cells are written
// once at submission; score cells are written in place exactly once by
// the batch driver. A nil ScoreQ1 marks the row as not yet scored —
// that single cell is the idempotence guard.
type SurveyResponse struct {
	Id        uuid.UUID `gorm:"primaryKey"`
	AnswerQ1  string
	AnswerQ2  string
	AnswerQ3  string
	ScoreQ1   *float64
	ScoreQ2   *float64
	ScoreQ3   *float64
	Total     *float64
	CreatedAt time.Time
}

// Answers returns the raw answer texts keyed by question id.
func (r *SurveyResponse) Answers() map[string]string {
	return map[string]string{
		"Q1": r.AnswerQ1,
		"Q2": r.AnswerQ2,
		"Q3": r.AnswerQ3,
	}
}

// Scored reports whether the row already carries scores. Only the first
// score cell is checked, mirroring the historical guard: a row with
// that cell cleared but others populated would be rescored and
// overwritten.
func (r *SurveyResponse) Scored() bool {
	return r.ScoreQ1 != nil
}
