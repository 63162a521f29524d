package contract

import (
	"context"

	"olyph-ai-be/internal/entity"

	"github.com/google/uuid"
)

// SurveyRepository is the tabular row source/sink for survey responses.
type SurveyRepository interface {
	// CheckSchema verifies the response table and its score columns
	// exist. The batch driver calls it before touching any row; a
	// failure is a hard stop.
	CheckSchema(ctx context.Context) error

	// Create appends one submitted response.
	Create(ctx context.Context, response *entity.SurveyResponse) error

	// FindAll returns every response in submission order.
	FindAll(ctx context.Context) ([]*entity.SurveyResponse, error)

	// UpdateScores writes the score cells of one row in place.
	UpdateScores(ctx context.Context, id uuid.UUID, scores map[string]float64, total float64) error
}
