package implementation

import (
	"context"
	"fmt"

	"olyph-ai-be/internal/constant"
	"olyph-ai-be/internal/entity"
	"olyph-ai-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SurveyRepositoryImpl struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) contract.SurveyRepository {
	return &SurveyRepositoryImpl{db: db}
}

// scoreFields maps question ids to the gorm column names written by
// UpdateScores, plus the total.
var scoreFields = map[string]string{
	"Q1": "score_q1",
	"Q2": "score_q2",
	"Q3": "score_q3",
}

func (r *SurveyRepositoryImpl) CheckSchema(ctx context.Context) error {
	migrator := r.db.WithContext(ctx).Migrator()
	if !migrator.HasTable(&entity.SurveyResponse{}) {
		return fmt.Errorf("survey_responses table is missing")
	}
	for _, qid := range constant.QuestionOrder {
		if !migrator.HasColumn(&entity.SurveyResponse{}, scoreFields[qid]) {
			return fmt.Errorf("required column missing: %s", scoreFields[qid])
		}
	}
	if !migrator.HasColumn(&entity.SurveyResponse{}, "total") {
		return fmt.Errorf("required column missing: total")
	}
	return nil
}

func (r *SurveyRepositoryImpl) Create(ctx context.Context, response *entity.SurveyResponse) error {
	return r.db.WithContext(ctx).Create(response).Error
}

func (r *SurveyRepositoryImpl) FindAll(ctx context.Context) ([]*entity.SurveyResponse, error) {
	var rows []*entity.SurveyResponse
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SurveyRepositoryImpl) UpdateScores(ctx context.Context, id uuid.UUID, scores map[string]float64, total float64) error {
	updates := map[string]interface{}{"total": total}
	for qid, column := range scoreFields {
		if score, ok := scores[qid]; ok {
			updates[column] = score
		}
	}
	return r.db.WithContext(ctx).
		Model(&entity.SurveyResponse{}).
		Where("id = ?", id).
		Updates(updates).Error
}
