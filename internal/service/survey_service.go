package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"olyph-ai-be/internal/constant"
	"olyph-ai-be/internal/dto"
	"olyph-ai-be/internal/entity"
	"olyph-ai-be/internal/pkg/logger"
	"olyph-ai-be/internal/repository/contract"
	"olyph-ai-be/pkg/embedding"
	"olyph-ai-be/pkg/scoring"

	"github.com/google/uuid"
)

// Scoring strategies for survey rows.
const (
	StrategyEmbedding = "embedding"
	StrategyJudge     = "judge"
)

type ISurveyService interface {
	// Submit stores one survey response for later batch scoring.
	Submit(ctx context.Context, req *dto.SubmitResponseRequest) error

	// ScoreRow scores one answer set. Never returns an error: every
	// sub-failure degrades that question to 0.0. The result carries
	// one score per question id plus the "total" key.
	ScoreRow(ctx context.Context, answers map[string]string) map[string]float64

	// RunBatch scores all currently-unscored rows and reports a count.
	// Only structural failures (missing table or columns) abort it.
	RunBatch(ctx context.Context) (string, error)
}

type surveyService struct {
	repo     contract.SurveyRepository
	embedder embedding.Provider
	judge    *scoring.JudgeScorer
	strategy string
	log      logger.ILogger
}

func NewSurveyService(
	repo contract.SurveyRepository,
	embedder embedding.Provider,
	judge *scoring.JudgeScorer,
	strategy string,
	log logger.ILogger,
) ISurveyService {
	if log == nil {
		log = logger.Noop()
	}
	return &surveyService{
		repo:     repo,
		embedder: embedder,
		judge:    judge,
		strategy: strategy,
		log:      log,
	}
}

func (s *surveyService) Submit(ctx context.Context, req *dto.SubmitResponseRequest) error {
	return s.repo.Create(ctx, &entity.SurveyResponse{
		Id:        uuid.New(),
		AnswerQ1:  req.AnswerQ1,
		AnswerQ2:  req.AnswerQ2,
		AnswerQ3:  req.AnswerQ3,
		CreatedAt: time.Now(),
	})
}

func (s *surveyService) ScoreRow(ctx context.Context, answers map[string]string) map[string]float64 {
	if s.strategy == StrategyJudge {
		return s.scoreRowWithJudge(ctx, answers)
	}
	return s.scoreRowWithEmbeddings(ctx, answers)
}

func (s *surveyService) scoreRowWithEmbeddings(ctx context.Context, answers map[string]string) map[string]float64 {
	scores := make(map[string]float64, len(constant.QuestionOrder)+1)
	total := 0.0
	for _, qid := range constant.QuestionOrder {
		userAnswer := strings.TrimSpace(answers[qid])
		if userAnswer == "" {
			scores[qid] = 0.0
			continue
		}
		score := s.scorePair(ctx, qid, constant.ModelAnswers[qid], userAnswer)
		scores[qid] = score
		total += score
	}
	scores[constant.TotalKey] = scoring.Round1(total)
	return scores
}

// scorePair embeds both texts and scores their similarity. When the
// hosted provider is unavailable for either text, both vectors are
// rebuilt with the joint bag-of-words fallback so they stay comparable.
func (s *surveyService) scorePair(ctx context.Context, qid, modelAnswer, userAnswer string) float64 {
	modelVec, errModel := s.embedder.Generate(ctx, modelAnswer)
	var userVec []float64
	var errUser error
	if errModel == nil {
		userVec, errUser = s.embedder.Generate(ctx, userAnswer)
	}

	if errModel != nil || errUser != nil {
		err := errModel
		if err == nil {
			err = errUser
		}
		if !errors.Is(err, embedding.ErrEmptyText) {
			s.log.Warn("survey", "hosted embedding unavailable, using bag-of-words", map[string]interface{}{
				"question": qid,
				"error":    err.Error(),
			})
		}
		modelVec, userVec = embedding.BagOfWordsPair(modelAnswer, userAnswer)
	}

	return scoring.Score(modelVec, userVec)
}

func (s *surveyService) scoreRowWithJudge(ctx context.Context, answers map[string]string) map[string]float64 {
	scores := make(map[string]float64, len(constant.QuestionOrder)+1)

	anyAnswered := false
	for _, qid := range constant.QuestionOrder {
		if strings.TrimSpace(answers[qid]) != "" {
			anyAnswered = true
			break
		}
	}
	if !anyAnswered {
		for _, qid := range constant.QuestionOrder {
			scores[qid] = 0.0
		}
		scores[constant.TotalKey] = 0.0
		return scores
	}

	result, err := s.judge.ScoreRow(ctx, constant.QuestionOrder, constant.ModelAnswers, answers)
	if err != nil {
		// Fail-open: the all-zero result is already in hand, just log
		// the reason.
		s.log.Warn("survey", "judge scoring degraded to zeros", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Empty answers always score zero, whatever the judge said about
	// them. Recompute the total only when an override actually fired,
	// so a clean judge verdict passes through untouched.
	overridden := false
	for _, qid := range constant.QuestionOrder {
		score := result.Scores[qid]
		if strings.TrimSpace(answers[qid]) == "" && score != 0.0 {
			score = 0.0
			overridden = true
		}
		scores[qid] = score
	}

	total := result.Total
	if overridden {
		total = 0.0
		for _, qid := range constant.QuestionOrder {
			total += scores[qid]
		}
		total = scoring.Round1(total)
	}
	scores[constant.TotalKey] = total
	return scores
}

func (s *surveyService) RunBatch(ctx context.Context) (string, error) {
	// Structural check before any row is touched.
	if err := s.repo.CheckSchema(ctx); err != nil {
		return "", fmt.Errorf("survey schema check failed: %w", err)
	}

	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching survey rows: %w", err)
	}

	updated := 0
	for _, row := range rows {
		if row.Scored() {
			continue
		}

		scores := s.ScoreRow(ctx, row.Answers())
		total := scores[constant.TotalKey]
		if err := s.repo.UpdateScores(ctx, row.Id, scores, total); err != nil {
			// Rows already written stay written; resuming is safe
			// because scored rows are skipped on the next run.
			return "", fmt.Errorf("writing scores for row %s: %w", row.Id, err)
		}
		updated++
	}

	s.log.Info("survey", "batch run finished", map[string]interface{}{
		"rows_updated": updated,
	})
	return fmt.Sprintf("Updated %d responses", updated), nil
}
