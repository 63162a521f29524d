package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"olyph-ai-be/internal/constant"
	"olyph-ai-be/internal/repository/contract"
)

// IReportService exports the survey sheet for download.
type IReportService interface {
	// ExportCSV renders every response row as CSV and returns the
	// bytes together with a timestamped filename.
	ExportCSV(ctx context.Context) ([]byte, string, error)
}

type reportService struct {
	repo contract.SurveyRepository
}

func NewReportService(repo contract.SurveyRepository) IReportService {
	return &reportService{repo: repo}
}

func (s *reportService) ExportCSV(ctx context.Context) ([]byte, string, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("fetching survey rows: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Timestamp"}
	for _, qid := range constant.QuestionOrder {
		header = append(header, constant.QuestionColumns[qid])
	}
	for _, qid := range constant.QuestionOrder {
		header = append(header, constant.ScoreColumns[qid])
	}
	header = append(header, constant.TotalColumn)
	if err := w.Write(header); err != nil {
		return nil, "", err
	}

	for _, row := range rows {
		answers := row.Answers()
		record := []string{row.CreatedAt.Format(time.RFC3339)}
		for _, qid := range constant.QuestionOrder {
			record = append(record, answers[qid])
		}
		scores := map[string]*float64{"Q1": row.ScoreQ1, "Q2": row.ScoreQ2, "Q3": row.ScoreQ3}
		for _, qid := range constant.QuestionOrder {
			record = append(record, formatScore(scores[qid]))
		}
		record = append(record, formatScore(row.Total))
		if err := w.Write(record); err != nil {
			return nil, "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("survey_responses_%s.csv", time.Now().UTC().Format("20060102T150405Z"))
	return buf.Bytes(), filename, nil
}

// formatScore renders a score cell; unscored cells stay empty.
func formatScore(score *float64) string {
	if score == nil {
		return ""
	}
	return strconv.FormatFloat(*score, 'f', 1, 64)
}
