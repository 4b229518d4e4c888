// Package results aggregates a tenant's survey responses for the admin view:
// per-question response lists, per-type tabulations, and headline statistics.
package results

import (
	"context"
	"time"

	"anketly/survey-backend/internal/survey/question"
	"anketly/survey-backend/internal/survey/response"

	logutil "github.com/NYCU-SDC/summer/pkg/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const unknownPersonName = "Unknown"

type ResponseStore interface {
	ListJoinedByTenant(ctx context.Context, tenantID string) ([]response.ListJoinedByTenantRow, error)
}

type QuestionStore interface {
	CountActive(ctx context.Context, tenantID string) (int64, error)
}

type ResponseItem struct {
	PersonID   string `json:"personId"`
	PersonName string `json:"personName"`
	Answer     string `json:"answer"`
	Date       string `json:"date"`
}

type QuestionResult struct {
	QuestionID   string              `json:"questionId"`
	QuestionText string              `json:"questionText"`
	QuestionType string              `json:"questionType"`
	Category     string              `json:"category"`
	Responses    []ResponseItem      `json:"responses"`
	Tabulation   question.Tabulation `json:"tabulation"`
}

type Statistics struct {
	TotalResponses    int   `json:"totalResponses"`
	UniqueRespondents int   `json:"uniqueRespondents"`
	TotalQuestions    int64 `json:"totalQuestions"`
}

type Results struct {
	Questions  []QuestionResult `json:"results"`
	Statistics Statistics       `json:"statistics"`
}

type Service struct {
	logger        *zap.Logger
	responseStore ResponseStore
	questionStore QuestionStore
	tracer        trace.Tracer
}

func NewService(logger *zap.Logger, responseStore ResponseStore, questionStore QuestionStore) *Service {
	return &Service{
		logger:        logger,
		responseStore: responseStore,
		questionStore: questionStore,
		tracer:        otel.Tracer("results/service"),
	}
}

// Aggregate groups a tenant's responses by question, in the order questions
// first appear in the newest-first response stream, and tabulates each
// question's answers by its type.
func (s *Service) Aggregate(ctx context.Context, tenantID string) (Results, error) {
	ctx, span := s.tracer.Start(ctx, "Aggregate")
	defer span.End()
	logger := logutil.WithContext(ctx, s.logger)

	rows, err := s.responseStore.ListJoinedByTenant(ctx, tenantID)
	if err != nil {
		span.RecordError(err)
		return Results{}, err
	}

	totalQuestions, err := s.questionStore.CountActive(ctx, tenantID)
	if err != nil {
		span.RecordError(err)
		return Results{}, err
	}

	grouped := groupByQuestion(rows)

	results := Results{
		Questions: grouped,
		Statistics: Statistics{
			TotalResponses:    len(rows),
			UniqueRespondents: countUniqueRespondents(rows),
			TotalQuestions:    totalQuestions,
		},
	}

	logger.Debug("Aggregated survey results",
		zap.String("tenant_id", tenantID),
		zap.Int("responses", len(rows)),
		zap.Int("questions", len(grouped)))

	return results, nil
}

func groupByQuestion(rows []response.ListJoinedByTenantRow) []QuestionResult {
	results := make([]QuestionResult, 0)
	index := make(map[string]int)
	answers := make(map[string][]string)

	for _, row := range rows {
		key := row.QuestionID.String()
		if _, ok := index[key]; !ok {
			index[key] = len(results)
			results = append(results, QuestionResult{
				QuestionID:   key,
				QuestionText: row.QuestionText,
				QuestionType: row.QuestionType,
				Category:     row.CategoryName,
				Responses:    make([]ResponseItem, 0),
			})
		}

		i := index[key]
		results[i].Responses = append(results[i].Responses, ResponseItem{
			PersonID:   row.PersonID,
			PersonName: personNameOrFallback(row.PersonName.String, unknownPersonName),
			Answer:     row.AnswerValue,
			Date:       row.CreatedAt.Time.UTC().Format(time.RFC3339),
		})
		answers[key] = append(answers[key], row.AnswerValue)
	}

	for i := range results {
		results[i].Tabulation = tabulate(results[i], answers[results[i].QuestionID], rows)
	}

	return results
}

// tabulate rebuilds the question's typed variant from the joined row data so
// the per-type counting rules apply to the admin view as well.
func tabulate(result QuestionResult, values []string, rows []response.ListJoinedByTenantRow) question.Tabulation {
	var options []string
	for _, row := range rows {
		if row.QuestionID.String() == result.QuestionID {
			options = row.Options
			break
		}
	}

	answerable, err := question.NewAnswerable(question.Question{
		QuestionText: result.QuestionText,
		QuestionType: question.QuestionType(result.QuestionType),
		Options:      options,
	})
	if err != nil {
		return question.Tabulation{}
	}
	return answerable.Tabulate(values)
}

func countUniqueRespondents(rows []response.ListJoinedByTenantRow) int {
	seen := make(map[string]struct{})
	for _, row := range rows {
		seen[row.PersonID] = struct{}{}
	}
	return len(seen)
}

func personNameOrFallback(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
