package results

import (
	"context"
	"testing"
	"time"

	"anketly/survey-backend/internal/survey/response"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

type mockResponseStore struct {
	mock.Mock
}

func (m *mockResponseStore) ListJoinedByTenant(ctx context.Context, tenantID string) ([]response.ListJoinedByTenantRow, error) {
	args := m.Called(ctx, tenantID)
	rows, _ := args.Get(0).([]response.ListJoinedByTenantRow)
	return rows, args.Error(1)
}

type mockQuestionStore struct {
	mock.Mock
}

func (m *mockQuestionStore) CountActive(ctx context.Context, tenantID string) (int64, error) {
	args := m.Called(ctx, tenantID)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func newTestService(t *testing.T) (*Service, *mockResponseStore, *mockQuestionStore) {
	t.Helper()

	rs := &mockResponseStore{}
	qs := &mockQuestionStore{}

	return &Service{
		logger:        zap.NewNop(),
		responseStore: rs,
		questionStore: qs,
		tracer:        noop.NewTracerProvider().Tracer("test"),
	}, rs, qs
}

func row(questionID uuid.UUID, personID, personName, answer, questionType string, options []string, at time.Time) response.ListJoinedByTenantRow {
	return response.ListJoinedByTenantRow{
		ID:           uuid.New(),
		QuestionID:   questionID,
		TenantID:     "tenant-test-123",
		PersonID:     personID,
		PersonName:   pgtype.Text{String: personName, Valid: personName != ""},
		AnswerValue:  answer,
		CreatedAt:    pgtype.Timestamptz{Time: at, Valid: true},
		QuestionText: "q",
		QuestionType: questionType,
		Options:      options,
		CategoryName: "İş Ortamı Değerlendirme",
	}
}

func TestService_Aggregate(t *testing.T) {
	t.Parallel()

	service, rs, qs := newTestService(t)

	ratingID := uuid.New()
	choiceID := uuid.New()
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	rows := []response.ListJoinedByTenantRow{
		row(ratingID, "p1", "Ayşe", "5", "rating", nil, now),
		row(ratingID, "p2", "", "5", "rating", nil, now.Add(-time.Minute)),
		row(ratingID, "p3", "Mehmet", "3", "rating", nil, now.Add(-2*time.Minute)),
		row(ratingID, "p4", "Zeynep", "1", "rating", nil, now.Add(-3*time.Minute)),
		row(choiceID, "p1", "Ayşe", "A", "multiple_choice", []string{"A", "B"}, now.Add(-4*time.Minute)),
		row(choiceID, "p2", "", "B", "multiple_choice", []string{"A", "B"}, now.Add(-5*time.Minute)),
	}

	rs.On("ListJoinedByTenant", mock.Anything, "tenant-test-123").Return(rows, nil)
	qs.On("CountActive", mock.Anything, "tenant-test-123").Return(int64(7), nil)

	results, err := service.Aggregate(context.Background(), "tenant-test-123")
	require.NoError(t, err)

	require.Equal(t, 6, results.Statistics.TotalResponses)
	require.Equal(t, 4, results.Statistics.UniqueRespondents)
	require.Equal(t, int64(7), results.Statistics.TotalQuestions)

	require.Len(t, results.Questions, 2)

	rating := results.Questions[0]
	require.Equal(t, ratingID.String(), rating.QuestionID)
	require.Len(t, rating.Responses, 4)
	require.Equal(t, "Unknown", rating.Responses[1].PersonName)
	require.Equal(t, "2026-08-31T10:00:00Z", rating.Responses[0].Date)
	require.Equal(t, "3.50", rating.Tabulation.Average)
	require.Len(t, rating.Tabulation.Ratings, 5)
	require.Equal(t, 2, rating.Tabulation.Ratings[0].Count)
	require.Equal(t, 50, rating.Tabulation.Ratings[0].Percentage)

	choice := results.Questions[1]
	require.Equal(t, choiceID.String(), choice.QuestionID)
	require.Len(t, choice.Tabulation.Choices, 2)
	require.Equal(t, "A", choice.Tabulation.Choices[0].Value)
	require.Equal(t, 1, choice.Tabulation.Choices[1].Count)
}

func TestService_Aggregate_Empty(t *testing.T) {
	t.Parallel()

	service, rs, qs := newTestService(t)

	rs.On("ListJoinedByTenant", mock.Anything, "tenant-test-123").
		Return([]response.ListJoinedByTenantRow{}, nil)
	qs.On("CountActive", mock.Anything, "tenant-test-123").Return(int64(0), nil)

	results, err := service.Aggregate(context.Background(), "tenant-test-123")
	require.NoError(t, err)

	require.Empty(t, results.Questions)
	require.Zero(t, results.Statistics.TotalResponses)
	require.Zero(t, results.Statistics.UniqueRespondents)
}
