package response

import (
	"context"
	"errors"
	"testing"

	"anketly/survey-backend/internal"
	"anketly/survey-backend/internal/survey/question"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// mockQuerier implements Querier for testing Upsert and the list methods.
type mockQuerier struct {
	mock.Mock
}

func (m *mockQuerier) Upsert(ctx context.Context, arg UpsertParams) (Response, error) {
	args := m.Called(ctx, arg)
	row, _ := args.Get(0).(Response)
	return row, args.Error(1)
}

func (m *mockQuerier) ListByPerson(ctx context.Context, arg ListByPersonParams) ([]ListByPersonRow, error) {
	args := m.Called(ctx, arg)
	rows, _ := args.Get(0).([]ListByPersonRow)
	return rows, args.Error(1)
}

func (m *mockQuerier) ListJoinedByTenant(ctx context.Context, tenantID string) ([]ListJoinedByTenantRow, error) {
	args := m.Called(ctx, tenantID)
	rows, _ := args.Get(0).([]ListJoinedByTenantRow)
	return rows, args.Error(1)
}

func (m *mockQuerier) ListForExport(ctx context.Context, tenantID string) ([]ListJoinedByTenantRow, error) {
	args := m.Called(ctx, tenantID)
	rows, _ := args.Get(0).([]ListJoinedByTenantRow)
	return rows, args.Error(1)
}

// mockQuestionStore implements QuestionStore.
type mockQuestionStore struct {
	mock.Mock
}

func (m *mockQuestionStore) GetActiveAnswerable(ctx context.Context, id uuid.UUID, tenantID string) (question.Answerable, error) {
	args := m.Called(ctx, id, tenantID)
	answerable, _ := args.Get(0).(question.Answerable)
	return answerable, args.Error(1)
}

// newTestService creates a Service with mocked dependencies.
func newTestService(t *testing.T) (*Service, *mockQuerier, *mockQuestionStore) {
	t.Helper()

	q := &mockQuerier{}
	qs := &mockQuestionStore{}

	return &Service{
		logger:        zap.NewNop(),
		queries:       q,
		questionStore: qs,
		tracer:        noop.NewTracerProvider().Tracer("test"),
	}, q, qs
}

func mustAnswerable(t *testing.T, q question.Question) question.Answerable {
	t.Helper()
	answerable, err := question.NewAnswerable(q)
	require.NoError(t, err)
	return answerable
}

func TestService_Upsert(t *testing.T) {
	t.Parallel()

	tenantID := "tenant-test-123"
	personID := "person-1"
	questionID := uuid.New()

	ratingQuestion := question.Question{
		ID:           questionID,
		TenantID:     tenantID,
		QuestionType: question.QuestionTypeRating,
		IsActive:     true,
	}
	choiceQuestion := question.Question{
		ID:           questionID,
		TenantID:     tenantID,
		QuestionType: question.QuestionTypeMultipleChoice,
		Options:      []string{"A", "B"},
		IsActive:     true,
	}
	textQuestion := question.Question{
		ID:           questionID,
		TenantID:     tenantID,
		QuestionType: question.QuestionTypeFreeText,
		IsActive:     true,
	}

	type testCase struct {
		name        string
		question    question.Question
		answer      string
		storedValue string
		expectedErr error
		skipStore   bool
	}

	cases := []testCase{
		{
			name:        "valid rating is stored",
			question:    ratingQuestion,
			answer:      "4",
			storedValue: "4",
		},
		{
			name:        "rating outside range is rejected",
			question:    ratingQuestion,
			answer:      "6",
			expectedErr: internal.ErrInvalidRatingValue,
			skipStore:   true,
		},
		{
			name:        "choice outside options is rejected",
			question:    choiceQuestion,
			answer:      "C",
			expectedErr: internal.ErrAnswerNotInOptions,
			skipStore:   true,
		},
		{
			name:        "blank answer is stored empty without validation",
			question:    choiceQuestion,
			answer:      "   ",
			storedValue: "",
		},
		{
			name:        "free text is sanitized before storage",
			question:    textQuestion,
			answer:      "  <script>alert(1)</script>fine  ",
			storedValue: "fine",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service, queries, questionStore := newTestService(t)
			questionStore.On("GetActiveAnswerable", mock.Anything, questionID, tenantID).
				Return(mustAnswerable(t, tc.question), nil)

			if !tc.skipStore {
				queries.On("Upsert", mock.Anything, UpsertParams{
					QuestionID:  questionID,
					TenantID:    tenantID,
					PersonID:    personID,
					PersonName:  pgtype.Text{String: "Ada", Valid: true},
					AnswerValue: tc.storedValue,
				}).Return(Response{
					ID:          uuid.New(),
					QuestionID:  questionID,
					TenantID:    tenantID,
					PersonID:    personID,
					AnswerValue: tc.storedValue,
				}, nil)
			}

			row, err := service.Upsert(context.Background(), UpsertInput{
				QuestionID:  questionID,
				TenantID:    tenantID,
				PersonID:    personID,
				PersonName:  "Ada",
				AnswerValue: tc.answer,
			})

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				queries.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.storedValue, row.AnswerValue)
			queries.AssertExpectations(t)
		})
	}
}

func TestService_Upsert_QuestionNotFound(t *testing.T) {
	t.Parallel()

	service, queries, questionStore := newTestService(t)

	questionID := uuid.New()
	questionStore.On("GetActiveAnswerable", mock.Anything, questionID, "tenant-test-123").
		Return(nil, internal.ErrQuestionNotFound)

	_, err := service.Upsert(context.Background(), UpsertInput{
		QuestionID:  questionID,
		TenantID:    "tenant-test-123",
		PersonID:    "person-1",
		AnswerValue: "5",
	})

	require.ErrorIs(t, err, internal.ErrQuestionNotFound)
	queries.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestService_BatchUpsert_Empty(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestService(t)

	_, err := service.BatchUpsert(context.Background(), "tenant-test-123", "person-1", "", nil)
	require.ErrorIs(t, err, internal.ErrEmptyBatch)
}

func TestService_AnswerMap(t *testing.T) {
	t.Parallel()

	service, queries, _ := newTestService(t)

	firstID := uuid.New()
	secondID := uuid.New()
	queries.On("ListByPerson", mock.Anything, ListByPersonParams{
		TenantID: "tenant-test-123",
		PersonID: "person-1",
	}).Return([]ListByPersonRow{
		{ID: uuid.New(), QuestionID: firstID, AnswerValue: "Evet"},
		{ID: uuid.New(), QuestionID: secondID, AnswerValue: "4"},
	}, nil)

	answers, err := service.AnswerMap(context.Background(), "tenant-test-123", "person-1")
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		firstID.String():  "Evet",
		secondID.String(): "4",
	}, answers)
}

func TestService_AnswerMap_QueryError(t *testing.T) {
	t.Parallel()

	service, queries, _ := newTestService(t)

	queries.On("ListByPerson", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := service.AnswerMap(context.Background(), "tenant-test-123", "person-1")
	require.Error(t, err)
}
