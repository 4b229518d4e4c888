package survey

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"anketly/survey-backend/internal"
	"anketly/survey-backend/internal/survey/question"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockQuestionStore struct {
	mock.Mock
}

func (m *mockQuestionStore) ListActiveWithQuestions(ctx context.Context, tenantID string) ([]question.CategoryWithQuestions, error) {
	args := m.Called(ctx, tenantID)
	rows, _ := args.Get(0).([]question.CategoryWithQuestions)
	return rows, args.Error(1)
}

type mockAdminStore struct {
	mock.Mock
}

func (m *mockAdminStore) IsAdmin(ctx context.Context, tenantID, personID string) (bool, error) {
	args := m.Called(ctx, tenantID, personID)
	return args.Bool(0), args.Error(1)
}

type mockResponseStore struct {
	mock.Mock
}

func (m *mockResponseStore) AnswerMap(ctx context.Context, tenantID, personID string) (map[string]string, error) {
	args := m.Called(ctx, tenantID, personID)
	answers, _ := args.Get(0).(map[string]string)
	return answers, args.Error(1)
}

func newTestHandler(t *testing.T) (*Handler, *mockQuestionStore, *mockAdminStore, *mockResponseStore) {
	t.Helper()

	logger := zap.NewNop()
	qs := &mockQuestionStore{}
	as := &mockAdminStore{}
	rs := &mockResponseStore{}

	return NewHandler(logger, internal.NewProblemWriter(), qs, as, rs), qs, as, rs
}

func TestHandler_Get(t *testing.T) {
	t.Parallel()

	handler, qs, as, rs := newTestHandler(t)

	categoryID := uuid.New()
	questionID := uuid.New()
	qs.On("ListActiveWithQuestions", mock.Anything, "tenant-test-123").
		Return([]question.CategoryWithQuestions{
			{
				Category: question.Category{ID: categoryID, Name: "İş Ortamı Değerlendirme"},
				Questions: []question.Question{
					{
						ID:           questionID,
						QuestionText: "Çalışma ortamınızdan memnun musunuz?",
						QuestionType: question.QuestionTypeYesNo,
						Order:        1,
					},
				},
			},
		}, nil)
	as.On("IsAdmin", mock.Anything, "tenant-test-123", "person-1").Return(false, nil)
	rs.On("AnswerMap", mock.Anything, "tenant-test-123", "person-1").
		Return(map[string]string{questionID.String(): "Evet"}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/survey?tenantId=tenant-test-123&personId=person-1", nil)
	w := httptest.NewRecorder()
	handler.GetHandler(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SurveyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.IsAdmin)
	require.Len(t, resp.Categories, 1)
	require.Equal(t, "İş Ortamı Değerlendirme", resp.Categories[0].Name)
	require.Len(t, resp.Categories[0].Questions, 1)
	require.Equal(t, "yes_no", resp.Categories[0].Questions[0].QuestionType)
	require.NotNil(t, resp.Categories[0].Questions[0].Options)
	require.Equal(t, "Evet", resp.Responses[questionID.String()])
}

func TestHandler_Get_MissingIdentity(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		target string
	}

	cases := []testCase{
		{name: "missing tenantId", target: "/api/survey?personId=person-1"},
		{name: "missing personId", target: "/api/survey?tenantId=tenant-test-123"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler, _, _, _ := newTestHandler(t)

			r := httptest.NewRequest(http.MethodGet, tc.target, nil)
			w := httptest.NewRecorder()
			handler.GetHandler(w, r)

			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
