package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"anketly/survey-backend/internal/survey/response"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

type mockResponseStore struct {
	mock.Mock
}

func (m *mockResponseStore) ListForExport(ctx context.Context, tenantID string) ([]response.ListJoinedByTenantRow, error) {
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

type mockTenantStore struct {
	mock.Mock
}

func (m *mockTenantStore) DisplayName(ctx context.Context, id string) string {
	args := m.Called(ctx, id)
	return args.String(0)
}

func newTestService(t *testing.T) (*Service, *mockResponseStore, *mockQuestionStore, *mockTenantStore) {
	t.Helper()

	rs := &mockResponseStore{}
	qs := &mockQuestionStore{}
	ts := &mockTenantStore{}

	return &Service{
		logger:        zap.NewNop(),
		responseStore: rs,
		questionStore: qs,
		tenantStore:   ts,
		now:           func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) },
		tracer:        noop.NewTracerProvider().Tracer("test"),
	}, rs, qs, ts
}

func openWorkbook(t *testing.T, content []byte) *excelize.File {
	t.Helper()

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, file.Close())
	})
	return file
}

func TestService_Generate(t *testing.T) {
	t.Parallel()

	service, rs, qs, ts := newTestService(t)

	createdAt := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
	rs.On("ListForExport", mock.Anything, "tenant-test-123").
		Return([]response.ListJoinedByTenantRow{
			{
				ID:           uuid.New(),
				QuestionID:   uuid.New(),
				TenantID:     "tenant-test-123",
				PersonID:     "p1",
				PersonName:   pgtype.Text{String: "Ayşe", Valid: true},
				AnswerValue:  "Evet",
				CreatedAt:    pgtype.Timestamptz{Time: createdAt, Valid: true},
				QuestionText: "Çalışma ortamınızdan memnun musunuz?",
				QuestionType: "yes_no",
				CategoryName: "İş Ortamı Değerlendirme",
			},
			{
				ID:           uuid.New(),
				QuestionID:   uuid.New(),
				TenantID:     "tenant-test-123",
				PersonID:     "p2",
				AnswerValue:  "4",
				CreatedAt:    pgtype.Timestamptz{Time: createdAt, Valid: true},
				QuestionText: "Ekipmanınızı puanlayın",
				QuestionType: "rating",
				CategoryName: "Teknoloji ve Ekipman",
			},
		}, nil)
	qs.On("CountActive", mock.Anything, "tenant-test-123").Return(int64(7), nil)
	ts.On("DisplayName", mock.Anything, "tenant-test-123").Return("Test Şirketi")

	workbook, err := service.Generate(context.Background(), "tenant-test-123")
	require.NoError(t, err)
	require.Equal(t, "survey-results-1788177600000.xlsx", workbook.Filename)

	file := openWorkbook(t, workbook.Content)
	require.Equal(t, []string{"Survey Results", "Özet"}, file.GetSheetList())

	resultRows, err := file.GetRows("Survey Results")
	require.NoError(t, err)
	require.Len(t, resultRows, 3)
	require.Equal(t, []string{"Kategori", "Soru", "Soru Tipi", "Kişi ID", "Kişi Adı", "Cevap", "Tarih"}, resultRows[0])
	require.Equal(t, "İş Ortamı Değerlendirme", resultRows[1][0])
	require.Equal(t, "Ayşe", resultRows[1][4])
	require.Equal(t, "30.08.2026", resultRows[1][6])
	require.Equal(t, "Bilinmiyor", resultRows[2][4])

	summaryRows, err := file.GetRows("Özet")
	require.NoError(t, err)
	require.Len(t, summaryRows, 6)
	require.Equal(t, []string{"Metrik", "Değer"}, summaryRows[0])
	require.Equal(t, []string{"Toplam Cevap Sayısı", "2"}, summaryRows[1])
	require.Equal(t, []string{"Katılımcı Sayısı", "2"}, summaryRows[2])
	require.Equal(t, []string{"Toplam Soru Sayısı", "7"}, summaryRows[3])
	require.Equal(t, []string{"Firma", "Test Şirketi"}, summaryRows[4])
	require.Equal(t, []string{"Rapor Tarihi", "31.08.2026"}, summaryRows[5])
}

func TestService_Generate_NoResponses(t *testing.T) {
	t.Parallel()

	service, rs, qs, ts := newTestService(t)

	rs.On("ListForExport", mock.Anything, "tenant-empty").
		Return([]response.ListJoinedByTenantRow{}, nil)
	qs.On("CountActive", mock.Anything, "tenant-empty").Return(int64(0), nil)
	ts.On("DisplayName", mock.Anything, "tenant-empty").Return("tenant-empty")

	workbook, err := service.Generate(context.Background(), "tenant-empty")
	require.NoError(t, err)

	file := openWorkbook(t, workbook.Content)
	require.Equal(t, []string{"Survey Results", "Özet"}, file.GetSheetList())

	resultRows, err := file.GetRows("Survey Results")
	require.NoError(t, err)
	require.Len(t, resultRows, 1)

	summaryRows, err := file.GetRows("Özet")
	require.NoError(t, err)
	require.Len(t, summaryRows, 6)
	require.Equal(t, []string{"Toplam Cevap Sayısı", "0"}, summaryRows[1])
}
