// Package export renders a tenant's responses as an xlsx workbook with a
// detail sheet and a summary sheet.
package export

import (
	"context"
	"fmt"
	"time"

	"anketly/survey-backend/internal/survey/response"

	logutil "github.com/NYCU-SDC/summer/pkg/log"
	"github.com/xuri/excelize/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	resultsSheet = "Survey Results"
	summarySheet = "Özet"

	unknownPersonName = "Bilinmiyor"

	// Day-first date layout matching the tr-TR locale.
	dateLayout = "02.01.2006"
)

type ResponseStore interface {
	ListForExport(ctx context.Context, tenantID string) ([]response.ListJoinedByTenantRow, error)
}

type QuestionStore interface {
	CountActive(ctx context.Context, tenantID string) (int64, error)
}

type TenantStore interface {
	DisplayName(ctx context.Context, id string) string
}

type Workbook struct {
	Filename string
	Content  []byte
}

type Service struct {
	logger        *zap.Logger
	responseStore ResponseStore
	questionStore QuestionStore
	tenantStore   TenantStore
	now           func() time.Time
	tracer        trace.Tracer
}

func NewService(logger *zap.Logger, responseStore ResponseStore, questionStore QuestionStore, tenantStore TenantStore) *Service {
	return &Service{
		logger:        logger,
		responseStore: responseStore,
		questionStore: questionStore,
		tenantStore:   tenantStore,
		now:           time.Now,
		tracer:        otel.Tracer("export/service"),
	}
}

// Generate builds the workbook for one tenant: a "Survey Results" sheet with
// one row per stored response, ordered by category name, question order and
// newest response first, plus an "Özet" sheet with the headline metrics.
func (s *Service) Generate(ctx context.Context, tenantID string) (Workbook, error) {
	ctx, span := s.tracer.Start(ctx, "Generate")
	defer span.End()
	logger := logutil.WithContext(ctx, s.logger)

	rows, err := s.responseStore.ListForExport(ctx, tenantID)
	if err != nil {
		span.RecordError(err)
		return Workbook{}, err
	}

	totalQuestions, err := s.questionStore.CountActive(ctx, tenantID)
	if err != nil {
		span.RecordError(err)
		return Workbook{}, err
	}

	tenantName := s.tenantStore.DisplayName(ctx, tenantID)

	file := excelize.NewFile()
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Warn("Failed to close workbook", zap.Error(closeErr))
		}
	}()

	if err := s.writeResultsSheet(file, rows); err != nil {
		span.RecordError(err)
		return Workbook{}, err
	}
	if err := s.writeSummarySheet(file, rows, totalQuestions, tenantName); err != nil {
		span.RecordError(err)
		return Workbook{}, err
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		span.RecordError(err)
		return Workbook{}, fmt.Errorf("write workbook: %w", err)
	}

	logger.Info("Generated results workbook",
		zap.String("tenant_id", tenantID),
		zap.Int("responses", len(rows)))

	return Workbook{
		Filename: fmt.Sprintf("survey-results-%d.xlsx", s.now().UnixMilli()),
		Content:  buffer.Bytes(),
	}, nil
}

func (s *Service) writeResultsSheet(file *excelize.File, rows []response.ListJoinedByTenantRow) error {
	if err := file.SetSheetName(file.GetSheetName(0), resultsSheet); err != nil {
		return fmt.Errorf("rename results sheet: %w", err)
	}

	header := []any{"Kategori", "Soru", "Soru Tipi", "Kişi ID", "Kişi Adı", "Cevap", "Tarih"}
	if err := file.SetSheetRow(resultsSheet, "A1", &header); err != nil {
		return fmt.Errorf("write results header: %w", err)
	}
	if err := s.styleHeader(file, resultsSheet, "A1", "G1"); err != nil {
		return err
	}

	widths := []struct {
		column string
		width  float64
	}{
		{"A", 25}, {"B", 50}, {"C", 20}, {"D", 30}, {"E", 30}, {"F", 50}, {"G", 20},
	}
	for _, w := range widths {
		if err := file.SetColWidth(resultsSheet, w.column, w.column, w.width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	for i, row := range rows {
		personName := row.PersonName.String
		if personName == "" {
			personName = unknownPersonName
		}

		cells := []any{
			row.CategoryName,
			row.QuestionText,
			row.QuestionType,
			row.PersonID,
			personName,
			row.AnswerValue,
			row.CreatedAt.Time.Format(dateLayout),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(resultsSheet, cell, &cells); err != nil {
			return fmt.Errorf("write results row: %w", err)
		}
	}

	return nil
}

func (s *Service) writeSummarySheet(file *excelize.File, rows []response.ListJoinedByTenantRow, totalQuestions int64, tenantName string) error {
	if _, err := file.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	header := []any{"Metrik", "Değer"}
	if err := file.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}
	if err := s.styleHeader(file, summarySheet, "A1", "B1"); err != nil {
		return err
	}
	if err := file.SetColWidth(summarySheet, "A", "A", 30); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := file.SetColWidth(summarySheet, "B", "B", 20); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	uniqueRespondents := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		uniqueRespondents[row.PersonID] = struct{}{}
	}

	metrics := []struct {
		metric string
		value  any
	}{
		{"Toplam Cevap Sayısı", len(rows)},
		{"Katılımcı Sayısı", len(uniqueRespondents)},
		{"Toplam Soru Sayısı", totalQuestions},
		{"Firma", tenantName},
		{"Rapor Tarihi", s.now().Format(dateLayout)},
	}
	for i, m := range metrics {
		cells := []any{m.metric, m.value}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(summarySheet, cell, &cells); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}

	return nil
}

func (s *Service) styleHeader(file *excelize.File, sheet, from, to string) error {
	style, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0E0E0"}},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := file.SetCellStyle(sheet, from, to, style); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}
	return nil
}
