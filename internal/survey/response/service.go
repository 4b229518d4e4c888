package response

import (
	"context"
	"strings"

	"anketly/survey-backend/internal"
	"anketly/survey-backend/internal/survey/question"

	databaseutil "github.com/NYCU-SDC/summer/pkg/database"
	logutil "github.com/NYCU-SDC/summer/pkg/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Querier interface {
	Upsert(ctx context.Context, arg UpsertParams) (Response, error)
	ListByPerson(ctx context.Context, arg ListByPersonParams) ([]ListByPersonRow, error)
	ListJoinedByTenant(ctx context.Context, tenantID string) ([]ListJoinedByTenantRow, error)
	ListForExport(ctx context.Context, tenantID string) ([]ListJoinedByTenantRow, error)
}

type QuestionStore interface {
	GetActiveAnswerable(ctx context.Context, id uuid.UUID, tenantID string) (question.Answerable, error)
}

// DB is the pool-level handle; Begin is needed for the atomic batch upsert.
type DB interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

type UpsertInput struct {
	QuestionID  uuid.UUID
	TenantID    string
	PersonID    string
	PersonName  string
	AnswerValue string
}

type AnswerInput struct {
	QuestionID  uuid.UUID
	AnswerValue string
}

type Service struct {
	logger        *zap.Logger
	db            DB
	queries       Querier
	questionStore QuestionStore
	tracer        trace.Tracer
}

func NewService(logger *zap.Logger, db DB, questionStore QuestionStore) *Service {
	return &Service{
		logger:        logger,
		db:            db,
		queries:       New(db),
		questionStore: questionStore,
		tracer:        otel.Tracer("response/service"),
	}
}

// Upsert stores one person's answer to one question, last write wins. The
// referenced question must exist in the tenant and be active. An empty answer
// is stored as-is; non-empty answers must satisfy the question type's value
// domain.
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (Response, error) {
	ctx, span := s.tracer.Start(ctx, "Upsert")
	defer span.End()
	logger := logutil.WithContext(ctx, s.logger)

	answerable, err := s.questionStore.GetActiveAnswerable(ctx, input.QuestionID, input.TenantID)
	if err != nil {
		span.RecordError(err)
		return Response{}, err
	}

	value, err := normalizeAnswer(answerable, input.AnswerValue)
	if err != nil {
		span.RecordError(err)
		return Response{}, err
	}

	row, err := s.queries.Upsert(ctx, UpsertParams{
		QuestionID:  input.QuestionID,
		TenantID:    input.TenantID,
		PersonID:    input.PersonID,
		PersonName:  pgtype.Text{String: input.PersonName, Valid: input.PersonName != ""},
		AnswerValue: value,
	})
	if err != nil {
		err = databaseutil.WrapDBError(err, logger, "upsert response")
		span.RecordError(err)
		return Response{}, err
	}

	logger.Info("Stored survey response",
		zap.String("question_id", input.QuestionID.String()),
		zap.String("tenant_id", input.TenantID),
		zap.String("person_id", input.PersonID))

	return row, nil
}

// BatchUpsert stores a set of answers for one person inside a single
// transaction; any invalid question or failed write rolls back the whole
// batch.
func (s *Service) BatchUpsert(ctx context.Context, tenantID, personID, personName string, answers []AnswerInput) ([]Response, error) {
	ctx, span := s.tracer.Start(ctx, "BatchUpsert")
	defer span.End()
	logger := logutil.WithContext(ctx, s.logger)

	if len(answers) == 0 {
		return nil, internal.ErrEmptyBatch
	}

	values := make([]string, len(answers))
	for i, answer := range answers {
		answerable, err := s.questionStore.GetActiveAnswerable(ctx, answer.QuestionID, tenantID)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}

		values[i], err = normalizeAnswer(answerable, answer.AnswerValue)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		err = databaseutil.WrapDBError(err, logger, "begin batch upsert transaction")
		span.RecordError(err)
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	qtx := New(tx)
	rows := make([]Response, 0, len(answers))
	for i, answer := range answers {
		row, err := qtx.Upsert(ctx, UpsertParams{
			QuestionID:  answer.QuestionID,
			TenantID:    tenantID,
			PersonID:    personID,
			PersonName:  pgtype.Text{String: personName, Valid: personName != ""},
			AnswerValue: values[i],
		})
		if err != nil {
			err = databaseutil.WrapDBError(err, logger, "upsert response in batch")
			span.RecordError(err)
			return nil, err
		}
		rows = append(rows, row)
	}

	if err := tx.Commit(ctx); err != nil {
		err = databaseutil.WrapDBError(err, logger, "commit batch upsert transaction")
		span.RecordError(err)
		return nil, err
	}

	logger.Info("Stored survey response batch",
		zap.String("tenant_id", tenantID),
		zap.String("person_id", personID),
		zap.Int("count", len(rows)))

	return rows, nil
}

func (s *Service) ListByPerson(ctx context.Context, tenantID, personID string) ([]ListByPersonRow, error) {
	ctx, span := s.tracer.Start(ctx, "ListByPerson")
	defer span.End()
	logger := logutil.WithContext(ctx, s.logger)

	rows, err := s.queries.ListByPerson(ctx, ListByPersonParams{
		TenantID: tenantID,
		PersonID: personID,
	})
	if err != nil {
		err = databaseutil.WrapDBError(err, logger, "list responses by person")
		span.RecordError(err)
		return nil, err
	}

	return rows, nil
}

// AnswerMap projects a person's responses to a questionId -> answerValue map.
func (s *Service) AnswerMap(ctx context.Context, tenantID, personID string) (map[string]string, error) {
	rows, err := s.ListByPerson(ctx, tenantID, personID)
	if err != nil {
		return nil, err
	}

	answers := make(map[string]string, len(rows))
	for _, row := range rows {
		answers[row.QuestionID.String()] = row.AnswerValue
	}
	return answers, nil
}

func (s *Service) ListJoinedByTenant(ctx context.Context, tenantID string) ([]ListJoinedByTenantRow, error) {
	ctx, span := s.tracer.Start(ctx, "ListJoinedByTenant")
	defer span.End()
	logger := logutil.WithContext(ctx, s.logger)

	rows, err := s.queries.ListJoinedByTenant(ctx, tenantID)
	if err != nil {
		err = databaseutil.WrapDBError(err, logger, "list responses joined by tenant")
		span.RecordError(err)
		return nil, err
	}

	return rows, nil
}

func (s *Service) ListForExport(ctx context.Context, tenantID string) ([]ListJoinedByTenantRow, error) {
	ctx, span := s.tracer.Start(ctx, "ListForExport")
	defer span.End()
	logger := logutil.WithContext(ctx, s.logger)

	rows, err := s.queries.ListForExport(ctx, tenantID)
	if err != nil {
		err = databaseutil.WrapDBError(err, logger, "list responses for export")
		span.RecordError(err)
		return nil, err
	}

	return rows, nil
}

// normalizeAnswer applies the question type's normalization and, for
// non-blank answers, its value-domain validation. Blank answers pass through
// as empty strings; required-field enforcement stays client-side.
func normalizeAnswer(answerable question.Answerable, raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	if err := answerable.Validate(raw); err != nil {
		return "", err
	}
	return answerable.Normalize(raw), nil
}
