package question

import (
	"context"
	"errors"

	"anketly/survey-backend/internal"

	databaseutil "github.com/NYCU-SDC/summer/pkg/database"
	logutil "github.com/NYCU-SDC/summer/pkg/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Querier interface {
	ListActiveCategories(ctx context.Context, tenantID string) ([]Category, error)
	ListActiveByTenant(ctx context.Context, tenantID string) ([]Question, error)
	GetActive(ctx context.Context, arg GetActiveParams) (Question, error)
	CountActiveByTenant(ctx context.Context, tenantID string) (int64, error)
}

type CategoryWithQuestions struct {
	Category  Category
	Questions []Question
}

type Service struct {
	logger  *zap.Logger
	queries Querier
	tracer  trace.Tracer
}

func NewService(logger *zap.Logger, db DBTX) *Service {
	return &Service{
		logger:  logger,
		queries: New(db),
		tracer:  otel.Tracer("question/service"),
	}
}

// ListActiveWithQuestions returns the tenant's active categories in creation
// order, each carrying its active questions in display order.
func (s *Service) ListActiveWithQuestions(ctx context.Context, tenantID string) ([]CategoryWithQuestions, error) {
	ctx, span := s.tracer.Start(ctx, "ListActiveWithQuestions")
	defer span.End()
	logger := logutil.WithContext(ctx, s.logger)

	categories, err := s.queries.ListActiveCategories(ctx, tenantID)
	if err != nil {
		err = databaseutil.WrapDBError(err, logger, "list active categories")
		span.RecordError(err)
		return nil, err
	}

	questions, err := s.queries.ListActiveByTenant(ctx, tenantID)
	if err != nil {
		err = databaseutil.WrapDBError(err, logger, "list active questions")
		span.RecordError(err)
		return nil, err
	}

	questionsByCategory := make(map[uuid.UUID][]Question, len(categories))
	for _, q := range questions {
		questionsByCategory[q.CategoryID] = append(questionsByCategory[q.CategoryID], q)
	}

	result := make([]CategoryWithQuestions, 0, len(categories))
	for _, category := range categories {
		result = append(result, CategoryWithQuestions{
			Category:  category,
			Questions: questionsByCategory[category.ID],
		})
	}

	return result, nil
}

// GetActiveAnswerable loads an active question scoped to the tenant and wraps
// it in its type variant. Missing or inactive questions map to
// ErrQuestionNotFound.
func (s *Service) GetActiveAnswerable(ctx context.Context, id uuid.UUID, tenantID string) (Answerable, error) {
	ctx, span := s.tracer.Start(ctx, "GetActiveAnswerable")
	defer span.End()
	logger := logutil.WithContext(ctx, s.logger)

	row, err := s.queries.GetActive(ctx, GetActiveParams{ID: id, TenantID: tenantID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, internal.ErrQuestionNotFound
		}
		err = databaseutil.WrapDBError(err, logger, "get active question")
		span.RecordError(err)
		return nil, err
	}

	return NewAnswerable(row)
}

func (s *Service) CountActive(ctx context.Context, tenantID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "CountActive")
	defer span.End()
	logger := logutil.WithContext(ctx, s.logger)

	count, err := s.queries.CountActiveByTenant(ctx, tenantID)
	if err != nil {
		err = databaseutil.WrapDBError(err, logger, "count active questions")
		span.RecordError(err)
		return 0, err
	}

	return count, nil
}
