package tenant

import (
	"context"
	"errors"

	"anketly/survey-backend/internal"

	databaseutil "github.com/NYCU-SDC/summer/pkg/database"
	logutil "github.com/NYCU-SDC/summer/pkg/log"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Querier interface {
	GetByID(ctx context.Context, id string) (Tenant, error)
	Exists(ctx context.Context, id string) (bool, error)
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
		tracer:  otel.Tracer("tenant/service"),
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "GetByID")
	defer span.End()
	logger := logutil.WithContext(ctx, s.logger)

	row, err := s.queries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Tenant{}, internal.ErrTenantNotFound
		}
		err = databaseutil.WrapDBError(err, logger, "get tenant by id")
		span.RecordError(err)
		return Tenant{}, err
	}

	return row, nil
}

// DisplayName returns the tenant name, falling back to the raw tenant id when
// the tenant row does not exist.
func (s *Service) DisplayName(ctx context.Context, id string) string {
	row, err := s.GetByID(ctx, id)
	if err != nil {
		return id
	}
	return row.Name
}
