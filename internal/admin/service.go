// Package admin checks the per-tenant admin allow-list. Presence of a row for
// (tenantId, personId) is what authorizes results viewing and export; there is
// no role model beyond that.
package admin

import (
	"context"

	"anketly/survey-backend/internal"

	databaseutil "github.com/NYCU-SDC/summer/pkg/database"
	logutil "github.com/NYCU-SDC/summer/pkg/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Querier interface {
	Exists(ctx context.Context, arg ExistsParams) (bool, error)
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
		tracer:  otel.Tracer("admin/service"),
	}
}

func (s *Service) IsAdmin(ctx context.Context, tenantID, personID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "IsAdmin")
	defer span.End()
	logger := logutil.WithContext(ctx, s.logger)

	exists, err := s.queries.Exists(ctx, ExistsParams{
		TenantID: tenantID,
		PersonID: personID,
	})
	if err != nil {
		err = databaseutil.WrapDBError(err, logger, "check admin user exists")
		span.RecordError(err)
		return false, err
	}

	return exists, nil
}

// Authorize returns ErrNotAdmin when the caller has no admin row.
func (s *Service) Authorize(ctx context.Context, tenantID, personID string) error {
	isAdmin, err := s.IsAdmin(ctx, tenantID, personID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return internal.ErrNotAdmin
	}
	return nil
}
