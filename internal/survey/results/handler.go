package results

import (
	"context"
	"net/http"

	"anketly/survey-backend/internal/identity"

	handlerutil "github.com/NYCU-SDC/summer/pkg/handler"
	logutil "github.com/NYCU-SDC/summer/pkg/log"
	"github.com/NYCU-SDC/summer/pkg/problem"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type AdminStore interface {
	Authorize(ctx context.Context, tenantID, personID string) error
}

type Aggregator interface {
	Aggregate(ctx context.Context, tenantID string) (Results, error)
}

type Handler struct {
	logger        *zap.Logger
	problemWriter *problem.HttpWriter
	adminStore    AdminStore
	aggregator    Aggregator
	tracer        trace.Tracer
}

func NewHandler(logger *zap.Logger, problemWriter *problem.HttpWriter, adminStore AdminStore, aggregator Aggregator) *Handler {
	return &Handler{
		logger:        logger,
		problemWriter: problemWriter,
		adminStore:    adminStore,
		aggregator:    aggregator,
		tracer:        otel.Tracer("results/handler"),
	}
}

// GetHandler returns the tenant's aggregated results; admins only.
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	traceCtx, span := h.tracer.Start(r.Context(), "GetHandler")
	defer span.End()
	logger := logutil.WithContext(traceCtx, h.logger)

	caller, err := identity.FromRequest(r)
	if err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	if err := h.adminStore.Authorize(traceCtx, caller.TenantID, caller.PersonID); err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	results, err := h.aggregator.Aggregate(traceCtx, caller.TenantID)
	if err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	handlerutil.WriteJSONResponse(w, http.StatusOK, results)
}
