package export

import (
	"context"
	"fmt"
	"net/http"

	"anketly/survey-backend/internal/identity"

	logutil "github.com/NYCU-SDC/summer/pkg/log"
	"github.com/NYCU-SDC/summer/pkg/problem"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminStore interface {
	Authorize(ctx context.Context, tenantID, personID string) error
}

type Generator interface {
	Generate(ctx context.Context, tenantID string) (Workbook, error)
}

type Handler struct {
	logger        *zap.Logger
	problemWriter *problem.HttpWriter
	adminStore    AdminStore
	generator     Generator
	tracer        trace.Tracer
}

func NewHandler(logger *zap.Logger, problemWriter *problem.HttpWriter, adminStore AdminStore, generator Generator) *Handler {
	return &Handler{
		logger:        logger,
		problemWriter: problemWriter,
		adminStore:    adminStore,
		generator:     generator,
		tracer:        otel.Tracer("export/handler"),
	}
}

// GetHandler streams the tenant's results workbook as a download; admins only.
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

	workbook, err := h.generator.Generate(traceCtx, caller.TenantID)
	if err != nil {
		h.problemWriter.WriteError(traceCtx, w, err, logger)
		return
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", workbook.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(workbook.Content); err != nil {
		logger.Warn("Failed to write workbook to response", zap.Error(err))
	}
}
