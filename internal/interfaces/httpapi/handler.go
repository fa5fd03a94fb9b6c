package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pitchmetrics/pitchmetrics/internal/platform/logging"
	"github.com/pitchmetrics/pitchmetrics/internal/usecase"
)

type Handler struct {
	queries   *usecase.QueryService
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(queries *usecase.QueryService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		queries:   queries,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type listQuery struct {
	TournamentID int64  `validate:"required,gt=0"`
	Season       string `validate:"omitempty,max=32"`
}

// pathID parses a numeric path segment. Anything non-numeric is treated
// the same as an unknown entity.
func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a valid id", usecase.ErrNotFound, name, raw)
	}
	return id, nil
}

func formatSyncTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
