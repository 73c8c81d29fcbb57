package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/matchpointhq/matchpoint/internal/usecase"
)

const defaultSweepWorkers = 4

// RunStatusSweep triggers one manual status sweep outside the periodic
// schedule. The request body is optional.
func (h *Handler) RunStatusSweep(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunStatusSweep")
	defer span.End()

	var req runStatusSweepRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	workers := req.Workers
	if workers <= 0 {
		workers = defaultSweepWorkers
	}

	transitions, err := h.sweepService.Sweep(ctx, workers)
	if err != nil {
		h.logger.WarnContext(ctx, "status sweep failed", "workers", workers, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"transitions": transitions})
}
