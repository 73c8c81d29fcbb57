package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/matchpointhq/matchpoint/internal/usecase"
)

func (h *Handler) CreatePartnership(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePartnership")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createPartnershipRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.partnershipService.Create(ctx, principal.UserID, req.PartnerID)
	if err != nil {
		h.logger.WarnContext(ctx, "create partnership failed", "user_id", principal.UserID, "partner_id", req.PartnerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, partnershipToDTO(created))
}

func (h *Handler) GetActivePartnership(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetActivePartnership")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	active, found, err := h.partnershipService.Active(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "get active partnership failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !found {
		writeError(ctx, w, fmt.Errorf("%w: no active partnership", usecase.ErrNotFound))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, partnershipToDTO(active))
}

func (h *Handler) DissolvePartnership(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DissolvePartnership")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	partnershipID := strings.TrimSpace(r.PathValue("partnershipID"))

	if err := h.partnershipService.Dissolve(ctx, principal.UserID, partnershipID); err != nil {
		h.logger.WarnContext(ctx, "dissolve partnership failed", "user_id", principal.UserID, "partnership_id", partnershipID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "dissolved"})
}
