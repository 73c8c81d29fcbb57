package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/matchpointhq/matchpoint/internal/domain/challenge"
	"github.com/matchpointhq/matchpoint/internal/usecase"
)

func (h *Handler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateChallenge")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createChallengeRequest
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

	proposedTime, err := parseTimestamp("proposed_time", req.ProposedTime)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.challengeService.Create(ctx, usecase.CreateChallengeInput{
		ActorID:      principal.UserID,
		LeagueID:     req.LeagueID,
		ChallengedID: req.ChallengedID,
		ProposedTime: proposedTime,
		Location:     req.Location,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create challenge failed", "user_id", principal.UserID, "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, challengeToDTO(created))
}

func (h *Handler) ListMyChallenges(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyChallenges")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	views, err := h.challengeService.ListForPlayer(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list challenges failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]challengeDTO, 0, len(views))
	for _, view := range views {
		items = append(items, challengeViewToDTO(view))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) AcceptChallenge(w http.ResponseWriter, r *http.Request) {
	h.transitionChallenge(w, r, "httpapi.Handler.AcceptChallenge", h.challengeService.Accept)
}

func (h *Handler) RejectChallenge(w http.ResponseWriter, r *http.Request) {
	h.transitionChallenge(w, r, "httpapi.Handler.RejectChallenge", h.challengeService.Reject)
}

func (h *Handler) CompleteChallenge(w http.ResponseWriter, r *http.Request) {
	h.transitionChallenge(w, r, "httpapi.Handler.CompleteChallenge", h.challengeService.Complete)
}

func (h *Handler) DisputeChallenge(w http.ResponseWriter, r *http.Request) {
	h.transitionChallenge(w, r, "httpapi.Handler.DisputeChallenge", h.challengeService.Dispute)
}

func (h *Handler) transitionChallenge(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	apply func(ctx context.Context, actorID, challengeID string) (challenge.Challenge, error),
) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	challengeID := strings.TrimSpace(r.PathValue("challengeID"))

	updated, err := apply(ctx, principal.UserID, challengeID)
	if err != nil {
		h.logger.WarnContext(ctx, "challenge transition failed", "user_id", principal.UserID, "challenge_id", challengeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, challengeToDTO(updated))
}
