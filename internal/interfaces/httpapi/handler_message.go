package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/matchpointhq/matchpoint/internal/usecase"
)

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SendMessage")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req sendMessageRequest
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

	sent, err := h.messageService.Send(ctx, usecase.SendMessageInput{
		ActorID:     principal.UserID,
		RecipientID: req.RecipientID,
		Body:        req.Body,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "send message failed", "user_id", principal.UserID, "recipient_id", req.RecipientID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, messageToDTO(sent))
}

func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetConversation")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}
	otherID := strings.TrimSpace(r.PathValue("playerID"))

	messages, err := h.messageService.Conversation(ctx, principal.UserID, otherID)
	if err != nil {
		h.logger.WarnContext(ctx, "get conversation failed", "user_id", principal.UserID, "other_id", otherID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]messageDTO, 0, len(messages))
	for _, msg := range messages {
		items = append(items, messageToDTO(msg))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUnreadCount")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	count, err := h.messageService.UnreadCount(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "get unread count failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"unread": count})
}
