package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/matchpointhq/matchpoint/internal/domain/league"
	"github.com/matchpointhq/matchpoint/internal/usecase"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	input := usecase.ListLeaguesInput{
		Sport:  strings.TrimSpace(r.URL.Query().Get("sport")),
		Kind:   strings.TrimSpace(r.URL.Query().Get("kind")),
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
	}

	summaries, err := h.leagueService.List(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues failed", "sport", input.Sport, "kind", input.Kind, "status", input.Status, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueSummaryDTO, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, leagueSummaryToDTO(summary))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	summary, err := h.leagueService.Get(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueSummaryToDTO(summary))
}

func (h *Handler) ListLeagueParticipants(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueParticipants")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	playerIDs, err := h.leagueService.Participants(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list league participants failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"playerIds": playerIDs})
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeague")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createLeagueRequest
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

	draft, err := draftFromRequest(req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.leagueService.Create(ctx, principal.UserID, draft)
	if err != nil {
		h.logger.WarnContext(ctx, "create league failed", "user_id", principal.UserID, "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, leagueToDTO(created))
}

func draftFromRequest(req createLeagueRequest) (league.Draft, error) {
	startDate, err := parseTimestamp("start_date", req.StartDate)
	if err != nil {
		return league.Draft{}, err
	}
	endDate, err := parseTimestamp("end_date", req.EndDate)
	if err != nil {
		return league.Draft{}, err
	}
	var deadline time.Time
	if strings.TrimSpace(req.RegistrationDeadline) != "" {
		deadline, err = parseTimestamp("registration_deadline", req.RegistrationDeadline)
		if err != nil {
			return league.Draft{}, err
		}
	}

	return league.Draft{
		Name:                 req.Name,
		Sport:                req.Sport,
		Gender:               req.Gender,
		SkillMin:             req.SkillLevelMin,
		SkillMax:             req.SkillLevelMax,
		StartDate:            startDate,
		EndDate:              endDate,
		RegistrationDeadline: deadline,
		Location:             req.Location,
		MatchFormat:          req.MatchFormat,
		Format:               req.Format,
		MaxParticipants:      req.MaxParticipants,
		MaxDuoPairs:          req.MaxDuoPairs,
		AgeMin:               req.AgeMin,
		AgeMax:               req.AgeMax,
		Rules:                req.Rules,
		Description:          req.Description,
	}, nil
}

func parseTimestamp(field, value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be an RFC 3339 timestamp", usecase.ErrInvalidInput, field)
	}
	return parsed, nil
}
