package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/matchpointhq/matchpoint/internal/platform/logging"
	"github.com/matchpointhq/matchpoint/internal/usecase"
)

type Handler struct {
	leagueService       *usecase.LeagueService
	registrationService *usecase.RegistrationService
	partnershipService  *usecase.PartnershipService
	challengeService    *usecase.ChallengeService
	messageService      *usecase.MessageService
	profileService      *usecase.ProfileService
	sweepService        *usecase.SweepService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	registrationService *usecase.RegistrationService,
	partnershipService *usecase.PartnershipService,
	challengeService *usecase.ChallengeService,
	messageService *usecase.MessageService,
	profileService *usecase.ProfileService,
	sweepService *usecase.SweepService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:       leagueService,
		registrationService: registrationService,
		partnershipService:  partnershipService,
		challengeService:    challengeService,
		messageService:      messageService,
		profileService:      profileService,
		sweepService:        sweepService,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

type createLeagueRequest struct {
	Name                 string `json:"name" validate:"required,max=120"`
	Sport                string `json:"sport" validate:"required"`
	Gender               string `json:"gender" validate:"required"`
	SkillLevelMin        int    `json:"skill_level_min"`
	SkillLevelMax        int    `json:"skill_level_max"`
	StartDate            string `json:"start_date" validate:"required"`
	EndDate              string `json:"end_date" validate:"required"`
	RegistrationDeadline string `json:"registration_deadline"`
	Location             string `json:"location" validate:"required,max=200"`
	MatchFormat          string `json:"match_format" validate:"required"`
	Format               string `json:"format" validate:"required,oneof=individual team"`
	MaxParticipants      int    `json:"max_participants"`
	MaxDuoPairs          int    `json:"max_duo_pairs"`
	AgeMin               int    `json:"age_min"`
	AgeMax               int    `json:"age_max"`
	Rules                string `json:"rules" validate:"max=4000"`
	Description          string `json:"description" validate:"max=4000"`
}

type createPartnershipRequest struct {
	PartnerID string `json:"partner_id" validate:"required"`
}

type createChallengeRequest struct {
	LeagueID     string `json:"league_id" validate:"required"`
	ChallengedID string `json:"challenged_id" validate:"required"`
	ProposedTime string `json:"proposed_time" validate:"required"`
	Location     string `json:"location" validate:"max=200"`
}

type sendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Body        string `json:"body" validate:"required,max=2000"`
}

type updateProfileRequest struct {
	DisplayName    string `json:"display_name" validate:"required,max=80"`
	SkillLevel     int    `json:"skill_level" validate:"gte=0,lte=10"`
	PreferredSport string `json:"preferred_sport" validate:"max=40"`
	Bio            string `json:"bio" validate:"max=2000"`
	AvatarURL      string `json:"avatar_url" validate:"omitempty,url,max=500"`
}

type runStatusSweepRequest struct {
	Workers int `json:"workers" validate:"omitempty,gt=0,lte=64"`
}
