package notify

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/matchpointhq/matchpoint/internal/platform/resilience"
	"github.com/matchpointhq/matchpoint/internal/usecase"
)

var errWebhookTransient = crerr.New("webhook transient failure")

type WebhookConfig struct {
	Endpoint       string
	SigningToken   string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// WebhookNotifier posts challenge and league lifecycle events to a
// configured endpoint. A circuit breaker sheds load when the endpoint
// is down; the services already treat delivery as best effort.
type WebhookNotifier struct {
	client         *fasthttp.Client
	endpoint       string
	signingToken   string
	timeout        time.Duration
	logger         *slog.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	now            func() time.Time
}

func NewWebhookNotifier(cfg WebhookConfig, logger *slog.Logger) (*WebhookNotifier, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, crerr.New("webhook endpoint is required")
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		return nil, crerr.Newf("webhook endpoint %q must be http or https", endpoint)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &WebhookNotifier{
		client:         &fasthttp.Client{},
		endpoint:       endpoint,
		signingToken:   strings.TrimSpace(cfg.SigningToken),
		timeout:        timeout,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		now:            time.Now,
	}, nil
}

type challengePayload struct {
	ID           string `json:"id"`
	LeagueID     string `json:"league_id"`
	ChallengerID string `json:"challenger_id"`
	ChallengedID string `json:"challenged_id"`
	Status       string `json:"status"`
}

type leagueStatusPayload struct {
	LeagueID string `json:"league_id"`
	Name     string `json:"name"`
	From     string `json:"from"`
	To       string `json:"to"`
}

func (n *WebhookNotifier) NotifyChallenge(ctx context.Context, event usecase.ChallengeEvent) error {
	return n.deliver(ctx, event.Type, challengePayload{
		ID:           event.Challenge.ID,
		LeagueID:     event.Challenge.LeagueID,
		ChallengerID: event.Challenge.ChallengerID,
		ChallengedID: event.Challenge.ChallengedID,
		Status:       string(event.Challenge.Status),
	})
}

func (n *WebhookNotifier) NotifyLeagueStatus(ctx context.Context, event usecase.LeagueStatusEvent) error {
	return n.deliver(ctx, "league."+string(event.To), leagueStatusPayload{
		LeagueID: event.League.ID,
		Name:     event.League.Name,
		From:     string(event.From),
		To:       string(event.To),
	})
}

func (n *WebhookNotifier) deliver(ctx context.Context, eventType string, data any) error {
	if n.circuitEnabled {
		if err := n.breaker.Allow(); err != nil {
			n.logger.WarnContext(ctx, "webhook circuit breaker rejected delivery",
				"event", eventType,
				"state", string(n.breaker.State()),
			)
			return fmt.Errorf("webhook endpoint is temporarily unavailable: %w", err)
		}
	}

	body, err := n.encodeEnvelope(eventType, data)
	if err != nil {
		return crerr.Wrap(err, "encode webhook envelope")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(n.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if n.signingToken != "" {
		req.Header.Set("X-Webhook-Token", n.signingToken)
	}
	req.SetBody(body)

	if err := n.client.DoTimeout(req, resp, n.timeout); err != nil {
		callErr := fmt.Errorf("%w: post %s to %s: %v", errWebhookTransient, eventType, n.endpoint, err)
		n.recordCircuitResult(callErr)
		return callErr
	}

	status := resp.StatusCode()
	if status/100 != 2 {
		if isRetryableStatus(status) {
			callErr := fmt.Errorf("%w: post %s status=%d", errWebhookTransient, eventType, status)
			n.recordCircuitResult(callErr)
			return callErr
		}
		callErr := crerr.Newf("post %s status=%d", eventType, status)
		n.recordCircuitResult(callErr)
		return callErr
	}

	n.logger.DebugContext(ctx, "webhook delivered", "event", eventType)
	n.recordCircuitResult(nil)
	return nil
}

// encodeEnvelope assembles {type, occurred_at, data} reusing pooled
// buffers for the marshalled data section.
func (n *WebhookNotifier) encodeEnvelope(eventType string, data any) ([]byte, error) {
	encoded, err := sonic.Marshal(data)
	if err != nil {
		return nil, err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(`{"type":`)
	typeJSON, err := sonic.Marshal(eventType)
	if err != nil {
		return nil, err
	}
	_, _ = buf.Write(typeJSON)
	_, _ = buf.WriteString(`,"occurred_at":"`)
	_, _ = buf.WriteString(n.now().UTC().Format(time.RFC3339Nano))
	_, _ = buf.WriteString(`","data":`)
	_, _ = buf.Write(encoded)
	_, _ = buf.WriteString("}")

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

func (n *WebhookNotifier) recordCircuitResult(err error) {
	if !n.circuitEnabled || n.breaker == nil {
		return
	}
	if err == nil {
		n.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errWebhookTransient) {
		n.breaker.RecordFailure()
		return
	}
	n.breaker.RecordSuccess()
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusRequestTimeout ||
		status == fasthttp.StatusTooManyRequests ||
		status >= fasthttp.StatusInternalServerError
}
