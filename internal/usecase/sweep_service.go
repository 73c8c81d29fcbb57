package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/matchpointhq/matchpoint/internal/domain/league"
	"github.com/matchpointhq/matchpoint/internal/platform/logging"
)

// LeagueStatusEvent reports a league crossing a lifecycle boundary.
type LeagueStatusEvent struct {
	League league.League
	From   league.Status
	To     league.Status
}

// LeagueNotifier delivers league lifecycle events. Best effort, like
// challenge notifications.
type LeagueNotifier interface {
	NotifyLeagueStatus(ctx context.Context, event LeagueStatusEvent) error
}

// SweepService periodically derives every league's status and emits a
// notification when one has crossed into active or completed since the
// previous sweep. Status itself stays derived; the sweep only tracks
// what it already announced.
type SweepService struct {
	leagueRepo league.Repository
	notifier   LeagueNotifier
	logger     *logging.Logger
	now        func() time.Time

	mu       sync.Mutex
	lastSeen map[string]league.Status
}

func NewSweepService(leagueRepo league.Repository, notifier LeagueNotifier, logger *logging.Logger) *SweepService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SweepService{
		leagueRepo: leagueRepo,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
		lastSeen:   make(map[string]league.Status),
	}
}

// Sweep runs one pass over all leagues on a bounded worker pool and
// returns the number of transitions announced.
func (s *SweepService) Sweep(ctx context.Context, workers int) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "SweepService.Sweep")
	defer span.End()

	if workers < 1 {
		workers = 4
	}

	leagues, err := s.leagueRepo.List(ctx, league.Filter{})
	if err != nil {
		return 0, fmt.Errorf("list leagues for sweep: %w", err)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return 0, fmt.Errorf("create sweep pool: %w", err)
	}
	defer pool.Release()

	now := s.now().UTC()
	var (
		wg          sync.WaitGroup
		transitions sync.Map
	)
	for _, l := range leagues {
		l := l
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if event, changed := s.observe(l, now); changed {
				transitions.Store(l.ID, event)
			}
		})
		if submitErr != nil {
			wg.Done()
			s.logger.WarnContext(ctx, "sweep task rejected", "league_id", l.ID, "error", submitErr)
		}
	}
	wg.Wait()

	announced := 0
	var notifyErr error
	transitions.Range(func(_, value any) bool {
		event := value.(LeagueStatusEvent)
		if s.notifier != nil {
			if err := s.notifier.NotifyLeagueStatus(ctx, event); err != nil {
				s.logger.WarnContext(ctx, "league status notification failed",
					"league_id", event.League.ID,
					"to", string(event.To),
					"error", err,
				)
				notifyErr = err
				return true
			}
		}
		announced++
		return true
	})

	if notifyErr != nil && announced == 0 {
		return 0, fmt.Errorf("%w: league status notifications", ErrDependencyUnavailable)
	}
	return announced, nil
}

// Run sweeps on the interval until the context ends.
func (s *SweepService) Run(ctx context.Context, interval time.Duration, workers int) {
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx, workers); err != nil {
				s.logger.ErrorContext(ctx, "league sweep failed", "error", err)
			}
		}
	}
}

func (s *SweepService) observe(l league.League, now time.Time) (LeagueStatusEvent, bool) {
	current := l.StatusAt(now)

	s.mu.Lock()
	previous, seen := s.lastSeen[l.ID]
	s.lastSeen[l.ID] = current
	s.mu.Unlock()

	if !seen || previous == current {
		return LeagueStatusEvent{}, false
	}
	return LeagueStatusEvent{League: l, From: previous, To: current}, true
}
