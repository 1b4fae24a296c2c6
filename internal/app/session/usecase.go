package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"darklife/internal/app/ports"
	"darklife/internal/domain/life"
)

var ErrInvalidRequest = errors.New("invalid session request")

// Market is the slice of the exchange the orchestrator needs.
type Market interface {
	life.PriceView
	RefreshIfStale(ctx context.Context, now time.Time) error
}

// UseCase drives one button press end to end: lock the player, load, migrate,
// apply decay, run the action, persist, log. The whole sequence runs inside one
// transaction, so a failed save leaves no partially applied action.
type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Events    ports.EventRepository
	Market    Market
	Metrics   ports.ActionMetrics
	Decay     life.DecayService
	Rand      life.Rand
	Now       func() time.Time

	locks playerLocks
}

func (u *UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.PlayerID = strings.TrimSpace(req.PlayerID)
	if req.PlayerID == "" {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	lock := u.locks.forPlayer(req.PlayerID)
	lock.Lock()
	defer lock.Unlock()

	// A stale snapshot is acceptable; a refresh failure must not block play.
	if err := u.Market.RefreshIfStale(ctx, now); err != nil && u.Metrics != nil {
		u.Metrics.RecordFailure()
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		player, err := u.Players.GetByPlayerID(txCtx, req.PlayerID)
		created := false
		if errors.Is(err, ports.ErrNotFound) {
			player = life.NewPlayer(req.PlayerID, now)
			created = true
		} else if err != nil {
			return fmt.Errorf("load player: %w", err)
		}
		expectedVersion := player.Version
		if created {
			expectedVersion = 0
		}

		player = life.Migrate(player)
		decayNote := u.Decay.Apply(&player, now)

		outcome := life.Apply(&player, req.Action, u.Market, u.Rand)
		if player.Dead() && !strings.Contains(outcome.Text, life.DeathNotice) {
			outcome.Text += "\n\n" + life.DeathNotice
		}

		player.Version++
		if err := u.Players.SaveWithVersion(txCtx, player, expectedVersion); err != nil {
			return fmt.Errorf("save player: %w", err)
		}

		event := ports.EventRecord{
			ID:         uuid.NewString(),
			PlayerID:   req.PlayerID,
			Action:     string(req.Action.Kind),
			Text:       outcome.Text,
			Rejected:   outcome.Rejected,
			OccurredAt: now,
		}
		if err := u.Events.Append(txCtx, []ports.EventRecord{event}); err != nil {
			return fmt.Errorf("append event: %w", err)
		}

		out = Response{
			Text:     composeText(decayNote, outcome.Text, &player),
			Rejected: outcome.Rejected,
			Player:   player,
			Actions:  life.AvailableActions(&player),
		}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		if out.Rejected {
			u.Metrics.RecordRejection()
		} else {
			u.Metrics.RecordSuccess()
		}
	}
	return out, nil
}

// Reset creates a fresh default player, replacing any existing record. Used for
// first contact and for restarting after death.
func (u *UseCase) Reset(ctx context.Context, req ResetRequest) (Response, error) {
	playerID := strings.TrimSpace(req.PlayerID)
	if playerID == "" {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	lock := u.locks.forPlayer(playerID)
	lock.Lock()
	defer lock.Unlock()

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		expectedVersion := int64(0)
		existing, err := u.Players.GetByPlayerID(txCtx, playerID)
		if err == nil {
			expectedVersion = existing.Version
		} else if !errors.Is(err, ports.ErrNotFound) {
			return fmt.Errorf("load player: %w", err)
		}

		player := life.NewPlayer(playerID, now)
		player.Version = expectedVersion + 1
		if err := u.Players.SaveWithVersion(txCtx, player, expectedVersion); err != nil {
			return fmt.Errorf("save player: %w", err)
		}

		event := ports.EventRecord{
			ID:         uuid.NewString(),
			PlayerID:   playerID,
			Action:     "reset",
			Text:       "A new life begins.",
			OccurredAt: now,
		}
		if err := u.Events.Append(txCtx, []ports.EventRecord{event}); err != nil {
			return fmt.Errorf("append event: %w", err)
		}

		text := "You arrive at the station with 5000 in cash. Survive.\n\n" + life.RenderStatus(&player)
		out = Response{Text: text, Player: player, Actions: life.AvailableActions(&player)}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure()
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess()
	}
	return out, nil
}

// Leaderboard ranks players by cash plus bank.
func (u *UseCase) Leaderboard(ctx context.Context, limit int) ([]LeaderboardRow, error) {
	if limit <= 0 {
		limit = 10
	}
	players, err := u.Players.TopByWealth(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top players: %w", err)
	}
	rows := make([]LeaderboardRow, 0, len(players))
	for i, p := range players {
		rows = append(rows, LeaderboardRow{
			Rank:     i + 1,
			PlayerID: p.PlayerID,
			Total:    p.Cash + p.Bank,
			Cash:     p.Cash,
			Bank:     p.Bank,
		})
	}
	return rows, nil
}

func composeText(decayNote, result string, p *life.Player) string {
	var b strings.Builder
	if decayNote != "" {
		b.WriteString(decayNote)
		b.WriteString("\n\n")
	}
	b.WriteString(result)
	b.WriteString("\n\n")
	b.WriteString(life.RenderStatus(p))
	return b.String()
}
