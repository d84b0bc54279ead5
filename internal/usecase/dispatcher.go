package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/tictactoe"
)

const DefaultMoveDelay = 100 * time.Millisecond

type arenaCommander interface {
	PutSymbol(ctx context.Context, battleID string, pos entity.Position) (string, error)
	FlipTable(ctx context.Context, battleID string) error
}

type moveEngine interface {
	BestMove(board entity.Board, mark entity.Symbol) (entity.Position, error)
}

// Dispatcher applies arena events to a battle and answers with moves or a table flip.
// Callers must own the battle (hold its lock) while calling Dispatch or Forfeit.
type Dispatcher struct {
	logger *slog.Logger

	arena  arenaCommander
	engine moveEngine

	now       func() time.Time
	moveDelay time.Duration
	schedule  func(delay time.Duration, fn func())
}

type DispatcherOption func(*Dispatcher)

func WithMoveDelay(delay time.Duration) DispatcherOption {
	return func(that *Dispatcher) {
		that.moveDelay = delay
	}
}

func WithDispatcherClock(now func() time.Time) DispatcherOption {
	return func(that *Dispatcher) {
		that.now = now
	}
}

// WithScheduler replaces how outbound commands are deferred. The default runs fn on its own
// goroutine after delay.
func WithScheduler(schedule func(delay time.Duration, fn func())) DispatcherOption {
	return func(that *Dispatcher) {
		that.schedule = schedule
	}
}

func NewDispatcher(logger *slog.Logger, arena arenaCommander, engine moveEngine, opts ...DispatcherOption) *Dispatcher {
	dispatcher := &Dispatcher{
		logger:    logger.With("component", "dispatcher"),
		arena:     arena,
		engine:    engine,
		now:       time.Now,
		moveDelay: DefaultMoveDelay,
		schedule:  schedule,
	}

	for _, opt := range opts {
		opt(dispatcher)
	}

	return dispatcher
}

// Dispatch handles one event. It returns true when the battle is over and its stream should be closed.
func (that *Dispatcher) Dispatch(ctx context.Context, battle *entity.Battle, event entity.Event) bool {
	switch ev := event.(type) {
	case entity.Reset:
		battle.Reset(that.now())
	case entity.Assignment:
		that.handleAssignment(ctx, battle, ev)
	case entity.Move:
		that.handleMove(ctx, battle, ev)
	case entity.Conclusion:
		that.handleConclusion(battle, ev)
		return true
	default:
		that.logger.Warn("unknown event", "battleID", battle.ID, "event", fmt.Sprintf("%T", event))
	}

	return false
}

func (that *Dispatcher) handleAssignment(ctx context.Context, battle *entity.Battle, assignment entity.Assignment) {
	if !assignment.YouAre.IsValid() {
		battle.Log.Append("ignoring assignment of invalid symbol", assignment.YouAre)
		return
	}

	battle.MySymbol = assignment.YouAre
	battle.Log.Append("I am", battle.MySymbol)

	if battle.MySymbol == entity.FirstMover {
		that.respond(ctx, battle)
	}
}

func (that *Dispatcher) handleMove(ctx context.Context, battle *entity.Battle, move entity.Move) {
	if err := tictactoe.ApplyMove(battle, move.Player, move.Position); err != nil {
		battle.Log.Append(err)
		that.Forfeit(ctx, battle, err.Error())

		return
	}

	if battle.MySymbol.IsValid() && move.Player == battle.MySymbol.Opponent() {
		that.respond(ctx, battle)
	}
}

func (that *Dispatcher) handleConclusion(battle *entity.Battle, conclusion entity.Conclusion) {
	battle.Outcome = conclusion.Winner

	winner, won := conclusion.Winner.Winner()

	switch {
	case conclusion.Winner == entity.OutcomeDraw:
		battle.Log.Append("DRAW")
	case won && winner == battle.MySymbol:
		battle.Log.Append("I Win")
	case won:
		battle.Log.Append("I Lose")
	default:
		battle.Log.Append("unknown winner", conclusion.Winner)
	}
}

// respond - picks a move for the current board and submits it after the move delay.
// The submission is not cancelled by anything that happens to the battle in the meantime.
func (that *Dispatcher) respond(ctx context.Context, battle *entity.Battle) {
	log := that.logger.With("method", "respond", "battleID", battle.ID)

	if outcome := battle.Board.WinnerOf(); outcome.IsDecided() {
		battle.Log.Append("board already decided:", outcome)
		return
	}

	move, err := that.engine.BestMove(battle.Board, battle.MySymbol)
	if err != nil {
		log.Error("failed to pick a move", "error", err)
		battle.Log.Append("failed to pick a move", err)

		return
	}

	battleID, battleLog := battle.ID, battle.Log
	ctx = context.WithoutCancel(ctx)

	that.schedule(that.moveDelay, func() {
		battleLog.Append("putSymbol", move)

		result, err := that.arena.PutSymbol(ctx, battleID, move)
		if err != nil {
			log.Warn("putSymbol failed", "position", move, "error", err)
			battleLog.Append("putSymbol Error", err)

			return
		}

		battleLog.Append("putSymbol result =", result)
	})
}

// Forfeit flips the table. Delivery is attempted once; a failure is only logged.
func (that *Dispatcher) Forfeit(ctx context.Context, battle *entity.Battle, reason string) {
	log := that.logger.With("method", "Forfeit", "battleID", battle.ID)
	log.Info("flipping the table", "reason", reason)

	battleID, battleLog := battle.ID, battle.Log
	battleLog.Append("flipTable sending:", reason)
	ctx = context.WithoutCancel(ctx)

	that.schedule(0, func() {
		if err := that.arena.FlipTable(ctx, battleID); err != nil {
			log.Warn("failed to flip the table", "error", err)
			battleLog.Append("failed to flip the table", err)

			return
		}

		battleLog.Append("flipped the table success")
	})
}

func schedule(delay time.Duration, fn func()) {
	if delay <= 0 {
		go fn()
		return
	}

	time.AfterFunc(delay, fn)
}
