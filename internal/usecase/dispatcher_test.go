package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/service"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-arena-bot/mocks/usecase"
)

var (
	errArenaDown = errors.New("arena down")

	testStart = time.Date(2021, time.November, 6, 12, 0, 0, 0, time.UTC)
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runNow(_ time.Duration, fn func()) {
	fn()
}

func newTestDispatcher(arena arenaCommander, opts ...DispatcherOption) *Dispatcher {
	opts = append([]DispatcherOption{
		WithScheduler(runNow),
		WithDispatcherClock(func() time.Time { return testStart }),
	}, opts...)

	return NewDispatcher(newTestLogger(), arena, service.NewBotService(), opts...)
}

func TestDispatcher_Assignment(t *testing.T) {
	ctx := context.Background()

	t.Run("Opens the battle when assigned the first mover", func(t *testing.T) {
		// Given: a fresh battle and an arena expecting one move
		arena := mockedUseCase.NewMockarenaCommander(t)
		dispatcher := newTestDispatcher(arena)
		battle := entity.NewBattle("b1", testStart)

		arena.EXPECT().
			PutSymbol(mock.Anything, "b1", entity.NW).
			Return("ok", nil).
			Once()

		// When: the arena assigns O
		closeStream := dispatcher.Dispatch(ctx, battle, entity.Assignment{YouAre: entity.SymbolO, ID: "b1"})

		// Then: the opening move is submitted and the stream stays open
		assert.False(t, closeStream)
		assert.Equal(t, entity.SymbolO, battle.MySymbol)
		assert.Contains(t, battle.Log.String(), "putSymbol result = ok")
	})

	t.Run("Waits for the opponent when assigned the second mover", func(t *testing.T) {
		// Given: an arena that must not be called
		arena := mockedUseCase.NewMockarenaCommander(t)
		dispatcher := newTestDispatcher(arena)
		battle := entity.NewBattle("b1", testStart)

		// When: the arena assigns X
		dispatcher.Dispatch(ctx, battle, entity.Assignment{YouAre: entity.SymbolX, ID: "b1"})

		// Then: the symbol is recorded and nothing is sent
		assert.Equal(t, entity.SymbolX, battle.MySymbol)
	})

	t.Run("Ignores an assignment of an unknown symbol", func(t *testing.T) {
		arena := mockedUseCase.NewMockarenaCommander(t)
		dispatcher := newTestDispatcher(arena)
		battle := entity.NewBattle("b1", testStart)

		dispatcher.Dispatch(ctx, battle, entity.Assignment{YouAre: "Z"})

		assert.Equal(t, entity.EmptyCell, battle.MySymbol)
	})
}

func TestDispatcher_Move(t *testing.T) {
	ctx := context.Background()

	t.Run("Answers an opponent move", func(t *testing.T) {
		// Given: the bot plays X
		arena := mockedUseCase.NewMockarenaCommander(t)
		dispatcher := newTestDispatcher(arena)
		battle := entity.NewBattle("b1", testStart)
		battle.MySymbol = entity.SymbolX

		arena.EXPECT().
			PutSymbol(mock.Anything, "b1", mock.AnythingOfType("entity.Position")).
			Return("ok", nil).
			Once()

		// When: O opens in the centre
		dispatcher.Dispatch(ctx, battle, entity.Move{Player: entity.SymbolO, Position: entity.C})

		// Then: the move is applied and an answer is submitted
		assert.Equal(t, entity.SymbolO, battle.Board.OccupantAt(entity.C))
		assert.Equal(t, entity.SymbolO, battle.LastMover)
	})

	t.Run("Does not answer its own echoed move", func(t *testing.T) {
		arena := mockedUseCase.NewMockarenaCommander(t)
		dispatcher := newTestDispatcher(arena)
		battle := entity.NewBattle("b1", testStart)
		battle.MySymbol = entity.SymbolO

		dispatcher.Dispatch(ctx, battle, entity.Move{Player: entity.SymbolO, Position: entity.NW})

		assert.Equal(t, entity.SymbolO, battle.Board.OccupantAt(entity.NW))
	})

	t.Run("Does not answer a move that decides the board", func(t *testing.T) {
		// Given: O is one move away from the top row
		arena := mockedUseCase.NewMockarenaCommander(t)
		dispatcher := newTestDispatcher(arena)
		battle := entity.NewBattle("b1", testStart)
		battle.MySymbol = entity.SymbolX
		battle.Board.Place(entity.NW, entity.SymbolO)
		battle.Board.Place(entity.C, entity.SymbolX)
		battle.Board.Place(entity.N, entity.SymbolO)
		battle.Board.Place(entity.S, entity.SymbolX)
		battle.LastMover = entity.SymbolX

		// When: O completes the row
		dispatcher.Dispatch(ctx, battle, entity.Move{Player: entity.SymbolO, Position: entity.NE})

		// Then: no move is submitted
		assert.Equal(t, entity.OutcomeO, battle.Board.WinnerOf())
		assert.Contains(t, battle.Log.String(), "board already decided")
	})

	t.Run("Flips the table exactly once on an empty position", func(t *testing.T) {
		// Given: an arena expecting a single table flip
		arena := mockedUseCase.NewMockarenaCommander(t)
		dispatcher := newTestDispatcher(arena)
		battle := entity.NewBattle("b1", testStart)
		battle.MySymbol = entity.SymbolX

		arena.EXPECT().
			FlipTable(mock.Anything, "b1").
			Return(nil).
			Once()

		// When: the opponent sends a move without a position
		closeStream := dispatcher.Dispatch(ctx, battle, entity.Move{Player: entity.SymbolO, Position: ""})

		// Then: the board is untouched and the table is flipped
		assert.False(t, closeStream)
		assert.Equal(t, entity.Board{}, battle.Board)
		assert.Contains(t, battle.Log.String(), "flipped the table success")
	})

	t.Run("Flips the table when a player moves twice in a row", func(t *testing.T) {
		arena := mockedUseCase.NewMockarenaCommander(t)
		dispatcher := newTestDispatcher(arena)
		battle := entity.NewBattle("b1", testStart)

		arena.EXPECT().
			FlipTable(mock.Anything, "b1").
			Return(nil).
			Once()

		dispatcher.Dispatch(ctx, battle, entity.Move{Player: entity.SymbolO, Position: entity.NW})
		dispatcher.Dispatch(ctx, battle, entity.Move{Player: entity.SymbolO, Position: entity.C})

		assert.Equal(t, entity.EmptyCell, battle.Board.OccupantAt(entity.C))
	})

	t.Run("Flips the table on an occupied cell", func(t *testing.T) {
		arena := mockedUseCase.NewMockarenaCommander(t)
		dispatcher := newTestDispatcher(arena)
		battle := entity.NewBattle("b1", testStart)

		arena.EXPECT().
			FlipTable(mock.Anything, "b1").
			Return(nil).
			Once()

		dispatcher.Dispatch(ctx, battle, entity.Move{Player: entity.SymbolO, Position: entity.NW})
		dispatcher.Dispatch(ctx, battle, entity.Move{Player: entity.SymbolX, Position: entity.NW})

		assert.Equal(t, entity.SymbolO, battle.Board.OccupantAt(entity.NW))
	})

	t.Run("Logs a failed table flip without retrying", func(t *testing.T) {
		arena := mockedUseCase.NewMockarenaCommander(t)
		dispatcher := newTestDispatcher(arena)
		battle := entity.NewBattle("b1", testStart)

		arena.EXPECT().
			FlipTable(mock.Anything, "b1").
			Return(errArenaDown).
			Once()

		dispatcher.Dispatch(ctx, battle, entity.Move{Player: entity.SymbolO, Position: "middle"})

		assert.Contains(t, battle.Log.String(), "failed to flip the table")
	})

	t.Run("Logs a rejected move submission", func(t *testing.T) {
		arena := mockedUseCase.NewMockarenaCommander(t)
		dispatcher := newTestDispatcher(arena)
		battle := entity.NewBattle("b1", testStart)

		arena.EXPECT().
			PutSymbol(mock.Anything, "b1", entity.NW).
			Return("", errArenaDown).
			Once()

		dispatcher.Dispatch(ctx, battle, entity.Assignment{YouAre: entity.SymbolO})

		assert.Contains(t, battle.Log.String(), "putSymbol Error")
	})
}

func TestDispatcher_Reset(t *testing.T) {
	ctx := context.Background()

	t.Run("Two resets leave the same state as one", func(t *testing.T) {
		// Given: a battle in progress
		arena := mockedUseCase.NewMockarenaCommander(t)
		dispatcher := newTestDispatcher(arena)
		battle := entity.NewBattle("b1", testStart)
		battle.MySymbol = entity.SymbolO
		dispatcher.Dispatch(ctx, battle, entity.Move{Player: entity.SymbolO, Position: entity.C})

		// When: the table is flipped twice
		dispatcher.Dispatch(ctx, battle, entity.Reset{Player: entity.SymbolX})
		once := battle.Snapshot()
		dispatcher.Dispatch(ctx, battle, entity.Reset{Player: entity.SymbolX})
		twice := battle.Snapshot()

		// Then: the battle is fresh both times
		once.Log, twice.Log = nil, nil
		assert.Equal(t, once, twice)
		assert.Equal(t, entity.Board{}, battle.Board)
		assert.Equal(t, entity.EmptyCell, battle.MySymbol)
		assert.Equal(t, "b1", battle.ID)
	})

	t.Run("A move scheduled before a reset is still submitted", func(t *testing.T) {
		// Given: a scheduler that holds deferred commands
		var pending []func()
		arena := mockedUseCase.NewMockarenaCommander(t)
		dispatcher := newTestDispatcher(arena, WithScheduler(func(_ time.Duration, fn func()) {
			pending = append(pending, fn)
		}))
		battle := entity.NewBattle("b1", testStart)

		arena.EXPECT().
			PutSymbol(mock.Anything, "b1", entity.NW).
			Return("ok", nil).
			Once()

		// When: the battle is reset while the opening move waits
		dispatcher.Dispatch(ctx, battle, entity.Assignment{YouAre: entity.SymbolO})
		dispatcher.Dispatch(ctx, battle, entity.Reset{})

		require.Len(t, pending, 1)
		pending[0]()

		// Then: the stale move reaches the arena anyway
		assert.Equal(t, entity.Board{}, battle.Board)
	})
}

func TestDispatcher_Conclusion(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mine    entity.Symbol
		winner  entity.Outcome
		logLine string
	}{
		{name: "Win", mine: entity.SymbolX, winner: entity.OutcomeX, logLine: "I Win"},
		{name: "Loss", mine: entity.SymbolX, winner: entity.OutcomeO, logLine: "I Lose"},
		{name: "Draw", mine: entity.SymbolO, winner: entity.OutcomeDraw, logLine: "DRAW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a battle the bot is playing
			arena := mockedUseCase.NewMockarenaCommander(t)
			dispatcher := newTestDispatcher(arena)
			battle := entity.NewBattle("b1", testStart)
			battle.MySymbol = tt.mine

			// When: the arena announces the result
			closeStream := dispatcher.Dispatch(ctx, battle, entity.Conclusion{Winner: tt.winner})

			// Then: the outcome is recorded and the stream must be closed
			assert.True(t, closeStream)
			assert.Equal(t, tt.winner, battle.Outcome)
			assert.Contains(t, battle.Log.String(), tt.logLine)
		})
	}
}
