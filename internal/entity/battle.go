package entity

import (
	"sync"
	"time"
)

// MoveTimeCredit is added to LastMoveTime on every accepted move, from its previous value,
// so a burst of quick exchanges does not starve the watchdog.
const MoveTimeCredit = 2 * time.Second

// Battle is the state the bot keeps for one arena match.
type Battle struct {
	mu sync.Mutex

	ID           string
	MySymbol     Symbol
	Board        Board
	LastMover    Symbol
	LastMoveTime time.Time
	Outcome      Outcome
	StartedAt    time.Time
	Log          *BattleLog
}

func NewBattle(id string, now time.Time) *Battle {
	battle := &Battle{
		ID:        id,
		StartedAt: now,
		Log:       NewBattleLog(),
	}
	battle.reset(now)

	return battle
}

// ResetMarker opens the log of a battle that was reset.
const ResetMarker = "table flipped, battle reset"

// Reset wipes the board, turn bookkeeping and history in place. Only the id survives.
func (that *Battle) Reset(now time.Time) {
	that.reset(now)
	that.Log.Clear()
	that.Log.Append(ResetMarker)
}

func (that *Battle) reset(now time.Time) {
	that.MySymbol = EmptyCell
	that.Board = Board{}
	that.LastMover = FirstMover.Opponent()
	that.LastMoveTime = now
	that.Outcome = OutcomeNone
}

// Lock gives the caller exclusive ownership of the battle's mutable state.
func (that *Battle) Lock() {
	that.mu.Lock()
}

func (that *Battle) Unlock() {
	that.mu.Unlock()
}

// BattleSnapshot is a copy of a battle that can be handed out or stored.
type BattleSnapshot struct {
	ID           string    `json:"id"`
	MySymbol     Symbol    `json:"my_symbol"`
	Board        Board     `json:"board"`
	LastMover    Symbol    `json:"last_mover"`
	LastMoveTime time.Time `json:"last_move_time"`
	Outcome      Outcome   `json:"outcome,omitempty"`
	StartedAt    time.Time `json:"started_at"`
	Log          []string  `json:"log"`
}

// Snapshot must be called with the battle locked, or by its owner.
func (that *Battle) Snapshot() *BattleSnapshot {
	return &BattleSnapshot{
		ID:           that.ID,
		MySymbol:     that.MySymbol,
		Board:        that.Board,
		LastMover:    that.LastMover,
		LastMoveTime: that.LastMoveTime,
		Outcome:      that.Outcome,
		StartedAt:    that.StartedAt,
		Log:          that.Log.Entries(),
	}
}
