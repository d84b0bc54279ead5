package entity

// TableFlipAction is the arena's concede/reset action.
const TableFlipAction = "(╯°□°)╯︵ ┻━┻"

// Event is one thing an inbound arena message asks the bot to react to.
// The set of implementations is closed: Reset, Assignment, Move and Conclusion.
type Event interface {
	event()
}

// Reset is the table-flip sentinel coming from the arena.
type Reset struct {
	Player Symbol
}

// Assignment tells the bot which symbol it plays.
type Assignment struct {
	YouAre Symbol
	ID     string
}

// Move is a putSymbol notification, the opponent's or our own echoed back.
type Move struct {
	Player   Symbol
	Position Position
}

// Conclusion carries the arena's verdict for the battle.
type Conclusion struct {
	Winner Outcome
}

func (Reset) event()      {}
func (Assignment) event() {}
func (Move) event()       {}
func (Conclusion) event() {}

type StreamSignalKind int

const (
	StreamOpen StreamSignalKind = iota
	StreamMessage
	StreamError
)

// StreamSignal is what a battle subscription delivers to its runner.
// For StreamMessage, Err is set when Raw could not be decoded.
type StreamSignal struct {
	Kind   StreamSignalKind
	Raw    string
	Events []Event
	Err    error
}
