package entity

import "strings"

type Position string

type Symbol string

// Outcome is the decided state of a board. Its values match the arena's "winner" field.
type Outcome string

const (
	NW Position = "NW"
	N  Position = "N"
	NE Position = "NE"
	W  Position = "W"
	C  Position = "C"
	E  Position = "E"
	SW Position = "SW"
	S  Position = "S"
	SE Position = "SE"
)

const (
	SymbolX Symbol = "X"
	SymbolO Symbol = "O"

	EmptyCell Symbol = ""

	// FirstMover opens every battle in the arena.
	FirstMover = SymbolO
)

const (
	OutcomeNone Outcome = ""
	OutcomeDraw Outcome = "DRAW"
	OutcomeX    Outcome = "X"
	OutcomeO    Outcome = "O"
)

var (
	positions = [9]Position{NW, N, NE, W, C, E, SW, S, SE}

	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// ValidPositions returns the nine cell labels in row-major order.
func ValidPositions() []Position {
	return positions[:]
}

func (that Position) Index() (int, bool) {
	for i, pos := range positions {
		if pos == that {
			return i, true
		}
	}

	return -1, false
}

func (that Position) IsValid() bool {
	_, ok := that.Index()
	return ok
}

func (that Symbol) IsValid() bool {
	return that == SymbolX || that == SymbolO
}

// Opponent returns the other player's symbol, or EmptyCell for an invalid symbol.
func (that Symbol) Opponent() Symbol {
	switch that {
	case SymbolX:
		return SymbolO
	case SymbolO:
		return SymbolX
	default:
		return EmptyCell
	}
}

func WinOf(symbol Symbol) Outcome {
	return Outcome(symbol)
}

func (that Outcome) IsDecided() bool {
	return that == OutcomeDraw || that == OutcomeX || that == OutcomeO
}

// Winner returns the winning symbol, false for a draw or an undecided board.
func (that Outcome) Winner() (Symbol, bool) {
	if that == OutcomeX || that == OutcomeO {
		return Symbol(that), true
	}

	return EmptyCell, false
}

// Board holds the nine cells in ValidPositions order.
type Board [9]Symbol

func (that *Board) OccupantAt(pos Position) Symbol {
	idx, ok := pos.Index()
	if !ok {
		return EmptyCell
	}

	return that[idx]
}

// Place puts symbol on an empty cell and reports whether it did.
func (that *Board) Place(pos Position, symbol Symbol) bool {
	idx, ok := pos.Index()
	if !ok || that[idx] != EmptyCell {
		return false
	}

	that[idx] = symbol

	return true
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// WinnerOf checks O before X, which only matters on a board where both have a line.
func (that *Board) WinnerOf() Outcome {
	if that.hasLine(SymbolO) {
		return OutcomeO
	}

	if that.hasLine(SymbolX) {
		return OutcomeX
	}

	if that.IsFull() {
		return OutcomeDraw
	}

	return OutcomeNone
}

func (that *Board) hasLine(symbol Symbol) bool {
	for _, combo := range WinCombos {
		if that[combo[0]] == symbol && that[combo[1]] == symbol && that[combo[2]] == symbol {
			return true
		}
	}

	return false
}

// String renders the board as three rows with "_" for empty cells.
func (that *Board) String() string {
	var sb strings.Builder

	for i, cell := range that {
		if cell == EmptyCell {
			sb.WriteString("_")
		} else {
			sb.WriteString(string(cell))
		}

		switch {
		case i == len(that)-1:
		case i%3 == 2:
			sb.WriteString("\n")
		default:
			sb.WriteString(" ")
		}
	}

	return sb.String()
}
