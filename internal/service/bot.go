package service

import (
	"errors"
	"math"

	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/entity"
)

var (
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrInvalidMark      = errors.New("bot mark must be X or O")
)

const (
	winScore  = 10
	loseScore = -10
	drawScore = 0
)

type BotService interface {
	BestMove(board entity.Board, mark entity.Symbol) (entity.Position, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// BestMove runs a full minimax over the remaining cells. Scores are not discounted by depth,
// and the first cell (in ValidPositions order) with the top score wins.
func (that *botService) BestMove(board entity.Board, mark entity.Symbol) (entity.Position, error) {
	if !mark.IsValid() {
		return "", ErrInvalidMark
	}

	search := minimax{me: mark, opponent: mark.Opponent(), board: board}

	var move entity.Position
	bestScore := math.MinInt

	for i, pos := range entity.ValidPositions() {
		if search.board[i] != entity.EmptyCell {
			continue
		}

		search.board[i] = mark
		score := search.run(false)
		search.board[i] = entity.EmptyCell

		if score > bestScore {
			bestScore = score
			move = pos
		}
	}

	if move == "" {
		return "", ErrNoAvailableMoves
	}

	return move, nil
}

type minimax struct {
	me       entity.Symbol
	opponent entity.Symbol
	board    entity.Board
}

func (that *minimax) run(maximizing bool) int {
	if outcome := that.board.WinnerOf(); outcome.IsDecided() {
		return that.score(outcome)
	}

	mark, best := that.opponent, math.MaxInt
	if maximizing {
		mark, best = that.me, math.MinInt
	}

	for i := range that.board {
		if that.board[i] != entity.EmptyCell {
			continue
		}

		that.board[i] = mark
		score := that.run(!maximizing)
		that.board[i] = entity.EmptyCell

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}

func (that *minimax) score(outcome entity.Outcome) int {
	switch winner, ok := outcome.Winner(); {
	case !ok:
		return drawScore
	case winner == that.me:
		return winScore
	default:
		return loseScore
	}
}
