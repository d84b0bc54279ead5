package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/entity"
)

// ApplyMove records a move reported by the arena. A rejected move leaves the battle untouched;
// the caller decides how to punish it.
func ApplyMove(battle *entity.Battle, player entity.Symbol, pos entity.Position) error {
	if err := validateMove(battle, player, pos); err != nil {
		return fmt.Errorf("invalid move %s by %q: %w", pos, player, err)
	}

	battle.Board.Place(pos, player)
	battle.LastMover = player
	battle.LastMoveTime = battle.LastMoveTime.Add(entity.MoveTimeCredit)

	battle.Log.Append(fmt.Sprintf("%s -> %s\n%s", player, pos, battle.Board.String()))

	return nil
}

// validateMove - checks the move in the order the arena rules are enforced.
func validateMove(battle *entity.Battle, player entity.Symbol, pos entity.Position) error {
	if !pos.IsValid() {
		return apperror.ErrInvalidPosition
	}

	if battle.LastMover == player {
		return apperror.ErrRepeatedMover
	}

	if !player.IsValid() {
		return apperror.ErrInvalidSymbol
	}

	if battle.Board.OccupantAt(pos) != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}
