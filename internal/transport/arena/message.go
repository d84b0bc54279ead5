package arena

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/entity"
)

const actionPutSymbol = "putSymbol"

// inboundMessage is the union of every field the arena pushes on the event stream.
type inboundMessage struct {
	YouAre   string          `json:"youAre"`
	ID       json.RawMessage `json:"id,omitempty"`
	Player   string          `json:"player"`
	Action   string          `json:"action"`
	Position string          `json:"position"`
	Winner   string          `json:"winner"`
}

// PlayRequest is the body posted to the arena's play endpoint.
type PlayRequest struct {
	Action   string          `json:"action"`
	Position entity.Position `json:"position,omitempty"`
}

// DecodeEvents turns one event-stream payload into the events it carries, in handling order:
// reset, assignment, move, conclusion. A payload that carries none of them is malformed.
func DecodeEvents(data []byte) ([]entity.Event, error) {
	var msg inboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedMessage, err)
	}

	var events []entity.Event

	// an action this bot does not know is skipped; youAre and winner on the same message still count
	if msg.Action == entity.TableFlipAction {
		events = append(events, entity.Reset{Player: entity.Symbol(msg.Player)})
	}

	if msg.YouAre != "" {
		events = append(events, entity.Assignment{YouAre: entity.Symbol(msg.YouAre), ID: rawID(msg.ID)})
	}

	if msg.Action == actionPutSymbol {
		events = append(events, entity.Move{
			Player:   entity.Symbol(msg.Player),
			Position: entity.Position(msg.Position),
		})
	}

	if msg.Winner != "" {
		events = append(events, entity.Conclusion{Winner: entity.Outcome(msg.Winner)})
	}

	if len(events) == 0 {
		if msg.Action != "" {
			return nil, fmt.Errorf("%w: unknown action %q", apperror.ErrMalformedMessage, msg.Action)
		}

		return nil, fmt.Errorf("%w: %s", apperror.ErrMalformedMessage, string(data))
	}

	return events, nil
}

func rawID(raw json.RawMessage) string {
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return id
	}

	return string(raw)
}
