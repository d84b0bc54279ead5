package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/entity"
)

const maxRequestSize = 1 << 10

type battleService interface {
	Register(battleID string) error
	GetBattle(ctx context.Context, battleID string) (*entity.BattleSnapshot, error)
}

type registerRequest struct {
	BattleID string `json:"battleId"`
}

type registerResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type BattleHandlers struct {
	logger  *slog.Logger
	battles battleService
}

func NewBattleHandlers(logger *slog.Logger, battles battleService) *BattleHandlers {
	return &BattleHandlers{
		logger:  logger.With("component", "battleHandlers"),
		battles: battles,
	}
}

// Register accepts a battle from the arena. The answer does not depend on how the battle goes.
func (that *BattleHandlers) Register(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Register")

	var request registerRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestSize)).Decode(&request); err != nil {
		log.Warn("bad registration body", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})

		return
	}

	if err := that.battles.Register(request.BattleID); err != nil {
		switch {
		case errors.Is(err, apperror.ErrEmptyBattleID):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		case errors.Is(err, context.Canceled):
			log.Warn("registration during shutdown", "battleID", request.BattleID)
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "shutting down"})

			return
		}

		// the arena gets its acknowledgement whatever happens to the battle afterwards
		log.Error("failed to register battle", "battleID", request.BattleID, "error", err)
	}

	log.Info("battle acknowledged", "battleID", request.BattleID)
	writeJSON(w, http.StatusOK, registerResponse{Success: true})
}

func (that *BattleHandlers) GetBattle(w http.ResponseWriter, r *http.Request) {
	battleID := chi.URLParam(r, "battleID")

	snapshot, err := that.battles.GetBattle(r.Context(), battleID)
	if err != nil {
		if errors.Is(err, apperror.ErrBattleNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}

		that.logger.Error("failed to get battle", "battleID", battleID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})

		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
