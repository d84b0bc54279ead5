package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/entity"
)

var errBattleStart = errors.New("subscription failed")

type fakeBattles struct {
	registered []string
	registerFn func(battleID string) error
	battles    map[string]*entity.BattleSnapshot
}

func (that *fakeBattles) Register(battleID string) error {
	if battleID == "" {
		return apperror.ErrEmptyBattleID
	}

	that.registered = append(that.registered, battleID)
	if that.registerFn != nil {
		return that.registerFn(battleID)
	}

	return nil
}

func (that *fakeBattles) GetBattle(_ context.Context, battleID string) (*entity.BattleSnapshot, error) {
	snapshot, ok := that.battles[battleID]
	if !ok {
		return nil, apperror.ErrBattleNotFound
	}

	return snapshot, nil
}

func newTestRouter(battles *fakeBattles) http.Handler {
	return NewRouter(slog.New(slog.NewTextHandler(io.Discard, nil)), battles)
}

func serve(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))

	return recorder
}

func TestRouter_Ping(t *testing.T) {
	router := newTestRouter(&fakeBattles{})

	t.Run("Ping", func(t *testing.T) {
		resp := serve(router, http.MethodGet, "/ping", "")

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "pong", resp.Body.String())
	})

	t.Run("Root", func(t *testing.T) {
		resp := serve(router, http.MethodGet, "/", "")

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "Hello World!", resp.Body.String())
	})
}

func TestRouter_Register(t *testing.T) {
	t.Run("Accepts a battle", func(t *testing.T) {
		// Given: a battle service
		battles := &fakeBattles{}
		router := newTestRouter(battles)

		// When: the arena registers a battle
		resp := serve(router, http.MethodPost, "/tic-tac-toe", `{"battleId":"b1"}`)

		// Then: the battle is handed over and acknowledged
		require.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"success":true}`, resp.Body.String())
		assert.Equal(t, []string{"b1"}, battles.registered)
	})

	t.Run("Rejects a malformed body", func(t *testing.T) {
		battles := &fakeBattles{}
		router := newTestRouter(battles)

		resp := serve(router, http.MethodPost, "/tic-tac-toe", `{"battleId":`)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Empty(t, battles.registered)
	})

	t.Run("Rejects a missing battle id", func(t *testing.T) {
		battles := &fakeBattles{}
		router := newTestRouter(battles)

		resp := serve(router, http.MethodPost, "/tic-tac-toe", `{}`)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("Acknowledges even when the battle cannot be started", func(t *testing.T) {
		// Given: a battle service that fails to start the battle
		battles := &fakeBattles{registerFn: func(string) error { return errBattleStart }}
		router := newTestRouter(battles)

		// When: the arena registers a battle
		resp := serve(router, http.MethodPost, "/tic-tac-toe", `{"battleId":"b1"}`)

		// Then: the arena still gets its acknowledgement
		require.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"success":true}`, resp.Body.String())
	})

	t.Run("Reports a manager that stopped", func(t *testing.T) {
		battles := &fakeBattles{registerFn: func(string) error { return context.Canceled }}
		router := newTestRouter(battles)

		resp := serve(router, http.MethodPost, "/tic-tac-toe", `{"battleId":"b1"}`)

		assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	})
}

func TestRouter_GetBattle(t *testing.T) {
	battles := &fakeBattles{battles: map[string]*entity.BattleSnapshot{
		"b1": {ID: "b1", MySymbol: entity.SymbolX, Outcome: entity.OutcomeX},
	}}
	router := newTestRouter(battles)

	t.Run("Returns a known battle", func(t *testing.T) {
		resp := serve(router, http.MethodGet, "/tic-tac-toe/b1", "")

		require.Equal(t, http.StatusOK, resp.Code)

		var snapshot entity.BattleSnapshot
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&snapshot))
		assert.Equal(t, "b1", snapshot.ID)
		assert.Equal(t, entity.OutcomeX, snapshot.Outcome)
	})

	t.Run("Returns 404 for an unknown battle", func(t *testing.T) {
		resp := serve(router, http.MethodGet, "/tic-tac-toe/nope", "")

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
