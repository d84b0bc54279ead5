package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/entity"
)

const battleKeyPrefix = "battle:"

// BattleRepository keeps finished battles so they can be read after the process forgets them.
type BattleRepository interface {
	Save(ctx context.Context, snapshot *entity.BattleSnapshot) error
	GetByID(ctx context.Context, id string) (*entity.BattleSnapshot, error)
}

type dbBattle struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBattleRepository stores battles in redis. A zero ttl keeps them forever.
func NewBattleRepository(client *redis.Client, ttl time.Duration) BattleRepository {
	return &dbBattle{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbBattle) Save(ctx context.Context, snapshot *entity.BattleSnapshot) error {
	battleJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal battle: %w", err)
	}

	if err = that.client.Set(ctx, battleKeyPrefix+snapshot.ID, battleJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set battle: %w", err)
	}

	return nil
}

func (that *dbBattle) GetByID(ctx context.Context, id string) (*entity.BattleSnapshot, error) {
	response, err := that.client.Get(ctx, battleKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrBattleNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get battle by id: %w", err)
	}

	var snapshot entity.BattleSnapshot
	if err = json.Unmarshal([]byte(response), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal battle: %w", err)
	}

	return &snapshot, nil
}

type nopBattle struct{}

// NewNopBattleRepository is used when redis is disabled: battles are dropped when they end.
func NewNopBattleRepository() BattleRepository {
	return nopBattle{}
}

func (nopBattle) Save(context.Context, *entity.BattleSnapshot) error {
	return nil
}

func (nopBattle) GetByID(context.Context, string) (*entity.BattleSnapshot, error) {
	return nil, apperror.ErrBattleNotFound
}
