package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/entity"
)

// Subscriber opens a battle's event stream.
type Subscriber interface {
	Subscribe(ctx context.Context, battleID string) Subscription
}

type SubscriberFunc func(ctx context.Context, battleID string) Subscription

func (that SubscriberFunc) Subscribe(ctx context.Context, battleID string) Subscription {
	return that(ctx, battleID)
}

// BattleManager accepts battle registrations and runs every live battle on its own goroutine.
type BattleManager struct {
	logger *slog.Logger

	registry   *BattleRegistry
	subscriber Subscriber
	runner     *BattleRunner
	archive    battleArchive

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	active map[string]struct{}
}

func NewBattleManager(
	logger *slog.Logger,
	registry *BattleRegistry,
	subscriber Subscriber,
	runner *BattleRunner,
	archive battleArchive,
) *BattleManager {
	ctx, cancel := context.WithCancel(context.Background())

	return &BattleManager{
		logger: logger.With("component", "battleManager"),

		registry:   registry,
		subscriber: subscriber,
		runner:     runner,
		archive:    archive,

		ctx:    ctx,
		cancel: cancel,
		active: make(map[string]struct{}),
	}
}

// Register starts playing battleID. A battle that is already being played is left alone.
// Registration never waits for the battle itself.
func (that *BattleManager) Register(battleID string) error {
	log := that.logger.With("method", "Register", "battleID", battleID)

	if battleID == "" {
		return apperror.ErrEmptyBattleID
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.ctx.Err(); err != nil {
		return fmt.Errorf("battle manager stopped: %w", err)
	}

	if _, ok := that.active[battleID]; ok {
		log.Info("battle already running")
		return nil
	}

	battle, created := that.registry.GetOrCreate(battleID)
	if created {
		log.Info("battle created")
	}

	sub := that.subscriber.Subscribe(that.ctx, battleID)
	that.active[battleID] = struct{}{}

	that.wg.Add(1)
	go func() {
		defer that.wg.Done()
		defer that.release(battleID)

		that.runner.Run(that.ctx, battle, sub)
	}()

	return nil
}

func (that *BattleManager) release(battleID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.active, battleID)
}

// IsActive reports whether battleID currently has an open subscription.
func (that *BattleManager) IsActive(battleID string) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	_, ok := that.active[battleID]

	return ok
}

// GetBattle returns the live state of a battle, falling back to the archive for battles
// this process no longer knows about.
func (that *BattleManager) GetBattle(ctx context.Context, battleID string) (*entity.BattleSnapshot, error) {
	if battle, ok := that.registry.Get(battleID); ok {
		battle.Lock()
		defer battle.Unlock()

		return battle.Snapshot(), nil
	}

	snapshot, err := that.archive.GetByID(ctx, battleID)
	if err != nil {
		if errors.Is(err, apperror.ErrBattleNotFound) {
			return nil, apperror.ErrBattleNotFound
		}

		return nil, fmt.Errorf("failed to get archived battle: %w", err)
	}

	return snapshot, nil
}

// Shutdown closes every open subscription and waits for the runners to archive their battles.
func (that *BattleManager) Shutdown() {
	that.mu.Lock()
	that.cancel()
	that.mu.Unlock()

	that.wg.Wait()
}
