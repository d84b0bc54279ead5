package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/entity"
)

const (
	DefaultInactivityLimit = 18 * time.Second
	DefaultPollInterval    = 10 * time.Millisecond

	archiveTimeout = 5 * time.Second
)

// Subscription is a battle's inbound event stream.
type Subscription interface {
	Events() <-chan entity.StreamSignal
	Close() error
}

type battleArchive interface {
	Save(ctx context.Context, snapshot *entity.BattleSnapshot) error
	GetByID(ctx context.Context, id string) (*entity.BattleSnapshot, error)
}

// Ticker is the part of *time.Ticker the runner needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	*time.Ticker
}

func (that timeTicker) C() <-chan time.Time {
	return that.Ticker.C
}

func newTimeTicker(interval time.Duration) Ticker {
	return timeTicker{time.NewTicker(interval)}
}

// BattleRunner drives one battle from its subscription until the stream ends.
type BattleRunner struct {
	logger *slog.Logger

	dispatcher *Dispatcher
	archive    battleArchive

	inactivityLimit time.Duration
	pollInterval    time.Duration

	newTicker func(interval time.Duration) Ticker
}

type RunnerOption func(*BattleRunner)

func WithInactivityLimit(limit time.Duration) RunnerOption {
	return func(that *BattleRunner) {
		that.inactivityLimit = limit
	}
}

func WithPollInterval(interval time.Duration) RunnerOption {
	return func(that *BattleRunner) {
		that.pollInterval = interval
	}
}

func WithTickerFactory(newTicker func(interval time.Duration) Ticker) RunnerOption {
	return func(that *BattleRunner) {
		that.newTicker = newTicker
	}
}

func NewBattleRunner(logger *slog.Logger, dispatcher *Dispatcher, archive battleArchive, opts ...RunnerOption) *BattleRunner {
	runner := &BattleRunner{
		logger:          logger.With("component", "runner"),
		dispatcher:      dispatcher,
		archive:         archive,
		inactivityLimit: DefaultInactivityLimit,
		pollInterval:    DefaultPollInterval,
		newTicker:       newTimeTicker,
	}

	for _, opt := range opts {
		opt(runner)
	}

	return runner
}

// Run consumes the subscription until its channel is closed. Cancelling ctx closes the subscription.
func (that *BattleRunner) Run(ctx context.Context, battle *entity.Battle, sub Subscription) {
	log := that.logger.With("method", "Run", "battleID", battle.ID)

	watchdog := NewWatchdog(that.inactivityLimit)

	var (
		ticker Ticker
		ticks  <-chan time.Time
	)

	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, ticks = nil, nil
		}
	}
	defer stopTicker()

	closeStream := func() {
		if err := sub.Close(); err != nil {
			log.Warn("failed to close stream", "error", err)
		}
	}

	done := ctx.Done()
	signals := sub.Events()

	for {
		select {
		case <-done:
			log.Info("context cancelled, closing stream")
			closeStream()
			done = nil

		case now := <-ticks:
			battle.Lock()
			if watchdog.Expired(now, battle.LastMoveTime) {
				diff := now.Sub(battle.LastMoveTime)
				log.Info("opponent idle, conceding", "idle", diff)
				battle.Log.Append("time diff", diff.Milliseconds(), "ms, flipping the table")
				that.dispatcher.Forfeit(ctx, battle, "opponent inactive")
				stopTicker()
			}
			battle.Unlock()

		case signal, ok := <-signals:
			if !ok {
				watchdog.Stop()
				that.finish(log, battle)

				return
			}

			battle.Lock()
			switch signal.Kind {
			case entity.StreamOpen:
				battle.Log.Append("onOpen")
				watchdog.Arm()
				if ticker == nil && watchdog.Active() {
					ticker = that.newTicker(that.pollInterval)
					ticks = ticker.C()
				}

			case entity.StreamMessage:
				battle.Log.Append("onMessage", signal.Raw)
				if signal.Err != nil {
					log.Warn("malformed message", "data", signal.Raw, "error", signal.Err)
					battle.Log.Append("malformed message ignored:", signal.Err)
					break
				}

				for _, event := range signal.Events {
					if that.dispatcher.Dispatch(ctx, battle, event) {
						watchdog.Stop()
						stopTicker()
						closeStream()

						break
					}
				}

			case entity.StreamError:
				log.Info("stream error", "error", signal.Err)
				battle.Log.Append("onError", signal.Err)
				watchdog.Stop()
				stopTicker()
				closeStream()
			}
			battle.Unlock()
		}
	}
}

func (that *BattleRunner) finish(log *slog.Logger, battle *entity.Battle) {
	battle.Lock()
	battle.Log.Append("battle ended")
	snapshot := battle.Snapshot()
	battle.Unlock()

	log.Info("battle ended", "outcome", snapshot.Outcome, "trace", battle.Log.String())

	ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
	defer cancel()

	if err := that.archive.Save(ctx, snapshot); err != nil {
		log.Error("failed to archive battle", "error", err)
	}
}
