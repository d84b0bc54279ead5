package usecase

import (
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena-bot/internal/entity"
)

// BattleRegistry maps battle ids to their state for the life of the process.
// Entries are never evicted, so memory grows with every battle played.
type BattleRegistry struct {
	mu      sync.Mutex
	battles map[string]*entity.Battle
	now     func() time.Time
}

func NewBattleRegistry(now func() time.Time) *BattleRegistry {
	return &BattleRegistry{
		battles: make(map[string]*entity.Battle),
		now:     now,
	}
}

// GetOrCreate returns the battle for id, creating a fresh one if needed.
func (that *BattleRegistry) GetOrCreate(id string) (*entity.Battle, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if battle, ok := that.battles[id]; ok {
		return battle, false
	}

	battle := entity.NewBattle(id, that.now())
	that.battles[id] = battle

	return battle, true
}

func (that *BattleRegistry) Get(id string) (*entity.Battle, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	battle, ok := that.battles[id]

	return battle, ok
}

func (that *BattleRegistry) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.battles)
}
