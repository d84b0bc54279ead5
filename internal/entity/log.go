package entity

import (
	"fmt"
	"strings"
	"sync"
)

// BattleLog is an append-only trace kept for post-mortem reading.
// It is safe for concurrent use: deferred submissions write to it off the battle's goroutine.
type BattleLog struct {
	mu      sync.Mutex
	entries []string
}

func NewBattleLog() *BattleLog {
	return &BattleLog{}
}

// Append joins args with spaces into a single entry.
func (that *BattleLog) Append(args ...any) {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, fmt.Sprint(arg))
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.entries = append(that.entries, strings.Join(parts, " "))
}

func (that *BattleLog) Clear() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.entries = nil
}

func (that *BattleLog) Entries() []string {
	that.mu.Lock()
	defer that.mu.Unlock()

	entries := make([]string, len(that.entries))
	copy(entries, that.entries)

	return entries
}

func (that *BattleLog) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.entries)
}

func (that *BattleLog) String() string {
	return strings.Join(that.Entries(), "\n")
}
