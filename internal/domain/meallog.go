package domain

import (
	"sync"
	"time"
)

// MealLog is the running, append-only food log for one session. Entries are
// only ever appended or wholesale cleared; the log never persists past the
// process. HTTP handlers may touch a session concurrently, so access is
// guarded by a mutex.
type MealLog struct {
	mu      sync.RWMutex
	entries []FoodEntry
}

// NewMealLog returns an empty log.
func NewMealLog() *MealLog {
	return &MealLog{}
}

// Append adds one entry to the end of the log.
func (l *MealLog) Append(entry FoodEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

// AppendBatch adds a group of entries stamped with the same timestamp.
func (l *MealLog) AppendBatch(entries []FoodEntry, at time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range entries {
		e.AddedAt = at
		l.entries = append(l.entries, e)
	}
}

// Clear resets the log to empty.
func (l *MealLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

// Entries returns a copy of the logged entries in append order.
func (l *MealLog) Entries() []FoodEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]FoodEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Readings returns the readings of every successful entry. Failed lookups
// carry no data and are excluded so they never contribute to totals.
func (l *MealLog) Readings() []NutrientReading {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]NutrientReading, 0, len(l.entries))
	for _, e := range l.entries {
		if e.Failed {
			continue
		}
		out = append(out, e.Reading)
	}
	return out
}

// Len returns the number of logged entries, failed markers included.
func (l *MealLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
