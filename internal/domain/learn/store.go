// Package learn tracks per-(strategy, rule) success statistics and feeds
// the blended confidence back into future strategy selection.
package learn

import (
	"strings"
	"sync"

	"github.com/remedykit/remedy/internal/domain"
)

// Store is the process-wide learning state. Entries accumulate forever;
// they are never pruned. Concurrent sessions may record outcomes at the
// same time, so access is mutex-guarded with last-write-wins per key.
type Store struct {
	mu      sync.RWMutex
	entries map[string]domain.LearningEntry
}

func NewStore() *Store {
	return &Store{entries: make(map[string]domain.LearningEntry)}
}

// Key builds the map key for a (strategy, rule) pair.
func Key(strategyID, ruleID string) string {
	return strategyID + "|" + ruleID
}

// SplitKey is the inverse of Key.
func SplitKey(key string) (strategyID, ruleID string) {
	strategyID, ruleID, _ = strings.Cut(key, "|")
	return strategyID, ruleID
}

// RecordOutcome updates the entry for one fix attempt. New entries start
// from the strategy's base confidence. The blend halves the old confidence
// toward the latest outcome, so recent attempts dominate:
// confidence := (confidence + outcome) / 2.
func (s *Store) RecordOutcome(strategyID, ruleID string, base float64, success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key(strategyID, ruleID)
	entry, ok := s.entries[key]
	if !ok {
		entry = domain.LearningEntry{Confidence: base}
	}
	entry.Attempts++
	outcome := 0.0
	if success {
		entry.Successes++
		outcome = 1.0
	}
	entry.Confidence = (entry.Confidence + outcome) / 2
	s.entries[key] = entry
}

// Confidence returns the learned confidence for a pair, or base when the
// pair has never been attempted.
func (s *Store) Confidence(strategyID, ruleID string, base float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entry, ok := s.entries[Key(strategyID, ruleID)]; ok {
		return entry.Confidence
	}
	return base
}

// Entry returns the stats for a pair.
func (s *Store) Entry(strategyID, ruleID string) (domain.LearningEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[Key(strategyID, ruleID)]
	return entry, ok
}

// Snapshot copies the current state for persistence.
func (s *Store) Snapshot() map[string]domain.LearningEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.LearningEntry, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

// Restore merges persisted entries into the store. Existing in-memory
// entries win, so a restore cannot clobber outcomes recorded since startup.
func (s *Store) Restore(entries map[string]domain.LearningEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range entries {
		if _, exists := s.entries[k]; !exists {
			s.entries[k] = v
		}
	}
}

// Len returns the number of tracked pairs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
