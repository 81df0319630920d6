// Package strategy holds the static catalog of remediation strategies and
// the text transforms behind them. The catalog is fixed at construction;
// lookup is by rule id in registration order, which makes tie-breaking in
// the selector deterministic.
package strategy

import (
	"github.com/remedykit/remedy/internal/domain"
)

// Registry is the fixed catalog of fix strategies. Construction does no
// I/O and the registry is read-only afterwards.
type Registry struct {
	ordered []*domain.FixStrategy
	byRule  map[string][]*domain.FixStrategy
	byID    map[string]*domain.FixStrategy
}

// NewRegistry builds the registry with the built-in catalog.
func NewRegistry() *Registry {
	return NewRegistryWith(builtinCatalog()...)
}

// NewRegistryWith builds a registry from an explicit strategy list, in the
// given order. Later duplicates of an id are ignored.
func NewRegistryWith(strategies ...*domain.FixStrategy) *Registry {
	r := &Registry{
		byRule: make(map[string][]*domain.FixStrategy),
		byID:   make(map[string]*domain.FixStrategy),
	}
	for _, s := range strategies {
		r.register(s)
	}
	return r
}

func (r *Registry) register(s *domain.FixStrategy) {
	if _, exists := r.byID[s.ID]; exists {
		return
	}
	r.ordered = append(r.ordered, s)
	r.byID[s.ID] = s
	for _, rule := range s.AppliesTo {
		r.byRule[rule] = append(r.byRule[rule], s)
	}
}

// ForRule returns the strategies declaring the rule applicable, in
// registration order. The slice is shared; callers must not mutate it.
func (r *Registry) ForRule(ruleID string) []*domain.FixStrategy {
	return r.byRule[ruleID]
}

// ByID looks up a strategy by identifier.
func (r *Registry) ByID(id string) (*domain.FixStrategy, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// All returns every registered strategy in registration order.
func (r *Registry) All() []*domain.FixStrategy {
	out := make([]*domain.FixStrategy, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len returns the number of registered strategies.
func (r *Registry) Len() int { return len(r.ordered) }
