// Package plan turns a detected issue set into an ordered, risk-bucketed
// fix plan. The selector scores candidate strategies per issue; the
// planner partitions and orders the whole set.
package plan

import (
	"github.com/remedykit/remedy/internal/domain"
	"github.com/remedykit/remedy/internal/domain/strategy"
)

// ConfidenceSource supplies the effective confidence for a
// (strategy, rule) pair, typically blending learned outcomes over the
// strategy's base confidence.
type ConfidenceSource interface {
	Confidence(strategyID, ruleID string, base float64) float64
}

// Selector picks the best applicable strategy for a single issue.
type Selector struct {
	registry *strategy.Registry
	learned  ConfidenceSource
}

// NewSelector creates a selector. learned may be nil, in which case base
// confidences are used unchanged.
func NewSelector(reg *strategy.Registry, learned ConfidenceSource) *Selector {
	return &Selector{registry: reg, learned: learned}
}

// complexityWeight discounts strategies by how invasive their transforms
// are, so a confident-but-complex strategy loses to a simpler one.
func complexityWeight(complexity string) float64 {
	switch complexity {
	case domain.ComplexitySimple:
		return 1.0
	case domain.ComplexityMedium:
		return 0.8
	case domain.ComplexityComplex:
		return 0.5
	default:
		return 0.5
	}
}

// Select returns the applicable strategy maximizing
// confidence × complexityWeight, together with its effective confidence.
// Ties keep the earliest-registered strategy. ok is false when no strategy
// declares the issue's rule applicable.
func (s *Selector) Select(issue domain.Issue) (strat *domain.FixStrategy, confidence float64, ok bool) {
	candidates := s.registry.ForRule(issue.RuleID)
	if len(candidates) == 0 {
		return nil, 0, false
	}

	best := -1.0
	for _, c := range candidates {
		conf := c.Confidence
		if s.learned != nil {
			conf = s.learned.Confidence(c.ID, issue.RuleID, c.Confidence)
		}
		score := conf * complexityWeight(c.Complexity)
		// strict > keeps the first registered strategy on ties
		if score > best {
			best = score
			strat = c
			confidence = conf
		}
	}
	return strat, confidence, true
}
