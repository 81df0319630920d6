package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remedykit/remedy/internal/domain"
	"github.com/remedykit/remedy/internal/domain/plan"
	"github.com/remedykit/remedy/internal/domain/strategy"
)

func noopTransform(text string, _ domain.Issue) domain.FixResult {
	return domain.FixResult{Success: false, OriginalText: text, FixedText: text}
}

// learnedStub returns a fixed confidence per strategy id.
type learnedStub map[string]float64

func (l learnedStub) Confidence(strategyID, _ string, base float64) float64 {
	if c, ok := l[strategyID]; ok {
		return c
	}
	return base
}

func TestSelectPrefersWeightedScore(t *testing.T) {
	// 0.95 × 0.5 (complex) = 0.475 loses to 0.9 × 1.0 (simple).
	reg := strategy.NewRegistryWith(
		&domain.FixStrategy{ID: "thorough", AppliesTo: []string{"r"}, Confidence: 0.95, Complexity: domain.ComplexityComplex, Transform: noopTransform},
		&domain.FixStrategy{ID: "quick", AppliesTo: []string{"r"}, Confidence: 0.9, Complexity: domain.ComplexitySimple, Transform: noopTransform},
	)
	sel := plan.NewSelector(reg, nil)

	strat, confidence, ok := sel.Select(domain.Issue{RuleID: "r"})
	require.True(t, ok)
	assert.Equal(t, "quick", strat.ID)
	assert.Equal(t, 0.9, confidence)
}

func TestSelectTieBreaksByRegistrationOrder(t *testing.T) {
	reg := strategy.NewRegistryWith(
		&domain.FixStrategy{ID: "first", AppliesTo: []string{"r"}, Confidence: 0.8, Complexity: domain.ComplexitySimple, Transform: noopTransform},
		&domain.FixStrategy{ID: "second", AppliesTo: []string{"r"}, Confidence: 0.8, Complexity: domain.ComplexitySimple, Transform: noopTransform},
	)
	sel := plan.NewSelector(reg, nil)

	strat, _, ok := sel.Select(domain.Issue{RuleID: "r"})
	require.True(t, ok)
	assert.Equal(t, "first", strat.ID)
}

func TestSelectNoApplicableStrategy(t *testing.T) {
	sel := plan.NewSelector(strategy.NewRegistry(), nil)

	_, _, ok := sel.Select(domain.Issue{RuleID: "high_complexity"})
	assert.False(t, ok)
}

func TestSelectUsesLearnedConfidence(t *testing.T) {
	reg := strategy.NewRegistryWith(
		&domain.FixStrategy{ID: "flaky", AppliesTo: []string{"r"}, Confidence: 0.9, Complexity: domain.ComplexitySimple, Transform: noopTransform},
		&domain.FixStrategy{ID: "steady", AppliesTo: []string{"r"}, Confidence: 0.7, Complexity: domain.ComplexitySimple, Transform: noopTransform},
	)
	// the learned store has watched "flaky" fail repeatedly
	sel := plan.NewSelector(reg, learnedStub{"flaky": 0.2})

	strat, confidence, ok := sel.Select(domain.Issue{RuleID: "r"})
	require.True(t, ok)
	assert.Equal(t, "steady", strat.ID)
	assert.Equal(t, 0.7, confidence)
}
