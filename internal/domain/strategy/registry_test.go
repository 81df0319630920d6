package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remedykit/remedy/internal/domain"
	"github.com/remedykit/remedy/internal/domain/strategy"
)

func TestRegistryBuiltinCatalog(t *testing.T) {
	reg := strategy.NewRegistry()
	require.GreaterOrEqual(t, reg.Len(), 10)

	for _, s := range reg.All() {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.AppliesTo, "strategy %s declares no rules", s.ID)
		assert.NotNil(t, s.Transform, "strategy %s has no transform", s.ID)
		assert.GreaterOrEqual(t, s.Confidence, 0.0)
		assert.LessOrEqual(t, s.Confidence, 1.0)
		assert.Contains(t,
			[]string{domain.ComplexitySimple, domain.ComplexityMedium, domain.ComplexityComplex},
			s.Complexity)
	}
}

func TestRegistryForRule(t *testing.T) {
	reg := strategy.NewRegistry()

	candidates := reg.ForRule("console_log_in_production")
	require.Len(t, candidates, 1)
	assert.Equal(t, "remove-console-log", candidates[0].ID)

	assert.Empty(t, reg.ForRule("high_complexity"), "complexity issues have no text-level fix")
	assert.Empty(t, reg.ForRule("eval_usage"), "eval removal is never automatic")
	assert.Empty(t, reg.ForRule("unheard_of_rule"))
}

func TestRegistryByID(t *testing.T) {
	reg := strategy.NewRegistry()

	s, ok := reg.ByID("strict-equality")
	require.True(t, ok)
	assert.Equal(t, []string{"loose_equality"}, s.AppliesTo)

	_, ok = reg.ByID("missing")
	assert.False(t, ok)
}

func TestRegistryWithPreservesOrderAndSkipsDuplicates(t *testing.T) {
	a := &domain.FixStrategy{ID: "a", AppliesTo: []string{"r"}}
	b := &domain.FixStrategy{ID: "b", AppliesTo: []string{"r"}}
	dup := &domain.FixStrategy{ID: "a", AppliesTo: []string{"r"}}

	reg := strategy.NewRegistryWith(a, b, dup)
	require.Equal(t, 2, reg.Len())

	candidates := reg.ForRule("r")
	require.Len(t, candidates, 2)
	assert.Same(t, a, candidates[0])
	assert.Same(t, b, candidates[1])
}
