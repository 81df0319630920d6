package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remedykit/remedy/internal/domain"
	"github.com/remedykit/remedy/internal/domain/plan"
	"github.com/remedykit/remedy/internal/domain/strategy"
)

func testPlanner(learned plan.ConfidenceSource) *plan.Planner {
	reg := strategy.NewRegistryWith(
		&domain.FixStrategy{ID: "sure-simple", AppliesTo: []string{"sure_rule"}, Confidence: 0.9, Complexity: domain.ComplexitySimple, Transform: noopTransform},
		&domain.FixStrategy{ID: "sure-complex", AppliesTo: []string{"deep_rule"}, Confidence: 0.9, Complexity: domain.ComplexityComplex, Transform: noopTransform},
		&domain.FixStrategy{ID: "maybe", AppliesTo: []string{"maybe_rule"}, Confidence: 0.7, Complexity: domain.ComplexityMedium, Transform: noopTransform},
		&domain.FixStrategy{ID: "doubtful", AppliesTo: []string{"doubtful_rule"}, Confidence: 0.4, Complexity: domain.ComplexitySimple, Transform: noopTransform},
	)
	return plan.NewPlanner(plan.NewSelector(reg, learned), domain.DefaultConfig())
}

func TestPlanClassification(t *testing.T) {
	issues := []domain.Issue{
		{RuleID: "sure_rule", Severity: domain.SeverityLow, Category: domain.CategoryWarning},
		{RuleID: "deep_rule", Severity: domain.SeverityHigh, Category: domain.CategoryError},
		{RuleID: "maybe_rule", Severity: domain.SeverityMedium, Category: domain.CategoryError},
		{RuleID: "doubtful_rule", Severity: domain.SeverityLow, Category: domain.CategoryWarning},
		{RuleID: "unknown_rule", Severity: domain.SeverityCritical, Category: domain.CategorySecurity},
	}

	p := testPlanner(nil).Plan(issues)

	// confident + simple
	require.Len(t, p.Safe, 1)
	assert.Equal(t, "sure_rule", p.Safe[0].RuleID)

	// confident but complex is never safe; 0.9 ≥ 0.6 makes it risky
	require.Len(t, p.Risky, 2)
	assert.Equal(t, "deep_rule", p.Risky[0].RuleID, "high+error outranks medium+error")
	assert.Equal(t, "maybe_rule", p.Risky[1].RuleID)

	// low confidence or no strategy at all
	require.Len(t, p.Manual, 2)
}

func TestPlanPartitionIsTotal(t *testing.T) {
	issues := []domain.Issue{
		{RuleID: "sure_rule"}, {RuleID: "deep_rule"}, {RuleID: "maybe_rule"},
		{RuleID: "doubtful_rule"}, {RuleID: "unknown_rule"}, {RuleID: "sure_rule"},
	}

	p := testPlanner(nil).Plan(issues)
	assert.Equal(t, len(issues), p.Size(), "every issue lands in exactly one bucket")
}

func TestPlanOrdersByPriority(t *testing.T) {
	issues := []domain.Issue{
		{RuleID: "sure_rule", Severity: domain.SeverityLow, Category: domain.CategoryWarning},       // 2+1 = 3
		{RuleID: "sure_rule", Severity: domain.SeverityCritical, Category: domain.CategorySecurity}, // 10+3 = 13
		{RuleID: "sure_rule", Severity: domain.SeverityMedium, Category: domain.CategoryError},      // 5+2 = 7
	}

	p := testPlanner(nil).Plan(issues)
	require.Len(t, p.Safe, 3)
	for i := 0; i < len(p.Safe)-1; i++ {
		assert.GreaterOrEqual(t,
			plan.PriorityScore(p.Safe[i]), plan.PriorityScore(p.Safe[i+1]),
			"bucket must be sorted by descending priority")
	}
	assert.Equal(t, domain.SeverityCritical, p.Safe[0].Severity)
}

func TestPlanStableForEqualPriority(t *testing.T) {
	issues := []domain.Issue{
		{RuleID: "sure_rule", Severity: domain.SeverityMedium, Category: domain.CategoryError, Line: 10},
		{RuleID: "sure_rule", Severity: domain.SeverityMedium, Category: domain.CategoryError, Line: 4},
		{RuleID: "sure_rule", Severity: domain.SeverityMedium, Category: domain.CategoryError, Line: 22},
	}

	p := testPlanner(nil).Plan(issues)
	require.Len(t, p.Safe, 3)
	assert.Equal(t, []int{10, 4, 22}, []int{p.Safe[0].Line, p.Safe[1].Line, p.Safe[2].Line},
		"equal-priority issues keep detector emission order")
}

func TestPlanLearnedConfidenceDemotesBucket(t *testing.T) {
	// base 0.9 would be safe, but the learned confidence has collapsed
	issues := []domain.Issue{{RuleID: "sure_rule"}}

	p := testPlanner(learnedStub{"sure-simple": 0.65}).Plan(issues)
	assert.Empty(t, p.Safe)
	require.Len(t, p.Risky, 1)

	p = testPlanner(learnedStub{"sure-simple": 0.3}).Plan(issues)
	require.Len(t, p.Manual, 1)
}

func TestPriorityScoreWeights(t *testing.T) {
	tests := []struct {
		severity string
		category string
		want     int
	}{
		{domain.SeverityCritical, domain.CategorySecurity, 13},
		{domain.SeverityHigh, domain.CategoryQuantum, 10},
		{domain.SeverityHigh, domain.CategoryError, 10},
		{domain.SeverityMedium, domain.CategoryOptimization, 6},
		{domain.SeverityLow, domain.CategoryWarning, 3},
	}
	for _, tt := range tests {
		got := plan.PriorityScore(domain.Issue{Severity: tt.severity, Category: tt.category})
		assert.Equal(t, tt.want, got, "%s/%s", tt.severity, tt.category)
	}
}
