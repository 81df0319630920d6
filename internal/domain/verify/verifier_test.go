package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remedykit/remedy/internal/domain"
	"github.com/remedykit/remedy/internal/domain/verify"
)

func issues(ruleIDs ...string) []domain.Issue {
	out := make([]domain.Issue, len(ruleIDs))
	for i, id := range ruleIDs {
		out[i] = domain.Issue{RuleID: id, Severity: domain.SeverityMedium}
	}
	return out
}

func TestCompareResolvedAndIntroduced(t *testing.T) {
	// {A,B,C} -> {B,D}: D is new, net two resolved, still an improvement.
	v := verify.Compare(issues("A", "B", "C"), issues("B", "D"))

	assert.Equal(t, 1, v.NewIssuesIntroduced)
	assert.Equal(t, 2, v.IssuesResolved)
	assert.True(t, v.OverallImprovement)
	assert.False(t, v.RegressionDetected)
	assert.Equal(t, 3, v.BeforeCount)
	assert.Equal(t, 2, v.AfterCount)
}

func TestCompareAllResolved(t *testing.T) {
	v := verify.Compare(issues("A", "B"), nil)

	assert.Equal(t, 2, v.IssuesResolved)
	assert.Equal(t, 0, v.NewIssuesIntroduced)
	assert.True(t, v.OverallImprovement)
}

func TestCompareNothingChanged(t *testing.T) {
	v := verify.Compare(issues("A", "B"), issues("A", "B"))

	assert.Equal(t, 0, v.IssuesResolved)
	assert.Equal(t, 0, v.NewIssuesIntroduced)
	assert.False(t, v.OverallImprovement)
}

func TestCompareRegressionOnNewCriticalIssue(t *testing.T) {
	after := []domain.Issue{
		{RuleID: "A", Severity: domain.SeverityMedium},
		{RuleID: "Z", Severity: domain.SeverityCritical},
	}
	v := verify.Compare(issues("A", "B", "C"), after)

	assert.True(t, v.RegressionDetected)
	assert.Equal(t, 1, v.NewIssuesIntroduced)
	assert.Equal(t, 2, v.IssuesResolved)
}

func TestComparePreexistingCriticalIsNotRegression(t *testing.T) {
	before := []domain.Issue{{RuleID: "A", Severity: domain.SeverityCritical}}
	after := []domain.Issue{{RuleID: "A", Severity: domain.SeverityCritical}}

	v := verify.Compare(before, after)
	assert.False(t, v.RegressionDetected, "a critical issue that was already there is not new")
}

// Matching is by rule id: a surviving second occurrence of a fixed rule is
// not "newly introduced".
func TestCompareDuplicateRuleOccurrences(t *testing.T) {
	v := verify.Compare(issues("A", "A", "B"), issues("A"))

	assert.Equal(t, 0, v.NewIssuesIntroduced)
	assert.Equal(t, 2, v.IssuesResolved)
	assert.True(t, v.OverallImprovement)
}

func TestCompareResolvedFlooredAtZero(t *testing.T) {
	// More issues after than before, all of them pre-existing rules.
	v := verify.Compare(issues("A"), issues("A", "A", "A"))

	assert.Equal(t, 0, v.IssuesResolved)
	assert.Equal(t, 0, v.NewIssuesIntroduced)
	assert.False(t, v.OverallImprovement)
}

func TestCompareEmptyBefore(t *testing.T) {
	v := verify.Compare(nil, issues("A"))

	assert.Equal(t, 1, v.NewIssuesIntroduced)
	assert.Equal(t, 0, v.IssuesResolved)
	assert.False(t, v.OverallImprovement)
}
