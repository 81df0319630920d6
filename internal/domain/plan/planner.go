package plan

import (
	"sort"

	"github.com/remedykit/remedy/internal/domain"
)

var severityWeights = map[string]int{
	domain.SeverityCritical: 10,
	domain.SeverityHigh:     8,
	domain.SeverityMedium:   5,
	domain.SeverityLow:      2,
}

var categoryWeights = map[string]int{
	domain.CategorySecurity:     3,
	domain.CategoryQuantum:      2,
	domain.CategoryError:        2,
	domain.CategoryOptimization: 1,
	domain.CategoryWarning:      1,
}

// PriorityScore ranks an issue for application order within a bucket.
func PriorityScore(issue domain.Issue) int {
	return severityWeights[issue.Severity] + categoryWeights[issue.Category]
}

// Planner partitions issues into safe / risky / manual buckets.
type Planner struct {
	selector       *Selector
	safeThreshold  float64
	riskyThreshold float64
}

func NewPlanner(sel *Selector, cfg domain.EngineConfig) *Planner {
	return &Planner{
		selector:       sel,
		safeThreshold:  cfg.SafeThreshold,
		riskyThreshold: cfg.RiskyThreshold,
	}
}

// Plan classifies every issue and orders the safe and risky buckets by
// descending priority. The sort is stable, so equal-priority issues keep
// detector emission order. Manual issues are never auto-applied and are
// left in emission order.
func (p *Planner) Plan(issues []domain.Issue) domain.FixPlan {
	var plan domain.FixPlan
	for _, issue := range issues {
		strat, confidence, ok := p.selector.Select(issue)
		switch {
		case !ok:
			plan.Manual = append(plan.Manual, issue)
		case confidence >= p.safeThreshold && strat.Complexity != domain.ComplexityComplex:
			plan.Safe = append(plan.Safe, issue)
		case confidence >= p.riskyThreshold:
			plan.Risky = append(plan.Risky, issue)
		default:
			plan.Manual = append(plan.Manual, issue)
		}
	}

	byPriority := func(bucket []domain.Issue) {
		sort.SliceStable(bucket, func(i, j int) bool {
			return PriorityScore(bucket[i]) > PriorityScore(bucket[j])
		})
	}
	byPriority(plan.Safe)
	byPriority(plan.Risky)

	return plan
}
