// Package verify compares issue sets before and after a fix session.
package verify

import "github.com/remedykit/remedy/internal/domain"

// Compare classifies a session as improving, neutral, or regressive.
//
// Matching is by rule id only: an after-issue counts as newly introduced
// only when its rule id never appeared before the fixes ran. A fix that
// resolves one instance of a rule while another instance of the same rule
// survives therefore introduces nothing. Resolved counts the net
// disappearance, floored at zero.
func Compare(before, after []domain.Issue) domain.Verification {
	beforeRules := make(map[string]bool, len(before))
	for _, issue := range before {
		beforeRules[issue.RuleID] = true
	}

	introduced := 0
	regression := false
	for _, issue := range after {
		if beforeRules[issue.RuleID] {
			continue
		}
		introduced++
		if issue.Severity == domain.SeverityCritical {
			regression = true
		}
	}

	resolved := len(before) - len(after) + introduced
	if resolved < 0 {
		resolved = 0
	}

	return domain.Verification{
		BeforeCount:         len(before),
		AfterCount:          len(after),
		IssuesResolved:      resolved,
		NewIssuesIntroduced: introduced,
		RegressionDetected:  regression,
		OverallImprovement:  len(before) > len(after),
	}
}
