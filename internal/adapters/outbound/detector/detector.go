// Package detector implements domain.IssueDetector with line-level rules
// for JavaScript-family sources. The engine only sees the port, so this
// adapter can be swapped for any external detector.
package detector

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/remedykit/remedy/internal/domain"
)

// maxFunctionLines is the body length beyond which a function is flagged
// as too complex to remediate automatically.
const maxFunctionLines = 30

// lineRule flags any line matching its pattern.
type lineRule struct {
	id       string
	severity string
	category string
	pattern  *regexp.Regexp
	message  string
}

var lineRules = []lineRule{
	{
		id:       "console_log_in_production",
		severity: domain.SeverityMedium,
		category: domain.CategoryWarning,
		pattern:  regexp.MustCompile(`\bconsole\.log\s*\(`),
		message:  "console.log left in production code",
	},
	{
		id:       "debugger_statement",
		severity: domain.SeverityHigh,
		category: domain.CategoryError,
		pattern:  regexp.MustCompile(`^\s*debugger;?\s*$`),
		message:  "debugger statement left in code",
	},
	{
		id:       "var_declaration",
		severity: domain.SeverityLow,
		category: domain.CategoryOptimization,
		pattern:  regexp.MustCompile(`^\s*var\s+`),
		message:  "var declaration; prefer let or const",
	},
	{
		id:       "loose_equality",
		severity: domain.SeverityMedium,
		category: domain.CategoryError,
		pattern:  regexp.MustCompile(`[^=!<>]==[^=]|[^!]!=[^=]`),
		message:  "loose equality comparison",
	},
	{
		id:       "empty_catch_block",
		severity: domain.SeverityMedium,
		category: domain.CategoryError,
		pattern:  regexp.MustCompile(`catch\s*\(\s*[A-Za-z_$][\w$]*\s*\)\s*\{\s*\}`),
		message:  "empty catch block swallows errors",
	},
	{
		id:       "hardcoded_secret",
		severity: domain.SeverityCritical,
		category: domain.CategorySecurity,
		pattern:  regexp.MustCompile(`(?i)(?:key|secret|password|passwd|token|credential)[\w$]*\s*=\s*["'][^"']{6,}["']`),
		message:  "hardcoded secret in source",
	},
	{
		id:       "eval_usage",
		severity: domain.SeverityCritical,
		category: domain.CategorySecurity,
		pattern:  regexp.MustCompile(`\beval\s*\(`),
		message:  "eval() executes arbitrary code",
	},
	{
		id:       "weak_hash_algorithm",
		severity: domain.SeverityHigh,
		category: domain.CategoryQuantum,
		pattern:  regexp.MustCompile(`createHash\s*\(\s*['"](?:md5|sha1)['"]`),
		message:  "weak hash algorithm; use sha256 or stronger",
	},
	{
		id:       "small_rsa_modulus",
		severity: domain.SeverityHigh,
		category: domain.CategoryQuantum,
		pattern:  regexp.MustCompile(`modulusLength\s*:\s*(?:512|1024|2048)\b`),
		message:  "RSA modulus below 4096 bits is not harvest-resistant",
	},
	{
		id:       "trailing_whitespace",
		severity: domain.SeverityLow,
		category: domain.CategoryOptimization,
		pattern:  regexp.MustCompile(`\S[ \t]+$|^[ \t]+$`),
		message:  "trailing whitespace",
	},
	{
		id:       "todo_comment",
		severity: domain.SeverityLow,
		category: domain.CategoryWarning,
		pattern:  regexp.MustCompile(`(?i)//\s*todo\b([^(]|$)`),
		message:  "untracked TODO comment",
	},
}

var (
	funcDeclRe = regexp.MustCompile(`^\s*(?:async\s+)?function\s+([A-Za-z_$][\w$]*)\s*\(|^\s*(?:const|let)\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s*)?(?:function\b|\([^)]*\)\s*=>)`)
	branchRe   = regexp.MustCompile(`\b(?:if|for|while|case)\b|&&|\|\|`)
)

// vagueNames are single-word function names that say nothing about intent.
var vagueNames = map[string]bool{
	"handle": true, "process": true, "do": true, "run": true,
	"data": true, "temp": true, "stuff": true, "func": true,
}

// RuleDetector is the built-in rule-based issue detector.
type RuleDetector struct{}

func New() *RuleDetector { return &RuleDetector{} }

// DetectIssues scans content line by line, then layers on function-level
// checks (length, naming). Line numbers are 1-based.
func (d *RuleDetector) DetectIssues(ctx context.Context, filePath, content string) (*domain.Detection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := strings.Split(content, "\n")
	var issues []domain.Issue

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, rule := range lineRules {
			// comment lines only carry comment rules
			if strings.HasPrefix(trimmed, "//") && rule.id != "todo_comment" && rule.id != "trailing_whitespace" {
				continue
			}
			if rule.pattern.MatchString(line) {
				issues = append(issues, domain.Issue{
					RuleID:      rule.id,
					Severity:    rule.severity,
					Category:    rule.category,
					Line:        i + 1,
					Description: rule.message,
				})
			}
		}
	}

	issues = append(issues, functionIssues(lines)...)

	return &domain.Detection{
		Issues:  issues,
		Metrics: computeMetrics(lines, issues),
	}, nil
}

// functionIssues walks brace nesting to measure function bodies and judge
// their declared names.
func functionIssues(lines []string) []domain.Issue {
	var issues []domain.Issue

	depth := 0
	funcStart := -1
	funcName := ""
	funcDepth := 0

	for i, line := range lines {
		if funcStart < 0 {
			if m := funcDeclRe.FindStringSubmatch(line); m != nil {
				funcStart = i
				funcName = m[1]
				if funcName == "" {
					funcName = m[2]
				}
				funcDepth = depth
				if issue, ok := namingIssue(funcName, i+1); ok {
					issues = append(issues, issue)
				}
			}
		}

		depth += strings.Count(line, "{") - strings.Count(line, "}")

		if funcStart >= 0 && depth <= funcDepth && strings.Contains(line, "}") {
			if length := i - funcStart + 1; length > maxFunctionLines {
				issues = append(issues, domain.Issue{
					RuleID:      "high_complexity",
					Severity:    domain.SeverityMedium,
					Category:    domain.CategoryWarning,
					Line:        funcStart + 1,
					Description: fmt.Sprintf("function %s spans %d lines; restructure it", funcName, length),
				})
			}
			funcStart = -1
		}
	}
	return issues
}

// namingIssue flags vague single-word function names. Word counting uses
// camelCase splitting, so processUserOrder is two words past the verb and
// passes while process alone does not.
func namingIssue(name string, line int) (domain.Issue, bool) {
	words := camelcase.Split(name)
	if len(words) != 1 || !vagueNames[strings.ToLower(name)] {
		return domain.Issue{}, false
	}
	return domain.Issue{
		RuleID:      "vague_function_name",
		Severity:    domain.SeverityLow,
		Category:    domain.CategoryWarning,
		Line:        line,
		Description: fmt.Sprintf("function name %q is too vague", name),
	}, true
}

// computeMetrics derives coarse quality signals: branching density as a
// complexity proxy and a 0-100 score discounted by issue severity.
func computeMetrics(lines []string, issues []domain.Issue) domain.DetectionMetrics {
	complexity := 0
	for _, line := range lines {
		complexity += len(branchRe.FindAllString(line, -1))
	}

	score := 100
	for _, issue := range issues {
		switch issue.Severity {
		case domain.SeverityCritical:
			score -= 15
		case domain.SeverityHigh:
			score -= 8
		case domain.SeverityMedium:
			score -= 4
		case domain.SeverityLow:
			score -= 1
		}
	}
	if score < 0 {
		score = 0
	}

	return domain.DetectionMetrics{
		QualityScore: score,
		Complexity:   complexity,
		LineCount:    len(lines),
	}
}
