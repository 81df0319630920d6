package domain

import "time"

// Issue represents a single problem found by the issue detector.
// Issues are immutable once emitted; the engine only reads them.
type Issue struct {
	RuleID      string `json:"rule_id"`
	Severity    string `json:"severity"`
	Category    string `json:"category"`
	Line        int    `json:"line,omitempty"`
	Description string `json:"description"`
}

const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

const (
	CategorySecurity     = "security"
	CategoryQuantum      = "quantum"
	CategoryError        = "error"
	CategoryOptimization = "optimization"
	CategoryWarning      = "warning"
)

// Detection is what the issue detector returns for one file.
type Detection struct {
	Issues  []Issue          `json:"issues"`
	Metrics DetectionMetrics `json:"metrics"`
}

// DetectionMetrics are coarse per-file quality signals reported alongside
// the issue list.
type DetectionMetrics struct {
	QualityScore int `json:"quality_score"`
	Complexity   int `json:"complexity"`
	LineCount    int `json:"line_count"`
}

// Verification compares the issue sets before and after a fix session.
// The comparison is by rule id only, not exact location; distinct
// occurrences of the same rule can be misattributed as resolved or
// introduced. This matches the detector's emission granularity and is a
// known precision limit.
type Verification struct {
	BeforeCount         int  `json:"before_count"`
	AfterCount          int  `json:"after_count"`
	IssuesResolved      int  `json:"issues_resolved"`
	NewIssuesIntroduced int  `json:"new_issues_introduced"`
	RegressionDetected  bool `json:"regression_detected"`
	OverallImprovement  bool `json:"overall_improvement"`
}

// AutoFixSession is the append-only record of one remediation run over one
// file. It is owned by the executing session and becomes read-only once
// EndTime is stamped.
type AutoFixSession struct {
	ID              string    `json:"id"`
	FilePath        string    `json:"file_path"`
	CommitHash      string    `json:"commit_hash,omitempty"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time,omitempty"`
	TotalFixes      int       `json:"total_fixes"`
	SuccessfulFixes int       `json:"successful_fixes"`
	FailedFixes     int       `json:"failed_fixes"`
	RiskyFixes      int       `json:"risky_fixes"`
	Summary         string    `json:"summary"`
}

// Duration returns the wall time the session ran for.
func (s AutoFixSession) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}

// SessionResult is the full observable output of one remediation session.
type SessionResult struct {
	Session         AutoFixSession   `json:"session"`
	OriginalText    string           `json:"original_text"`
	FixedText       string           `json:"fixed_text"`
	AppliedFixes    []AppliedFix     `json:"applied_fixes"`
	Plan            FixPlan          `json:"plan"`
	Verification    *Verification    `json:"verification,omitempty"`
	Metrics         DetectionMetrics `json:"metrics"`
	Recommendations []string         `json:"recommendations"`
}

// AppliedFix records one successfully applied fix within a session.
type AppliedFix struct {
	Issue        Issue       `json:"issue"`
	StrategyID   string      `json:"strategy_id"`
	StrategyName string      `json:"strategy_name"`
	Confidence   float64     `json:"confidence"`
	Changes      []FixChange `json:"changes"`
	Explanation  string      `json:"explanation"`
}
