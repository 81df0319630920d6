// Package application wires the planning, execution, verification, and
// learning stages into remediation sessions.
package application

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/remedykit/remedy/internal/domain"
	"github.com/remedykit/remedy/internal/domain/learn"
	"github.com/remedykit/remedy/internal/domain/plan"
	"github.com/remedykit/remedy/internal/domain/strategy"
	"github.com/remedykit/remedy/internal/domain/verify"
)

// FixService runs remediation sessions: detect → plan → apply → re-detect
// → verify. One service may run sessions for many files; each session owns
// its text buffer exclusively while it runs.
type FixService struct {
	detector domain.IssueDetector
	registry *strategy.Registry
	learning *learn.Store
	git      domain.GitInfo
	logger   *zap.Logger

	mu  sync.Mutex
	cfg domain.EngineConfig
}

// NewFixService creates the service. git may be nil (sessions are then not
// stamped with a commit hash); a nil logger falls back to zap.NewNop.
func NewFixService(det domain.IssueDetector, reg *strategy.Registry, learning *learn.Store, git domain.GitInfo, cfg domain.EngineConfig, logger *zap.Logger) *FixService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FixService{
		detector: det,
		registry: reg,
		learning: learning,
		git:      git,
		cfg:      cfg,
		logger:   logger,
	}
}

// SetSafetyMode gates risky fixes for subsequent sessions. It does not
// affect a session already in flight.
func (s *FixService) SetSafetyMode(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.SafetyMode = enabled
}

// Learning exposes the learning store for persistence at the edges.
func (s *FixService) Learning() *learn.Store { return s.learning }

func (s *FixService) snapshotConfig() domain.EngineConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// RunSession remediates one file's content. The detector is called twice,
// before and after fixing; a failure of either call aborts the session and
// the returned result then carries the original, unmodified text and zero
// applied fixes alongside the error. A failure inside one strategy is
// local: it is counted as a failed fix and the session continues.
func (s *FixService) RunSession(ctx context.Context, filePath, content string) (*domain.SessionResult, error) {
	cfg := s.snapshotConfig()

	session := domain.AutoFixSession{
		ID:        uuid.New().String(),
		FilePath:  filePath,
		StartTime: time.Now(),
	}
	if s.git != nil {
		if root := filepath.Dir(filePath); s.git.IsGitRepo(root) {
			if hash, err := s.git.CommitHash(root); err == nil {
				session.CommitHash = hash
			}
		}
	}

	result := &domain.SessionResult{
		Session:      session,
		OriginalText: content,
		FixedText:    content,
	}

	detection, err := s.detector.DetectIssues(ctx, filePath, content)
	if err != nil {
		return s.abort(result, fmt.Errorf("detecting issues: %w", err))
	}
	before := enabledIssues(detection.Issues, cfg)
	result.Metrics = detection.Metrics

	selector := plan.NewSelector(s.registry, s.learning)
	planner := plan.NewPlanner(selector, cfg)
	fixPlan := planner.Plan(before)
	result.Plan = fixPlan

	// Selections are resolved here, before any fix runs. Outcomes recorded
	// while applying update the learning store for future sessions but must
	// never steer the session that recorded them.
	safeFixes := resolveFixes(selector, fixPlan.Safe)
	riskyFixes := resolveFixes(selector, fixPlan.Risky)

	s.logger.Debug("fix plan built",
		zap.String("file", filePath),
		zap.Int("safe", len(fixPlan.Safe)),
		zap.Int("risky", len(fixPlan.Risky)),
		zap.Int("manual", len(fixPlan.Manual)),
		zap.Bool("safety_mode", cfg.SafetyMode))

	buffer := content
	for _, fix := range safeFixes {
		buffer = s.applyFix(result, buffer, fix, false)
	}
	if !cfg.SafetyMode {
		for _, fix := range riskyFixes {
			buffer = s.applyFix(result, buffer, fix, true)
		}
	}

	after, err := s.detector.DetectIssues(ctx, filePath, buffer)
	if err != nil {
		// Never hand back partially mutated content when verification
		// itself could not run.
		result.AppliedFixes = nil
		result.FixedText = content
		result.Session.TotalFixes = 0
		result.Session.SuccessfulFixes = 0
		result.Session.FailedFixes = 0
		result.Session.RiskyFixes = 0
		return s.abort(result, fmt.Errorf("re-detecting issues: %w", err))
	}
	afterIssues := enabledIssues(after.Issues, cfg)

	verification := verify.Compare(before, afterIssues)
	result.Verification = &verification
	result.FixedText = buffer
	result.Metrics = after.Metrics

	result.Session.EndTime = time.Now()
	result.Session.Summary = fmt.Sprintf("applied %d/%d fixes in %s: %d issue(s) resolved, %d introduced",
		result.Session.SuccessfulFixes, result.Session.TotalFixes,
		result.Session.Duration().Round(time.Millisecond),
		verification.IssuesResolved, verification.NewIssuesIntroduced)

	result.Recommendations = buildRecommendations(cfg, fixPlan, verification, afterIssues)

	s.logger.Info("session finished",
		zap.String("session_id", result.Session.ID),
		zap.String("file", filePath),
		zap.String("summary", result.Session.Summary))

	return result, nil
}

// abort stamps the session with an error summary. The result still carries
// the original text so callers never see partial mutation.
func (s *FixService) abort(result *domain.SessionResult, err error) (*domain.SessionResult, error) {
	result.Session.EndTime = time.Now()
	result.Session.Summary = fmt.Sprintf("session aborted: %v", err)
	s.logger.Warn("session aborted",
		zap.String("session_id", result.Session.ID),
		zap.String("file", result.Session.FilePath),
		zap.Error(err))
	return result, err
}

// resolvedFix binds an issue to the strategy and effective confidence the
// planning pass chose for it.
type resolvedFix struct {
	issue      domain.Issue
	strat      *domain.FixStrategy
	confidence float64
}

func resolveFixes(selector *plan.Selector, issues []domain.Issue) []resolvedFix {
	out := make([]resolvedFix, 0, len(issues))
	for _, issue := range issues {
		strat, confidence, ok := selector.Select(issue)
		if !ok {
			continue
		}
		out = append(out, resolvedFix{issue: issue, strat: strat, confidence: confidence})
	}
	return out
}

// applyFix attempts one resolved fix against the buffer and returns the new
// buffer. The buffer is unchanged when the fix fails.
func (s *FixService) applyFix(result *domain.SessionResult, buffer string, fix resolvedFix, risky bool) string {
	result.Session.TotalFixes++
	if risky {
		result.Session.RiskyFixes++
	}

	res := runTransform(fix.strat, buffer, fix.issue)
	s.learning.RecordOutcome(fix.strat.ID, fix.issue.RuleID, fix.strat.Confidence, res.Success)

	if !res.Success {
		result.Session.FailedFixes++
		s.logger.Debug("fix not applied",
			zap.String("strategy", fix.strat.ID),
			zap.String("rule", fix.issue.RuleID),
			zap.String("explanation", res.Explanation))
		return buffer
	}

	result.Session.SuccessfulFixes++
	res.Confidence = fix.confidence
	result.AppliedFixes = append(result.AppliedFixes, domain.AppliedFix{
		Issue:        fix.issue,
		StrategyID:   fix.strat.ID,
		StrategyName: fix.strat.Name,
		Confidence:   fix.confidence,
		Changes:      res.Changes,
		Explanation:  res.Explanation,
	})
	return res.FixedText
}

// runTransform shields the session from a panicking transform: the panic
// becomes a failed FixResult with the buffer unchanged.
func runTransform(strat *domain.FixStrategy, buffer string, issue domain.Issue) (res domain.FixResult) {
	defer func() {
		if r := recover(); r != nil {
			res = domain.FixResult{
				Success:      false,
				OriginalText: buffer,
				FixedText:    buffer,
				Explanation:  fmt.Sprintf("strategy %s panicked: %v", strat.ID, r),
			}
		}
	}()
	return strat.Transform(buffer, issue)
}

func buildRecommendations(cfg domain.EngineConfig, fixPlan domain.FixPlan, v domain.Verification, after []domain.Issue) []string {
	var recs []string

	if v.RegressionDetected {
		recs = append(recs, "regression detected: a newly introduced issue is critical; review the fixed output before accepting it")
	}

	criticals := 0
	for _, issue := range after {
		if issue.Severity == domain.SeverityCritical {
			criticals++
		}
	}
	if criticals > 0 {
		recs = append(recs, fmt.Sprintf("%d critical issue(s) remain after fixing; manual remediation required", criticals))
	}

	if cfg.SafetyMode && len(fixPlan.Risky) > 0 {
		recs = append(recs, fmt.Sprintf("%d risky fix(es) withheld by safety mode; disable it to apply them", len(fixPlan.Risky)))
	}
	if len(fixPlan.Manual) > 0 {
		recs = append(recs, fmt.Sprintf("%d issue(s) have no automatic strategy and need manual attention", len(fixPlan.Manual)))
	}

	if len(recs) == 0 && v.OverallImprovement {
		recs = append(recs, fmt.Sprintf("issue count reduced from %d to %d", v.BeforeCount, v.AfterCount))
	}
	return recs
}

// enabledIssues drops issues whose rule is disabled in the configuration.
// The same filter runs on both detector passes so verification compares
// like with like.
func enabledIssues(issues []domain.Issue, cfg domain.EngineConfig) []domain.Issue {
	if len(cfg.DisabledRules) == 0 {
		return issues
	}
	out := make([]domain.Issue, 0, len(issues))
	for _, issue := range issues {
		if !cfg.RuleDisabled(issue.RuleID) {
			out = append(out, issue)
		}
	}
	return out
}
