package domain

import "context"

// IssueDetector finds issues in a file's text content. The engine treats
// it as a black box and calls it exactly twice per session: before fixing
// and after. A returned error aborts the whole session.
type IssueDetector interface {
	DetectIssues(ctx context.Context, filePath, content string) (*Detection, error)
}

// LearningPersistence loads and saves learning statistics keyed by
// "strategyID|ruleID" for a project directory.
type LearningPersistence interface {
	Load(projectPath string) (map[string]LearningEntry, error)
	Save(projectPath string, entries map[string]LearningEntry) error
}

// GitInfo reports version-control metadata for stamping session records.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// ConfigLoader reads the engine configuration for a project directory.
type ConfigLoader interface {
	Load(projectPath string) (EngineConfig, error)
}
