// Package gitinfo resolves repository facts for session stamping. Lookups
// walk up from the target file's directory, so fixing a file deep inside a
// tree still finds the repository root.
package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// shortHashLen matches the abbreviated form git itself prints.
const shortHashLen = 7

// GitInfoAdapter implements domain.GitInfo using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func open(projectPath string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(projectPath, &git.PlainOpenOptions{DetectDotGit: true})
}

func (g *GitInfoAdapter) IsGitRepo(projectPath string) bool {
	_, err := open(projectPath)
	return err == nil
}

// CommitHash returns the full HEAD hash. Sessions store the full form;
// reports abbreviate it with ShortHash.
func (g *GitInfoAdapter) CommitHash(projectPath string) (string, error) {
	repo, err := open(projectPath)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

// ShortHash abbreviates a commit hash for display. Hashes already at or
// below the abbreviated length pass through unchanged.
func ShortHash(hash string) string {
	if len(hash) <= shortHashLen {
		return hash
	}
	return hash[:shortHashLen]
}
