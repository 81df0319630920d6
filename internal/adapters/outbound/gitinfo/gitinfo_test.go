package gitinfo_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remedykit/remedy/internal/adapters/outbound/gitinfo"
)

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, string(out))
}

func TestIsGitRepo(t *testing.T) {
	dir := t.TempDir()
	gi := gitinfo.New()
	assert.False(t, gi.IsGitRepo(dir))

	runGit(t, dir, "init")
	assert.True(t, gi.IsGitRepo(dir))
}

func TestIsGitRepo_DetectsFromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")
	sub := filepath.Join(dir, "src")
	require.NoError(t, os.Mkdir(sub, 0755))

	assert.True(t, gitinfo.New().IsGitRepo(sub))
}

func TestCommitHash(t *testing.T) {
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("hello"), 0644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "init")

	hash, err := gitinfo.New().CommitHash(dir)
	require.NoError(t, err)
	assert.Len(t, hash, 40, "full SHA-1 hash")
}

func TestCommitHash_NotARepo(t *testing.T) {
	_, err := gitinfo.New().CommitHash(t.TempDir())
	assert.Error(t, err)
}

func TestShortHash(t *testing.T) {
	assert.Equal(t, "abc1234", gitinfo.ShortHash("abc1234def5678abc1234def5678abc1234def56"))
	assert.Equal(t, "abc1234", gitinfo.ShortHash("abc1234"))
	assert.Equal(t, "ab", gitinfo.ShortHash("ab"))
	assert.Equal(t, "", gitinfo.ShortHash(""))
}
