// Package vcs wraps the git operations used by the test-and-commit flow.
package vcs

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotGitRepo is returned when a git command runs outside a repository.
var ErrNotGitRepo = errors.New("not a git repository")

// Client runs git subcommands rooted at a single directory.
type Client struct {
	dir string
}

// New creates a git client for dir. It does not require dir to be a
// repository; operations fail with git's own diagnostics when it is not.
func New(dir string) *Client {
	return &Client{dir: dir}
}

// IsRepo reports whether the client directory contains a .git entry.
// .git can be a directory (normal repo) or a file (worktree).
func (c *Client) IsRepo() bool {
	info, err := os.Stat(filepath.Join(c.dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir() || info.Mode().IsRegular()
}

// StageAll stages every change in the working tree (git add -A).
func (c *Client) StageAll() error {
	return c.run("add", "-A")
}

// Commit records a commit with the given message.
func (c *Client) Commit(message string) error {
	return c.run("commit", "-m", message)
}

// CommitAll stages all changes and commits them. Either step failing
// aborts the sequence; the returned error names the failing step.
func (c *Client) CommitAll(message string) error {
	if err := c.StageAll(); err != nil {
		return fmt.Errorf("stage: %w", err)
	}
	if err := c.Commit(message); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// DiscardAll throws away all local modifications, restoring the working
// tree and index to HEAD (git reset --hard).
func (c *Client) DiscardAll() error {
	return c.run("reset", "--hard", "HEAD")
}

func (c *Client) run(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(output))
		if strings.Contains(msg, "not a git repository") {
			return fmt.Errorf("git %s: %w", args[0], ErrNotGitRepo)
		}
		if msg == "" {
			return fmt.Errorf("git %s: %w", args[0], err)
		}
		return fmt.Errorf("git %s: %s: %w", args[0], msg, err)
	}
	return nil
}
