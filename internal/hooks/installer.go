// Package hooks installs shared git hook templates and refreshes existing
// checkouts so they pick the templates up.
package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
)

// DefaultTemplatePath is where hook templates land when no other location is
// given.
const DefaultTemplatePath = "~/.git-templates"

// Installer copies the bundled hook scripts into a git template directory and
// registers that directory as the global init.templatedir.
type Installer struct {
	run func(ctx context.Context, dir string, args ...string) error
}

// NewInstaller returns an Installer that shells out to git.
func NewInstaller() *Installer {
	return &Installer{run: runGit}
}

// Install registers templatePath as the global init.templatedir, copies the
// bundled hook scripts into its hooks directory, and reinitializes every git
// repository found under updatePaths so the templates take effect. With
// force, hooks matching the bundled ones are removed from found repositories
// first; git init alone never overwrites an existing hook.
func (i *Installer) Install(ctx context.Context, templatePath string, updatePaths []string, force bool) error {
	// Git resolves a leading ~ in the config value itself, so it is stored raw.
	if err := i.run(ctx, "", "config", "--global", "init.templatedir", templatePath); err != nil {
		return err
	}

	names, err := i.copyTemplates(templatePath)
	if err != nil {
		return err
	}

	for _, updatePath := range updatePaths {
		if err := i.updateRepos(ctx, updatePath, names, force); err != nil {
			return err
		}
	}

	return nil
}

// copyTemplates writes the bundled hook scripts into <templatePath>/hooks and
// returns their names.
func (i *Installer) copyTemplates(templatePath string) (map[string]bool, error) {
	expanded, err := expandUser(templatePath)
	if err != nil {
		return nil, err
	}

	hooksDir := filepath.Join(expanded, "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", hooksDir, err)
	}

	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("reading bundled templates: %w", err)
	}

	names := make(map[string]bool, len(entries))
	for _, entry := range entries {
		data, err := templatesFS.ReadFile(path.Join("templates", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading bundled template %s: %w", entry.Name(), err)
		}

		dest := filepath.Join(hooksDir, entry.Name())
		if err := os.WriteFile(dest, data, 0o755); err != nil {
			return nil, fmt.Errorf("writing %s: %w", dest, err)
		}
		names[entry.Name()] = true
	}

	slog.Info("hook templates installed", "dir", hooksDir, "hooks", len(names))
	return names, nil
}

// updateRepos walks root and reinitializes every repository it finds. A
// directory is a repository when it holds a .git directory; the walk does
// not descend into .git itself, so nested checkouts are still picked up.
func (i *Installer) updateRepos(ctx context.Context, root string, names map[string]bool, force bool) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || d.Name() != ".git" {
			return nil
		}

		if force {
			if err := removeManagedHooks(p, names); err != nil {
				return err
			}
		}

		repoDir := filepath.Dir(p)
		if err := i.run(ctx, repoDir, "init"); err != nil {
			return err
		}
		slog.Info("repository hooks refreshed", "repo", repoDir)

		return fs.SkipDir
	})
}

// removeManagedHooks deletes hooks matching the bundled template names from
// the repository's .git/hooks directory. Foreign hooks are left alone.
func removeManagedHooks(gitDir string, names map[string]bool) error {
	hooksDir := filepath.Join(gitDir, "hooks")
	entries, err := os.ReadDir(hooksDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", hooksDir, err)
	}

	for _, entry := range entries {
		if !names[entry.Name()] {
			continue
		}
		if err := os.Remove(filepath.Join(hooksDir, entry.Name())); err != nil {
			return fmt.Errorf("removing old hook: %w", err)
		}
	}

	return nil
}

// expandUser resolves a leading ~ to the current user's home directory.
func expandUser(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

func runGit(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, bytes.TrimSpace(out))
	}
	return nil
}
