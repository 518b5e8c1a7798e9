// Package adapter contains filesystem and report adapters for the freshreadme CLI.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	m "github.com/dmi3/freshreadme/internal/model"
)

const (
	tempFilePrefix  = ".freshreadme-"
	maxTempAttempts = 10
	defaultFileMode = os.FileMode(0o644)
)

// FileFilter selects files under a root with include/exclude globs. Globs are
// matched against slash-separated paths relative to Root and support "**".
type FileFilter struct {
	Root    m.Path
	Include []string
	Exclude []string
}

// Validate checks that every glob is well formed.
func (f FileFilter) Validate() error {
	for _, pattern := range append(append([]string{}, f.Include...), f.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: invalid glob %q", m.ErrConfiguration, pattern)
		}
	}

	return nil
}

// SourceFSAdapter abstracts the filesystem the sync workflow reads from and,
// in update mode, writes to. It hides direct `os` access so the workflow can
// be tested against an in-memory tree.
type SourceFSAdapter interface {
	// List returns the files selected by filter, sorted.
	List(ctx context.Context, filter FileFilter) ([]m.Path, error)

	// ReadFile loads a file and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// Exists reports whether path exists.
	Exists(ctx context.Context, path m.Path) (bool, error)

	// WriteFileAtomic replaces the content of path all at once: the data is
	// written to a temporary file next to it which is then renamed over it.
	WriteFileAtomic(ctx context.Context, path m.Path, content []byte) error
}

// BillySourceFSAdapter implements SourceFSAdapter on top of a go-billy filesystem.
type BillySourceFSAdapter struct {
	fs billy.Filesystem
}

// NewSourceFSAdapter wraps an existing go-billy filesystem.
func NewSourceFSAdapter(fs billy.Filesystem) *BillySourceFSAdapter {
	return &BillySourceFSAdapter{fs: fs}
}

// NewLocalSourceFSAdapter constructs an adapter rooted at dir on the local disk.
func NewLocalSourceFSAdapter(dir string) *BillySourceFSAdapter {
	return NewSourceFSAdapter(osfs.New(dir))
}

// NewMemorySourceFSAdapter constructs an adapter over an empty in-memory filesystem.
func NewMemorySourceFSAdapter() *BillySourceFSAdapter {
	return NewSourceFSAdapter(memfs.New())
}

// Filesystem returns the underlying go-billy filesystem.
//
//nolint:ireturn // exposing the adapter target is intentional.
func (a *BillySourceFSAdapter) Filesystem() billy.Filesystem {
	return a.fs
}

// List walks filter.Root and returns matching files. Excluded directories
// are not descended into.
func (a *BillySourceFSAdapter) List(ctx context.Context, filter FileFilter) ([]m.Path, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	root := cleanRoot(filter.Root)

	var files []m.Path

	err := util.Walk(a.fs, root, func(p string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return relErr
		}

		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if matchAny(filter.Exclude, rel) {
			if info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}

		if len(filter.Include) == 0 || matchAny(filter.Include, rel) {
			files = append(files, m.Path(filepath.ToSlash(p)))
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		slog.Error("Failed to list files", "root", root, "error", err)

		return nil, fmt.Errorf("%w: list %s: %w", m.ErrIO, root, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	slog.Debug("Listed files", "root", root, "count", len(files))

	return files, nil
}

// ReadFile loads file contents.
func (a *BillySourceFSAdapter) ReadFile(ctx context.Context, p m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := util.ReadFile(a.fs, string(p))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", m.ErrIO, p, err)
	}

	return data, nil
}

// Exists reports whether the path exists.
func (a *BillySourceFSAdapter) Exists(ctx context.Context, p m.Path) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := a.fs.Stat(string(p))

	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("%w: stat %s: %w", m.ErrIO, p, err)
	}
}

// WriteFileAtomic writes content to a temp file in the same directory and
// renames it over path. The temp file is created with the mode of the file
// it replaces. A cancelled context leaves path untouched.
func (a *BillySourceFSAdapter) WriteFileAtomic(ctx context.Context, p m.Path, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := string(p)

	tmp, tmpName, err := a.createTemp(target)
	if err != nil {
		return fmt.Errorf("%w: create temp file for %s: %w", m.ErrIO, p, err)
	}

	if err := writeAndClose(tmp, content); err != nil {
		a.removeTemp(tmpName)
		return fmt.Errorf("%w: write temp file for %s: %w", m.ErrIO, p, err)
	}

	if err := ctx.Err(); err != nil {
		a.removeTemp(tmpName)
		return err
	}

	if err := a.fs.Rename(tmpName, target); err != nil {
		a.removeTemp(tmpName)
		return fmt.Errorf("%w: replace %s: %w", m.ErrIO, p, err)
	}

	slog.Debug("Replaced file", "path", p, "bytes", len(content))

	return nil
}

// createTemp returns the file and the path it was created at. memfs files
// only report their base name.
//
//nolint:ireturn // billy files are only exposed as interfaces.
func (a *BillySourceFSAdapter) createTemp(target string) (billy.File, string, error) {
	perm := defaultFileMode
	if info, err := a.fs.Stat(target); err == nil {
		perm = info.Mode().Perm()
	}

	dir := path.Dir(target)

	for attempt := 1; ; attempt++ {
		name := a.fs.Join(dir, fmt.Sprintf("%s%08x", tempFilePrefix, rand.Uint32()))

		f, err := a.fs.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
		if err == nil || !os.IsExist(err) || attempt == maxTempAttempts {
			return f, name, err
		}
	}
}

func (a *BillySourceFSAdapter) removeTemp(name string) {
	if err := a.fs.Remove(name); err != nil {
		slog.Error("Failed to remove temp file", "path", name, "error", err)
	}
}

func writeAndClose(f billy.File, content []byte) error {
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func cleanRoot(root m.Path) string {
	if root == "" {
		return "."
	}

	return filepath.Clean(string(root))
}

func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}

	return false
}
