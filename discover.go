package pathkit

import (
	"context"
	"os"
	"path/filepath"
)

// FindDirsContaining walks the directory tree rooted at base and returns
// every directory, base included, that directly contains an entry named
// filename. Containment is an existence check only: a subdirectory named
// like the marker also qualifies.
//
// Results are depth-first, parent before children, siblings in directory
// listing order. A base that is missing or not a directory yields an empty
// result and no error.
//
// A visited set of symlink-resolved paths guards against cycles, so a
// looping symlink contributes each real directory at most once instead of
// recursing forever. [WithMaxDepth] bounds the recursion; the default
// (from PATHKIT_MAX_DEPTH) is unlimited. [WithFollowSymlinks] controls
// whether symlinked directories are entered at all.
func (k *Kit) FindDirsContaining(ctx context.Context, base, filename string, opts ...Option) ([]string, error) {
	o := k.newOptions(opts...)

	if !DirExists(base) {
		return nil, nil
	}

	visited := make(map[string]struct{})
	var results []string

	var walk func(dir string, depth int) error
	walk = func(dir string, depth int) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			// Continue
		}

		canonical, err := filepath.EvalSymlinks(dir)
		if err != nil {
			canonical = dir
		}
		if _, seen := visited[canonical]; seen {
			return nil
		}
		visited[canonical] = struct{}{}

		if pathExists(filepath.Join(dir, filename)) {
			results = append(results, dir)
		}

		if o.MaxDepth > 0 && depth >= o.MaxDepth {
			return nil
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return &PathError{
				Op:   "finddirscontaining",
				Path: dir,
				Err:  osErr(err),
			}
		}

		for _, entry := range entries {
			// Recursing into a non-directory entry is a no-op.
			if !isDirEntry(entry, dir) {
				continue
			}
			if entry.Type()&os.ModeSymlink != 0 && !o.FollowSymlinks {
				continue
			}
			if err := walk(filepath.Join(dir, entry.Name()), depth+1); err != nil {
				return err
			}
		}

		return nil
	}

	if err := walk(base, 0); err != nil {
		return nil, err
	}
	return results, nil
}
