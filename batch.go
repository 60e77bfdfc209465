package pathkit

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// CopyMatching lists the immediate children of srcDir and copies every
// regular file whose base name satisfies p into dstDir under the same base
// name, via [Kit.CopyFile] semantics. The first failing copy halts the
// operation and propagates.
//
// Matching entries that are directories are skipped (and logged at debug
// level) rather than attempted as file copies.
func (k *Kit) CopyMatching(ctx context.Context, p Pattern, srcDir, dstDir string, opts ...Option) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Continue
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return &PathError{
			Op:   "copymatching",
			Path: srcDir,
			Err:  osErr(err),
		}
	}

	for _, entry := range entries {
		if !p.Matches(entry.Name()) {
			continue
		}
		if entry.IsDir() {
			k.logger.Debug("copymatching: skipping directory entry",
				zap.String("name", entry.Name()),
				zap.String("dir", srcDir))
			continue
		}

		src := filepath.Join(srcDir, entry.Name())
		dst := filepath.Join(dstDir, entry.Name())
		if err := k.CopyFile(ctx, src, dst, opts...); err != nil {
			return err
		}
	}

	return nil
}

// DeleteMatching lists the immediate children of dir and removes every
// entry whose base name satisfies p. The first entry that cannot be
// removed halts the operation and propagates.
func (k *Kit) DeleteMatching(ctx context.Context, p Pattern, dir string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Continue
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return &PathError{
			Op:   "deletematching",
			Path: dir,
			Err:  osErr(err),
		}
	}

	for _, entry := range entries {
		if !p.Matches(entry.Name()) {
			continue
		}

		full := filepath.Join(dir, entry.Name())
		if err := os.Remove(full); err != nil {
			return &PathError{
				Op:   "deletematching",
				Path: full,
				Err:  osErr(err),
			}
		}
	}

	return nil
}

// ReplaceMatching performs [Kit.DeleteMatching] on dstDir followed by
// [Kit.CopyMatching] from srcDir.
//
// The sequence is not atomic: when the delete phase succeeds but the copy
// phase fails partway, the destination is left with some matched files
// deleted and not replaced. Callers that cannot tolerate this must stage
// into a scratch directory themselves.
func (k *Kit) ReplaceMatching(ctx context.Context, p Pattern, srcDir, dstDir string, opts ...Option) error {
	if err := k.DeleteMatching(ctx, p, dstDir); err != nil {
		return err
	}
	return k.CopyMatching(ctx, p, srcDir, dstDir, opts...)
}
