package pathkit

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirExists reports whether path exists and is a directory.
// Any stat failure reads as absent; this tier never returns an error.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileExists reports whether path exists and is a regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// pathExists reports whether anything exists at path, without type-checking.
// Discovery treats a directory named like the marker file as containment.
func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// isDirEntry reports whether the entry is a directory or a symlink that
// resolves to a directory. parent is needed to build the full path for
// symlink resolution.
func isDirEntry(entry os.DirEntry, parent string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(parent, entry.Name()))
	return err == nil && info.IsDir()
}

// ValidateDir returns [DirExists] for path. When the check fails it logs a
// one-line diagnostic through the kit's logger and still returns false; it
// never returns an error. Use [WithMessage] to replace the default line.
func (k *Kit) ValidateDir(path string, opts ...Option) bool {
	if DirExists(path) {
		return true
	}
	k.reportInvalid("ValidateDir", "directory", path, opts...)
	return false
}

// ValidateFile is the file counterpart of [ValidateDir]
func (k *Kit) ValidateFile(path string, opts ...Option) bool {
	if FileExists(path) {
		return true
	}
	k.reportInvalid("ValidateFile", "file", path, opts...)
	return false
}

func (k *Kit) reportInvalid(op, kind, path string, opts ...Option) {
	if k.cfg.Quiet {
		return
	}
	o := k.newOptions(opts...)
	msg := o.Message
	if msg == "" {
		msg = fmt.Sprintf("Error %s() the %s path is not valid %s", op, kind, path)
	}
	k.logger.Error(msg)
}
