package pathkit

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDirExistsFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	file := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(file, []byte("content"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	missing := filepath.Join(tmpDir, "missing")

	tests := []struct {
		name     string
		path     string
		wantDir  bool
		wantFile bool
	}{
		{
			name:     "existing directory",
			path:     tmpDir,
			wantDir:  true,
			wantFile: false,
		},
		{
			name:     "existing regular file",
			path:     file,
			wantDir:  false,
			wantFile: true,
		},
		{
			name:     "missing path",
			path:     missing,
			wantDir:  false,
			wantFile: false,
		},
		{
			name:     "empty path",
			path:     "",
			wantDir:  false,
			wantFile: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DirExists(tt.path); got != tt.wantDir {
				t.Errorf("DirExists(%q) = %v, want %v", tt.path, got, tt.wantDir)
			}
			if got := FileExists(tt.path); got != tt.wantFile {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.wantFile)
			}
		})
	}
}

func newObservedKit(t *testing.T, cfg *Config) (*Kit, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	k, err := New(cfg, WithLogger(zap.New(core)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return k, logs
}

func TestValidateDir(t *testing.T) {
	tmpDir := t.TempDir()
	missing := filepath.Join(tmpDir, "missing")

	t.Run("existing directory logs nothing", func(t *testing.T) {
		k, logs := newObservedKit(t, nil)
		if !k.ValidateDir(tmpDir) {
			t.Errorf("ValidateDir(%q) = false, want true", tmpDir)
		}
		if logs.Len() != 0 {
			t.Errorf("expected no diagnostics, got %d", logs.Len())
		}
	})

	t.Run("missing directory logs default diagnostic", func(t *testing.T) {
		k, logs := newObservedKit(t, nil)
		if k.ValidateDir(missing) {
			t.Errorf("ValidateDir(%q) = true, want false", missing)
		}
		entries := logs.All()
		if len(entries) != 1 {
			t.Fatalf("expected 1 diagnostic, got %d", len(entries))
		}
		want := "Error ValidateDir() the directory path is not valid " + missing
		if entries[0].Message != want {
			t.Errorf("diagnostic = %q, want %q", entries[0].Message, want)
		}
		if entries[0].Level != zapcore.ErrorLevel {
			t.Errorf("diagnostic level = %v, want %v", entries[0].Level, zapcore.ErrorLevel)
		}
	})

	t.Run("custom message", func(t *testing.T) {
		k, logs := newObservedKit(t, nil)
		k.ValidateDir(missing, WithMessage("toolchain root missing"))
		entries := logs.All()
		if len(entries) != 1 {
			t.Fatalf("expected 1 diagnostic, got %d", len(entries))
		}
		if entries[0].Message != "toolchain root missing" {
			t.Errorf("diagnostic = %q, want custom message", entries[0].Message)
		}
	})

	t.Run("quiet config suppresses diagnostics", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Quiet = true
		k, logs := newObservedKit(t, cfg)
		if k.ValidateDir(missing) {
			t.Errorf("ValidateDir(%q) = true, want false", missing)
		}
		if logs.Len() != 0 {
			t.Errorf("expected no diagnostics with Quiet, got %d", logs.Len())
		}
	})
}

func TestValidateFile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "present.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	missing := filepath.Join(tmpDir, "absent.txt")

	k, logs := newObservedKit(t, nil)

	if !k.ValidateFile(file) {
		t.Errorf("ValidateFile(%q) = false, want true", file)
	}
	// A directory is not a valid file path.
	if k.ValidateFile(tmpDir) {
		t.Errorf("ValidateFile(%q) = true for a directory, want false", tmpDir)
	}
	if k.ValidateFile(missing) {
		t.Errorf("ValidateFile(%q) = true, want false", missing)
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(entries))
	}
	want := "Error ValidateFile() the file path is not valid " + missing
	if entries[1].Message != want {
		t.Errorf("diagnostic = %q, want %q", entries[1].Message, want)
	}
}
