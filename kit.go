package pathkit

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/gobeaver/beaver-kit/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global instance
var (
	defaultKit  *Kit
	defaultOnce sync.Once
	defaultErr  error
)

// Kit bundles configuration and the diagnostic logger shared by all
// operations. The zero-dependency way to get one is [Default]; callers that
// need custom wiring use [New].
type Kit struct {
	cfg    *Config
	logger *zap.Logger
}

// KitOption customizes a Kit during construction
type KitOption func(*Kit)

// WithLogger injects the logger used for validation diagnostics and
// debug reporting
func WithLogger(logger *zap.Logger) KitOption {
	return func(k *Kit) {
		k.logger = logger
	}
}

// New creates a new Kit with the given config. A nil config means the
// built-in defaults.
func New(cfg *Config, opts ...KitOption) (*Kit, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	k := &Kit{cfg: cfg}
	for _, opt := range opts {
		opt(k)
	}
	if k.logger == nil {
		k.logger = newDefaultLogger()
	}

	return k, nil
}

// Logger returns the kit's diagnostic logger
func (k *Kit) Logger() *zap.Logger {
	return k.logger
}

// Builder provides a way to create Kit instances with a custom env prefix
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global Kit instance using the builder's prefix
func (b *Builder) Init() error {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return err
	}
	return Init(cfg)
}

// New creates a new Kit instance using the builder's prefix
func (b *Builder) New() (*Kit, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return New(cfg)
}

// Init initializes the global kit instance
func Init(configs ...*Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		defaultKit, defaultErr = New(cfg)
	})

	return defaultErr
}

// Default returns the global instance, initializing if needed with error handling
func Default() (*Kit, error) {
	if defaultKit == nil {
		if err := Init(); err != nil {
			return nil, err
		}
	}
	return defaultKit, nil
}

// Reset clears the global instance (for testing)
func Reset() {
	defaultKit = nil
	defaultOnce = sync.Once{}
	defaultErr = nil
}

// def returns the global kit, falling back to built-in defaults when the
// environment configuration does not load. Package-level operations stay
// total this way.
func def() *Kit {
	k, err := Default()
	if err == nil {
		return k
	}
	k, _ = New(DefaultConfig())
	return k
}

// newDefaultLogger builds a console-encoded stderr logger for validation
// diagnostics
func newDefaultLogger() *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zapcore.ErrorLevel,
	)
	return zap.New(core)
}

// ============================================================================
// Package-Level Convenience Functions
// ============================================================================
// These delegate to the global kit so simple callers never construct one.

// ValidateDir reports whether path is an existing directory using the
// global kit, logging a diagnostic when it is not
func ValidateDir(path string, opts ...Option) bool {
	return def().ValidateDir(path, opts...)
}

// ValidateFile reports whether path is an existing regular file using the
// global kit, logging a diagnostic when it is not
func ValidateFile(path string, opts ...Option) bool {
	return def().ValidateFile(path, opts...)
}

// CopyFile copies src to dst using the global kit
func CopyFile(ctx context.Context, src, dst string, opts ...Option) error {
	return def().CopyFile(ctx, src, dst, opts...)
}

// CopyMatching copies matching immediate children of srcDir into dstDir
// using the global kit
func CopyMatching(ctx context.Context, p Pattern, srcDir, dstDir string, opts ...Option) error {
	return def().CopyMatching(ctx, p, srcDir, dstDir, opts...)
}

// DeleteMatching deletes matching immediate children of dir using the
// global kit
func DeleteMatching(ctx context.Context, p Pattern, dir string) error {
	return def().DeleteMatching(ctx, p, dir)
}

// ReplaceMatching deletes then re-copies matching files using the global kit
func ReplaceMatching(ctx context.Context, p Pattern, srcDir, dstDir string, opts ...Option) error {
	return def().ReplaceMatching(ctx, p, srcDir, dstDir, opts...)
}

// MaximizePath resolves segments into a concrete path using the global kit
func MaximizePath(ctx context.Context, segments ...Segment) (string, bool, error) {
	return def().MaximizePath(ctx, segments...)
}

// FindDirsContaining discovers subdirectories containing filename using the
// global kit
func FindDirsContaining(ctx context.Context, base, filename string, opts ...Option) ([]string, error) {
	return def().FindDirsContaining(ctx, base, filename, opts...)
}
