package pathkit

import (
	"errors"
	"fmt"

	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Maximum recursion depth for directory discovery (0 = unlimited)
	MaxDepth int `env:"PATHKIT_MAX_DEPTH,default:0"`

	// Follow directory symlinks while discovering subdirectories
	FollowSymlinks bool `env:"PATHKIT_FOLLOW_SYMLINKS,default:true"`

	// Verify copies by re-reading the destination and comparing checksums
	VerifyCopies bool `env:"PATHKIT_VERIFY_COPIES,default:false"`

	// Checksum algorithm used for verified copies (xxhash, sha256, crc32)
	ChecksumAlgorithm string `env:"PATHKIT_CHECKSUM_ALGORITHM,default:xxhash"`

	// Suppress validation diagnostics
	Quiet bool `env:"PATHKIT_QUIET,default:false"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the built-in defaults, independent of environment
func DefaultConfig() *Config {
	return &Config{
		MaxDepth:          0,
		FollowSymlinks:    true,
		VerifyCopies:      false,
		ChecksumAlgorithm: string(ChecksumXXHash),
	}
}

// validateConfig checks configuration validity
func validateConfig(cfg *Config) error {
	if cfg.MaxDepth < 0 {
		return errors.New("max depth must not be negative")
	}

	if cfg.ChecksumAlgorithm != "" {
		if _, err := NewHasher(ChecksumAlgorithm(cfg.ChecksumAlgorithm)); err != nil {
			return fmt.Errorf("invalid checksum algorithm: %s", cfg.ChecksumAlgorithm)
		}
	}

	return nil
}
