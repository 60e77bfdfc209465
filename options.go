package pathkit

// Option represents a per-call configuration option
type Option func(*Options)

// Options contains all possible options for pathkit operations.
// Zero values mean "use the kit's configured default".
type Options struct {
	// Verify re-reads the destination after a copy and compares checksums
	Verify bool

	// Algorithm is the checksum algorithm used when Verify is set
	Algorithm ChecksumAlgorithm

	// MaxDepth limits recursion during directory discovery (0 = unlimited)
	MaxDepth int

	// FollowSymlinks controls whether discovery descends into symlinked
	// directories
	FollowSymlinks bool

	// Message replaces the default diagnostic emitted by the validators
	Message string
}

// WithVerify enables or disables checksum verification after a copy
func WithVerify(verify bool) Option {
	return func(o *Options) {
		o.Verify = verify
	}
}

// WithChecksumAlgorithm sets the checksum algorithm for verified copies
func WithChecksumAlgorithm(algorithm ChecksumAlgorithm) Option {
	return func(o *Options) {
		o.Algorithm = algorithm
	}
}

// WithMaxDepth limits how deep directory discovery recurses below the base
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		o.MaxDepth = depth
	}
}

// WithFollowSymlinks enables or disables descending into symlinked
// directories during discovery
func WithFollowSymlinks(follow bool) Option {
	return func(o *Options) {
		o.FollowSymlinks = follow
	}
}

// WithMessage sets a custom diagnostic message for the validators
func WithMessage(message string) Option {
	return func(o *Options) {
		o.Message = message
	}
}

// newOptions seeds Options from the kit configuration and applies overrides
func (k *Kit) newOptions(opts ...Option) *Options {
	o := &Options{
		Verify:         k.cfg.VerifyCopies,
		Algorithm:      ChecksumAlgorithm(k.cfg.ChecksumAlgorithm),
		MaxDepth:       k.cfg.MaxDepth,
		FollowSymlinks: k.cfg.FollowSymlinks,
	}
	if o.Algorithm == "" {
		o.Algorithm = ChecksumXXHash
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
