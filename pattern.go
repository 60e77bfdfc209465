package pathkit

import (
	"regexp"

	"github.com/gobwas/glob"
)

// ============================================================================
// Pattern Interface
// ============================================================================

// Pattern tests directory entry names during batch operations and path
// maximisation. Implementations must be safe for concurrent use.
//
// Example usage:
//
//	// Regular expression (the classic choice for version directories)
//	err := pathkit.DeleteMatching(ctx, pathkit.MustRegexp(`\.log$`), "/var/tmp/build")
//
//	// Glob syntax
//	err := pathkit.DeleteMatching(ctx, pathkit.MustGlob("*.log"), "/var/tmp/build")
type Pattern interface {
	// Matches reports whether the entry base name satisfies the pattern.
	Matches(name string) bool

	// String returns the source text of the pattern, for diagnostics.
	String() string
}

// ============================================================================
// Pattern Implementations
// ============================================================================

type regexpPattern struct {
	re *regexp.Regexp
}

func (p regexpPattern) Matches(name string) bool { return p.re.MatchString(name) }
func (p regexpPattern) String() string           { return p.re.String() }

// Regexp wraps a compiled regular expression as a [Pattern]
func Regexp(re *regexp.Regexp) Pattern {
	return regexpPattern{re: re}
}

// MustRegexp compiles expr and wraps it as a [Pattern].
// It panics if the expression does not compile.
func MustRegexp(expr string) Pattern {
	return regexpPattern{re: regexp.MustCompile(expr)}
}

type globPattern struct {
	g   glob.Glob
	src string
}

func (p globPattern) Matches(name string) bool { return p.g.Match(name) }
func (p globPattern) String() string           { return p.src }

// Glob compiles pattern using gobwas/glob syntax and wraps it as a [Pattern]
func Glob(pattern string) (Pattern, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return globPattern{g: g, src: pattern}, nil
}

// MustGlob compiles pattern and wraps it as a [Pattern].
// It panics if the pattern does not compile.
func MustGlob(pattern string) Pattern {
	return globPattern{g: glob.MustCompile(pattern), src: pattern}
}

type exactPattern string

func (p exactPattern) Matches(name string) bool { return string(p) == name }
func (p exactPattern) String() string           { return string(p) }

// Exact matches a single literal entry name
func Exact(name string) Pattern {
	return exactPattern(name)
}

// ============================================================================
// Path Segments
// ============================================================================

type segmentKind int

const (
	litSegment segmentKind = iota
	matchSegment
)

// Segment is one element of a [MaximizePath] call: either a literal path
// component used verbatim, or a pattern matched against the entries of the
// directory resolved so far. Build segments with [Lit] and [Match]; the
// zero value behaves as an empty literal.
type Segment struct {
	kind    segmentKind
	lit     string
	pattern Pattern
}

// Lit returns a literal segment. The string must already be a well-formed
// path component; callers coerce non-string values before constructing it.
func Lit(s string) Segment {
	return Segment{kind: litSegment, lit: s}
}

// Match returns a pattern segment resolved against child directories of
// the prefix resolved so far, preferring the numerically highest match
func Match(p Pattern) Segment {
	return Segment{kind: matchSegment, pattern: p}
}
