// Package pathkit provides small, synchronous filesystem helpers: existence
// checks with diagnostic-emitting validators, whole-file copy, pattern-based
// batch copy/delete/replace over a single directory level, path maximisation
// (resolving literal/pattern segments to the numerically highest matching
// directory), first-existing-directory reduction, and recursive discovery of
// subdirectories carrying a marker file.
//
// Every operation completes all of its filesystem work before returning and
// holds no state between calls; concurrent calls against overlapping
// directories are the caller's responsibility to coordinate.
//
// # Basic Usage
//
//	ctx := context.Background()
//
//	// Copy one file, overwriting the destination
//	err := pathkit.CopyFile(ctx, "build/app.conf", "deploy/app.conf")
//
//	// Replace every matching file under deploy/ with the build output
//	err = pathkit.ReplaceMatching(ctx, pathkit.MustGlob("*.so"), "build", "deploy")
//
//	// Resolve the newest installed toolchain
//	bin, found, err := pathkit.MaximizePath(ctx,
//	    pathkit.Lit("/opt/toolchains"),
//	    pathkit.Match(pathkit.MustRegexp(`^v\d+$`)),
//	    pathkit.Lit("bin"))
//
//	// Find every project directory below a workspace root
//	dirs, err := pathkit.FindDirsContaining(ctx, "/srv/workspaces", "project.toml")
//
// # Patterns
//
// Batch operations and path maximisation filter entry names through the
// [Pattern] interface. [Regexp] wraps a regular expression, [Glob] compiles
// gobwas/glob syntax, and [Exact] matches one literal name; the three are
// interchangeable everywhere a Pattern is accepted.
//
// # Error Handling
//
// Existence checks and the validators never fail: absence reads as false,
// and the validators additionally emit a one-line diagnostic through the
// kit's zap logger. All other operations wrap I/O failures in [PathError]
// with sentinel causes:
//
//	err := pathkit.CopyFile(ctx, "missing.txt", "out.txt")
//	if pathkit.IsNotExist(err) {
//	    // Source does not exist
//	}
//
//	var pathErr *pathkit.PathError
//	if errors.As(err, &pathErr) {
//	    fmt.Printf("Operation: %s, Path: %s\n", pathErr.Op, pathErr.Path)
//	}
//
// "Nothing matched" outcomes of [MaximizePath] and [FirstExistingDir] are
// reported through a boolean, never through the error channel.
//
// # Configuration
//
// The package-level functions run on a global [Kit] configured via
// environment variables with the PATHKIT_ prefix; construct a [Kit] with
// [New] to configure programmatically or to inject a logger:
//
//	cfg := &pathkit.Config{
//	    MaxDepth:          8,
//	    FollowSymlinks:    true,
//	    ChecksumAlgorithm: "sha256",
//	}
//	kit, err := pathkit.New(cfg, pathkit.WithLogger(logger))
package pathkit
