package pathkit

import (
	"bytes"
	"context"
	"fmt"
	"os"
)

// CopyFile reads the entire source file into memory and writes it to dst,
// overwriting dst unconditionally if present and creating it if absent.
// The parent directory of dst must already exist. Whole-file buffering is
// the accepted contract; this is not suitable for files larger than
// available memory.
//
// With [WithVerify] (or VerifyCopies in the config) the destination is
// re-read afterwards and its checksum compared against the buffered source
// content; a difference surfaces as [ErrChecksumMismatch].
func (k *Kit) CopyFile(ctx context.Context, src, dst string, opts ...Option) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Continue
	}

	o := k.newOptions(opts...)

	data, err := os.ReadFile(src)
	if err != nil {
		return &PathError{
			Op:   "copyfile",
			Path: src,
			Err:  osErr(err),
		}
	}

	if err := os.WriteFile(dst, data, 0644); err != nil {
		return &PathError{
			Op:   "copyfile",
			Path: dst,
			Err:  osErr(err),
		}
	}

	if !o.Verify {
		return nil
	}

	want, err := CalculateChecksum(bytes.NewReader(data), o.Algorithm)
	if err != nil {
		return &PathError{Op: "copyfile", Path: dst, Err: err}
	}
	got, err := ChecksumFile(dst, o.Algorithm)
	if err != nil {
		return err
	}
	if got != want {
		return &PathError{
			Op:   "copyfile",
			Path: dst,
			Err:  fmt.Errorf("%w: %s != %s", ErrChecksumMismatch, got, want),
		}
	}

	return nil
}
