package fsutil

import (
	"context"
	"fmt"
	"os"
)

// CopyFile copies src to dst atomically, keeping the source permissions.
// It reports whether dst changed.
func CopyFile(ctx context.Context, src, dst string) (bool, error) {
	content, info, err := ReadFile(ctx, src)
	if err != nil {
		return false, fmt.Errorf("copy %s: %w", src, err)
	}

	mode := info.Mode.Perm()
	if mode == 0 {
		mode = DefaultFileMode
	}

	changed, err := WriteAtomicIfChanged(ctx, dst, content, mode)
	if err != nil {
		return false, fmt.Errorf("copy to %s: %w", dst, err)
	}
	return changed, nil
}

// SameFile reports whether a and b name the same file on disk.
func SameFile(a, b string) bool {
	sa, err := os.Stat(a)
	if err != nil {
		return false
	}
	sb, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(sa, sb)
}
