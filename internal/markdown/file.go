package markdown

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// ConvertFile converts the Markdown file at inPath and writes the HTML to
// outPath, creating or truncating it.
//
// The input is read completely before the output is opened, so inPath and
// outPath may name the same file (directly, or through a link).
//
// When outPath is a regular file, or does not exist yet, an exclusive
// advisory lock on "<outPath>.lock" is held while the output is written.
// The lock file is left in place. Other targets such as /dev/stdout are
// written without a lock.
//
// Cancellation of ctx is honoured up to the point where writing begins.
func ConvertFile(ctx context.Context, inPath, outPath string, opts Options) (Stats, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return Stats{}, fmt.Errorf("read %s: %w", inPath, err)
	}

	if needsLock(outPath) {
		fileLock := flock.New(outPath + ".lock")
		if err := fileLock.Lock(); err != nil {
			return Stats{}, fmt.Errorf("lock %s: %w", outPath, err)
		}
		defer func() { _ = fileLock.Unlock() }()
	}

	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	out, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return Stats{}, fmt.Errorf("create %s: %w", outPath, err)
	}

	stats, convErr := Convert(bytes.NewReader(data), out, opts)
	closeErr := out.Close()
	if convErr != nil {
		return stats, fmt.Errorf("convert %s: %w", inPath, convErr)
	}
	if closeErr != nil {
		return stats, fmt.Errorf("close %s: %w", outPath, closeErr)
	}
	return stats, nil
}

// needsLock reports whether outPath should be guarded by a sibling lock
// file: true for regular files and for paths that do not exist yet.
func needsLock(outPath string) bool {
	info, err := os.Stat(outPath)
	if err != nil {
		return true
	}
	return info.Mode().IsRegular()
}
