package markdown

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFixture creates a file with the given content inside a fresh temp dir
// and returns its path.
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestConvertFile writes the output file next to its lock file.
func TestConvertFile(t *testing.T) {
	in := writeFixture(t, "README.md", "# Hello\nworld\n")
	out := filepath.Join(t.TempDir(), "README.html")

	stats, err := ConvertFile(context.Background(), in, out, Options{})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hello</h1>\n<p>world</p>\n", string(data))
	assert.Equal(t, int64(len(data)), stats.Bytes)

	assert.FileExists(t, out+".lock", "lock file stays in place after unlocking")
}

// TestConvertFile_TruncatesExisting verifies that stale output is replaced.
func TestConvertFile_TruncatesExisting(t *testing.T) {
	in := writeFixture(t, "in.md", "short\n")
	out := writeFixture(t, "out.html", "a much longer stale body that must disappear\n")

	_, err := ConvertFile(context.Background(), in, out, Options{})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<p>short</p>\n", string(data))
}

// TestConvertFile_SameFile converts a file onto itself, directly and
// through symbolic and hard links.
func TestConvertFile_SameFile(t *testing.T) {
	const source = "# Title\nbody\n"
	const want = "<h1>Title</h1>\n<p>body</p>\n"

	tests := []struct {
		name string
		// out returns the output path for the given input path.
		out func(t *testing.T, in string) string
	}{
		{
			name: "same path",
			out:  func(t *testing.T, in string) string { return in },
		},
		{
			name: "symlink to input",
			out: func(t *testing.T, in string) string {
				link := filepath.Join(filepath.Dir(in), "link.md")
				require.NoError(t, os.Symlink(in, link))
				return link
			},
		},
		{
			name: "hard link to input",
			out: func(t *testing.T, in string) string {
				link := filepath.Join(filepath.Dir(in), "hard.md")
				require.NoError(t, os.Link(in, link))
				return link
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := writeFixture(t, "doc.md", source)
			out := tt.out(t, in)

			_, err := ConvertFile(context.Background(), in, out, Options{})
			require.NoError(t, err)

			data, err := os.ReadFile(in)
			require.NoError(t, err)
			assert.Equal(t, want, string(data))
		})
	}
}

// TestConvertFile_DeviceOutput writes to a non-regular target without
// creating a lock file beside it.
func TestConvertFile_DeviceOutput(t *testing.T) {
	info, err := os.Stat(os.DevNull)
	if err != nil || info.Mode().IsRegular() {
		t.Skip("no null device available")
	}

	in := writeFixture(t, "in.md", "# x\n")

	stats, err := ConvertFile(context.Background(), in, os.DevNull, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Headings)
	assert.NoFileExists(t, os.DevNull+".lock")
}

// TestNeedsLock covers regular, missing and non-regular output paths.
func TestNeedsLock(t *testing.T) {
	dir := t.TempDir()
	regular := writeFixture(t, "out.html", "")

	assert.True(t, needsLock(regular))
	assert.True(t, needsLock(filepath.Join(dir, "new.html")))
	assert.False(t, needsLock(dir))
}

// TestConvertFile_MissingInput reports the input path in the error.
func TestConvertFile_MissingInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "missing.md")
	out := filepath.Join(dir, "out.html")

	_, err := ConvertFile(context.Background(), in, out, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.md")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output should be created")
}

// TestConvertFile_UnwritableOutput fails when the output directory is absent.
func TestConvertFile_UnwritableOutput(t *testing.T) {
	in := writeFixture(t, "in.md", "x\n")
	out := filepath.Join(t.TempDir(), "no-such-dir", "out.html")

	_, err := ConvertFile(context.Background(), in, out, Options{})
	assert.Error(t, err)
}

// TestConvertFile_CancelledContext stops before the output is created.
func TestConvertFile_CancelledContext(t *testing.T) {
	in := writeFixture(t, "in.md", "x\n")
	out := filepath.Join(t.TempDir(), "out.html")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ConvertFile(ctx, in, out, Options{})
	require.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}
