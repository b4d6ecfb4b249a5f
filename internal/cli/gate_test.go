package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rachael-ojo/alx-frontend-for-fun/internal/model"
)

// TestValidateArgs checks the positional argument count rule.
func TestValidateArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		hasError bool
	}{
		{"none", []string{}, true},
		{"one", []string{"in.md"}, true},
		{"two", []string{"in.md", "out.html"}, false},
		{"three", []string{"in.md", "out.html", "extra"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateArgs(nil, tt.args)
			if tt.hasError {
				require.Error(t, err)
				assert.True(t, model.IsKind(err, model.KindUsage))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestCheckInput covers existing files, missing paths and non-regular files.
func TestCheckInput(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(file, []byte("# hi\n"), 0644))

	empty := filepath.Join(dir, "empty.md")
	require.NoError(t, os.WriteFile(empty, nil, 0644))

	t.Run("existing file", func(t *testing.T) {
		assert.NoError(t, CheckInput(file))
	})

	t.Run("empty file exists", func(t *testing.T) {
		assert.NoError(t, CheckInput(empty))
	})

	t.Run("missing file", func(t *testing.T) {
		missing := filepath.Join(dir, "missing.md")
		err := CheckInput(missing)
		require.Error(t, err)
		assert.True(t, model.IsKind(err, model.KindInputNotFound))
		assert.Contains(t, err.Error(), missing)
	})

	t.Run("directory", func(t *testing.T) {
		err := CheckInput(dir)
		assert.True(t, model.IsKind(err, model.KindInputNotFound))
	})

	t.Run("empty path", func(t *testing.T) {
		err := CheckInput("")
		assert.True(t, model.IsKind(err, model.KindInputNotFound))
	})
}
