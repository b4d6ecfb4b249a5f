package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rachael-ojo/alx-frontend-for-fun/internal/model"
)

// minPositionalArgs is the number of paths the command needs: input and
// output. Extra positional arguments are ignored.
const minPositionalArgs = 2

// validateArgs is the cobra.PositionalArgs check for the root command.
// It runs before RunE, so no filesystem access happens on a usage error.
func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) < minPositionalArgs {
		return model.NewUsageError()
	}
	return nil
}

// CheckInput returns an input-not-found CLIError unless path names an
// existing regular file. Directories, broken symlinks and unreadable
// parents all count as missing.
func CheckInput(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return model.NewInputNotFoundError(path)
	}
	return nil
}
