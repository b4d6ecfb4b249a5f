package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/rachael-ojo/alx-frontend-for-fun/internal/config"
	"github.com/rachael-ojo/alx-frontend-for-fun/internal/markdown"
	"github.com/rachael-ojo/alx-frontend-for-fun/internal/model"
)

// runConvert is the main logic of the root command once the argument
// count has been validated.
func runConvert(cmd *cobra.Command, inPath, outPath string) error {
	// Step 1: The input must exist before anything else is read.
	if err := CheckInput(inPath); err != nil {
		return err
	}
	VerboseLog(cmd, "Input %s found", inPath)

	// Step 2: Load conversion options. Defaults apply without --config.
	opts, err := config.Load(configPath)
	if err != nil {
		return err // config.Load already returns a CLIError
	}
	if configPath != "" {
		VerboseLog(cmd, "Loaded options from %s: %+v", configPath, opts)
	}

	// Step 3: Convert and write the output file.
	stats, err := markdown.ConvertFile(cmd.Context(), inPath, outPath, opts)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, model.KindConversion,
			fmt.Sprintf("cannot convert %s to %s", inPath, outPath), err)
	}

	VerboseLog(cmd, "Wrote %s to %s (%d lines: %d headings, %d paragraphs, %d passed through)",
		humanize.Bytes(uint64(stats.Bytes)), outPath,
		stats.Lines, stats.Headings, stats.Paragraphs, stats.Passthrough)
	return nil
}
