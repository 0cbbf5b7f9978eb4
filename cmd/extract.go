package cmd

import (
	"github.com/keyshape/keyshape/internal/output"
	"github.com/keyshape/keyshape/internal/pattern"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var extractCmd = &cobra.Command{
	Use:   "extract [flags] <file|->...",
	Short: "Extract generalized patterns from key lists",
	Long: `Read keys (one per line, or flattened from JSON documents with --json)
and print the inferred regex pattern set.

Numeric segments become \d+ and keys differing only in digits collapse into
one pattern. When 75-95% of the input keys share a prefix, the final
segments of that family are generalized into \w+.

Examples:
  keyshape extract keys.txt
  keyshape extract --json payloads/*.json
  cat keys.txt | keyshape extract -
  keyshape extract --basic --format table keys.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolP("json", "j", false, "treat input as JSON documents and flatten them into dot keys")
	extractCmd.Flags().BoolP("basic", "b", false, "print the per-pattern count table without generalization")
	extractCmd.Flags().Bool("no-color", false, "disable colored output")

	_ = viper.BindPFlag("json_input", extractCmd.Flags().Lookup("json"))

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	jsonInput, _ := cmd.Flags().GetBool("json")
	basic, _ := cmd.Flags().GetBool("basic")
	noColor, _ := cmd.Flags().GetBool("no-color")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !jsonInput {
		jsonInput = cfg.JSONInput
	}

	all, sources, err := readKeys(args, jsonInput)
	if err != nil {
		return err
	}

	writer := output.New(cmd.OutOrStdout(), output.ParseFormat(cfg.Format))

	counts, total := pattern.Counts(all)

	if basic {
		return writer.WriteCounts(output.CountResult{
			Counts:    counts,
			TotalKeys: total,
			Files:     sources,
		})
	}

	colorMode := output.ColorAuto
	if noColor || cfg.NoColor {
		colorMode = output.ColorNever
	}

	return writer.WriteResult(output.Result{
		Patterns:  pattern.Generalize(counts, total),
		TotalKeys: total,
		Files:     sources,
	}, colorMode)
}
