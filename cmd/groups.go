package cmd

import (
	"fmt"

	"github.com/keyshape/keyshape/internal/output"
	"github.com/keyshape/keyshape/internal/pattern"
	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups [flags] <file|->...",
	Short: "Show prefix groups and generalization decisions",
	Long: `Report how the input keys cluster by shared prefix: the patterns in each
group, the share of total keys the group represents, and whether the
frequency rules collapse its final segments into \w+.

Useful for understanding why extract did or did not generalize a family.

Examples:
  keyshape groups keys.txt
  keyshape groups --format table keys.txt
  keyshape groups --json payload.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGroups,
}

func init() {
	groupsCmd.Flags().BoolP("json", "j", false, "treat input as JSON documents and flatten them into dot keys")

	rootCmd.AddCommand(groupsCmd)
}

func runGroups(cmd *cobra.Command, args []string) error {
	jsonInput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !jsonInput {
		jsonInput = cfg.JSONInput
	}

	all, _, err := readKeys(args, jsonInput)
	if err != nil {
		return err
	}

	counts, total := pattern.Counts(all)
	if total == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No keys found.")
		return nil
	}

	groups := pattern.AnalyzeGroups(counts, total)
	if len(groups) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No prefix groups (all keys are single-segment).")
		return nil
	}

	format := output.ParseFormat(cfg.Format)
	return output.New(cmd.OutOrStdout(), format).WriteGroups(groups, total)
}
