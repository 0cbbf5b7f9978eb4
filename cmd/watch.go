package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/keyshape/keyshape/internal/config"
	"github.com/keyshape/keyshape/internal/output"
	"github.com/keyshape/keyshape/internal/pattern"
	"github.com/keyshape/keyshape/internal/watch"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] <file>",
	Short: "Re-extract patterns whenever a key file changes",
	Long: `Watch a key file and print a fresh pattern set each time it changes,
similar to 'watch' but driven by file system events. Bursts of writes are
debounced so one save produces one extraction.

Examples:
  keyshape watch keys.txt
  keyshape watch --json payload.json
  keyshape watch --debounce 2s keys.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolP("json", "j", false, "treat input as JSON documents and flatten them into dot keys")
	watchCmd.Flags().String("debounce", "", "quiet period after the last write before re-extracting (e.g. 500ms, 2s)")
	watchCmd.Flags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	jsonInput, _ := cmd.Flags().GetBool("json")
	debounceStr, _ := cmd.Flags().GetString("debounce")
	noColor, _ := cmd.Flags().GetBool("no-color")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !jsonInput {
		jsonInput = cfg.JSONInput
	}
	if debounceStr == "" {
		debounceStr = cfg.Watch.Debounce
	}

	// Validate file exists
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %s", filePath)
	}

	debounce, err := config.ParseDuration(debounceStr)
	if err != nil {
		return fmt.Errorf("invalid --debounce value: %w", err)
	}

	colorMode := output.ColorAuto
	if noColor || cfg.NoColor {
		colorMode = output.ColorNever
	}

	format := output.ParseFormat(cfg.Format)
	writer := output.New(cmd.OutOrStdout(), format)

	first := true
	onChange := func() error {
		all, err := readFileSource(filePath, jsonInput)
		if err != nil {
			return err
		}

		counts, total := pattern.Counts(all)

		if !first && format == output.FormatText {
			fmt.Fprintf(cmd.OutOrStdout(), "\n==> %s (%s) <==\n",
				filePath, time.Now().Format("15:04:05"))
		}
		first = false

		return writer.WriteResult(output.Result{
			Patterns:  pattern.Generalize(counts, total),
			TotalKeys: total,
			Files:     []string{filePath},
		}, colorMode)
	}

	watcher := watch.New(watch.Options{
		Path:     filePath,
		Debounce: debounce,
		OnChange: onChange,
	})

	// Set up context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- watcher.Run(ctx)
	}()

	select {
	case <-sigChan:
		cancel()
		<-errChan
		return nil
	case err := <-errChan:
		return err
	}
}
