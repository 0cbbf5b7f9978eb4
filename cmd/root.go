package cmd

import (
	"fmt"
	"os"

	"github.com/keyshape/keyshape/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "keyshape",
	Short: "Infer regex patterns from structured key collections",
	Long: `Keyshape infers compact regex patterns describing the structural shape
of dot-separated keys such as flattened JSON paths or log fields.

Numeric segments collapse into \d+, literal segments are regex-escaped,
and families of keys sharing a dominant prefix are generalized with \w+.

Examples:
  keyshape extract keys.txt
  keyshape extract --json payload.json
  cat keys.txt | keyshape extract -
  keyshape groups --format table keys.txt
  keyshape watch keys.txt`,
}

// Execute is called by main.main(). It runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig decodes the current viper state (defaults, config file,
// environment, bound flags) into a Config.
func loadConfig() (config.Config, error) {
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.keyshape.yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "output format (text, json, table)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".keyshape")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("KEYSHAPE")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("format", "text")
	viper.SetDefault("verbose", false)
	viper.SetDefault("json_input", false)
	viper.SetDefault("no_color", false)
	viper.SetDefault("watch.debounce", "500ms")

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}
