// Package cmd implements the CLI commands for adocpipe using Cobra.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "adocpipe",
	Short: "adocpipe — recover AsciiDoc sources from rendered HTML docs",
	Long: `adocpipe converts rendered HTML documentation pages back into standalone
AsciiDoc source files. It accepts a single HTML file, a directory tree of
rendered pages, or a live documentation site URL.

Usage:
  adocpipe convert <path|url> [flags]`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./adocpipe.yaml or ~/.config/adocpipe/config.yaml)")
}

// initConfig loads the config file and environment. Flags still win
// over config values where both are set.
func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("adocpipe")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "adocpipe"))
		}
	}

	viper.SetEnvPrefix("ADOCPIPE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
