// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the outline-engine CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/outline-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the outline-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "outline-engine",
	Short: "Generate blog outlines shaped like a sample outline",
	Long: `outline-engine reads a sample outline, detects its section headings and
bullet structure, and produces a new outline for a different topic with the
same shape: same sections, same number of items, same heading numbering.

Samples can be passed as files or kept in a local library; every generated
outline stored in the library can be listed, shown again, or exported.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			color.NoColor = true
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./outline-engine.yaml or ~/.config/outline-engine/outline-engine.yaml)")
	rootCmd.PersistentFlags().String("library-dir", "", "directory holding the sample library database")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress status messages on stderr")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable coloured output")

	viper.BindPFlag("library.dir", rootCmd.PersistentFlags().Lookup("library-dir"))
}

func initConfig() {
	def := types.DefaultConfig()
	viper.SetDefault("library.dir", def.Library.Dir)
	viper.SetDefault("library.max_results", def.Library.MaxResults)
	viper.SetDefault("sample.max_bytes", def.Sample.MaxBytes)
	viper.SetDefault("sample.extensions", def.Sample.Extensions)
	viper.SetDefault("render.format", string(def.Render.Format))
	viper.SetDefault("render.color", def.Render.Color)

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("outline-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "outline-engine"))
		}
	}

	viper.SetEnvPrefix("OUTLINE_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig returns the effective configuration from defaults, config
// file, environment, and bound flags.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	if color.NoColor {
		cfg.Render.Color = false
	}
	return cfg, nil
}

// statusWriter returns where progress messages go: stderr, or nowhere with
// --quiet.
func statusWriter(cmd *cobra.Command) io.Writer {
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		return io.Discard
	}
	return os.Stderr
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
