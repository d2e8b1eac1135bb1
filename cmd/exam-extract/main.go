// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the exam-extract CLI.
// Implements: prd001-extraction, prd002-question-parsing,
//
//	prd003-catalog (CLI surface).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/exam-extract/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command; it runs the extraction pipeline directly on
// a positional PDF path.
var rootCmd = &cobra.Command{
	Use:   "exam-extract <pdf-path>",
	Short: "Extract text and images from exam-paper PDFs",
	Long: `exam-extract pulls plain text and embedded raster images out of a PDF,
writes per-page and per-question JSON records to an output directory, and
indexes the question text in a local SQLite catalog.

The question/image association is a positional heuristic (image index
proximity), not a layout-aware match: treat questions.json as best-effort.
Use the catalog subcommand to search indexed questions across runs.`,
	Args:         cobra.ExactArgs(1),
	RunE:         runExtract,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./exam-extract.yaml or ~/.config/exam-extract/config.yaml)")

	rootCmd.Flags().String("method", string(types.MethodFitz), "text extraction backend: fitz or pdftext")
	rootCmd.Flags().String("output", "extracted_content", "output directory for JSON, images, and logs")
	rootCmd.Flags().Bool("verbose", false, "enable debug-level logging")
	rootCmd.Flags().Bool("no-index", false, "skip catalog indexing after extraction")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("exam-extract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "exam-extract"))
		}
	}

	viper.SetEnvPrefix("EXAM_EXTRACT")
	viper.AutomaticEnv()

	viper.SetDefault("method", string(types.MethodFitz))
	viper.SetDefault("output", "extracted_content")
	viper.SetDefault("catalog.max_results", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// extractorConfig merges flags over config-file values. An explicitly set
// flag wins; otherwise the viper value (file or env) applies.
func extractorConfig(cmd *cobra.Command) types.ExtractorConfig {
	method, _ := cmd.Flags().GetString("method")
	if !cmd.Flags().Changed("method") {
		method = viper.GetString("method")
	}
	output, _ := cmd.Flags().GetString("output")
	if !cmd.Flags().Changed("output") {
		output = viper.GetString("output")
	}
	verbose, _ := cmd.Flags().GetBool("verbose")

	return types.ExtractorConfig{
		Method:    types.Method(method),
		OutputDir: output,
		Verbose:   verbose,
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
