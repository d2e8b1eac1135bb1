// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/exam-extract/internal/catalog"
	"github.com/pdiddy/exam-extract/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Search and export the question catalog",
	Long: `Catalog manages the SQLite index built from extraction runs. Use
subcommands to search question text, list recorded runs, or export.`,
}

// --- search subcommand ---

var catalogSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search over indexed question text",
	Long: `Search queries the catalog using FTS5 full-text search, optionally
restricted to a single extraction run. Results include the run and source
PDF the question came from.`,
	RunE: runCatalogSearch,
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide search terms or --run")
	}

	results, err := store.Search(cmd.Context(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []catalog.SearchResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-5s  %-60s  %-30s  %s\n",
		"Rank", "Page", "Question", "PDF", "Images")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for i, r := range results {
		question := r.Question
		if len(question) > 60 {
			question = question[:57] + "..."
		}
		pdf := r.PDFPath
		if len(pdf) > 30 {
			pdf = "..." + pdf[len(pdf)-27:]
		}
		imageCount := len(r.OptionImages)
		if r.Images != "" {
			imageCount++
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-5d  %-60s  %-30s  %d\n",
			i+1, r.PageNumber, question, pdf, imageCount)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- runs subcommand ---

var catalogRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded extraction runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.Runs(cmd.Context())
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}

		for _, r := range runs {
			fmt.Fprintf(os.Stdout, "%s  %s  %s  %d pages, %d questions, %d images  (%s)\n",
				r.ID, r.CreatedAt, r.Method, r.Pages, r.Questions, r.Images, r.PDFPath)
		}
		return nil
	},
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes the full catalog (or a filtered subset) to
<output>/index/export.yaml or export.json. Supports the same filter flags
as search for partial exports.`,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(cmd.Context(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to index/export.yaml")
	case "json":
		if err := store.ExportJSON(cmd.Context(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to index/export.json")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func openStore(cmd *cobra.Command) (*catalog.Store, error) {
	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = "extracted_content"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return catalog.NewStore(types.CatalogConfig{
		OutputDir:  outputDir,
		MaxResults: maxResults,
	})
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) catalog.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	runID, _ := cmd.Flags().GetString("run")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Query:      queryText,
		RunID:      runID,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("output", "extracted_content", "extraction output directory (contains index/)")
	catalogCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")

	// Search flags.
	catalogSearchCmd.Flags().String("query", "", "full-text search query")
	catalogSearchCmd.Flags().String("run", "", "filter by run ID")
	catalogSearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	catalogSearchCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	catalogExportCmd.Flags().String("run", "", "filter by run ID for partial export")
	catalogExportCmd.Flags().Int("limit", 0, "maximum questions to export (0 = all)")

	// Wire subcommands.
	catalogCmd.AddCommand(catalogSearchCmd)
	catalogCmd.AddCommand(catalogRunsCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
