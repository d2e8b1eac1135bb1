// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/spf13/cobra"

	"github.com/pdiddy/exam-extract/internal/extract"
)

var infoCmd = &cobra.Command{
	Use:   "info <pdf-path>",
	Short: "Validate a PDF and print its page and image counts",
	Long: `Info validates the document structure with pdfcpu and prints the page
count plus the number of embedded images per page, without writing any
output. Useful to check whether a PDF will open before running a full
extraction.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		fi, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("input PDF: %w", err)
		}

		conf := model.NewDefaultConfiguration()
		conf.ValidationMode = model.ValidationRelaxed
		if err := api.ValidateFile(path, conf); err != nil {
			return fmt.Errorf("validating %s: %w", path, err)
		}

		pages, err := api.PageCountFile(path)
		if err != nil {
			return fmt.Errorf("counting pages: %w", err)
		}

		fmt.Printf("%s\n", path)
		fmt.Printf("  size:  %d bytes\n", fi.Size())
		fmt.Printf("  pages: %d\n", pages)
		for p := 1; p <= pages; p++ {
			n, err := extract.CountPageImages(path, p)
			if err != nil {
				return fmt.Errorf("counting images on page %d: %w", p, err)
			}
			fmt.Printf("  page %d: %d images\n", p, n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
