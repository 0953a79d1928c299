// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/nshlang/internal/langtable"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the language codes the converter recognizes",
	Long: `Languages prints the compiled-in table mapping source language codes to
NSIS language names, along with each code's BCP 47 tag and English name.

Use --check to verify the table: every code must be a well-formed language
tag and no two codes may share an installer language.`,
	RunE: runLanguages,
}

func runLanguages(cmd *cobra.Command, args []string) error {
	check, _ := cmd.Flags().GetBool("check")
	if check {
		errs := langtable.Check()
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		if len(errs) > 0 {
			return errors.New("language table check failed")
		}
		fmt.Fprintf(os.Stderr, "language table ok (%d languages)\n", langtable.Len())
		return nil
	}

	entries := langtable.Entries()

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNSIS NAME\tTAG\tENGLISH NAME")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Code, e.Name, e.Tag, e.EnglishName)
	}
	return tw.Flush()
}

func init() {
	languagesCmd.Flags().Bool("json", false, "output the table as JSON")
	languagesCmd.Flags().Bool("check", false, "validate the table instead of printing it")

	rootCmd.AddCommand(languagesCmd)
}
