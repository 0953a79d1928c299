// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/nshlang/internal/convert"
	"github.com/pdiddy/nshlang/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert language files into NSIS language includes",
	Long: `Convert reads every source language file matching --pattern in
--source-dir, writes one <Language>.nsh per recognized file into --output-dir,
and writes the manifest that registers the default language and every
converted language.

Files whose language code is unknown are skipped. Conversion of a file stops
at the first line after the header that is not a quoted string.`,
	RunE: runConvert,
}

// convertFlags maps config keys to the flags that override them.
var convertFlags = map[string]string{
	"source_dir":       "source-dir",
	"pattern":          "pattern",
	"output_dir":       "output-dir",
	"output_ext":       "output-ext",
	"manifest_path":    "manifest",
	"default_language": "default-language",
	"sort":             "sort",
	"report":           "report",
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := conversionConfig()
	if err != nil {
		return err
	}

	result, err := convert.ConvertBatch(cfg, os.Stderr)
	if err != nil {
		return err
	}

	if cfg.Report != "" {
		if err := convert.WriteReport(cfg.Report, cfg, result); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Report written to", cfg.Report)
	}
	return nil
}

// conversionConfig assembles the convert settings from config file,
// environment, and flags.
func conversionConfig() (types.ConversionConfig, error) {
	var cfg types.ConversionConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg.WithDefaults(), nil
}

func init() {
	convertCmd.Flags().String("source-dir", types.DefaultSourceDir, "directory containing the source language files")
	convertCmd.Flags().String("pattern", types.DefaultPattern, "glob selecting source language files")
	convertCmd.Flags().String("output-dir", types.DefaultOutputDir, "directory for generated language includes")
	convertCmd.Flags().String("output-ext", types.DefaultOutputExt, "extension of generated language includes")
	convertCmd.Flags().String("manifest", types.DefaultManifestPath, "path of the generated master include")
	convertCmd.Flags().String("default-language", types.DefaultDefaultLanguage, "base installer language registered first")
	convertCmd.Flags().Bool("sort", false, "process source files in name order instead of directory order")
	convertCmd.Flags().String("report", "", "write a YAML run report to this path")

	for key, flag := range convertFlags {
		_ = viper.BindPFlag(key, convertCmd.Flags().Lookup(flag))
	}

	rootCmd.AddCommand(convertCmd)
}
