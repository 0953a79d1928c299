// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the nshlang CLI, which turns the game's
// language files into NSIS installer language includes.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the nshlang CLI.
var rootCmd = &cobra.Command{
	Use:   "nshlang",
	Short: "Generate NSIS installer language files from game translations",
	Long: `nshlang converts the game's per-language translation files into NSIS
language includes and writes a master include that registers every
converted language with the Modern UI installer.

Run it from the installer directory before compiling the installer script.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./nshlang.yaml or ~/.config/nshlang/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("nshlang")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "nshlang"))
		}
	}

	viper.SetEnvPrefix("NSHLANG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
