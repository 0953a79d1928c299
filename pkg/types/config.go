// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default configuration values for the convert stage.
const (
	DefaultSourceDir       = "Language"
	DefaultPattern         = "*.yml"
	DefaultOutputDir       = "lang"
	DefaultOutputExt       = ".nsh"
	DefaultManifestPath    = "Languages.nsh"
	DefaultDefaultLanguage = "English"
)

// ConversionConfig holds settings for the convert stage.
type ConversionConfig struct {
	// SourceDir is the directory holding the source language documents.
	SourceDir string `json:"source_dir" yaml:"source_dir" mapstructure:"source_dir"`

	// Pattern selects source documents inside SourceDir (e.g. "*.yml").
	Pattern string `json:"pattern" yaml:"pattern" mapstructure:"pattern"`

	// OutputDir receives one <DisplayName><OutputExt> file per converted document.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// OutputExt is the extension of converted documents, including the dot.
	OutputExt string `json:"output_ext" yaml:"output_ext" mapstructure:"output_ext"`

	// ManifestPath is where the master include registering every language is written.
	ManifestPath string `json:"manifest_path" yaml:"manifest_path" mapstructure:"manifest_path"`

	// DefaultLanguage is the base language registered first in the manifest.
	DefaultLanguage string `json:"default_language" yaml:"default_language" mapstructure:"default_language"`

	// Sort processes source documents in file name order instead of
	// directory-listing order.
	Sort bool `json:"sort" yaml:"sort" mapstructure:"sort"`

	// Report, when set, is the path of a YAML run report.
	Report string `json:"report,omitempty" yaml:"report,omitempty" mapstructure:"report"`
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c ConversionConfig) WithDefaults() ConversionConfig {
	if c.SourceDir == "" {
		c.SourceDir = DefaultSourceDir
	}
	if c.Pattern == "" {
		c.Pattern = DefaultPattern
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.OutputExt == "" {
		c.OutputExt = DefaultOutputExt
	}
	if c.ManifestPath == "" {
		c.ManifestPath = DefaultManifestPath
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = DefaultDefaultLanguage
	}
	return c
}
