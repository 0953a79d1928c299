// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Document is a converted language document ready to be written as an
// installer include.
type Document struct {
	// Code is the language code read from the header line (e.g. "de").
	Code string `json:"code" yaml:"code"`

	// Name is the installer display name resolved from Code (e.g. "German").
	Name string `json:"name" yaml:"name"`

	// SourcePath is the source document the lines were read from.
	SourcePath string `json:"source" yaml:"source"`

	// OutputPath is where the converted document was written. Empty until written.
	OutputPath string `json:"output,omitempty" yaml:"output,omitempty"`

	// Lines holds the converted output: the header first, then one line per entry.
	Lines []string `json:"-" yaml:"-"`
}

// Entries returns the number of string entries in the document.
func (d Document) Entries() int {
	if len(d.Lines) == 0 {
		return 0
	}
	return len(d.Lines) - 1
}

// Skip records a source document that produced no output.
type Skip struct {
	SourcePath string `json:"source" yaml:"source"`
	Reason     string `json:"reason" yaml:"reason"`
}
