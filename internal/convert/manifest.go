// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/nshlang/internal/nsis"
)

// Manifest is the master include that registers every installer language.
// The default language is always registered first, followed by Languages in
// the order they were converted.
type Manifest struct {
	DefaultLanguage string
	Languages       []string

	// IncludeDir and Ext locate each language's include, relative to the
	// installer script.
	IncludeDir string
	Ext        string
}

// Lines returns the manifest as a register/include pair per language.
func (m Manifest) Lines() []string {
	lines := make([]string, 0, 2*(len(m.Languages)+1))
	for _, name := range append([]string{m.DefaultLanguage}, m.Languages...) {
		lines = append(lines,
			nsis.Register(name),
			nsis.Include(nsis.IncludePath(m.IncludeDir, name, m.Ext)),
		)
	}
	return lines
}

// Write writes the manifest to path, creating its directory if needed.
func (m Manifest) Write(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating manifest directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(joinLines(m.Lines())), 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
