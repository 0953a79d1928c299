//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/nshlang/pkg/types"
)

// Convert regenerates the installer language includes and the manifest using
// nshlang.yaml (or the built-in defaults).
func Convert() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "convert", "--sort")
}

// Clean removes generated language includes, the manifest, and bin/.
func Clean() error {
	generated, err := filepath.Glob(filepath.Join(types.DefaultOutputDir, "*"+types.DefaultOutputExt))
	if err != nil {
		return err
	}
	// English is maintained by hand.
	keep := filepath.Join(types.DefaultOutputDir, types.DefaultDefaultLanguage+types.DefaultOutputExt)
	for _, p := range generated {
		if p == keep {
			continue
		}
		if err := sh.Rm(p); err != nil {
			return fmt.Errorf("removing %s: %w", p, err)
		}
	}
	if err := sh.Rm(types.DefaultManifestPath); err != nil {
		return err
	}
	return sh.Rm(binDir)
}
