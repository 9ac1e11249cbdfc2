package main

import (
	"fmt"
	"io"
	"path/filepath"

	"spheregen/config"
	"spheregen/core"
	"spheregen/objfile"
)

// spherePath returns the fixture path for a requested vertex count
func spherePath(outputDir string, size int) string {
	return filepath.Join(outputDir, fmt.Sprintf("sphere_%d.obj", size))
}

// generateTiers writes one sphere per configured size, in order, and reports
// each file on out. The first failure aborts the run.
func generateTiers(cfg config.GenerationSettings, out io.Writer) error {
	for _, size := range cfg.Sizes {
		path := spherePath(cfg.OutputDir, size)

		mesh := core.GenerateSphere(size)
		if err := objfile.WriteFile(path, mesh); err != nil {
			return err
		}

		fmt.Fprintf(out, "Generated %s with ~%d vertices\n", path, size)
	}
	return nil
}
