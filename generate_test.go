package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spheregen/config"
	"spheregen/core"
)

func TestGenerateTiers(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "obj")
	cfg := config.GenerationSettings{Sizes: []int{100, 8, 1000}, OutputDir: dir}

	var out bytes.Buffer
	if err := generateTiers(cfg, &out); err != nil {
		t.Fatalf("generateTiers: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(cfg.Sizes) {
		t.Fatalf("got %d report lines, want %d:\n%s", len(lines), len(cfg.Sizes), out.String())
	}

	for i, size := range cfg.Sizes {
		path := spherePath(dir, size)
		if want := "Generated " + path + " with ~"; !strings.HasPrefix(lines[i], want) {
			t.Errorf("report line %d = %q, want prefix %q", i, lines[i], want)
		}

		p, m := core.SphereResolution(size)
		vCount, fCount, header := countRecords(t, path)
		if vCount != (p+1)*m || fCount != 2*p*m-2*m {
			t.Errorf("%s: %d v and %d f lines, want %d and %d", path, vCount, fCount, (p+1)*m, 2*p*m-2*m)
		}
		if !strings.HasPrefix(header, "# Sphere with ") {
			t.Errorf("%s: header %q", path, header)
		}
	}
}

func TestGenerateTiersFileName(t *testing.T) {
	if got, want := spherePath("out", 100), filepath.Join("out", "sphere_100.obj"); got != want {
		t.Errorf("spherePath = %q, want %q", got, want)
	}
}

func TestGenerateTiersStopsOnError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := generateTiers(config.GenerationSettings{Sizes: []int{100, 1000}, OutputDir: blocker}, &out)
	if err == nil {
		t.Fatal("expected an error when the output directory is a file")
	}
	if out.Len() != 0 {
		t.Errorf("reported progress despite failing: %q", out.String())
	}
}

func countRecords(t *testing.T, path string) (vCount, fCount int, header string) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case header == "":
			header = line
		case strings.HasPrefix(line, "v "):
			vCount++
		case strings.HasPrefix(line, "f "):
			fCount++
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}
	return vCount, fCount, header
}
