package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()

	want := []int{100, 1000, 10000, 100000, 1000000}
	if len(s.Generation.Sizes) != len(want) {
		t.Fatalf("default sizes = %v, want %v", s.Generation.Sizes, want)
	}
	for i := range want {
		if s.Generation.Sizes[i] != want[i] {
			t.Errorf("default sizes = %v, want %v", s.Generation.Sizes, want)
			break
		}
	}
	if s.Generation.OutputDir != "../../obj" {
		t.Errorf("default output dir = %q", s.Generation.OutputDir)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Server.Port != Default().Server.Port {
		t.Errorf("port = %d, want default", s.Server.Port)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	content := `{"generation": {"sizes": [50, 200], "outputDir": "fixtures"}, "server": {"port": 9000}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Generation.Sizes) != 2 || s.Generation.Sizes[0] != 50 || s.Generation.Sizes[1] != 200 {
		t.Errorf("sizes = %v, want [50 200]", s.Generation.Sizes)
	}
	if s.Generation.OutputDir != "fixtures" {
		t.Errorf("output dir = %q, want fixtures", s.Generation.OutputDir)
	}
	if s.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", s.Server.Port)
	}
	if s.Viewer != Default().Viewer {
		t.Errorf("viewer = %+v, want defaults", s.Viewer)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{name: "malformed json", content: `{"generation": `, wantMsg: "error parsing"},
		{name: "empty sizes", content: `{"generation": {"sizes": []}}`, wantMsg: "sizes is empty"},
		{name: "size too small", content: `{"generation": {"sizes": [100, 1]}}`, wantMsg: "below the minimum"},
		{name: "empty output dir", content: `{"generation": {"outputDir": ""}}`, wantMsg: "outputDir is empty"},
		{name: "bad port", content: `{"server": {"port": 70000}}`, wantMsg: "out of range"},
		{name: "bad viewer", content: `{"viewer": {"width": 0}}`, wantMsg: "is invalid"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.json")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tc.wantMsg)
			}
		})
	}
}
