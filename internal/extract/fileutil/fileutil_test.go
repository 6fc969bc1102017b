package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateOutputFilename(t *testing.T) {
	tests := []struct {
		prefix   string
		input    string
		expected string
	}{
		{"dialogue", "scene.pack", "dialogue_scene.txt"},
		{"dialogue", "/path/to/tuto_001.pack", "dialogue_tuto_001.txt"},
		{"cues", "scene.csv", "cues_scene.txt"},
		{"cues", "noext", "cues_noext.txt"},
	}

	for _, tt := range tests {
		result := GenerateOutputFilename(tt.prefix, tt.input)
		if result != tt.expected {
			t.Errorf("GenerateOutputFilename(%q, %q) = %q; want %q",
				tt.prefix, tt.input, result, tt.expected)
		}
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exists.pack")
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if !FileExists(path) {
		t.Error("Expected existing file to be detected")
	}
	if FileExists(filepath.Join(dir, "missing.pack")) {
		t.Error("Expected missing file to be reported as absent")
	}
}

func TestSaveToFileWithBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "dialogue_scene.txt")

	if err := SaveToFileWithBOM(path, "こんにちは\n"); err != nil {
		t.Fatalf("SaveToFileWithBOM failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if len(data) < 3 || data[0] != 0xEF || data[1] != 0xBB || data[2] != 0xBF {
		t.Error("Expected UTF-8 BOM at the start of the file")
	}
	if string(data[3:]) != "こんにちは\n" {
		t.Errorf("Unexpected content: %q", data[3:])
	}
}

func TestPackFilePattern(t *testing.T) {
	tests := []struct {
		name    string
		matches bool
	}{
		{"scene.pack", true},
		{"TUTO_001.PACK", true},
		{"scene.pack.bak", false},
		{"scene.csv", false},
		{"pack", false},
	}

	for _, tt := range tests {
		if PackFilePattern.MatchString(tt.name) != tt.matches {
			t.Errorf("PackFilePattern.MatchString(%q) = %v; want %v",
				tt.name, !tt.matches, tt.matches)
		}
	}
}
