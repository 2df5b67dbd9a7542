package cmd

import (
	"testing"
)

func TestSplitMenuPath(t *testing.T) {
	tests := []struct {
		path       string
		wantPath   []string
		wantTarget string
	}{
		{"File -> New", []string{"File"}, "New"},
		{"File -> New -> Project", []string{"File", "New"}, "Project"},
		{"Format->Font", []string{"Format"}, "Font"},
	}
	for _, tt := range tests {
		menuPath, target, err := splitMenuPath(tt.path)
		if err != nil {
			t.Errorf("splitMenuPath(%q) failed: %v", tt.path, err)
			continue
		}
		if target != tt.wantTarget {
			t.Errorf("splitMenuPath(%q) target = %q, want %q", tt.path, target, tt.wantTarget)
		}
		if len(menuPath) != len(tt.wantPath) {
			t.Errorf("splitMenuPath(%q) path = %v, want %v", tt.path, menuPath, tt.wantPath)
			continue
		}
		for i := range menuPath {
			if menuPath[i] != tt.wantPath[i] {
				t.Errorf("splitMenuPath(%q) path = %v, want %v", tt.path, menuPath, tt.wantPath)
				break
			}
		}
	}
}

func TestSplitMenuPath_Errors(t *testing.T) {
	for _, path := range []string{"File", "File -> -> New", ""} {
		if _, _, err := splitMenuPath(path); err == nil {
			t.Errorf("splitMenuPath(%q) succeeded, want error", path)
		}
	}
}

func TestSplitRawPath(t *testing.T) {
	got := splitRawPath("{Alt+F} -> Create Project")
	want := []string{"{Alt+F}", "Create Project"}
	if len(got) != len(want) {
		t.Fatalf("splitRawPath = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("splitRawPath = %v, want %v", got, want)
			break
		}
	}
}
