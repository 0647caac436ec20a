package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-ideagen/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateBaseName - File name validation
// ---------------------------------------------------------------------------

func TestValidateBaseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		baseName string
		wantErr  error
	}{
		{"plain name", "report-2026-01-02", nil},
		{"dotted name", "ideas.v2", nil},
		{"empty name", "", fileutil.ErrNameEmpty},
		{"current directory", ".", fileutil.ErrNamePathTraversal},
		{"parent directory", "..", fileutil.ErrNamePathTraversal},
		{"forward slash path traversal", "../etc/passwd", fileutil.ErrNamePathTraversal},
		{"backslash path traversal", "..\\windows\\system32", fileutil.ErrNamePathTraversal},
		{"null byte injection", "report\x00exe", fileutil.ErrNamePathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateBaseName(tt.baseName)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateBaseName(%q) = %v, want %v", tt.baseName, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Atomic file writes
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.01.html")
		if err := fileutil.WriteFileAtomic(path, []byte("<b>x</b>"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != "<b>x</b>" {
			t.Errorf("content = %q, want %q", got, "<b>x</b>")
		}
	})

	t.Run("replaces existing file and leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.html")
		if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		if err := fileutil.WriteFileAtomic(path, []byte("new"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir() error = %v", err)
		}
		if len(entries) != 1 {
			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, e.Name())
			}
			t.Errorf("directory entries = %v, want only out.html", names)
		}
	})

	t.Run("missing directory returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out.html")
		err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644)
		if err == nil {
			t.Fatal("expected error for missing directory")
		}
		if !strings.Contains(err.Error(), "creating temp file") {
			t.Errorf("error = %v, want creating temp file error", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestHasExtension - Extension matching
// ---------------------------------------------------------------------------

func TestHasExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		exts []string
		want bool
	}{
		{"report.md", []string{".md", ".txt"}, true},
		{"report.TXT", []string{"md", "txt"}, true},
		{"dir/report.markdown", []string{".md"}, false},
		{"report", []string{".md"}, false},
		{".md", []string{".md"}, true},
		{"report.md.bak", []string{".md"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.HasExtension(tt.path, tt.exts...); got != tt.want {
				t.Errorf("HasExtension(%q, %v) = %v, want %v", tt.path, tt.exts, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - File existence check
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "exists.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"directory", dir, false},
		{"missing file", filepath.Join(dir, "missing.txt"), false},
		{"empty path", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Name vs path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"work", false},
		{"my-config", false},
		{"./work.yaml", true},
		{"../shared/work.yaml", true},
		{"/etc/ideagen.yaml", true},
		{"C:\\config\\work.yaml", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
