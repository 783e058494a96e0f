package fileutil_test

// Notes:
// - TestWriteTempFile_CreateTempError modifies TMPDIR and cannot run in parallel.
// - WriteFileAtomic rename failures are only exercised through a directory
//   destination; disk-full and chmod failures are platform-specific.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-svg2png/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{"valid extension html", "html", nil},
		{"valid extension png", "png", nil},
		{"empty extension", "", fileutil.ErrExtensionEmpty},
		{"forward slash path traversal", "../etc/passwd", fileutil.ErrExtensionPathTraversal},
		{"backslash path traversal", "..\\windows\\system32", fileutil.ErrExtensionPathTraversal},
		{"null byte injection", "html\x00exe", fileutil.ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteTempFile - Temp file creation
// ---------------------------------------------------------------------------

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	content := "<html><body>logo</body></html>"
	path, cleanup, err := fileutil.WriteTempFile(content, "html")
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}
	defer cleanup()

	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path %q should end with .html", path)
	}
	if !strings.Contains(filepath.Base(path), "svg2png-") {
		t.Errorf("path %q should contain svg2png- prefix", path)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(got) != content {
		t.Errorf("content = %q, want %q", got, content)
	}
}

func TestWriteTempFile_Cleanup(t *testing.T) {
	t.Parallel()

	path, cleanup, err := fileutil.WriteTempFile("x", "html")
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}

	cleanup()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("temp file should be removed after cleanup, stat err = %v", err)
	}
}

func TestWriteTempFile_InvalidExtension(t *testing.T) {
	t.Parallel()

	_, cleanup, err := fileutil.WriteTempFile("x", "../html")
	if !errors.Is(err, fileutil.ErrExtensionPathTraversal) {
		t.Errorf("error = %v, want ErrExtensionPathTraversal", err)
	}
	if cleanup != nil {
		t.Error("cleanup should be nil on error")
	}
}

func TestWriteTempFile_CreateTempError(t *testing.T) {
	// Not parallel: modifies TMPDIR
	t.Setenv("TMPDIR", filepath.Join(t.TempDir(), "does-not-exist"))

	_, _, err := fileutil.WriteTempFile("x", "html")
	if err == nil {
		t.Fatal("expected error for missing temp directory")
	}
	if !strings.Contains(err.Error(), "creating temp file") {
		t.Errorf("error = %v, want 'creating temp file'", err)
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Atomic replace
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing []byte
		data     []byte
	}{
		{"creates new file", nil, []byte("png-bytes")},
		{"overwrites existing file", []byte("old content that is longer"), []byte("new")},
		{"writes empty data", []byte("old"), []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := filepath.Join(dir, "out.png")
			if tt.existing != nil {
				if err := os.WriteFile(path, tt.existing, 0o600); err != nil {
					t.Fatal(err)
				}
			}

			if err := fileutil.WriteFileAtomic(path, tt.data, 0o644); err != nil {
				t.Fatalf("WriteFileAtomic() error = %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != string(tt.data) {
				t.Errorf("content = %q, want %q", got, tt.data)
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 1 {
				t.Errorf("expected only the destination in dir, got %d entries", len(entries))
			}
		})
	}
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "out.png")

	err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644)
	if err == nil {
		t.Fatal("expected error for missing parent directory")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist in chain", err)
	}
}

func TestWriteFileAtomic_DestinationIsDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dest := filepath.Join(dir, "out.png")
	if err := os.Mkdir(dest, 0o750); err != nil {
		t.Fatal(err)
	}
	// Rename over a non-empty directory fails on every platform
	if err := os.WriteFile(filepath.Join(dest, "keep"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := fileutil.WriteFileAtomic(dest, []byte("x"), 0o644); err == nil {
		t.Fatal("expected error when destination is a directory")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp file should be cleaned up, got %d entries", len(entries))
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - File existence check
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "logo.svg")
	if err := os.WriteFile(file, []byte("<svg/>"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"directory", dir, false},
		{"missing file", filepath.Join(dir, "missing.svg"), false},
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
// TestExecutableDir - Binary location
// ---------------------------------------------------------------------------

func TestExecutableDir(t *testing.T) {
	t.Parallel()

	dir, err := fileutil.ExecutableDir()
	if err != nil {
		t.Fatalf("ExecutableDir() error = %v", err)
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ExecutableDir() = %q, want absolute path", dir)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("ExecutableDir() = %q should be an existing directory", dir)
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
		{"logo", false},
		{"my-config", false},
		{"./logo.yaml", true},
		{"../shared/logo.yaml", true},
		{"/abs/logo.yaml", true},
		{"C:\\configs\\logo.yaml", true},
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
