package manifest

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	tmpDir := t.TempDir()
	bundle := filepath.Join(tmpDir, "App.xcodeproj")
	if err := os.MkdirAll(bundle, 0755); err != nil {
		t.Fatalf("Failed to create dir %s: %v", bundle, err)
	}
	file := filepath.Join(bundle, DefaultName)
	if err := os.WriteFile(file, []byte("{}\n"), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", file, err)
	}

	testCases := []struct {
		name  string
		path  string
		fname string
		want  string
	}{
		{
			name: "directory resolves to default manifest",
			path: bundle,
			want: file,
		},
		{
			name:  "directory with custom manifest name",
			path:  bundle,
			fname: "other.pbxproj",
			want:  filepath.Join(bundle, "other.pbxproj"),
		},
		{
			name: "file is used as-is",
			path: file,
			want: file,
		},
		{
			name: "missing path is used as-is",
			path: filepath.Join(tmpDir, "missing"),
			want: filepath.Join(tmpDir, "missing"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.path, tc.fname); got != tc.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tc.path, tc.fname, got, tc.want)
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "empty input",
			content: "",
			want:    nil,
		},
		{
			name:    "lf terminated",
			content: "a\nb\n",
			want:    []string{"a", "b"},
		},
		{
			name:    "missing final newline",
			content: "a\nb",
			want:    []string{"a", "b"},
		},
		{
			name:    "crlf terminated",
			content: "a\r\nb\r\n",
			want:    []string{"a", "b"},
		},
		{
			name:    "blank lines kept",
			content: "a\n\n\tb\n",
			want:    []string{"a", "", "\tb"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReadLines(strings.NewReader(tc.content))
			if err != nil {
				t.Fatalf("ReadLines() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ReadLines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadLines_LongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	got, err := ReadLines(strings.NewReader(long + "\nshort\n"))
	if err != nil {
		t.Fatalf("ReadLines() unexpected error = %v", err)
	}
	if len(got) != 2 || got[0] != long || got[1] != "short" {
		t.Errorf("ReadLines() returned %d lines, want the long line followed by %q", len(got), "short")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReadLines_Error(t *testing.T) {
	_, err := ReadLines(failingReader{})
	if !errors.Is(err, ErrRead) {
		t.Errorf("ReadLines() error = %v, want ErrRead", err)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.pbxproj"))
	if !errors.Is(err, ErrOpen) {
		t.Errorf("Load() error = %v, want ErrOpen", err)
	}
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLines(&buf, []string{"a", "", "b"}); err != nil {
		t.Fatalf("WriteLines() unexpected error = %v", err)
	}
	if got, want := buf.String(), "a\n\nb\n"; got != want {
		t.Errorf("WriteLines() wrote %q, want %q", got, want)
	}
}

func TestReplace(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, DefaultName)
	if err := os.WriteFile(path, []byte("old\r\ncontent\r\n"), 0600); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}

	if err := Replace(path, []string{"new", "content"}); err != nil {
		t.Fatalf("Replace() unexpected error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	if string(got) != "new\ncontent\n" {
		t.Errorf("Replace() wrote %q, want %q", got, "new\ncontent\n")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", path, err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Replace() mode = %v, want %v", info.Mode().Perm(), os.FileMode(0600))
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("Failed to read dir %s: %v", tmpDir, err)
	}
	if len(entries) != 1 {
		t.Errorf("Replace() left %d entries in %s, want 1", len(entries), tmpDir)
	}
}

func TestReplace_RenameFailureKeepsOriginal(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, DefaultName)
	if err := os.WriteFile(path, []byte("original\n"), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}

	originalRename := osRename
	osRename = func(oldpath, newpath string) error { return errors.New("rename failed") }
	defer func() { osRename = originalRename }()

	err := Replace(path, []string{"replacement"})
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("Replace() error = %v, want ErrWrite", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	if string(got) != "original\n" {
		t.Errorf("original content changed to %q", got)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("Failed to read dir %s: %v", tmpDir, err)
	}
	if len(entries) != 1 {
		t.Errorf("Replace() left %d entries in %s, want 1 (temp file not cleaned up)", len(entries), tmpDir)
	}
}

func TestReplace_MissingDirectory(t *testing.T) {
	err := Replace(filepath.Join(t.TempDir(), "nope", DefaultName), []string{"x"})
	if !errors.Is(err, ErrWrite) {
		t.Errorf("Replace() error = %v, want ErrWrite", err)
	}
}
