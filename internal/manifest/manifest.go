// Package manifest locates, reads and replaces Xcode project manifests.
package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultName is the manifest file inside an .xcodeproj bundle.
const DefaultName = "project.pbxproj"

// maxLineSize bounds a single manifest line. Generated manifests put whole
// objects on one line, so the bufio default of 64 KiB is too small.
const maxLineSize = 64 << 20

var (
	// ErrOpen is returned when the manifest cannot be opened for reading.
	ErrOpen = errors.New("cannot open manifest")
	// ErrRead is returned when a line cannot be read.
	ErrRead = errors.New("cannot read manifest")
	// ErrWrite is returned when the replacement cannot be created or written.
	ErrWrite = errors.New("cannot write manifest")
)

// osRename is a variable to allow testing of rename errors.
var osRename = os.Rename

// Resolve returns the manifest path for path. A directory resolves to the
// file called name inside it; anything else, including a missing path, is
// returned as-is.
func Resolve(path, name string) string {
	if name == "" {
		name = DefaultName
	}
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return filepath.Join(path, name)
	}
	return path
}

// ReadLines reads r as a sequence of lines with their terminators stripped.
// Both "\n" and "\r\n" terminate a line.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return lines, nil
}

// Load reads the manifest at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

// WriteLines writes each line followed by a single "\n".
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// Replace atomically replaces the manifest at path with lines. The new
// content is written to a temporary file next to path and renamed over it,
// so a failed write leaves the original untouched.
func Replace(path string, lines []string) (err error) {
	mode := os.FileMode(0644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err = WriteLines(tmp, lines); err != nil {
		return err
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err = osRename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
