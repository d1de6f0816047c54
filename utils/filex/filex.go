// File: filex.go
// Title: File Access Utilities
// Description: Existence checks and whole-file reads used by the CSV loader
//              and the CLI. Missing files are reported as NOT_FOUND errors,
//              every other failure wraps the underlying os error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-01
// Modified: 2026-10-04
//
// Change History:
// - 2026-10-01 v0.1.0: Exists, IsFile, IsDir, ReadString, ReadLines
// - 2026-10-04 v0.1.1: WriteString and WriteLines for the CLI

package filex

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	mdwerrors "github.com/msto63/extkit/core/errors"
)

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ReadFile reads the entire file and returns its contents
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, readError("read_file", path, err)
	}
	return content, nil
}

// ReadString reads the entire file and returns its contents as a string
func ReadString(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", readError("read_string", path, err)
	}
	return string(content), nil
}

// ReadLines reads the file and returns its lines without line terminators.
// A trailing "\r" is stripped so CRLF files read the same as LF files.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, readError("read_lines", path, err)
	}
	defer file.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	if err := scanner.Err(); err != nil {
		return nil, readError("read_lines", path, err)
	}

	return lines, nil
}

// WriteString writes content to path, creating parent directories as needed
func WriteString(path, content string, perm os.FileMode) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return mdwerrors.FilexWriteFailed("write_string", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return mdwerrors.FilexWriteFailed("write_string", path, err)
	}
	return nil
}

// WriteLines writes lines joined by "\n" with a trailing newline
func WriteLines(path string, lines []string, perm os.FileMode) error {
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	return WriteString(path, content, perm)
}

func readError(operation, path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return mdwerrors.FilexNotFound(operation, path)
	}
	return mdwerrors.FilexReadFailed(operation, path, err)
}
