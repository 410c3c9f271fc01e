package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// EnsureCleanDir removes root and everything below it if it exists, then
// creates root/nested... fresh. A missing root is not an error. It returns
// the path of the innermost directory.
func EnsureCleanDir(root string, nested ...string) (string, error) {
	if root == "" {
		return "", errors.New("fsutil: root directory must not be empty")
	}
	if err := os.RemoveAll(root); err != nil {
		return "", fmt.Errorf("failed to remove %s: %w", root, err)
	}

	target := filepath.Join(append([]string{root}, nested...)...)
	if err := os.MkdirAll(target, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", target, err)
	}
	return target, nil
}

// WriteFile creates or truncates dir/name and writes content to it. The file
// is closed on every path; a close failure after a successful write is
// reported. The write is not atomic.
func WriteFile(dir, name, content string) (err error) {
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", path, cerr))
		}
	}()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
