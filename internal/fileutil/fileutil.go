// Package fileutil writes report files requested on the command line.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReportMode is the permission of report files. Reports quote model text,
// which may be private, so they are readable by the owner only.
const ReportMode os.FileMode = 0o600

// OutputPath cleans path and resolves it to an absolute path. Paths that are
// symlinks or directories are rejected; paths that do not exist yet are
// accepted.
func OutputPath(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("fileutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("fileutil: refusing to write to symlink: %s", abs)
		}
		if info.IsDir() {
			return "", fmt.Errorf("fileutil: output path is a directory: %s", abs)
		}
	case os.IsNotExist(err):
	default:
		return "", fmt.Errorf("fileutil: cannot stat path: %w", err)
	}
	return abs, nil
}

// WriteReport writes data to the file at path, replacing it.
func WriteReport(path string, data []byte) error {
	abs, err := OutputPath(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(abs, data, ReportMode); err != nil {
		return fmt.Errorf("fileutil: failed to write %s: %w", abs, err)
	}
	return nil
}
