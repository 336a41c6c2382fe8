// Package fsutil holds small filesystem helpers for run outputs.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// CheckDir makes sure the directory that will contain fileName exists,
// creating it and any parents when missing. A bare file name refers to
// the working directory and needs nothing.
func CheckDir(fileName string) error {
	dir := filepath.Dir(fileName)
	if dir == "." || dir == "" {
		return nil
	}

	_, err := os.Stat(dir)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("check dir %s: %w", dir, err)
	}

	logrus.Infof("make dirs: %s", dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("make dirs %s: %w", dir, err)
	}
	return nil
}
