package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// ErrArchiveExists is returned when the archive already holds a file with
// the source's base name. Nothing is overwritten.
var ErrArchiveExists = errors.New("archive destination already exists")

// Archive moves src into dir, keeping its base name, and returns the new path.
// dir is created if needed.
func Archive(src, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("archive: create dir: %w", err)
	}

	dst := filepath.Join(dir, filepath.Base(src))
	if _, err := os.Lstat(dst); err == nil {
		return "", fmt.Errorf("archive: %q: %w", dst, ErrArchiveExists)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("archive: stat %q: %w", dst, err)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return dst, nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return "", fmt.Errorf("archive: move: %w", err)
	}

	// Source and archive live on different filesystems.
	if err := copyFile(src, dst); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("archive: copy: %w", err)
	}
	if err := os.Remove(src); err != nil {
		return "", fmt.Errorf("archive: remove source: %w", err)
	}
	return dst, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
