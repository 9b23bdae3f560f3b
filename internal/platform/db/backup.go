package db

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Backup writes a consistent copy of the live database to destPath using
// SQLite's native VACUUM INTO. destPath must not already exist.
func (d *DB) Backup(ctx context.Context, destPath string) error {
	if _, err := os.Stat(destPath); err == nil {
		return fmt.Errorf("backup target %s already exists", destPath)
	}
	if _, err := d.ExecContext(ctx, `VACUUM INTO ?`, destPath); err != nil {
		return fmt.Errorf("backup to %s: %w", destPath, err)
	}
	return nil
}

// Restore closes the live handle and overwrites the database file with the
// contents of srcPath. The application must be restarted afterwards; the
// receiver is unusable once Restore returns.
func (d *DB) Restore(srcPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open restore source: %w", err)
	}
	defer src.Close()

	if err := d.Close(); err != nil {
		return fmt.Errorf("close live database: %w", err)
	}

	// Drop WAL sidecar files so the restored image is opened cleanly.
	os.Remove(d.path + "-wal")
	os.Remove(d.path + "-shm")

	dst, err := os.Create(d.path)
	if err != nil {
		return fmt.Errorf("overwrite %s: %w", d.path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("restore %s from %s: %w", d.path, srcPath, err)
	}
	return nil
}
