// Package assets copies picked images into the app's durable storage and
// removes them when a note or its image is deleted. Cleanup is best-effort:
// failures are logged, never propagated.
package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"notekeeper/internal/common"
	"notekeeper/internal/logging"
)

const assetSubdir = "notes_images"

// Manager owns the asset directory under the app's data directory.
type Manager struct {
	baseDir string
	log     logging.Logger

	// now is a test seam for the timestamp-derived file names.
	now func() time.Time
}

func NewManager(baseDir string, log logging.Logger) *Manager {
	return &Manager{baseDir: baseDir, log: log, now: time.Now}
}

// EnsureDir creates the asset directory if it does not exist yet and returns
// its path. Safe to call repeatedly.
func (m *Manager) EnsureDir() (string, error) {
	dir := filepath.Join(m.baseDir, assetSubdir)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// Import copies the file at src into the asset directory under a generated
// unique name and returns the destination path, or "" on failure. The name
// is timestamp-derived with a short random suffix; collisions are treated as
// negligible, not cryptographically excluded.
func (m *Manager) Import(ctx context.Context, src string) string {
	dir, err := m.EnsureDir()
	if err != nil {
		m.log.Error(ctx, "importing asset failed", "src", src, "error", err)
		return ""
	}

	suffix, err := common.MakeRandHexString(4)
	if err != nil {
		m.log.Error(ctx, "importing asset failed", "src", src, "error", err)
		return ""
	}
	ext := filepath.Ext(src)
	if ext == "" {
		ext = ".jpg"
	}
	dst := filepath.Join(dir, fmt.Sprintf("note_%d_%s%s", m.now().UnixMilli(), suffix, ext))

	if err := copyFile(src, dst); err != nil {
		m.log.Error(ctx, "importing asset failed", "src", src, "dst", dst, "error", err)
		return ""
	}
	return dst
}

// Delete removes the asset at path if it exists; a missing file is a silent
// no-op and removal failures are only logged.
func (m *Manager) Delete(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return
	}
	if err := os.Remove(path); err != nil {
		m.log.Error(ctx, "deleting asset failed", "path", path, "error", err)
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return fmt.Errorf("copy to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("close %s: %w", dst, err)
	}
	return nil
}
