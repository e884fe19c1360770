// Package uploads owns the managed uploads directory. Stored files get
// collision-resistant names and are referenced by forward-slash relative
// paths ("uploads/<name>") regardless of host OS.
package uploads

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RefPrefix is the path prefix under which stored files are referenced and
// served.
const RefPrefix = "uploads"

type Manager struct {
	dir string
}

func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// Ensure creates the uploads directory on first run.
func (m *Manager) Ensure() error {
	return os.MkdirAll(m.dir, 0o755)
}

// Store writes one uploaded file under a generated name and returns its
// relative reference. The reference only exists after the file is fully on
// disk, so a stored record never points at a missing file.
func (m *Manager) Store(fh *multipart.FileHeader) (string, error) {
	if err := m.Ensure(); err != nil {
		return "", err
	}

	name := StoredName(fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(m.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return path.Join(RefPrefix, name), nil
}

// Remove deletes the file behind a reference. Cleanup is advisory: a missing
// file or a failed unlink is logged and swallowed, never surfaced.
func (m *Manager) Remove(ref string) {
	base := path.Base(ref)
	if base == "." || base == "/" {
		return
	}
	if err := os.Remove(filepath.Join(m.dir, base)); err != nil && !os.IsNotExist(err) {
		log.Printf("uploads: failed to remove %s: %v", base, err)
	}
}

// Exists reports whether the file behind a reference is on disk.
func (m *Manager) Exists(ref string) bool {
	_, err := os.Stat(filepath.Join(m.dir, path.Base(ref)))
	return err == nil
}

// StoredName derives a collision-resistant stored filename from an upload:
// millisecond timestamp plus a random suffix, original extension lower-cased.
func StoredName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
