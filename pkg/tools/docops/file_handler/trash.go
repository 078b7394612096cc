package file_handler

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// moveToTrash moves a file or empty directory into the XDG trash
// (~/.local/share/Trash) and writes the matching .trashinfo record so
// desktop environments can restore it. Returns the name the item was
// trashed under, which differs from the original when that name is taken.
func moveToTrash(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", path, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	filesDir := filepath.Join(home, ".local", "share", "Trash", "files")
	infoDir := filepath.Join(home, ".local", "share", "Trash", "info")
	if err := os.MkdirAll(filesDir, 0o700); err != nil {
		return "", fmt.Errorf("create trash directory: %w", err)
	}
	if err := os.MkdirAll(infoDir, 0o700); err != nil {
		return "", fmt.Errorf("create trash directory: %w", err)
	}

	name := availableTrashName(filesDir, infoDir, filepath.Base(abs))

	// Per the freedesktop trash spec the Path value is percent-encoded.
	escaped := (&url.URL{Path: abs}).EscapedPath()
	info := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		escaped, time.Now().Format("2006-01-02T15:04:05"))
	infoPath := filepath.Join(infoDir, name+".trashinfo")
	if err := os.WriteFile(infoPath, []byte(info), 0o600); err != nil {
		return "", fmt.Errorf("write trash info: %w", err)
	}

	if err := os.Rename(abs, filepath.Join(filesDir, name)); err != nil {
		os.Remove(infoPath)
		return "", fmt.Errorf("move to trash: %w", err)
	}
	return name, nil
}

// availableTrashName finds a name not yet used in either trash directory,
// suffixing a counter when the base name is taken.
func availableTrashName(filesDir, infoDir, base string) string {
	name := base
	for i := 1; ; i++ {
		_, errFile := os.Lstat(filepath.Join(filesDir, name))
		_, errInfo := os.Lstat(filepath.Join(infoDir, name+".trashinfo"))
		if os.IsNotExist(errFile) && os.IsNotExist(errInfo) {
			return name
		}
		name = fmt.Sprintf("%s.%d", base, i)
	}
}
