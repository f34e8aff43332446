// Package uploads handles image files on disk: the extension allow-list,
// collision-resistant filename generation and the best-effort move/remove
// batches used by product edits and deletions.
package uploads

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var allowedExt = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// Allowed reports whether the filename carries an accepted image extension.
func Allowed(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return ext != "" && allowedExt[ext]
}

// SanitizeFilename strips any path components and reduces the name to
// [A-Za-z0-9._-], so an uploaded filename can never traverse out of its
// category directory.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '_':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "._")
}

// NewFilename builds a stored name for an upload: unix timestamp, a short
// random suffix and the sanitized original, so two uploads of the same file
// never collide or overwrite each other.
func NewFilename(original string) string {
	uid := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%d_%s_%s", time.Now().Unix(), uid, SanitizeFilename(original))
}

// CategoryDir returns the storage directory for a category, creating it if
// needed.
func CategoryDir(imgBase, categoria string) (string, error) {
	dir := filepath.Join(imgBase, categoria)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// FileResult is the outcome of one file in a best-effort batch. Failures are
// collected instead of aborting the batch.
type FileResult struct {
	Filename string
	Err      error
}

// MoveAll relocates the given files from one category directory to another.
// A file that is already gone counts as moved; any other failure is recorded
// and the batch continues.
func MoveAll(imgBase, oldCat, newCat string, files []string) []FileResult {
	results := make([]FileResult, 0, len(files))
	newDir, err := CategoryDir(imgBase, newCat)
	if err != nil {
		for _, f := range files {
			results = append(results, FileResult{Filename: f, Err: err})
		}
		return results
	}
	for _, f := range files {
		oldPath := filepath.Join(imgBase, oldCat, f)
		if _, statErr := os.Stat(oldPath); os.IsNotExist(statErr) {
			results = append(results, FileResult{Filename: f})
			continue
		}
		results = append(results, FileResult{
			Filename: f,
			Err:      os.Rename(oldPath, filepath.Join(newDir, f)),
		})
	}
	return results
}

// RemoveAll deletes the given files from a category directory. A missing
// file is not an error.
func RemoveAll(imgBase, categoria string, files []string) []FileResult {
	results := make([]FileResult, 0, len(files))
	for _, f := range files {
		err := os.Remove(filepath.Join(imgBase, categoria, f))
		if os.IsNotExist(err) {
			err = nil
		}
		results = append(results, FileResult{Filename: f, Err: err})
	}
	return results
}
