// Package filesystem lists directories for path completion.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// URISeparator separates a storage URI from the directory inside it, as in
// "content://com.android.externalstorage.documents/tree/primary::/sdcard/project/".
const URISeparator = "::"

// osReadDir is a variable that can be overridden for testing.
var osReadDir = os.ReadDir

// Entry is a single item of a directory listing.
type Entry struct {
	Name    string
	IsFile  bool
	Size    int64
	ModTime time.Time
}

// Lister produces the contents of a directory.
type Lister interface {
	List(ctx context.Context, dir string) ([]Entry, error)
}

// OSLister lists directories on the local file system.
type OSLister struct{}

// List returns the entries of dir in name order.
func (OSLister) List(ctx context.Context, dir string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := LocalPath(dir)
	dirEntries, err := osReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entry := Entry{
			Name:   de.Name(),
			IsFile: !de.IsDir(),
		}
		// Info can fail for entries removed since ReadDir; keep the name anyway.
		if info, err := de.Info(); err == nil {
			entry.Size = info.Size()
			entry.ModTime = info.ModTime()
			if info.Mode()&os.ModeSymlink != 0 {
				if target, err := os.Stat(joinPath(path, de.Name())); err == nil {
					entry.IsFile = !target.IsDir()
				}
			}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// HasStorageURI reports whether path carries a "<uri>::" prefix.
func HasStorageURI(path string) bool {
	return strings.Contains(path, URISeparator)
}

// AbsoluteURI makes a relative file path absolute against the working
// directory. Absolute paths and storage URIs are returned unchanged.
func AbsoluteURI(path string) (string, error) {
	if path == "" || strings.HasPrefix(path, "/") || filepath.IsAbs(path) || HasStorageURI(path) {
		return path, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return filepath.ToSlash(abs), nil
}

// LocalPath strips the storage URI prefix from a "<uri>::<dir>" path.
// Plain paths are returned unchanged.
func LocalPath(dir string) string {
	if idx := strings.Index(dir, URISeparator); idx >= 0 {
		return dir[idx+len(URISeparator):]
	}
	return dir
}

func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}
