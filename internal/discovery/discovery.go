package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one immediate child of a directory.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// Entries lists dir in name order. Symlinks are resolved so a link to a
// directory reports IsDir; a dangling link is listed as a file.
func Entries(dir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}
	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		path := filepath.Join(dir, d.Name())
		isDir := d.IsDir()
		if d.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil {
				isDir = info.IsDir()
			}
		}
		entries = append(entries, Entry{Name: d.Name(), Path: path, IsDir: isDir})
	}
	return entries, nil
}

// MediaFiles returns the files in dir whose names end in "."+ext for one of
// extensions. Matching is case-sensitive. Results are grouped by extension in
// allow-list order, then by name. Hidden files are skipped, as a shell glob
// "*.ext" would.
func MediaFiles(dir string, extensions []string) ([]string, error) {
	entries, err := Entries(dir)
	if err != nil {
		return nil, err
	}
	return filterMedia(entries, extensions), nil
}

func filterMedia(entries []Entry, extensions []string) []string {
	var files []string
	for _, ext := range extensions {
		suffix := "." + ext
		for _, e := range entries {
			if e.IsDir || strings.HasPrefix(e.Name, ".") {
				continue
			}
			if strings.HasSuffix(e.Name, suffix) {
				files = append(files, e.Path)
			}
		}
	}
	return files
}

// Subdirectories returns the immediate subdirectories of dir in name order.
func Subdirectories(dir string) ([]string, error) {
	listing, err := List(dir, nil)
	if err != nil {
		return nil, err
	}
	return listing.Subdirectories(), nil
}

// Listing is the full view of one directory needed by a sweep pass.
type Listing struct {
	Dir     string
	Entries []Entry
	Media   []string
}

// List reads dir once and derives both the media files and the entry list,
// so classification and candidate search observe the same snapshot.
func List(dir string, extensions []string) (Listing, error) {
	entries, err := Entries(dir)
	if err != nil {
		return Listing{}, err
	}
	return Listing{Dir: dir, Entries: entries, Media: filterMedia(entries, extensions)}, nil
}

// Subdirectories returns the directories found in the listing.
func (l Listing) Subdirectories() []string {
	var dirs []string
	for _, e := range l.Entries {
		if e.IsDir {
			dirs = append(dirs, e.Path)
		}
	}
	return dirs
}
