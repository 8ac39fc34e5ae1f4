package discovery

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(filepath.Base(path)), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestMediaFilesFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.jpg", "c.PNG", "d.png", "notes.txt", "e.Jpg", ".hidden.jpg", "jpg"} {
		touch(t, filepath.Join(dir, name))
	}
	if err := os.Mkdir(filepath.Join(dir, "album.jpg"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := MediaFiles(dir, []string{"jpg", "png", "PNG"})
	if err != nil {
		t.Fatalf("MediaFiles: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.jpg"),
		filepath.Join(dir, "d.png"),
		filepath.Join(dir, "c.PNG"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MediaFiles = %v, want %v", got, want)
	}
}

func TestMediaFilesIsNotRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "sub", "bird.gif"))

	got, err := MediaFiles(dir, []string{"gif"})
	if err != nil {
		t.Fatalf("MediaFiles: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no files from subdirectories, got %v", got)
	}
}

func TestMediaFilesEmptyMatchIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "readme.md"))
	got, err := MediaFiles(dir, []string{"jpg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestMediaFilesMissingDirectory(t *testing.T) {
	if _, err := MediaFiles(filepath.Join(t.TempDir(), "missing"), []string{"jpg"}); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestMediaFilesUnreadableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	dir := filepath.Join(t.TempDir(), "locked")
	if err := os.Mkdir(dir, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	if _, err := MediaFiles(dir, []string{"jpg"}); err == nil {
		t.Fatal("expected error for unreadable directory")
	}
}

func TestSubdirectoriesSortedAndFollowLinks(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	touch(t, filepath.Join(dir, "file.jpg"))
	if runtime.GOOS != "windows" {
		if err := os.Symlink(filepath.Join(dir, "alpha"), filepath.Join(dir, "link")); err != nil {
			t.Fatal(err)
		}
	}

	got, err := Subdirectories(dir)
	if err != nil {
		t.Fatalf("Subdirectories: %v", err)
	}
	want := []string{filepath.Join(dir, "alpha")}
	if runtime.GOOS != "windows" {
		want = append(want, filepath.Join(dir, "link"))
	}
	want = append(want, filepath.Join(dir, "mid"), filepath.Join(dir, "zeta"))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Subdirectories = %v, want %v", got, want)
	}
}

func TestListSharesSnapshot(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "cat.jpg"))
	touch(t, filepath.Join(dir, "cat (1).jpg"))
	touch(t, filepath.Join(dir, "cat.txt"))

	listing, err := List(dir, []string{"jpg"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listing.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(listing.Entries))
	}
	if len(listing.Media) != 2 {
		t.Fatalf("expected 2 media files, got %v", listing.Media)
	}
	if len(listing.Subdirectories()) != 0 {
		t.Fatalf("expected no subdirectories")
	}
}
