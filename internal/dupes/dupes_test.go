package dupes_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"dupesweep/internal/discovery"
	"dupesweep/internal/dupes"
)

func entries(dir string, names ...string) []discovery.Entry {
	out := make([]discovery.Entry, 0, len(names))
	for _, name := range names {
		out = append(out, discovery.Entry{Name: name, Path: filepath.Join(dir, name)})
	}
	return out
}

type mapDigester struct {
	sums  map[string]string
	calls map[string]int
}

func (m *mapDigester) Digest(path string) (string, error) {
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[path]++
	sum, ok := m.sums[filepath.Base(path)]
	if !ok {
		return "", errors.New("open " + path + ": no such file or directory")
	}
	return sum, nil
}

func TestClassifyNeverReturnsMarkedFiles(t *testing.T) {
	files := []string{
		"/pics/cat.jpg",
		"/pics/cat (1).jpg",
		"/my pics/dog.png",
		"/my pics/dog (2).png",
		"/pics/bird.gif",
	}
	got := dupes.Classify(files, " ")
	want := []string{"/pics/cat.jpg", "/my pics/dog.png", "/pics/bird.gif"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Classify = %v, want %v", got, want)
	}
	for _, o := range got {
		if dupes.IsCandidate(o, " ") {
			t.Fatalf("original %q contains the marker in its final segment", o)
		}
	}
}

func TestClassifyCustomMarker(t *testing.T) {
	got := dupes.Classify([]string{"a.jpg", "a_copy.jpg", "b c.jpg"}, "_copy")
	want := []string{"a.jpg", "b c.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Classify = %v, want %v", got, want)
	}
}

func TestBaseNameAndExtension(t *testing.T) {
	tests := []struct {
		path, base, ext string
	}{
		{"/pics/cat.jpg", "cat", "jpg"},
		{"/pics/archive.tar.gz", "archive", "gz"},
		{"/pic.s/cat (1).jpeg", "cat (1)", "jpeg"},
	}
	for _, tc := range tests {
		if got := dupes.BaseName(tc.path); got != tc.base {
			t.Errorf("BaseName(%q) = %q, want %q", tc.path, got, tc.base)
		}
		if got := dupes.Extension(tc.path); got != tc.ext {
			t.Errorf("Extension(%q) = %q, want %q", tc.path, got, tc.ext)
		}
	}
}

func TestCandidatesFilenameRule(t *testing.T) {
	dir := "/pics"
	list := entries(dir,
		"cat (1).jpg",
		"cat (1).png",
		"cat (2).jpg",
		"cat.jpg",
		"cat2 (1).jpg",
		"cat_copy.jpg",
		"dog (1).jpg",
	)
	list = append(list, discovery.Entry{Name: "cat (3).jpg", Path: filepath.Join(dir, "cat (3).jpg"), IsDir: true})

	r := dupes.Resolver{Marker: " "}
	got := r.Candidates(filepath.Join(dir, "cat.jpg"), list)
	want := []string{
		filepath.Join(dir, "cat (1).jpg"),
		filepath.Join(dir, "cat (2).jpg"),
		// Prefix match: "cat2 (1).jpg" also starts with "cat".
		filepath.Join(dir, "cat2 (1).jpg"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Candidates = %v, want %v", got, want)
	}
}

func TestResolveWithoutVerificationTrustsFilenames(t *testing.T) {
	dir := "/pics"
	list := entries(dir, "cat (1).jpg", "cat (2).jpg", "cat.jpg", "dog.png")
	digester := &mapDigester{}
	r := dupes.Resolver{Marker: " ", Digester: digester}

	sets, err := r.Resolve(context.Background(), list, []string{filepath.Join(dir, "cat.jpg"), filepath.Join(dir, "dog.png")})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := []dupes.Set{{
		Original:   filepath.Join(dir, "cat.jpg"),
		Duplicates: []string{filepath.Join(dir, "cat (1).jpg"), filepath.Join(dir, "cat (2).jpg")},
	}}
	if !reflect.DeepEqual(sets, want) {
		t.Fatalf("Resolve = %#v, want %#v", sets, want)
	}
	if len(digester.calls) != 0 {
		t.Fatalf("expected no hashing without verification, got %v", digester.calls)
	}
}

func TestResolveWithVerificationKeepsOnlyEqualDigests(t *testing.T) {
	dir := "/pics"
	list := entries(dir, "cat (1).jpg", "cat (2).jpg", "cat.jpg")
	digester := &mapDigester{sums: map[string]string{
		"cat.jpg":     "aaa",
		"cat (1).jpg": "aaa",
		"cat (2).jpg": "bbb",
	}}
	r := dupes.Resolver{Marker: " ", Verify: true, Digester: digester}

	original := filepath.Join(dir, "cat.jpg")
	sets, err := r.Resolve(context.Background(), list, []string{original})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(sets) != 1 || !reflect.DeepEqual(sets[0].Duplicates, []string{filepath.Join(dir, "cat (1).jpg")}) {
		t.Fatalf("unexpected sets: %#v", sets)
	}
	if digester.calls[original] != 1 {
		t.Fatalf("expected original digested once, got %d", digester.calls[original])
	}
}

func TestResolveDropsSetWhenNoCandidateVerifies(t *testing.T) {
	dir := "/pics"
	list := entries(dir, "cat (1).jpg", "cat.jpg")
	digester := &mapDigester{sums: map[string]string{"cat.jpg": "aaa", "cat (1).jpg": "zzz"}}
	r := dupes.Resolver{Marker: " ", Verify: true, Digester: digester}

	sets, err := r.Resolve(context.Background(), list, []string{filepath.Join(dir, "cat.jpg")})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(sets) != 0 {
		t.Fatalf("expected no sets, got %#v", sets)
	}
}

func TestResolveDigestsOriginalWithoutCandidates(t *testing.T) {
	list := entries("/pics", "dog.png")
	digester := &mapDigester{sums: map[string]string{"dog.png": "ddd"}}
	r := dupes.Resolver{Marker: " ", Verify: true, Digester: digester}

	sets, err := r.Resolve(context.Background(), list, []string{"/pics/dog.png"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(sets) != 0 {
		t.Fatalf("expected no sets, got %#v", sets)
	}
	if digester.calls["/pics/dog.png"] != 1 {
		t.Fatalf("expected the original to be digested once, got %v", digester.calls)
	}
}

func TestResolveUnreadableOriginalWithoutCandidatesIsFatal(t *testing.T) {
	list := entries("/pics", "dog.png")
	// dog.png has no digest: it cannot be read.
	r := dupes.Resolver{Marker: " ", Verify: true, Digester: &mapDigester{}}

	if _, err := r.Resolve(context.Background(), list, []string{"/pics/dog.png"}); err == nil {
		t.Fatal("expected unreadable original to abort resolution")
	}
}

func TestResolveDigestFailureIsSurfaced(t *testing.T) {
	list := entries("/pics", "cat (1).jpg", "cat.jpg")
	// The candidate is unreadable.
	digester := &mapDigester{sums: map[string]string{"cat.jpg": "aaa"}}
	r := dupes.Resolver{Marker: " ", Verify: true, Digester: digester}

	if _, err := r.Resolve(context.Background(), list, []string{"/pics/cat.jpg"}); err == nil {
		t.Fatal("expected digest failure to be returned")
	}
}

func TestResolveVerifyRequiresDigester(t *testing.T) {
	r := dupes.Resolver{Marker: " ", Verify: true}
	if _, err := r.Resolve(context.Background(), nil, nil); err == nil {
		t.Fatal("expected error without digester")
	}
}
