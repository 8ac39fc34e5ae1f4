package fileutil

import (
	"crypto/sha1" //nolint:gosec // used for content equality, not integrity
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"io/fs"
	"os"
)

// DefaultChunkSize is the read size used when a Hasher leaves ChunkSize unset.
const DefaultChunkSize = 1024

// Hasher computes content digests by streaming files in fixed-size chunks.
type Hasher struct {
	// Algorithm is "sha1" (default) or "sha256".
	Algorithm string
	ChunkSize int
}

// NewHasher validates the algorithm up front so a typo fails before any
// directory is visited.
func NewHasher(algorithm string, chunkSize int) (Hasher, error) {
	h := Hasher{Algorithm: algorithm, ChunkSize: chunkSize}
	if _, err := h.newHash(); err != nil {
		return Hasher{}, err
	}
	return h, nil
}

func (h Hasher) newHash() (hash.Hash, error) {
	switch h.Algorithm {
	case "", "sha1":
		return sha1.New(), nil //nolint:gosec
	case "sha256":
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm %q", h.Algorithm)
	}
}

// Digest returns the lowercase hex digest of the file at path.
func (h Hasher) Digest(path string) (string, error) {
	sum, err := h.newHash()
	if err != nil {
		return "", err
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s for hashing: %w", path, err)
	}
	defer file.Close()

	chunk := h.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	if _, err := io.CopyBuffer(sum, struct{ io.Reader }{file}, make([]byte, chunk)); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(sum.Sum(nil)), nil
}

// Deleter abstracts file removal so tests can simulate races and failures.
type Deleter interface {
	Remove(path string) error
}

// OSDeleter removes files from the local filesystem.
type OSDeleter struct{}

func (OSDeleter) Remove(path string) error { return os.Remove(path) }

// RemoveOutcome is the result of a single removal attempt.
type RemoveOutcome int

const (
	Removed RemoveOutcome = iota
	NotFound
	Failed
)

func (o RemoveOutcome) String() string {
	switch o {
	case Removed:
		return "removed"
	case NotFound:
		return "not_found"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// RemoveFile deletes path and classifies the result. NotFound carries a nil
// error; Failed always carries the underlying error.
func RemoveFile(d Deleter, path string) (RemoveOutcome, error) {
	if d == nil {
		d = OSDeleter{}
	}
	err := d.Remove(path)
	switch {
	case err == nil:
		return Removed, nil
	case errors.Is(err, fs.ErrNotExist):
		return NotFound, nil
	default:
		return Failed, fmt.Errorf("remove %s: %w", path, err)
	}
}
