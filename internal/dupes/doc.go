// Package dupes decides which files in a directory are originals and which
// are their duplicates.
//
// The signal is a filename convention: when an OS or browser saves a file
// whose name is taken, it inserts a marker (by default a space, as in
// "cat (1).jpg"). A file without the marker in its final path segment is an
// original. A duplicate candidate of an original lives in the same directory,
// starts with the original's base name, contains the marker, and ends with the
// original's extension.
//
// The base-name test is a prefix match, so "photo.jpg" also claims
// "photo2 (1).jpg". That looseness is part of the convention as it has always
// been applied and is kept as is. When verification is enabled, candidates are
// additionally required to have the original's content digest.
package dupes
