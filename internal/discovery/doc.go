// Package discovery enumerates the immediate contents of a single directory:
// media files by extension allow-list, the full entry listing used for
// duplicate candidate search, and subdirectories for the tree walk.
//
// Nothing here recurses. Listings are sorted by name so every caller sees the
// same order for the same directory.
package discovery
