// Package fileutil holds the two filesystem primitives the sweep depends on:
// streaming content digests and file removal with an explicit outcome.
//
// Digesting and removal deliberately disagree about missing files. A file that
// cannot be opened while hashing is an error the caller must surface, while a
// file that is already gone at removal time is reported as NotFound so the
// caller can log it and move on.
package fileutil
