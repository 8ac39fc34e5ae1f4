// Package sweep drives a duplicate sweep over a directory tree.
//
// Each directory is handled on its own: list it, classify its media files,
// resolve duplicate sets, then report or remove them. With recursion enabled
// the walker then visits every subdirectory with the same options. Pending
// directories sit on an explicit stack, so tree depth never grows the Go
// call stack, and no state crosses from one directory to the next.
//
// There is no cycle detection and no depth limit; a symlink loop is walked
// until the filesystem refuses.
package sweep
