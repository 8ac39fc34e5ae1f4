// Package history journals sweep runs and individual removals in a local
// SQLite database.
//
// The journal is a record of what happened, not an undo facility: removed
// files are gone. It lives outside any scanned tree so a sweep never writes
// anything into the directories it inspects.
package history
