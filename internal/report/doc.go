// Package report renders the human-readable sweep output: one block per
// directory, one header per duplicate set, one line per file, and a closing
// summary table.
//
// The line shapes are stable because people grep them. Warnings are
// colorized only when the destination is a terminal.
package report
