// Package remover reports and, in commit mode, deletes resolved duplicate
// sets.
//
// Exactly one failure is recovered locally: a duplicate that no longer exists
// when its turn comes. It is reported, logged, and skipped. Every other
// removal failure stops the run, because a destructive pass that quietly
// half-succeeds is worse than one that halts.
package remover
