// Package main hosts the dupesweep CLI entrypoint and command graph.
//
// The root command runs a sweep: it resolves configuration, applies flag
// overrides, shows the pre-run warning and countdown, takes the commit lock,
// and hands the base directory to the sweep walker. Subcommands scaffold and
// validate configuration and browse the run journal.
//
// Keep this package lean: behaviour belongs in the internal packages and is
// only surfaced here through flags and commands.
package main
