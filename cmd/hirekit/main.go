// cmd/hirekit/main.go
//
// This is the entry point for the hirekit CLI.
// When you run `hirekit` from any directory, that directory becomes the
// project: positions, logs and exports live under its .hirekit/ folder.
//
// With no subcommand the interactive TUI starts. The subcommands cover the
// same operations for scripts.

package main

func main() {
	Execute()
}
