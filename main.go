// Command nonosolve is the CLI entry point: it delegates to cmd.Execute,
// which wires the solve/generate/validate/render/batch/repair/clean/
// fixtures subcommands.
package main

import "github.com/eng618/nonosolve/cmd"

func main() {
	cmd.Execute()
}
