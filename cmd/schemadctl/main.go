// Command schemadctl loads an RFC 4512 schema tree from a configured
// source, validates and enables it, and prints diagnostics or a merged
// schema dump. It is the only place in this module that registers a
// log handler; every other package just calls log.Printf.
package main

import (
	"fmt"
	"os"

	"github.com/comail/colog"
)

func main() {
	colog.SetDefaultLevel(colog.LInfo)
	colog.SetMinLevel(colog.LDebug)
	colog.Register()

	os.Exit(run(os.Args))
}

// run executes the CLI and returns an exit code. Separated from main()
// so it can be driven by tests without calling os.Exit.
func run(args []string) int {
	if len(args) < 2 {
		printUsage(os.Stderr)
		return 1
	}

	switch args[1] {
	case "load":
		return loadCmd(args[2:])
	case "verify":
		return verifyCmd(args[2:])
	case "dump":
		return dumpCmd(args[2:])
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[1])
		printUsage(os.Stderr)
		return 1
	}
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "usage: schemadctl <command> [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  load     load and enable the configured schema tree")
	fmt.Fprintln(w, "  verify   load the schema tree and report validation violations")
	fmt.Fprintln(w, "  dump     load the schema tree and print it back as descriptor strings")
}
