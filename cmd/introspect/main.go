package main

import (
	"flag"
	"fmt"
	"os"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ConfigDir string
	File      string
	Agents    string
	Addr      string
	Verbose   bool
	ServeMCP  bool
	Version   bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("introspect", flag.ContinueOnError)
	fs.StringVar(&flags.ConfigDir, "config-dir", ".", "directory searched for introspect.yml registry overrides")
	fs.StringVar(&flags.File, "file", "", "analyze a single source file and print the intent record as JSON")
	fs.StringVar(&flags.Agents, "agents", "", "comma-separated agent endpoint URLs to share insights with")
	fs.StringVar(&flags.Addr, "addr", ":8137", "listen address for the MCP server")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log every analysis event")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as MCP server for agent host integration")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Println(version)
		return nil
	}

	switch {
	case flags.File != "":
		return runAnalyze(flags)
	case flags.ServeMCP:
		return runServe(flags)
	default:
		fs.Usage()
		return fmt.Errorf("nothing to do: pass -file or -serve-mcp")
	}
}
