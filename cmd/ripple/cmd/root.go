// Package cmd implements the ripple CLI commands.
//
// A root command dispatches to subcommands (window, term, render). Each
// subcommand parses its own flags.
package cmd

import (
	"fmt"
	"io"
	"os"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "ripple",
	Short: "Touch ripple container demo",
	Long: `ripple hosts a touch ripple container around a text label.

Pressing inside the container grows a translucent circle from the press
point until release. Ripple parameters can be read from a YAML attribute
file with -config.

Use "ripple <command> --help" for more information about a command.`,
	Usage: "ripple <command> [flags]",
}

// Commands registered with the CLI, in registration order.
var (
	commands    = make(map[string]*Command)
	commandList []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	commandList = append(commandList, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	if len(args) == 0 {
		printHelp(os.Stdout)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(os.Stdout)
		return nil
	case "-v", "--version", "version":
		fmt.Printf("ripple version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printHelp(os.Stderr)
		return fmt.Errorf("unknown command: %s", args[0])
	}
	return cmd.Run(args[1:])
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, rootCmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range commandList {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  ripple window                       Open a window")
	fmt.Fprintln(w, "  ripple term -sound                  Run in the terminal with a click tone")
	fmt.Fprintln(w, "  ripple render -o ripple.png -at 750ms")
}
