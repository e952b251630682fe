// Command lunatic scans and parses Lua expressions.
//
// Usage:
//
//	lunatic parse  [-format debug|json] [-lua 5.x] [-expr SRC] [files...]
//	lunatic tokens [-lua 5.x] [files...]
//	lunatic repl
//	lunatic watch FILE
//	lunatic serve  [-addr host:port] [-cert FILE -key FILE]
//	lunatic config -init|-show|-validate
//	lunatic version [-json]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/zamotany/lunatic/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr})
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, e env) int {
	if len(args) < 1 {
		usage(e.stderr)
		return 2
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "help", "-h", "--help":
		usage(e.stdout)
		return 0
	case "version", "-v", "--version":
		jsonOutput := false
		for _, arg := range rest {
			if arg == "--json" || arg == "-json" || arg == "-j" {
				jsonOutput = true
			}
		}
		if err := cli.PrintVersion(e.stdout, "lunatic", jsonOutput); err != nil {
			fmt.Fprintf(e.stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	case "parse":
		return cmdParse(ctx, rest, e)
	case "tokens":
		return cmdTokens(ctx, rest, e)
	case "repl":
		return cmdRepl(ctx, rest, e)
	case "watch":
		return cmdWatch(ctx, rest, e)
	case "serve":
		return cmdServe(ctx, rest, e)
	case "config":
		return cmdConfig(rest, e)
	default:
		fmt.Fprintf(e.stderr, "unknown subcommand: %s\n", sub)
		usage(e.stderr)
		return 2
	}
}

// commands describes every subcommand for the top-level and -h usage text.
var commands = []cli.CommandInfo{
	{
		Name:        "parse",
		Usage:       "lunatic parse [OPTIONS] [-expr SRC | FILE...]",
		Description: "Parse expressions and print their tree",
		Examples:    []string{"lunatic parse -expr 'a.b + 1'", "lunatic parse -format json -lua 5.3 expr.lua"},
	},
	{
		Name:        "tokens",
		Usage:       "lunatic tokens [OPTIONS] [-json] [-expr SRC | FILE...]",
		Description: "Print the token stream",
		Examples:    []string{"lunatic tokens -expr 'x // 2'"},
	},
	{
		Name:        "repl",
		Usage:       "lunatic repl [OPTIONS]",
		Description: "Start interactive REPL",
	},
	{
		Name:        "watch",
		Usage:       "lunatic watch [OPTIONS] FILE",
		Description: "Re-parse a file whenever it changes",
		Examples:    []string{"lunatic watch -format json expr.lua"},
	},
	{
		Name:        "serve",
		Usage:       "lunatic serve [-addr HOST:PORT] [-cert FILE -key FILE]",
		Description: "Serve the parser over HTTP/3",
		Examples:    []string{"lunatic serve -addr 127.0.0.1:4433"},
	},
	{
		Name:        "config",
		Usage:       "lunatic config -init|-show|-validate [-config PATH]",
		Description: "Create, show or validate lunatic.json",
	},
	{
		Name:        "version",
		Usage:       "lunatic version [-json]",
		Description: "Print version information",
	},
}

func commandInfo(name string) cli.CommandInfo {
	for _, c := range commands {
		if c.Name == name {
			return c
		}
	}
	return cli.CommandInfo{Name: name, Usage: "lunatic " + name}
}

func usage(w io.Writer) {
	cli.PrintUsage(w, "lunatic", commands)
}
