package main

import (
	"context"
	"fmt"
	"os"

	"github.com/zamotany/lunatic/internal/cli"
	"github.com/zamotany/lunatic/internal/watch"
)

func cmdWatch(ctx context.Context, args []string, e env) int {
	fs := newFlagSet("watch", e)
	var common commonFlags
	common.register(fs)
	format := fs.String("format", "", "output format: debug, json or tokens (default from config)")
	if err := fs.Parse(args); err != nil {
		return flagExit(err)
	}
	if err := cli.ValidateArgs(fs.Args(), 1, commandInfo("watch").Usage); err != nil {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(e.stderr, "Error: watch takes a single FILE, got %d\n", fs.NArg())
		return 2
	}
	path := fs.Arg(0)

	s, err := common.resolve(fs, e)
	if err != nil {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return 2
	}
	out := s.cfg.Output
	if *format != "" {
		out = *format
	}
	if err := checkFormat(out); err != nil {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return 2
	}
	debounce, err := s.cfg.DebounceDuration()
	if err != nil {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return 2
	}

	reparse := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			s.log.Warn("read %s: %v", path, err)
			return
		}
		source := string(data)
		res := parseLocal(source, s.opts, out)
		if res.err != nil {
			s.report(e, path, source, res.err)
			return
		}
		fmt.Fprintln(e.stdout, res.output)
	}

	reparse()
	s.log.Info("watching %s (debounce %s)", path, debounce)
	if err := watch.Run(ctx, path, debounce, reparse); err != nil {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
