package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/zamotany/lunatic/internal/config"
)

func cmdConfig(args []string, e env) int {
	fs := newFlagSet("config", e)
	path := fs.String("config", config.DefaultFile, "configuration file path")
	initFile := fs.Bool("init", false, "write a default configuration file")
	force := fs.Bool("force", false, "overwrite an existing file with -init")
	show := fs.Bool("show", false, "print the effective configuration")
	validate := fs.Bool("validate", false, "validate the configuration file")
	if err := fs.Parse(args); err != nil {
		return flagExit(err)
	}

	switch {
	case *initFile:
		if _, err := os.Stat(*path); err == nil && !*force {
			fmt.Fprintf(e.stderr, "Error: %s already exists (use -force to overwrite)\n", *path)
			return 1
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(e.stderr, "Error: %v\n", err)
			return 1
		}
		if err := config.Default().Save(*path); err != nil {
			fmt.Fprintf(e.stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(e.stdout, "wrote %s\n", *path)
	case *show:
		cfg, err := config.Load(*path)
		if err != nil {
			fmt.Fprintf(e.stderr, "Error: %v\n", err)
			return 1
		}
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			fmt.Fprintf(e.stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintln(e.stdout, string(data))
	case *validate:
		cfg, err := config.Load(*path)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			fmt.Fprintf(e.stderr, "Error: %s: %v\n", *path, err)
			return 1
		}
		fmt.Fprintf(e.stdout, "%s is valid\n", *path)
	default:
		fs.Usage()
		return 2
	}
	return 0
}
