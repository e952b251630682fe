package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zamotany/lunatic/internal/cli"
	"github.com/zamotany/lunatic/internal/config"
	"github.com/zamotany/lunatic/internal/diagnostics"
	"github.com/zamotany/lunatic/internal/parser"
	"github.com/zamotany/lunatic/internal/position"
	"github.com/zamotany/lunatic/internal/term"
)

// env carries the process streams so commands can run under test.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// commonFlags are accepted by every command that scans or parses.
type commonFlags struct {
	configPath string
	lua        string
	maxDepth   int
	color      string
	verbose    bool
	debug      bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", config.DefaultFile, "configuration file path")
	fs.StringVar(&c.lua, "lua", "", "target Lua version (5.1-5.4)")
	fs.IntVar(&c.maxDepth, "max-depth", 0, "maximum expression nesting")
	fs.StringVar(&c.color, "color", "", "colour diagnostics: auto, always or never")
	fs.BoolVar(&c.verbose, "v", false, "verbose logging")
	fs.BoolVar(&c.debug, "debug", false, "debug logging")
}

// settings is the resolved configuration for one command run.
type settings struct {
	cfg      *config.Config
	opts     parser.Options
	log      *cli.Logger
	renderer diagnostics.Renderer
}

// resolve loads the config file and lets explicitly set flags override it.
func (c *commonFlags) resolve(fs *flag.FlagSet, e env) (*settings, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lua":
			cfg.LuaVersion = c.lua
		case "max-depth":
			cfg.MaxDepth = c.maxDepth
		case "color":
			cfg.Color = c.color
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	opts, err := cfg.ParserOptions()
	if err != nil {
		return nil, err
	}

	log := cli.NewLoggerFromFlags(e.stderr, cfg.LogLevel, c.verbose, c.debug)
	log.Debug("config %s: lua=%s max_depth=%d", c.configPath, opts.Dialect, opts.MaxDepth)

	stderrFile, _ := e.stderr.(*os.File)
	return &settings{
		cfg:      cfg,
		opts:     opts,
		log:      log,
		renderer: diagnostics.Renderer{Color: term.UseColor(cfg.Color, stderrFile), Context: 1},
	}, nil
}

// report renders err against source on stderr.
func (s *settings) report(e env, name, source string, err error) {
	var d diagnostics.Diagnostic
	var remote interface{ Diagnostic() diagnostics.Diagnostic }
	if errors.As(err, &remote) {
		d = remote.Diagnostic()
	} else {
		d = diagnostics.FromError(err)
	}
	fmt.Fprint(e.stderr, s.renderer.Format(d, position.NewSourceFile(name, source)))
}

// input is one expression source named for diagnostics.
type input struct {
	name   string
	source string
	err    error
}

// readInputs returns -expr, the named files, or stdin, in that order of
// preference.
func readInputs(e env, expr string, files []string) []input {
	if expr != "" {
		return []input{{name: "<expr>", source: expr}}
	}
	if len(files) == 0 {
		data, err := io.ReadAll(e.stdin)
		return []input{{name: "<stdin>", source: string(data), err: err}}
	}

	inputs := make([]input, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		inputs = append(inputs, input{name: f, source: string(data), err: err})
	}
	return inputs
}

// newFlagSet returns a flag set whose -h output is the command's usage
// followed by its flags.
func newFlagSet(name string, e env) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		cli.PrintCommandUsage(e.stderr, "lunatic", commandInfo(name))
		fmt.Fprintln(e.stderr, "OPTIONS:")
		fs.PrintDefaults()
	}
	return fs
}

// flagExit is the exit code for a failed fs.Parse: -h is not an error.
func flagExit(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 2
}

// checkFormat rejects output formats no command can print.
func checkFormat(format string) error {
	switch format {
	case "debug", "json", "tokens":
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}
