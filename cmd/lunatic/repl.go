package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/zamotany/lunatic/internal/dialect"
	"github.com/zamotany/lunatic/internal/lexer"
	"github.com/zamotany/lunatic/internal/parser"
)

const (
	historyFile = ".lunatic_history"
	promptMain  = "lua> "
	promptCont  = "...> "
)

// prompter reads one line of input. liner.State implements it.
type prompter interface {
	Prompt(prompt string) (string, error)
}

// session holds REPL state between inputs.
type session struct {
	settings   *settings
	env        env
	format     string
	showTokens bool
}

func cmdRepl(ctx context.Context, args []string, e env) int {
	fs := newFlagSet("repl", e)
	var common commonFlags
	common.register(fs)
	if err := fs.Parse(args); err != nil {
		return flagExit(err)
	}

	s, err := common.resolve(fs, e)
	if err != nil {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(e.stdout, "lunatic REPL (Lua %s)\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.\n", s.opts.Dialect)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	format := s.cfg.Output
	if format == "tokens" {
		format = "debug"
	}
	sess := &session{settings: s, env: e, format: format}
	sess.loop(ln, ln.AppendHistory)
	return 0
}

// loop reads inputs until EOF or :quit.
func (s *session) loop(p prompter, remember func(string)) {
	for {
		src, ok := readByParseProbe(p, s.settings.opts, promptMain, promptCont)
		if !ok {
			fmt.Fprintln(s.env.stdout)
			return
		}

		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if remember != nil {
			remember(strings.ReplaceAll(src, "\n", " "))
		}
		if strings.HasPrefix(trimmed, ":") {
			if s.command(trimmed) {
				return
			}
			continue
		}
		s.eval(src)
	}
}

// readByParseProbe keeps prompting while the accumulated text is a prefix
// of a valid expression. It reports false at end of input.
func readByParseProbe(p prompter, opts parser.Options, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = p.Prompt(prompt)
		} else {
			line, err = p.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || strings.TrimSpace(src) == "" {
			return src, true
		}
		if _, perr := parser.ParseSource(src, opts); parser.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}

func (s *session) eval(src string) {
	opts := s.settings.opts

	if s.showTokens {
		tokens, err := lexer.ScanWithOptions(src, lexer.Options{Dialect: opts.Dialect})
		if err == nil {
			fmt.Fprint(s.env.stdout, lexer.DebugString(tokens))
		}
	}

	expr, err := parser.ParseSource(src, opts)
	if err != nil {
		s.settings.report(s.env, "<repl>", src, err)
		return
	}

	res := render(expr, s.format)
	if res.err != nil {
		fmt.Fprintf(s.env.stderr, "Error: %v\n", res.err)
		return
	}
	fmt.Fprintln(s.env.stdout, res.output)
}

// command runs a :command and reports whether the REPL should exit.
func (s *session) command(line string) bool {
	fields := strings.Fields(line)
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch strings.ToLower(fields[0]) {
	case ":quit", ":q", ":exit":
		return true
	case ":help", ":h":
		fmt.Fprint(s.env.stdout, replHelp)
	case ":tokens":
		switch arg {
		case "on":
			s.showTokens = true
		case "off":
			s.showTokens = false
		default:
			fmt.Fprintln(s.env.stdout, "usage: :tokens on|off")
			return false
		}
		fmt.Fprintf(s.env.stdout, "tokens %s\n", arg)
	case ":format":
		if arg != "debug" && arg != "json" {
			fmt.Fprintln(s.env.stdout, "usage: :format debug|json")
			return false
		}
		s.format = arg
		fmt.Fprintf(s.env.stdout, "format %s\n", arg)
	case ":lua":
		if arg == "" {
			fmt.Fprintf(s.env.stdout, "Lua %s\n", s.settings.opts.Dialect)
			return false
		}
		d, err := dialect.Parse(arg)
		if err != nil {
			fmt.Fprintf(s.env.stderr, "Error: %v\n", err)
			return false
		}
		s.settings.opts.Dialect = d
		fmt.Fprintf(s.env.stdout, "Lua %s\n", d)
	default:
		fmt.Fprintf(s.env.stdout, "unknown command %s. Type :help for commands.\n", fields[0])
	}
	return false
}

const replHelp = `Enter a Lua expression to see its tree.
  :help              show this help
  :quit              exit
  :tokens on|off     also print the token stream
  :format debug|json choose the tree format
  :lua [5.x]         show or change the target Lua version
`
