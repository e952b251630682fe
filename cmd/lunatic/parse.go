package main

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zamotany/lunatic/internal/ast"
	"github.com/zamotany/lunatic/internal/lexer"
	"github.com/zamotany/lunatic/internal/parser"
	"github.com/zamotany/lunatic/internal/server"
)

// parseResult is the printable outcome of one input.
type parseResult struct {
	output string
	err    error
}

func cmdParse(ctx context.Context, args []string, e env) int {
	fs := newFlagSet("parse", e)
	var common commonFlags
	common.register(fs)
	format := fs.String("format", "", "output format: debug or json (default from config)")
	expr := fs.String("expr", "", "parse this expression instead of files")
	remote := fs.String("remote", "", "parse on a lunatic server, e.g. https://127.0.0.1:4433")
	insecure := fs.Bool("insecure", false, "skip TLS verification for -remote")
	if err := fs.Parse(args); err != nil {
		return flagExit(err)
	}

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

	var client *server.Client
	if *remote != "" {
		hc := server.NewHTTP3Client(&tls.Config{InsecureSkipVerify: *insecure, MinVersion: tls.VersionTLS13}, 10*time.Second)
		defer server.ShutdownClient(hc)
		client = server.NewClient(*remote, hc)
	}

	inputs := readInputs(e, *expr, fs.Args())
	results := make([]parseResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, in := range inputs {
		g.Go(func() error {
			if in.err != nil {
				results[i] = parseResult{err: in.err}
				return nil
			}
			if client != nil {
				results[i] = parseRemote(gctx, client, in.source, s.opts.Dialect.String(), out)
			} else {
				results[i] = parseLocal(in.source, s.opts, out)
			}
			s.log.Debug("parsed %s", in.name)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return 1
	}

	code := 0
	for i, res := range results {
		if res.err != nil {
			code = 1
			s.report(e, inputs[i].name, inputs[i].source, res.err)
			continue
		}
		if len(inputs) > 1 {
			fmt.Fprintf(e.stdout, "%s: ", inputs[i].name)
		}
		fmt.Fprintln(e.stdout, res.output)
	}
	s.log.Info("parsed %d input(s), %d failed", len(inputs), failures(results))
	return code
}

func parseLocal(source string, opts parser.Options, format string) parseResult {
	if format == "tokens" {
		tokens, err := lexer.ScanWithOptions(source, lexer.Options{Dialect: opts.Dialect})
		if err != nil {
			return parseResult{err: err}
		}
		return parseResult{output: trimNewline(lexer.DebugString(tokens))}
	}

	expr, err := parser.ParseSource(source, opts)
	if err != nil {
		return parseResult{err: err}
	}
	return render(expr, format)
}

func parseRemote(ctx context.Context, c *server.Client, source, version, format string) parseResult {
	if format == "tokens" {
		resp, err := c.Tokens(ctx, source, version)
		if err != nil {
			return parseResult{err: err}
		}
		return parseResult{output: trimNewline(resp.Debug)}
	}

	resp, err := c.Parse(ctx, source, version)
	if err != nil {
		return parseResult{err: err}
	}
	if format == "json" {
		return parseResult{output: string(resp.AST)}
	}
	return parseResult{output: resp.Debug}
}

// render prints an expression in the given output format.
func render(expr ast.Expression, format string) parseResult {
	if format == "json" {
		data, err := ast.JSONEncoder{}.Marshal(expr)
		if err != nil {
			return parseResult{err: err}
		}
		return parseResult{output: string(data)}
	}
	return parseResult{output: ast.Debug(expr)}
}

func failures(results []parseResult) int {
	n := 0
	for _, r := range results {
		if r.err != nil {
			n++
		}
	}
	return n
}

func trimNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s[:n-1]
	}
	return s
}

func cmdTokens(ctx context.Context, args []string, e env) int {
	fs := newFlagSet("tokens", e)
	var common commonFlags
	common.register(fs)
	expr := fs.String("expr", "", "scan this source instead of files")
	asJSON := fs.Bool("json", false, "print tokens as JSON")
	if err := fs.Parse(args); err != nil {
		return flagExit(err)
	}

	s, err := common.resolve(fs, e)
	if err != nil {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return 2
	}

	code := 0
	for _, in := range readInputs(e, *expr, fs.Args()) {
		if ctx.Err() != nil {
			return 1
		}
		if in.err != nil {
			fmt.Fprintf(e.stderr, "Error: %v\n", in.err)
			code = 1
			continue
		}

		tokens, err := lexer.ScanWithOptions(in.source, lexer.Options{Dialect: s.opts.Dialect})
		if err != nil {
			s.report(e, in.name, in.source, err)
			code = 1
			continue
		}

		if *asJSON {
			out := make([]server.TokenJSON, 0, len(tokens))
			for _, tok := range tokens {
				out = append(out, server.TokenJSON{Type: tok.Type.String(), Lexeme: tok.Lexeme, Literal: tok.Literal, Line: tok.Line, Column: tok.Column})
			}
			data, err := json.Marshal(out)
			if err != nil {
				fmt.Fprintf(e.stderr, "Error: %s: %v\n", in.name, err)
				code = 1
				continue
			}
			fmt.Fprintln(e.stdout, string(data))
			continue
		}
		fmt.Fprint(e.stdout, lexer.DebugString(tokens))
	}
	return code
}
