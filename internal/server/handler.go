// Package server exposes the scanner and parser over HTTP. The handler is
// transport agnostic; HTTP3Server serves it over QUIC.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/zamotany/lunatic/internal/ast"
	"github.com/zamotany/lunatic/internal/cli"
	"github.com/zamotany/lunatic/internal/diagnostics"
	"github.com/zamotany/lunatic/internal/dialect"
	"github.com/zamotany/lunatic/internal/lexer"
	"github.com/zamotany/lunatic/internal/parser"
)

// MaxRequestBytes caps request bodies.
const MaxRequestBytes = 1 << 20

// Options configure the handler.
type Options struct {
	// Parser supplies the defaults for requests that omit lua_version or
	// max_depth.
	Parser parser.Options
	Logger *cli.Logger
}

// Request is the body of /v1/parse and /v1/tokens.
type Request struct {
	Source     string `json:"source"`
	LuaVersion string `json:"lua_version,omitempty"`
	MaxDepth   int    `json:"max_depth,omitempty"`
}

// ParseResponse is returned by /v1/parse.
type ParseResponse struct {
	AST   json.RawMessage `json:"ast"`
	Debug string          `json:"debug"`
}

// TokenResponse is returned by /v1/tokens.
type TokenResponse struct {
	Tokens []TokenJSON `json:"tokens"`
	Debug  string      `json:"debug"`
}

// TokenJSON is the wire form of a lexer.Token.
type TokenJSON struct {
	Type    string `json:"type"`
	Lexeme  string `json:"lexeme"`
	Literal string `json:"literal,omitempty"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// ErrorBody is the wire form of a failed request.
type ErrorBody struct {
	Code     string `json:"code,omitempty"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

type errorResponse struct {
	Error ErrorBody `json:"error"`
}

type handler struct {
	opts Options
	log  *cli.Logger
}

// NewHandler returns the HTTP API:
//
//	POST /v1/parse   parse one expression
//	POST /v1/tokens  scan source into tokens
//	GET  /healthz    liveness
func NewHandler(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = cli.NewLogger(nil, cli.LevelError)
	}
	h := &handler{opts: opts, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/parse", h.parse)
	mux.HandleFunc("POST /v1/tokens", h.tokens)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux
}

func (h *handler) parse(w http.ResponseWriter, r *http.Request) {
	req, opts, ok := h.decode(w, r)
	if !ok {
		return
	}

	expr, err := parser.ParseSource(req.Source, opts)
	if err != nil {
		h.log.Debug("%s %s: %v", r.Method, r.URL.Path, err)
		writeDiagnostic(w, err)
		return
	}

	tree, err := ast.JSONEncoder{}.Marshal(expr)
	if err != nil {
		writeError(w, http.StatusInternalServerError, ErrorBody{Category: "internal", Message: err.Error()})
		return
	}

	h.log.Debug("%s %s: ok (%d bytes)", r.Method, r.URL.Path, len(req.Source))
	writeJSON(w, http.StatusOK, ParseResponse{AST: tree, Debug: ast.Debug(expr)})
}

func (h *handler) tokens(w http.ResponseWriter, r *http.Request) {
	req, opts, ok := h.decode(w, r)
	if !ok {
		return
	}

	tokens, err := lexer.ScanWithOptions(req.Source, lexer.Options{Dialect: opts.Dialect})
	if err != nil {
		h.log.Debug("%s %s: %v", r.Method, r.URL.Path, err)
		writeDiagnostic(w, err)
		return
	}

	out := make([]TokenJSON, 0, len(tokens))
	for i := range tokens {
		tok := &tokens[i]
		out = append(out, TokenJSON{
			Type:    tok.Type.String(),
			Lexeme:  tok.Lexeme,
			Literal: tok.Literal,
			Line:    tok.Line,
			Column:  tok.Column,
		})
	}

	writeJSON(w, http.StatusOK, TokenResponse{Tokens: out, Debug: lexer.DebugString(tokens)})
}

// decode reads the request body and resolves the parser options for it.
// On failure the response has already been written.
func (h *handler) decode(w http.ResponseWriter, r *http.Request) (Request, parser.Options, bool) {
	var req Request

	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, ErrorBody{
				Category: "request",
				Message:  fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			})
			return req, parser.Options{}, false
		}
		writeError(w, http.StatusBadRequest, ErrorBody{Category: "request", Message: "malformed request: " + err.Error()})
		return req, parser.Options{}, false
	}

	opts := h.opts.Parser
	if req.LuaVersion != "" {
		d, err := dialect.Parse(req.LuaVersion)
		if err != nil {
			writeError(w, http.StatusBadRequest, ErrorBody{Category: "request", Message: err.Error()})
			return req, parser.Options{}, false
		}
		opts.Dialect = d
	}
	if req.MaxDepth < 0 {
		writeError(w, http.StatusBadRequest, ErrorBody{Category: "request", Message: "max_depth must not be negative"})
		return req, parser.Options{}, false
	}
	if req.MaxDepth > 0 {
		opts.MaxDepth = req.MaxDepth
	}

	return req, opts, true
}

func writeDiagnostic(w http.ResponseWriter, err error) {
	d := diagnostics.FromError(err)
	status := http.StatusUnprocessableEntity
	if d.Category == diagnostics.CategoryInternal {
		status = http.StatusInternalServerError
	}
	writeError(w, status, ErrorBody{
		Code:     d.Code,
		Category: d.Kind,
		Message:  d.Message,
		Line:     d.Span.Start.Line,
		Column:   d.Span.Start.Column,
	})
}

func writeError(w http.ResponseWriter, status int, body ErrorBody) {
	writeJSON(w, status, errorResponse{Error: body})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
