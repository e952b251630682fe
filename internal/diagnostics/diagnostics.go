// Package diagnostics turns scanner and parser failures into user-facing
// reports with an error code and a highlighted source excerpt.
package diagnostics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zamotany/lunatic/internal/lexer"
	"github.com/zamotany/lunatic/internal/parser"
	"github.com/zamotany/lunatic/internal/position"
)

// DiagnosticLevel represents the severity level of a diagnostic
type DiagnosticLevel int

const (
	DiagnosticError DiagnosticLevel = iota
	DiagnosticWarning
	DiagnosticInfo
)

func (dl DiagnosticLevel) String() string {
	switch dl {
	case DiagnosticError:
		return "error"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticInfo:
		return "info"
	default:
		return "unknown"
	}
}

// DiagnosticCategory represents the category of diagnostic
type DiagnosticCategory int

const (
	CategoryLexical DiagnosticCategory = iota
	CategorySyntax
	CategoryDialect
	CategoryLimit
	CategoryInternal
)

func (dc DiagnosticCategory) String() string {
	switch dc {
	case CategoryLexical:
		return "lexical"
	case CategorySyntax:
		return "syntax"
	case CategoryDialect:
		return "dialect"
	case CategoryLimit:
		return "limit"
	case CategoryInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Diagnostic is a single reportable problem.
type Diagnostic struct {
	Level    DiagnosticLevel
	Category DiagnosticCategory
	Code     string // "E001".."E107", empty for internal errors
	Kind     string // name of the underlying error kind
	Message  string
	Span     position.Span
}

// Location returns "line:col" of the diagnostic start.
func (d Diagnostic) Location() string {
	return fmt.Sprintf("%d:%d", d.Span.Start.Line, d.Span.Start.Column)
}

var lexicalCodes = map[lexer.ErrorCategory]string{
	lexer.CategoryUnterminatedString:          "E001",
	lexer.CategoryUnterminatedLongString:      "E002",
	lexer.CategoryUndeterminedStringDelimiter: "E003",
	lexer.CategoryUnknownCharacter:            "E004",
}

var parseCodes = map[parser.ErrorKind]string{
	parser.UnexpectedToken:         "E101",
	parser.UnexpectedEndOfTokens:   "E102",
	parser.MissingClosingDelimiter: "E103",
	parser.MissingOperand:          "E104",
	parser.MissingFieldSeparator:   "E105",
	parser.NestingTooDeep:          "E106",
	parser.UnsupportedOperator:     "E107",
}

// FromError converts a scanner or parser error into a Diagnostic. Any
// other error becomes an internal diagnostic without a span.
func FromError(err error) Diagnostic {
	var lexErr *lexer.LexicalError
	if errors.As(err, &lexErr) {
		start := lexErr.Pos()
		end := start
		if lexErr.Char != 0 {
			end = start.Advance(string(lexErr.Char))
		}
		return Diagnostic{
			Level:    DiagnosticError,
			Category: CategoryLexical,
			Code:     lexicalCodes[lexErr.Category],
			Kind:     lexErr.Category.String(),
			Message:  lexErr.Message,
			Span:     position.Span{Start: start, End: end},
		}
	}

	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		category := CategorySyntax
		switch parseErr.Kind {
		case parser.UnsupportedOperator:
			category = CategoryDialect
		case parser.NestingTooDeep:
			category = CategoryLimit
		}
		return Diagnostic{
			Level:    DiagnosticError,
			Category: category,
			Code:     parseCodes[parseErr.Kind],
			Kind:     parseErr.Kind.String(),
			Message:  parseErr.Message,
			Span:     parseErr.Token.Span(),
		}
	}

	return Diagnostic{
		Level:    DiagnosticError,
		Category: CategoryInternal,
		Kind:     "Internal",
		Message:  err.Error(),
	}
}

// Renderer formats diagnostics for a terminal or a log.
type Renderer struct {
	Color   bool // wrap the level in ANSI escapes
	Context int  // source lines shown above the offending one
}

// Format renders d as a header line followed by an excerpt of file. file
// may be nil, in which case only the header is produced.
func (r Renderer) Format(d Diagnostic, file *position.SourceFile) string {
	var result strings.Builder

	name := "<input>"
	if file != nil && file.Filename != "" {
		name = file.Filename
	}
	if d.Span.Start.IsValid() {
		fmt.Fprintf(&result, "%s:%s: ", name, d.Location())
	} else {
		fmt.Fprintf(&result, "%s: ", name)
	}

	level := d.Level.String()
	if d.Code != "" {
		level += "[" + d.Code + "]"
	}
	if r.Color {
		level = colorizeLevel(d.Level) + level + "\033[0m"
	}
	result.WriteString(level)
	result.WriteString(": " + d.Message + "\n")

	if file != nil && d.Span.Start.IsValid() {
		result.WriteString(position.NewHighlighter(file, r.Context).Highlight(d.Span))
	}

	return result.String()
}

// colorizeLevel adds color codes for terminal display
func colorizeLevel(level DiagnosticLevel) string {
	switch level {
	case DiagnosticError:
		return "\033[1;31m"
	case DiagnosticWarning:
		return "\033[1;33m"
	case DiagnosticInfo:
		return "\033[1;34m"
	default:
		return ""
	}
}
