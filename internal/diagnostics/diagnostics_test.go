package diagnostics

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/zamotany/lunatic/internal/dialect"
	"github.com/zamotany/lunatic/internal/parser"
	"github.com/zamotany/lunatic/internal/position"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		input    string
		lua      string
		code     string
		kind     string
		category DiagnosticCategory
		line     int
		column   int
	}{
		{"'abc", "5.4", "E001", "UnterminatedString", CategoryLexical, 1, 1},
		{"x .. [[abc", "5.4", "E002", "UnterminatedLongString", CategoryLexical, 1, 6},
		{"[=x", "5.4", "E003", "UndeterminedStringDelimiter", CategoryLexical, 1, 1},
		{"1 + @", "5.4", "E004", "UnknownCharacter", CategoryLexical, 1, 5},
		{"1 2", "5.4", "E101", "UnexpectedToken", CategorySyntax, 1, 3},
		{"a.", "5.4", "E102", "UnexpectedEndOfTokens", CategorySyntax, 1, 3},
		{"(1 + 2", "5.4", "E103", "MissingClosingDelimiter", CategorySyntax, 1, 7},
		{"1 + )", "5.4", "E104", "MissingOperand", CategorySyntax, 1, 5},
		{"{ [1] 2 }", "5.4", "E105", "MissingFieldSeparator", CategorySyntax, 1, 7},
		{"a // b", "5.2", "E107", "UnsupportedOperator", CategoryDialect, 1, 3},
	}

	for i, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := parser.ParseSource(tt.input, parser.Options{Dialect: dialect.MustParse(tt.lua)})
			if err == nil {
				t.Fatalf("tests[%d] - expected an error for %q", i, tt.input)
			}

			d := FromError(err)
			if d.Code != tt.code {
				t.Errorf("tests[%d] - code wrong. expected=%q, got=%q", i, tt.code, d.Code)
			}
			if d.Kind != tt.kind {
				t.Errorf("tests[%d] - kind wrong. expected=%q, got=%q", i, tt.kind, d.Kind)
			}
			if d.Category != tt.category {
				t.Errorf("tests[%d] - category wrong. expected=%s, got=%s", i, tt.category, d.Category)
			}
			if d.Level != DiagnosticError {
				t.Errorf("tests[%d] - level wrong. got=%s", i, d.Level)
			}
			if d.Span.Start.Line != tt.line || d.Span.Start.Column != tt.column {
				t.Errorf("tests[%d] - position wrong. expected=%d:%d, got=%s", i, tt.line, tt.column, d.Location())
			}
		})
	}
}

func TestFromErrorNesting(t *testing.T) {
	source := strings.Repeat("(", 10) + "1" + strings.Repeat(")", 10)
	_, err := parser.ParseSource(source, parser.Options{MaxDepth: 3})

	d := FromError(err)
	if d.Code != "E106" || d.Category != CategoryLimit {
		t.Fatalf("expected E106/limit, got %s/%s", d.Code, d.Category)
	}
}

func TestFromErrorWrapped(t *testing.T) {
	_, err := parser.ParseSource("(1", parser.Options{})
	wrapped := fmt.Errorf("main.lua: %w", err)

	if d := FromError(wrapped); d.Code != "E103" {
		t.Fatalf("wrapped error not unwrapped. got code=%q", d.Code)
	}
}

func TestFromErrorInternal(t *testing.T) {
	d := FromError(errors.New("disk on fire"))

	if d.Category != CategoryInternal || d.Code != "" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if d.Message != "disk on fire" {
		t.Fatalf("message wrong. got=%q", d.Message)
	}
	if d.Span.Start.IsValid() {
		t.Fatalf("internal diagnostic should have no span")
	}
}

func TestRendererFormat(t *testing.T) {
	source := "(1 + 2"
	_, err := parser.ParseSource(source, parser.Options{})
	d := FromError(err)

	got := Renderer{}.Format(d, position.NewSourceFile("", source))
	expected := "<input>:1:7: error[E103]: expected `)` to close `(` at 1:1, got end of input\n" +
		"   1 | (1 + 2\n" +
		"     |       ^\n"

	if got != expected {
		t.Fatalf("format wrong.\nexpected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestRendererFormatMultiline(t *testing.T) {
	source := "a +\n  b c"
	_, err := parser.ParseSource(source, parser.Options{})
	d := FromError(err)

	got := Renderer{Context: 1}.Format(d, position.NewSourceFile("expr.lua", source))
	expected := "expr.lua:2:5: error[E101]: unexpected `c` after expression\n" +
		"   1 | a +\n" +
		"   2 |   b c\n" +
		"     |     ^\n"

	if got != expected {
		t.Fatalf("format wrong.\nexpected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestRendererColor(t *testing.T) {
	d := Diagnostic{Level: DiagnosticWarning, Code: "W001", Message: "careful"}

	got := Renderer{Color: true}.Format(d, nil)
	expected := "<input>: \033[1;33mwarning[W001]\033[0m: careful\n"
	if got != expected {
		t.Fatalf("format wrong. expected=%q, got=%q", expected, got)
	}
}
