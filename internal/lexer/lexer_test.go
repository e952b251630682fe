package lexer

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/zamotany/lunatic/internal/dialect"
)

type expectedToken struct {
	expectedType    TokenType
	expectedLexeme  string
	expectedOffset  int
	expectedLiteral string
}

func checkTokens(t *testing.T, input string, tests []expectedToken) {
	t.Helper()

	tokens, err := Scan(input)
	if err != nil {
		t.Fatalf("Scan(%q) returned error: %v", input, err)
	}
	if len(tokens) != len(tests) {
		t.Fatalf("Scan(%q) returned %d tokens, want %d\n%s", input, len(tokens), len(tests), DebugString(tokens))
	}

	for i, tt := range tests {
		tok := tokens[i]

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q",
				i, tt.expectedLexeme, tok.Lexeme)
		}

		if tok.Offset != tt.expectedOffset {
			t.Fatalf("tests[%d] - offset wrong. expected=%d, got=%d",
				i, tt.expectedOffset, tok.Offset)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestUnaryExpressions(t *testing.T) {
	checkTokens(t, "-1", []expectedToken{
		{TokenMinus, "-", 0, ""},
		{TokenNumeral, "1", 1, "1"},
		{TokenEOF, "", 2, ""},
	})
	checkTokens(t, "not true", []expectedToken{
		{TokenNot, "not", 0, ""},
		{TokenTrue, "true", 4, ""},
		{TokenEOF, "", 8, ""},
	})
	checkTokens(t, "#some_array", []expectedToken{
		{TokenHash, "#", 0, ""},
		{TokenIdentifier, "some_array", 1, ""},
		{TokenEOF, "", 11, ""},
	})
	checkTokens(t, "~value", []expectedToken{
		{TokenTilde, "~", 0, ""},
		{TokenIdentifier, "value", 1, ""},
		{TokenEOF, "", 6, ""},
	})
}

func TestBinaryExpressions(t *testing.T) {
	checkTokens(t, "3 * 2", []expectedToken{
		{TokenNumeral, "3", 0, "3"},
		{TokenStar, "*", 2, ""},
		{TokenNumeral, "2", 4, "2"},
		{TokenEOF, "", 5, ""},
	})
	checkTokens(t, "3 ^ 2", []expectedToken{
		{TokenNumeral, "3", 0, "3"},
		{TokenCaret, "^", 2, ""},
		{TokenNumeral, "2", 4, "2"},
		{TokenEOF, "", 5, ""},
	})
	checkTokens(t, "3 // 2 / 1", []expectedToken{
		{TokenNumeral, "3", 0, "3"},
		{TokenFloorDiv, "//", 2, ""},
		{TokenNumeral, "2", 5, "2"},
		{TokenSlash, "/", 7, ""},
		{TokenNumeral, "1", 9, "1"},
		{TokenEOF, "", 10, ""},
	})
}

func TestComparisons(t *testing.T) {
	checkTokens(t, "5 >= 5", []expectedToken{
		{TokenNumeral, "5", 0, "5"},
		{TokenGe, ">=", 2, ""},
		{TokenNumeral, "5", 5, "5"},
		{TokenEOF, "", 6, ""},
	})
	checkTokens(t, "11 < 10", []expectedToken{
		{TokenNumeral, "11", 0, "11"},
		{TokenLt, "<", 3, ""},
		{TokenNumeral, "10", 5, "10"},
		{TokenEOF, "", 7, ""},
	})
}

func TestLongestMatch(t *testing.T) {
	input := `= == ~= ~ < <= << > >= >> . .. ... [ ] ( ) { } , : ; + % & | #`

	tests := []struct {
		expectedType   TokenType
		expectedLexeme string
	}{
		{TokenAssign, "="},
		{TokenEq, "=="},
		{TokenNe, "~="},
		{TokenTilde, "~"},
		{TokenLt, "<"},
		{TokenLe, "<="},
		{TokenShl, "<<"},
		{TokenGt, ">"},
		{TokenGe, ">="},
		{TokenShr, ">>"},
		{TokenDot, "."},
		{TokenConcat, ".."},
		{TokenVararg, "..."},
		{TokenLBracket, "["},
		{TokenRBracket, "]"},
		{TokenLParen, "("},
		{TokenRParen, ")"},
		{TokenLBrace, "{"},
		{TokenRBrace, "}"},
		{TokenComma, ","},
		{TokenColon, ":"},
		{TokenSemicolon, ";"},
		{TokenPlus, "+"},
		{TokenPercent, "%"},
		{TokenAmpersand, "&"},
		{TokenPipe, "|"},
		{TokenHash, "#"},
		{TokenEOF, ""},
	}

	tokens, err := Scan(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, tt := range tests {
		tok := tokens[i]

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q",
				i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `and break do else end false for function goto if in local nil not or repeat return then true until while elseif`

	tokens, err := Scan(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	words := strings.Fields(input)
	if len(tokens) != len(words)+1 {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(words)+1)
	}

	for i, word := range words {
		if !tokens[i].Type.IsKeyword() {
			t.Errorf("tests[%d] - %q should scan as a keyword, got %s", i, word, tokens[i].Type)
		}
		if tokens[i].Type != keywords[word] {
			t.Errorf("tests[%d] - tokentype wrong. expected=%q, got=%q", i, keywords[word], tokens[i].Type)
		}
	}
}

func TestIdentifiers(t *testing.T) {
	checkTokens(t, "_x1 Foo orz nil_", []expectedToken{
		{TokenIdentifier, "_x1", 0, ""},
		{TokenIdentifier, "Foo", 4, ""},
		{TokenIdentifier, "orz", 8, ""},
		{TokenIdentifier, "nil_", 12, ""},
		{TokenEOF, "", 16, ""},
	})
}

func TestGotoDependsOnDialect(t *testing.T) {
	tokens, err := ScanWithOptions("goto", Options{Dialect: dialect.MustParse("5.1")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Type != TokenIdentifier {
		t.Errorf("goto in Lua 5.1 should be an identifier, got %s", tokens[0].Type)
	}

	tokens, err = Scan("goto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Type != TokenGoto {
		t.Errorf("goto in Lua 5.4 should be a keyword, got %s", tokens[0].Type)
	}
}

func TestNumerals(t *testing.T) {
	checkTokens(t, "3.14 1..2 7.", []expectedToken{
		{TokenNumeral, "3.14", 0, "3.14"},
		{TokenNumeral, "1", 5, "1"},
		{TokenConcat, "..", 6, ""},
		{TokenNumeral, "2", 8, "2"},
		{TokenNumeral, "7", 10, "7"},
		{TokenDot, ".", 11, ""},
		{TokenEOF, "", 12, ""},
	})
}

func TestConcatenation(t *testing.T) {
	checkTokens(t, "'hello ' .. 'world'", []expectedToken{
		{TokenString, "'hello '", 0, "hello "},
		{TokenConcat, "..", 9, ""},
		{TokenString, "'world'", 12, "world"},
		{TokenEOF, "", 19, ""},
	})
	checkTokens(t, `"hello " .. 'world'`, []expectedToken{
		{TokenString, `"hello "`, 0, "hello "},
		{TokenConcat, "..", 9, ""},
		{TokenString, "'world'", 12, "world"},
		{TokenEOF, "", 19, ""},
	})
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{`"a\"b"`, `a"b`},
		{`'it\'s'`, `it's`},
		{`"tab\tnl\n"`, "tab\tnl\n"},
		{`"\\"`, `\`},
		{`"\65\066\x43"`, "ABC"},
		{`"\u{48}\u{20AC}"`, "H€"},
		{"\"a\\z  \n  b\"", "ab"},
		{"\"line\\\nnext\"", "line\nnext"},
		{`"\q"`, "q"},
		{`"\xZZ"`, "xZZ"},
		{`"\999"`, "999"},
		{`'say "hi"'`, `say "hi"`},
	}

	for i, tt := range tests {
		tokens, err := Scan(tt.input)
		if err != nil {
			t.Fatalf("tests[%d] - Scan(%q) returned error: %v", i, tt.input, err)
		}
		if tokens[0].Type != TokenString {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q", i, TokenString, tokens[0].Type)
		}
		if tokens[0].Lexeme != tt.input {
			t.Errorf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.input, tokens[0].Lexeme)
		}
		if tokens[0].Literal != tt.literal {
			t.Errorf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.literal, tokens[0].Literal)
		}
	}
}

func TestLongStrings(t *testing.T) {
	tests := []struct {
		input    string
		literal  string
		nextLine int
	}{
		{"[[a\nb]] x", "a\nb", 2},
		{"[[\nfoo]] x", "foo", 2},
		{"[==[ a ]] b ]=] ]==] x", " a ]] b ]=] ", 1},
		{"[[ first ]] ]] x", " first ", 1},
	}

	for i, tt := range tests {
		tokens, err := Scan(tt.input)
		if err != nil {
			t.Fatalf("tests[%d] - Scan(%q) returned error: %v", i, tt.input, err)
		}
		if tokens[0].Type != TokenString || tokens[0].Literal != tt.literal {
			t.Fatalf("tests[%d] - long string wrong. expected literal=%q, got %s lit=%q",
				i, tt.literal, tokens[0].Type, tokens[0].Literal)
		}
		last := tokens[len(tokens)-2]
		if last.Type != TokenIdentifier || last.Line != tt.nextLine {
			t.Errorf("tests[%d] - trailing token wrong. expected line=%d, got %s", i, tt.nextLine, last)
		}
	}
}

func TestComments(t *testing.T) {
	input := "1 -- line comment\n" +
		"--[[ block\ncomment ]] 2\n" +
		"--[==[ ]] still ]==] 3 --[= not long\n" +
		"4"

	tokens, err := Scan(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		literal string
		line    int
	}{
		{"1", 1},
		{"2", 3},
		{"3", 4},
		{"4", 5},
	}

	if len(tokens) != len(tests)+1 {
		t.Fatalf("got %d tokens, want %d\n%s", len(tokens), len(tests)+1, DebugString(tokens))
	}
	for i, tt := range tests {
		if tokens[i].Literal != tt.literal || tokens[i].Line != tt.line {
			t.Errorf("tests[%d] - expected %s on line %d, got %s", i, tt.literal, tt.line, tokens[i])
		}
	}
}

func TestElseIfMerge(t *testing.T) {
	checkTokens(t, "else if", []expectedToken{
		{TokenElseif, "else if", 0, ""},
		{TokenEOF, "", 7, ""},
	})
	checkTokens(t, "x else\nif y", []expectedToken{
		{TokenIdentifier, "x", 0, ""},
		{TokenElseif, "else\nif", 2, ""},
		{TokenIdentifier, "y", 10, ""},
		{TokenEOF, "", 11, ""},
	})
	checkTokens(t, "if else", []expectedToken{
		{TokenIf, "if", 0, ""},
		{TokenElse, "else", 3, ""},
		{TokenEOF, "", 7, ""},
	})
	checkTokens(t, "else x if", []expectedToken{
		{TokenElse, "else", 0, ""},
		{TokenIdentifier, "x", 5, ""},
		{TokenIf, "if", 7, ""},
		{TokenEOF, "", 9, ""},
	})
}

func TestLinesAndColumns(t *testing.T) {
	tokens, err := Scan("a +\n  b\r\n\tc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		lexeme string
		line   int
		column int
	}{
		{"a", 1, 1},
		{"+", 1, 3},
		{"b", 2, 3},
		{"c", 3, 2},
		{"", 3, 3},
	}

	for i, tt := range tests {
		tok := tokens[i]
		if tok.Lexeme != tt.lexeme || tok.Line != tt.line || tok.Column != tt.column {
			t.Errorf("tests[%d] - expected %q at %d:%d, got %s", i, tt.lexeme, tt.line, tt.column, tok)
		}
	}

	span := tokens[2].Span()
	if span.Start.Offset != 6 || span.End.Offset != 7 || span.End.Column != 4 {
		t.Errorf("Span() = %+v", span)
	}
}

func TestLexicalErrors(t *testing.T) {
	tests := []struct {
		input    string
		category ErrorCategory
		line     int
		column   int
		char     rune
	}{
		{"'abc", CategoryUnterminatedString, 1, 1, '\''},
		{"x = \"ab\ncd\"", CategoryUnterminatedString, 1, 5, '"'},
		{"'abc\\", CategoryUnterminatedString, 1, 1, '\''},
		{"1 + [[abc\n", CategoryUnterminatedLongString, 1, 5, '['},
		{"[==[ abc ]=]", CategoryUnterminatedLongString, 1, 1, '['},
		{"--[[ never closed", CategoryUnterminatedLongString, 1, 1, '['},
		{"a[=x]", CategoryUndeterminedStringDelimiter, 1, 2, '['},
		{"1\n  @", CategoryUnknownCharacter, 2, 3, '@'},
		{"$", CategoryUnknownCharacter, 1, 1, '$'},
		{"é", CategoryUnknownCharacter, 1, 1, 'é'},
	}

	for i, tt := range tests {
		tokens, err := Scan(tt.input)
		if err == nil {
			t.Fatalf("tests[%d] - Scan(%q) expected error, got tokens:\n%s", i, tt.input, DebugString(tokens))
		}

		var lexErr *LexicalError
		if !errors.As(err, &lexErr) {
			t.Fatalf("tests[%d] - error type wrong. got=%T", i, err)
		}
		if lexErr.Category != tt.category {
			t.Errorf("tests[%d] - category wrong. expected=%s, got=%s", i, tt.category, lexErr.Category)
		}
		if lexErr.Line != tt.line || lexErr.Column != tt.column {
			t.Errorf("tests[%d] - position wrong. expected=%d:%d, got=%d:%d",
				i, tt.line, tt.column, lexErr.Line, lexErr.Column)
		}
		if lexErr.Char != tt.char {
			t.Errorf("tests[%d] - char wrong. expected=%q, got=%q", i, tt.char, lexErr.Char)
		}
	}
}

func TestScanIsIdempotent(t *testing.T) {
	input := "foo.bar[1 + 2]:baz { 'x', [[y]] } -- done\nelse if"

	l := New(input)
	first, err := l.ScanTokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := l.ScanTokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	third, err := Scan(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) || !reflect.DeepEqual(first, third) {
		t.Errorf("scans differ:\n%s\n%s\n%s", DebugString(first), DebugString(second), DebugString(third))
	}
}

func TestEOFOffset(t *testing.T) {
	for _, input := range []string{"", "   ", "x", "-- comment only", "1 + 2\n"} {
		tokens, err := Scan(input)
		if err != nil {
			t.Fatalf("Scan(%q) returned error: %v", input, err)
		}
		eof := tokens[len(tokens)-1]
		if eof.Type != TokenEOF || eof.Offset != len(input) {
			t.Errorf("Scan(%q) last token = %s offset %d, want EOF at %d", input, eof, eof.Offset, len(input))
		}
	}
}

func TestDebugString(t *testing.T) {
	tokens, err := Scan("x .. 'y'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "token t=IDENTIFIER lex=`x` line=1 col=1\n" +
		"token t=CONCAT lex=`..` line=1 col=3\n" +
		"token t=STRING lex=`'y'` lit=`y` line=1 col=6\n" +
		"token t=EOF lex=`` line=1 col=9\n"
	if got := DebugString(tokens); got != want {
		t.Errorf("DebugString() =\n%s\nwant\n%s", got, want)
	}
}
