package lexer

import (
	"fmt"
	"strings"
)

// DebugString renders one line per token, for tooling and test failures.
func DebugString(tokens []Token) string {
	var sb strings.Builder
	for _, token := range tokens {
		fmt.Fprintf(&sb, "token t=%s lex=`%s`", token.Type, token.Lexeme)
		if token.HasLiteral() {
			fmt.Fprintf(&sb, " lit=`%s`", token.Literal)
		}
		fmt.Fprintf(&sb, " line=%d col=%d\n", token.Line, token.Column)
	}
	return sb.String()
}
