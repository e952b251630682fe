package lexer

import (
	"strings"
	"unicode/utf8"
)

var simpleEscapes = map[byte]byte{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
}

// readEscape decodes the escape sequence following a consumed backslash.
// Sequences Lua does not define keep their character verbatim.
func (l *Lexer) readEscape(out *strings.Builder) {
	ch := l.readChar()

	if decoded, ok := simpleEscapes[ch]; ok {
		out.WriteByte(decoded)
		return
	}

	switch {
	case ch == '\n' || ch == '\r':
		// \<newline>, with \r\n and \n\r counted once
		if next := l.peekChar(0); (next == '\n' || next == '\r') && next != ch {
			l.readChar()
		}
		out.WriteByte('\n')
	case ch == 'x':
		if isHexDigit(l.peekChar(0)) && isHexDigit(l.peekChar(1)) {
			hi, lo := hexValue(l.readChar()), hexValue(l.readChar())
			out.WriteByte(hi<<4 | lo)
			return
		}
		out.WriteByte(ch)
	case ch == 'z':
		for !l.isEOF() && isSpace(l.peekChar(0)) {
			l.readChar()
		}
	case ch == 'u':
		if r, ok := l.readUnicodeEscape(); ok {
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], r)
			out.Write(buf[:n])
			return
		}
		out.WriteByte(ch)
	case isDigit(ch):
		value := int(ch - '0')
		digits := string(ch)
		for i := 0; i < 2 && isDigit(l.peekChar(0)); i++ {
			d := l.readChar()
			value = value*10 + int(d-'0')
			digits += string(d)
		}
		if value > 255 {
			out.WriteString(digits)
			return
		}
		out.WriteByte(byte(value))
	default:
		out.WriteByte(ch)
	}
}

// readUnicodeEscape reads "{XXX}" after \u. The cursor is left untouched
// when the form is malformed.
func (l *Lexer) readUnicodeEscape() (rune, bool) {
	if l.peekChar(0) != '{' {
		return 0, false
	}

	var value rune
	n := 1
	for isHexDigit(l.peekChar(n)) {
		value = value<<4 | rune(hexValue(l.peekChar(n)))
		if value > utf8.MaxRune {
			return 0, false
		}
		n++
	}
	if n == 1 || l.peekChar(n) != '}' {
		return 0, false
	}

	l.skipN(n + 1)
	return value, true
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || 'a' <= ch && ch <= 'f' || 'A' <= ch && ch <= 'F'
}

func hexValue(ch byte) byte {
	switch {
	case isDigit(ch):
		return ch - '0'
	case 'a' <= ch && ch <= 'f':
		return ch - 'a' + 10
	default:
		return ch - 'A' + 10
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}
