// Package position tracks source locations for tokens, AST nodes and
// diagnostics.
package position

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Position is a single point in a source buffer.
type Position struct {
	Filename string // Source name, empty for in-memory input
	Line     int    // 1-based line number
	Column   int    // 1-based column number (bytes)
	Offset   int    // 0-based byte offset in source
}

// IsValid returns true if the position points somewhere in a source.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0 && p.Offset >= 0
}

// String returns "file:line:col" or "line:col" for in-memory input.
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", filepath.Base(p.Filename), p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// After reports whether p comes strictly after other.
func (p Position) After(other Position) bool {
	return p.Offset > other.Offset
}

// Span is a half-open range of source text.
type Span struct {
	Start Position // inclusive
	End   Position // exclusive
}

// IsValid returns true if both ends are valid and ordered.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && s.Start.Offset <= s.End.Offset
}

// String returns a compact range representation.
func (s Span) String() string {
	prefix := ""
	if s.Start.Filename != "" {
		prefix = filepath.Base(s.Start.Filename) + ":"
	}
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%s%d:%d-%d", prefix, s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%s%d:%d-%d:%d", prefix, s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}

// Union returns the smallest span covering both s and other.
func (s Span) Union(other Span) Span {
	if !s.IsValid() {
		return other
	}
	if !other.IsValid() {
		return s
	}

	start := s.Start
	if other.Start.Before(start) {
		start = other.Start
	}
	end := s.End
	if other.End.After(end) {
		end = other.End
	}

	return Span{Start: start, End: end}
}

// Advance returns the position reached after reading text starting at p.
func (p Position) Advance(text string) Position {
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
	}
	p.Offset += len(text)
	return p
}

// SourceFile keeps a source buffer split into lines for excerpts.
type SourceFile struct {
	Filename string
	Content  string
	Lines    []string
}

// NewSourceFile creates a SourceFile from content.
func NewSourceFile(filename, content string) *SourceFile {
	return &SourceFile{
		Filename: filename,
		Content:  content,
		Lines:    strings.Split(content, "\n"),
	}
}

// GetLine returns the 1-based line, or "" when out of range.
func (sf *SourceFile) GetLine(lineNum int) string {
	if lineNum < 1 || lineNum > len(sf.Lines) {
		return ""
	}
	return strings.TrimSuffix(sf.Lines[lineNum-1], "\r")
}
