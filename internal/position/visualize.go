package position

import (
	"fmt"
	"strings"
)

// Highlighter renders source excerpts with a caret underline beneath a span.
type Highlighter struct {
	file    *SourceFile
	context int // lines shown before the span
}

// NewHighlighter creates a highlighter over file showing context lines
// above the highlighted span.
func NewHighlighter(file *SourceFile, context int) *Highlighter {
	if context < 0 {
		context = 0
	}
	return &Highlighter{file: file, context: context}
}

// Highlight returns the excerpt for span. A zero-length span is drawn as a
// single caret.
func (h *Highlighter) Highlight(span Span) string {
	if !span.Start.IsValid() {
		return ""
	}
	end := span.End
	if !end.IsValid() || end.Offset < span.Start.Offset {
		end = span.Start
	}

	var result strings.Builder

	first := max(1, span.Start.Line-h.context)
	last := min(len(h.file.Lines), end.Line)
	for lineNum := first; lineNum <= last; lineNum++ {
		line := h.file.GetLine(lineNum)
		fmt.Fprintf(&result, "%4d | %s\n", lineNum, line)

		if lineNum < span.Start.Line {
			continue
		}

		from, to := 1, len(line)+1
		if lineNum == span.Start.Line {
			from = span.Start.Column
		}
		if lineNum == end.Line {
			to = end.Column
		}
		h.underline(&result, from, to)
	}

	return result.String()
}

func (h *Highlighter) underline(result *strings.Builder, from, to int) {
	result.WriteString("     | ")
	if from > 1 {
		result.WriteString(strings.Repeat(" ", from-1))
	}
	width := to - from
	if width < 1 {
		width = 1
	}
	result.WriteString(strings.Repeat("^", width))
	result.WriteString("\n")
}
