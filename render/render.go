// Package render formats evaluation results for the terminal.
// Everything writes to an injected io.Writer and mutates no state.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/DonkRonk17/RegexLab/engine"
	"github.com/fatih/color"
)

// highlightLimit caps the highlighted rendition, ellipsis included.
const highlightLimit = 200

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// OK writes a success-marked line.
func OK(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", green.Sprint("[OK]"), fmt.Sprintf(format, args...))
}

// Fail writes a failure-marked line.
func Fail(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", red.Sprint("[X]"), fmt.Sprintf(format, args...))
}

// Separator writes the section divider line.
func Separator(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", 70))
}

// Preview bounds s to max characters for display, appending an ellipsis
// marker when anything was cut.
func Preview(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// Matches writes the per-match report: 1-based index, start-end position,
// matched text, and optionally the group and named-group values.
func Matches(w io.Writer, matches []engine.Match, showGroups bool) {
	for i, m := range matches {
		fmt.Fprintf(w, "Match #%d:\n", i+1)
		fmt.Fprintf(w, "  Position: %d-%d\n", m.Start, m.End)
		fmt.Fprintf(w, "  Matched: '%s'\n", m.Text)
		if showGroups && len(m.Groups) > 0 {
			fmt.Fprintf(w, "  Groups: %s\n", groupList(m.Groups))
			if len(m.Named) > 0 {
				fmt.Fprintf(w, "  Named Groups: %s\n", namedGroupList(m.Named))
			}
		}
		fmt.Fprintln(w)
	}
}

func groupList(groups []engine.Group) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = groupValue(g)
	}
	return strings.Join(parts, ", ")
}

func namedGroupList(named map[string]engine.Group) string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + groupValue(named[name])
	}
	return strings.Join(parts, ", ")
}

func groupValue(g engine.Group) string {
	if !g.Present {
		return "<none>"
	}
	return "'" + g.Text + "'"
}

// Highlight returns the subject with each match bracketed by >>> and <<<
// markers, non-matched spans untouched, hard-truncated at 200 characters
// with a trailing ellipsis.
func Highlight(text string, matches []engine.Match) string {
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m.Start])
		b.WriteString(">>>")
		b.WriteString(text[m.Start:m.End])
		b.WriteString("<<<")
		last = m.End
	}
	b.WriteString(text[last:])

	highlighted := b.String()
	runes := []rune(highlighted)
	if len(runes) > highlightLimit {
		highlighted = string(runes[:highlightLimit-3]) + "..."
	}
	return highlighted
}
