// Package engine compiles regex patterns and runs the four evaluation
// operations: test, find-all, replace, split.
//
// Information Hiding:
// - Flag-to-inline-modifier translation hidden behind Compile
// - Replace/split bookkeeping over submatch indexes encapsulated
// - Callers see plain values and errors, never a *regexp.Regexp state
package engine

import (
	"fmt"
	"regexp"
	"strings"
)

// Flags is a bitmask of match-semantics toggles.
type Flags int

const (
	FlagIgnoreCase Flags = 1 << iota
	FlagMultiline
	FlagDotAll
	// FlagUnicode is implied by Go's string handling and is never set by
	// the CLI; it is recognized when rendering stored bitmasks.
	FlagUnicode
)

// String returns a human-readable flag summary, "None" when empty.
func (f Flags) String() string {
	var names []string
	if f&FlagIgnoreCase != 0 {
		names = append(names, "IGNORECASE")
	}
	if f&FlagMultiline != 0 {
		names = append(names, "MULTILINE")
	}
	if f&FlagDotAll != 0 {
		names = append(names, "DOTALL")
	}
	if f&FlagUnicode != 0 {
		names = append(names, "UNICODE")
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}

// PatternError reports a pattern that failed to compile. It carries the
// engine's diagnostic so callers can show it verbatim.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid regex pattern: %v", e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Group is one capturing group's result for a single match. Present is
// false when the group did not participate in the match, which is distinct
// from matching the empty string.
type Group struct {
	Text    string
	Present bool
}

// Match is one non-overlapping match: byte offsets (end exclusive), the
// matched text, positional groups in declaration order, and named groups.
type Match struct {
	Start  int
	End    int
	Text   string
	Groups []Group
	Named  map[string]Group
}

// ReplaceResult holds the outcome of a substitution.
type ReplaceResult struct {
	// Text is the subject after substitution.
	Text string
	// MatchCount is how many occurrences would be replaced at an
	// unlimited count.
	MatchCount int
	// Applied is how many replacements were actually made.
	Applied int
}

// Compile compiles pattern with the given flags translated to an inline
// (?ims) modifier prefix. Failures come back as *PatternError.
func Compile(pattern string, flags Flags) (*regexp.Regexp, error) {
	var mode string
	if flags&FlagIgnoreCase != 0 {
		mode += "i"
	}
	if flags&FlagMultiline != 0 {
		mode += "m"
	}
	if flags&FlagDotAll != 0 {
		mode += "s"
	}
	expr := pattern
	if mode != "" {
		expr = "(?" + mode + ")" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}

// Test returns every non-overlapping leftmost match of pattern in text,
// with positional and named group values under the participation rule.
func Test(pattern, text string, flags Flags) ([]Match, error) {
	re, err := Compile(pattern, flags)
	if err != nil {
		return nil, err
	}

	names := re.SubexpNames()
	var matches []Match
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		m := Match{Start: loc[0], End: loc[1], Text: text[loc[0]:loc[1]]}
		for gi := 1; gi <= re.NumSubexp(); gi++ {
			var g Group
			if loc[2*gi] >= 0 {
				g = Group{Text: text[loc[2*gi]:loc[2*gi+1]], Present: true}
			}
			m.Groups = append(m.Groups, g)
			if names[gi] != "" {
				if m.Named == nil {
					m.Named = make(map[string]Group)
				}
				m.Named[names[gi]] = g
			}
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// FindAll returns the matched substrings. When the pattern declares exactly
// one capturing group, the group's text is returned per match instead of
// the full match. This mirrors the single-group convention of the tool this
// command set descends from; a group that did not participate yields "".
func FindAll(pattern, text string, flags Flags) ([]string, error) {
	re, err := Compile(pattern, flags)
	if err != nil {
		return nil, err
	}

	if re.NumSubexp() == 1 {
		var out []string
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			out = append(out, m[1])
		}
		return out, nil
	}
	return re.FindAllString(text, -1), nil
}

// Replace substitutes up to maxCount matches (0 = unlimited) with the
// replacement template, which may reference groups with $1 or ${name}.
// On compile failure the original text is returned unchanged along with
// the error, so a failed attempt never corrupts downstream consumers.
func Replace(pattern, replacement, text string, flags Flags, maxCount int) (ReplaceResult, error) {
	re, err := Compile(pattern, flags)
	if err != nil {
		return ReplaceResult{Text: text}, err
	}

	locs := re.FindAllStringSubmatchIndex(text, -1)
	applied := len(locs)
	if maxCount > 0 && maxCount < applied {
		applied = maxCount
	}

	var out []byte
	last := 0
	for _, loc := range locs[:applied] {
		out = append(out, text[last:loc[0]]...)
		out = re.ExpandString(out, replacement, text, loc)
		last = loc[1]
	}
	out = append(out, text[last:]...)

	return ReplaceResult{Text: string(out), MatchCount: len(locs), Applied: applied}, nil
}

// Split splits text on every match of pattern, up to maxSplit times
// (0 = unlimited; the remainder is kept whole once the bound is hit).
// Captured group values are interleaved between fragments; a group that
// did not participate contributes "". On compile failure the result is a
// single fragment holding the original text, along with the error.
func Split(pattern, text string, flags Flags, maxSplit int) ([]string, error) {
	re, err := Compile(pattern, flags)
	if err != nil {
		return []string{text}, err
	}

	parts := []string{}
	last := 0
	splits := 0
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		if maxSplit > 0 && splits >= maxSplit {
			break
		}
		parts = append(parts, text[last:loc[0]])
		for gi := 1; gi <= re.NumSubexp(); gi++ {
			if loc[2*gi] >= 0 {
				parts = append(parts, text[loc[2*gi]:loc[2*gi+1]])
			} else {
				parts = append(parts, "")
			}
		}
		last = loc[1]
		splits++
	}
	parts = append(parts, text[last:])
	return parts, nil
}
