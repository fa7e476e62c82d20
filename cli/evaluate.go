package cli

import (
	"fmt"

	"github.com/DonkRonk17/RegexLab/engine"
	"github.com/DonkRonk17/RegexLab/render"
)

// Test evaluates pattern against text and prints the full match report:
// header, per-match details, and the highlighted rendition. Successful
// evaluations (matches or not) are recorded in history.
func (a *App) Test(pattern, text string, flags engine.Flags, showGroups bool) error {
	matches, err := engine.Test(pattern, text, flags)
	if err != nil {
		fmt.Fprintln(a.out)
		if a.reportPatternError(err) {
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out)
	render.OK(a.out, "Pattern: %s", pattern)
	render.OK(a.out, "Flags: %s", flags)
	render.OK(a.out, "Test String: %s", render.Preview(text, 100))
	render.Separator(a.out)

	if len(matches) > 0 {
		render.OK(a.out, "%d match(es) found", len(matches))
		fmt.Fprintln(a.out)
		render.Matches(a.out, matches, showGroups)
		fmt.Fprintln(a.out, "Highlighted text:")
		fmt.Fprintf(a.out, "  %s\n\n", render.Highlight(text, matches))
	} else {
		render.Fail(a.out, "No matches found")
	}

	return a.store.AddToHistory(pattern, text, flags)
}

// Find prints every matched substring, numbered.
func (a *App) Find(pattern, text string, flags engine.Flags) error {
	matches, err := engine.FindAll(pattern, text, flags)
	if err != nil {
		if a.reportPatternError(err) {
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out)
	render.OK(a.out, "Found %d match(es)", len(matches))
	for i, m := range matches {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, m)
	}
	return nil
}

// Replace prints a before/after preview of substituting matches with the
// replacement template. maxCount bounds the substitutions, 0 = unlimited.
func (a *App) Replace(pattern, replacement, text string, flags engine.Flags, maxCount int) error {
	result, err := engine.Replace(pattern, replacement, text, flags, maxCount)
	if err != nil {
		if a.reportPatternError(err) {
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out)
	render.OK(a.out, "Would replace %d occurrence(s)", result.Applied)
	fmt.Fprintln(a.out, "\nOriginal:")
	fmt.Fprintf(a.out, "  %s\n", render.Preview(text, 200))
	fmt.Fprintln(a.out, "\nResult:")
	fmt.Fprintf(a.out, "  %s\n", render.Preview(result.Text, 200))
	return nil
}

// Split prints the fragments of text split on the pattern, with captured
// separators interleaved when the pattern has groups.
func (a *App) Split(pattern, text string, flags engine.Flags) error {
	parts, err := engine.Split(pattern, text, flags, 0)
	if err != nil {
		if a.reportPatternError(err) {
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out)
	render.OK(a.out, "Split into %d part(s):", len(parts))
	for i, part := range parts {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, render.Preview(part, 100))
	}
	return nil
}
