package cli

import (
	"fmt"
	"sort"

	"github.com/DonkRonk17/RegexLab/export"
	"github.com/DonkRonk17/RegexLab/library"
	"github.com/DonkRonk17/RegexLab/render"
)

// LibraryList prints the built-in pattern library ordered by name.
func (a *App) LibraryList() error {
	fmt.Fprintln(a.out)
	render.OK(a.out, "RegexLab Pattern Library:")
	render.Separator(a.out)

	for _, entry := range library.List() {
		fmt.Fprintf(a.out, "\n%s:\n", entry.Name)
		fmt.Fprintf(a.out, "  Pattern: %s\n", entry.Pattern)
		fmt.Fprintf(a.out, "  Description: %s\n", entry.Description)
		fmt.Fprintf(a.out, "  Example: %s\n", entry.Example)
	}
	return nil
}

// LibraryTest evaluates a library pattern by name against text.
func (a *App) LibraryTest(name, text string) error {
	entry, ok := library.Lookup(name)
	if !ok {
		render.Fail(a.out, "Pattern '%s' not found in library", name)
		fmt.Fprintln(a.out, "Use 'regexlab library list' to see available patterns")
		return nil
	}
	render.OK(a.out, "Testing library pattern: %s", name)
	return a.Test(entry.Pattern, text, 0, false)
}

// History prints the most recent count entries, newest first.
func (a *App) History(count int) error {
	entries, err := a.store.LoadHistory()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out)
		render.Fail(a.out, "No history found")
		return nil
	}

	if count > len(entries) {
		count = len(entries)
	}
	recent := entries[len(entries)-count:]

	fmt.Fprintln(a.out)
	render.OK(a.out, "Last %d Pattern(s):", count)
	render.Separator(a.out)

	for i := len(recent) - 1; i >= 0; i-- {
		entry := recent[i]
		fmt.Fprintf(a.out, "\n%d. [%s]\n", len(recent)-i, entry.Timestamp.Format("2006-01-02 15:04"))
		fmt.Fprintf(a.out, "   Pattern: %s\n", entry.Pattern)
		fmt.Fprintf(a.out, "   Test: %s\n", render.Preview(entry.TestString, 80))
	}
	return nil
}

// FavoriteAdd saves a named pattern, overwriting any prior favorite with
// the same name.
func (a *App) FavoriteAdd(name, pattern, description string) error {
	if err := a.store.AddFavorite(name, pattern, description); err != nil {
		return err
	}
	render.OK(a.out, "Added '%s' to favorites", name)
	return nil
}

// FavoriteList prints every saved favorite ordered by name.
func (a *App) FavoriteList() error {
	favorites, err := a.store.LoadFavorites()
	if err != nil {
		return err
	}

	if len(favorites) == 0 {
		fmt.Fprintln(a.out)
		render.Fail(a.out, "No favorites found")
		return nil
	}

	names := make([]string, 0, len(favorites))
	for name := range favorites {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out)
	render.OK(a.out, "Favorite Patterns:")
	render.Separator(a.out)

	for _, name := range names {
		entry := favorites[name]
		fmt.Fprintf(a.out, "\n%s (added %s):\n", name, entry.Created.Format("2006-01-02"))
		fmt.Fprintf(a.out, "  Pattern: %s\n", entry.Pattern)
		if entry.Description != "" {
			fmt.Fprintf(a.out, "  Description: %s\n", entry.Description)
		}
	}
	return nil
}

// FavoriteTest evaluates a saved favorite by name against text.
func (a *App) FavoriteTest(name, text string) error {
	favorites, err := a.store.LoadFavorites()
	if err != nil {
		return err
	}
	entry, ok := favorites[name]
	if !ok {
		render.Fail(a.out, "Favorite '%s' not found", name)
		fmt.Fprintln(a.out, "Use 'regexlab favorite list' to see saved patterns")
		return nil
	}
	render.OK(a.out, "Testing favorite pattern: %s", name)
	return a.Test(entry.Pattern, text, 0, false)
}

// FavoriteRemove deletes a saved favorite by name.
func (a *App) FavoriteRemove(name string) error {
	removed, err := a.store.RemoveFavorite(name)
	if err != nil {
		return err
	}
	if !removed {
		render.Fail(a.out, "Favorite '%s' not found", name)
		return nil
	}
	render.OK(a.out, "Removed '%s' from favorites", name)
	return nil
}

// Export writes the matches of pattern in text to outputPath in the given
// format. Failures are reported here, not raised to the process boundary.
func (a *App) Export(pattern, text, outputPath, format string) error {
	count, err := export.Matches(pattern, text, outputPath, format)
	if err != nil {
		if a.reportPatternError(err) {
			return nil
		}
		render.Fail(a.out, "Export failed: %v", err)
		return nil
	}
	render.OK(a.out, "Exported %d match(es) to %s", count, outputPath)
	return nil
}
