// Command execution for CLI commands.
//
// Information Hiding:
// - Store wiring and initialization hidden behind New
// - Pattern-error recovery policy hidden from the command layer
// - Output formatting delegated to the render package
package cli

import (
	"errors"
	"io"

	"github.com/DonkRonk17/RegexLab/config"
	"github.com/DonkRonk17/RegexLab/engine"
	"github.com/DonkRonk17/RegexLab/render"
	"github.com/DonkRonk17/RegexLab/store"
)

// App holds the wired dependencies of every command handler.
type App struct {
	store    *store.Store
	out      io.Writer
	settings config.Settings
}

// New creates the app, ensuring the persistence documents exist.
// Output goes to out; handlers write nowhere else.
func New(settings config.Settings, out io.Writer) (*App, error) {
	st := store.New(settings.ConfigDir)
	if err := st.Init(); err != nil {
		return nil, err
	}
	return &App{store: st, out: out, settings: settings}, nil
}

// HistoryDisplay returns the configured default history listing length.
func (a *App) HistoryDisplay() int {
	return a.settings.HistoryDisplay
}

// reportPatternError prints a compile failure and reports whether err was
// one. Compile failures are recovered here and never propagate past the
// command that triggered them; anything else is the caller's problem.
func (a *App) reportPatternError(err error) bool {
	var perr *engine.PatternError
	if errors.As(err, &perr) {
		render.Fail(a.out, "Invalid regex pattern: %v", perr.Err)
		return true
	}
	return false
}
