// Package export writes the matches of a pattern evaluation to a file
// as JSON, CSV, or plain text. Matches are recomputed under default
// flags and only the full matched text is exported, never the groups.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/DonkRonk17/RegexLab/engine"
)

// document is the JSON export layout.
type document struct {
	Pattern    string    `json:"pattern"`
	MatchCount int       `json:"match_count"`
	Matches    []string  `json:"matches"`
	Exported   time.Time `json:"exported"`
}

// Matches evaluates pattern against text and writes the matched substrings
// to outputPath in the given format ("json", "csv", or "txt"). It returns
// the number of matches written.
func Matches(pattern, text, outputPath, format string) (int, error) {
	re, err := engine.Compile(pattern, 0)
	if err != nil {
		return 0, err
	}
	matches := re.FindAllString(text, -1)
	if matches == nil {
		matches = []string{}
	}

	switch format {
	case "json":
		err = writeJSON(pattern, matches, outputPath)
	case "csv":
		err = writeCSV(matches, outputPath)
	case "txt":
		err = os.WriteFile(outputPath, []byte(strings.Join(matches, "\n")), 0644)
	default:
		return 0, fmt.Errorf("unsupported export format: %q", format)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to write export: %w", err)
	}
	return len(matches), nil
}

func writeJSON(pattern string, matches []string, outputPath string) error {
	doc := document{
		Pattern:    pattern,
		MatchCount: len(matches),
		Matches:    matches,
		Exported:   time.Now(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0644)
}

func writeCSV(matches []string, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	records := make([][]string, 0, len(matches)+1)
	records = append(records, []string{"Match"})
	for _, m := range matches {
		records = append(records, []string{m})
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
