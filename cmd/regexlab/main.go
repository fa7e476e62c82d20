// Package main provides the regexlab CLI entry point.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/DonkRonk17/RegexLab/cli"
	"github.com/DonkRonk17/RegexLab/config"
	"github.com/DonkRonk17/RegexLab/engine"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	// A user interrupt gets its own diagnostic and exit status.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		<-sigs
		fmt.Fprintln(os.Stderr, "\n[X] Operation cancelled by user")
		os.Exit(130)
	}()

	settings, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "regexlab",
		Short: "Interactive regex tester and pattern library",
		Long: `RegexLab - Interactive Regex Tester and Pattern Library

A CLI tool for testing, explaining, and managing regex patterns.

Examples:
  regexlab test "\d+" "abc 123 def 456"              # Test pattern
  regexlab test "\d+" "abc 123" -i                   # Case-insensitive
  regexlab library list                              # Show pattern library
  regexlab library test email "user@example.com"     # Test library pattern
  regexlab find "\d+" "abc 123 def 456"              # Find all matches
  regexlab replace "\d+" "X" "abc 123 def 456"       # Replace matches
  regexlab history                                   # Show pattern history
  regexlab favorite add mypattern "\d{3}"            # Save favorite`,
	}

	rootCmd.AddCommand(testCmd(settings))
	rootCmd.AddCommand(libraryCmd(settings))
	rootCmd.AddCommand(findCmd(settings))
	rootCmd.AddCommand(replaceCmd(settings))
	rootCmd.AddCommand(splitCmd(settings))
	rootCmd.AddCommand(historyCmd(settings))
	rootCmd.AddCommand(favoriteCmd(settings))
	rootCmd.AddCommand(exportCmd(settings))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(settings config.Settings) (*cli.App, error) {
	return cli.New(settings, os.Stdout)
}

func buildFlags(ignoreCase, multiline, dotAll bool) engine.Flags {
	var flags engine.Flags
	if ignoreCase {
		flags |= engine.FlagIgnoreCase
	}
	if multiline {
		flags |= engine.FlagMultiline
	}
	if dotAll {
		flags |= engine.FlagDotAll
	}
	return flags
}

func testCmd(settings config.Settings) *cobra.Command {
	var ignoreCase, multiline, dotAll, showGroups bool

	cmd := &cobra.Command{
		Use:   "test [pattern] [text]",
		Short: "Test a regex pattern against a string",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(settings)
			if err != nil {
				return err
			}
			return app.Test(args[0], args[1], buildFlags(ignoreCase, multiline, dotAll), showGroups)
		},
	}

	cmd.Flags().BoolVarP(&ignoreCase, "ignorecase", "i", false, "Case-insensitive matching")
	cmd.Flags().BoolVarP(&multiline, "multiline", "m", false, "Multiline mode (^ and $ match line boundaries)")
	cmd.Flags().BoolVarP(&dotAll, "dotall", "s", false, "Dot matches all (including newlines)")
	cmd.Flags().BoolVarP(&showGroups, "groups", "g", false, "Show capturing groups")

	return cmd
}

func libraryCmd(settings config.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Access the built-in pattern library",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all library patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(settings)
			if err != nil {
				return err
			}
			return app.LibraryList()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "test [name] [text]",
		Short: "Test a library pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(settings)
			if err != nil {
				return err
			}
			return app.LibraryTest(args[0], args[1])
		},
	})

	return cmd
}

func findCmd(settings config.Settings) *cobra.Command {
	var ignoreCase bool

	cmd := &cobra.Command{
		Use:   "find [pattern] [text]",
		Short: "Find all matches",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(settings)
			if err != nil {
				return err
			}
			return app.Find(args[0], args[1], buildFlags(ignoreCase, false, false))
		},
	}

	cmd.Flags().BoolVarP(&ignoreCase, "ignorecase", "i", false, "Case-insensitive matching")

	return cmd
}

func replaceCmd(settings config.Settings) *cobra.Command {
	var ignoreCase bool
	var maxCount int

	cmd := &cobra.Command{
		Use:   "replace [pattern] [replacement] [text]",
		Short: "Replace matches with a template ($1, ${name} reference groups)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(settings)
			if err != nil {
				return err
			}
			return app.Replace(args[0], args[1], args[2], buildFlags(ignoreCase, false, false), maxCount)
		},
	}

	cmd.Flags().BoolVarP(&ignoreCase, "ignorecase", "i", false, "Case-insensitive matching")
	cmd.Flags().IntVarP(&maxCount, "count", "c", 0, "Max replacements (0=all)")

	return cmd
}

func splitCmd(settings config.Settings) *cobra.Command {
	var ignoreCase bool

	cmd := &cobra.Command{
		Use:   "split [pattern] [text]",
		Short: "Split text by pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(settings)
			if err != nil {
				return err
			}
			return app.Split(args[0], args[1], buildFlags(ignoreCase, false, false))
		},
	}

	cmd.Flags().BoolVarP(&ignoreCase, "ignorecase", "i", false, "Case-insensitive matching")

	return cmd
}

func historyCmd(settings config.Settings) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show pattern history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(settings)
			if err != nil {
				return err
			}
			return app.History(count)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", settings.HistoryDisplay, "Number of entries to show")

	return cmd
}

func favoriteCmd(settings config.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorite",
		Short: "Manage favorite patterns",
	}

	var description string
	addCmd := &cobra.Command{
		Use:   "add [name] [pattern]",
		Short: "Save a favorite pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(settings)
			if err != nil {
				return err
			}
			return app.FavoriteAdd(args[0], args[1], description)
		},
	}
	addCmd.Flags().StringVar(&description, "description", "", "Pattern description")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List favorite patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(settings)
			if err != nil {
				return err
			}
			return app.FavoriteList()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "test [name] [text]",
		Short: "Test a favorite pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(settings)
			if err != nil {
				return err
			}
			return app.FavoriteTest(args[0], args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove [name]",
		Short: "Remove a favorite pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(settings)
			if err != nil {
				return err
			}
			return app.FavoriteRemove(args[0])
		},
	})

	return cmd
}

func exportCmd(settings config.Settings) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export [pattern] [text] [output]",
		Short: "Export matches to a file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "json", "csv", "txt":
			default:
				return fmt.Errorf("invalid format %q: must be json, csv, or txt", format)
			}
			app, err := newApp(settings)
			if err != nil {
				return err
			}
			return app.Export(args[0], args[1], args[2], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, csv, txt)")

	return cmd
}
