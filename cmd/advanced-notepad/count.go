package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"advanced-notepad/internal/clipboard"
	"advanced-notepad/internal/services"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

// systemClipboard is read by count --clipboard
var systemClipboard clipboard.Clipboard = clipboard.System{}

func newCountCommand(opts *rootOptions) *cobra.Command {
	var fromClipboard bool

	cmd := &cobra.Command{
		Use:   "count [glob...]",
		Short: "Print word counts",
		Long: `Count words the same way the editor status bar does.

Patterns support ** for recursive matching. With no pattern the text is
read from stdin, or from the system clipboard with --clipboard.

Examples:
  advanced-notepad count notes.txt
  advanced-notepad count 'docs/**/*.md'
  pbpaste | advanced-notepad count`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if fromClipboard {
				if len(args) > 0 {
					return fmt.Errorf("--clipboard cannot be combined with file patterns")
				}
				text, err := systemClipboard.Read()
				if err != nil {
					return fmt.Errorf("reading clipboard: %w", err)
				}
				fmt.Fprintln(out, services.CountWords(text))
				return nil
			}

			if len(args) == 0 {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				fmt.Fprintln(out, services.CountWords(string(raw)))
				return nil
			}

			paths, err := expandPatterns(args)
			if err != nil {
				return err
			}

			dc := opts.headlessCoordinator(cmd.ErrOrStderr())
			defer dc.Shutdown()
			files := services.NewFileService(dc)

			total := 0
			for _, path := range paths {
				content, err := files.Load(path)
				if err != nil {
					return err
				}
				n := services.CountWords(content)
				total += n
				fmt.Fprintf(out, "%d\t%s\n", n, path)
			}
			if len(paths) > 1 {
				fmt.Fprintf(out, "%d\ttotal\n", total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromClipboard, "clipboard", false, "Count the system clipboard contents")

	return cmd
}

// expandPatterns resolves every pattern to regular files. A pattern that
// matches nothing is an error so typos are not silently counted as zero.
func expandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, &services.PatternError{Pattern: pattern, Err: err}
		}

		found := 0
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			found++
			if !seen[match] {
				seen[match] = true
				paths = append(paths, match)
			}
		}
		if found == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
	}

	sort.Strings(paths)
	return paths, nil
}
