package main

import (
	"fmt"

	"advanced-notepad/internal/services"

	"github.com/spf13/cobra"
)

func newReplaceCommand(opts *rootOptions) *cobra.Command {
	var (
		req   services.ReplaceRequest
		write bool
	)

	cmd := &cobra.Command{
		Use:   "replace <file>",
		Short: "Run Replace All on a file",
		Long: `Apply the editor's Replace All to a file without opening a window.

--find is a regular expression and --with may reference groups as $1 or
${name}. Use --literal to match plain text instead. The result is printed
unless --write is given, in which case the file is overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			dc := opts.headlessCoordinator(cmd.ErrOrStderr())
			defer dc.Shutdown()
			files := services.NewFileService(dc)

			content, err := files.Load(path)
			if err != nil {
				return err
			}

			updated, err := req.Apply(content)
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprint(cmd.OutOrStdout(), updated)
				return nil
			}
			if updated == content {
				return nil
			}
			return files.Save(path, updated)
		},
	}

	cmd.Flags().StringVar(&req.Find, "find", "", "Pattern to search for")
	cmd.Flags().StringVar(&req.Replace, "with", "", "Replacement text")
	cmd.Flags().BoolVar(&req.Literal, "literal", false, "Match --find as plain text")
	cmd.Flags().BoolVar(&write, "write", false, "Overwrite the file instead of printing")
	_ = cmd.MarkFlagRequired("find")

	return cmd
}
