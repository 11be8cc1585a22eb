package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

const listLongDescription = `List every function carrying a //fndecorate:use directive together with
its decorator call and parameter selection. Nothing is written to disk.`

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List decorated functions",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, args)
			if err != nil {
				return err
			}

			return workflow.List(opts.listArgs())
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
