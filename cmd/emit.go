package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/fndecorate/internal/domain"
	m "github.com/mouse-blink/fndecorate/internal/model"
)

// emitCmd represents the emit command.
var emitCmd = newEmitCmd()

func newEmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emit <file.go>",
		Short: "Print the transformed source of one file",
		Long:  "Print the transformed source of one Go file to stdout without writing the cache.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := resolveOptions(cmd, nil); err != nil {
				return err
			}

			return workflow.Emit(domain.EmitArgs{Path: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(emitCmd)
}
