package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"notes_board/shared"
)

func newVersionCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		// A missing config file is not an error here
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := state.init(cmd); err != nil {
				state.cfg = &shared.Config{}
				state.cfg.ApplyDefaults()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "notes_board version %s\n", shared.ReadVersion(state.cfg))
			return err
		},
	}
}
