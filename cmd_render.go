package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"notes_board/logic"
	"notes_board/server"
	"os"
)

func newRenderCmd(state *appState) *cobra.Command {

	var outPath string
	var failOnError bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Load the notes once and write the finished page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			var pages server.IPageBuilder
			app := fx.New(
				fx.NopLogger,
				coreProviders(state.cfg),
				fx.Populate(&pages),
			)
			if err := app.Err(); err != nil {
				return err
			}

			doc, outcome, err := pages.BuildNotesPage(cmd.Context())
			if err != nil {
				return err
			}
			htm, err := doc.Html()
			if err != nil {
				return err
			}

			if outPath == "" {
				if _, err = fmt.Fprint(cmd.OutOrStdout(), htm); err != nil {
					return err
				}
			} else if err = os.WriteFile(outPath, []byte(htm), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}

			if failOnError && (outcome.State == logic.StateError || outcome.State == logic.StateMalformed) {
				return fmt.Errorf("notes did not load: %s", outcome.State)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the page to this file instead of stdout")
	cmd.Flags().BoolVar(&failOnError, "fail-on-error", false, "exit with an error if the notes could not be loaded")
	return cmd
}
