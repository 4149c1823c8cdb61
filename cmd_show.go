package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"notes_board/logic"
	"notes_board/shared"
	"notes_board/texts"
)

func newShowCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Load the notes once and print them in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := state.cfg
			metrics := logic.NewMetrics(cfg)
			fetcher := logic.NewNotesFetcher(cfg, logger, shared.NewUserAgent(cfg), metrics)
			txt := texts.NewTexts()
			term := logic.NewTermRenderer(txt)

			// Progress goes to stderr so stdout holds only the notes
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), txt.Get(texts.Loading))
			res, err := fetcher.Fetch(cmd.Context())
			if err != nil {
				logger.Warnf("Failed to load notes: %v", err)
			}
			out, st := term.Render(res, err)
			metrics.LoadFinished(st)
			logger.Debugf("Terminal render finished: %s", st)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
