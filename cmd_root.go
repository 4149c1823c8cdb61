package main

import (
	"github.com/spf13/cobra"
	"notes_board/dto"
	"notes_board/shared"
)

type rootOptions struct {
	configPath string
	notesUrl   string
	envelope   string
	logLevel   string
}

// appState is filled in by the root command before any subcommand runs.
type appState struct {
	opts rootOptions
	cfg  *shared.Config
}

func newRootCmd() *cobra.Command {

	state := &appState{}

	rootCmd := &cobra.Command{
		Use:   "notes_board",
		Short: "Fetches notes from a remote endpoint and renders them into a page",
		Long: `notes_board loads a list of notes from one HTTP endpoint and renders
each note as a block inside the notes container of an HTML page.
The page can be served, rendered once to a file, or shown in the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&state.opts.configPath, "config", "", "path to the JSONC config file (default $CONFIG, then dev/config.dev.jsonc)")
	flags.StringVar(&state.opts.notesUrl, "url", "", "notes endpoint URL")
	flags.StringVar(&state.opts.envelope, "envelope", "", "expected response envelope: auto, data or bare")
	flags.StringVar(&state.opts.logLevel, "log-level", "", "log level: Debug, Info, Warn or Error")

	rootCmd.AddCommand(
		newServeCmd(state),
		newRenderCmd(state),
		newShowCmd(state),
		newVersionCmd(state),
	)
	return rootCmd
}

func (st *appState) init(cmd *cobra.Command) error {
	cfg, err := shared.LoadConfig(st.opts.configPath)
	if err != nil {
		return err
	}
	if err = st.opts.applyTo(cfg); err != nil {
		return err
	}
	st.cfg = cfg
	logger, err = initLogger(cfg, cmd.ErrOrStderr())
	return err
}

// Flags win over the config file.
func (opts *rootOptions) applyTo(cfg *shared.Config) error {
	if opts.notesUrl != "" {
		cfg.NotesUrl = opts.notesUrl
	}
	if opts.envelope != "" {
		cfg.Envelope = opts.envelope
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	_, err := dto.ParseEnvelope(cfg.Envelope)
	return err
}
