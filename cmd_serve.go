package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"net/http"
	"notes_board/logic"
	"notes_board/server"
	"notes_board/shared"
	"notes_board/texts"
	"os"
)

type initErrorHandler struct {
}

func (*initErrorHandler) HandleError(err error) {
	fmt.Fprintf(os.Stderr, "Failed to initialize dependency injection\n%v", err)
}

func newServeCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(
				fx.NopLogger,
				serveOptions(state.cfg),
				fx.ErrorHook(&initErrorHandler{}),
			)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}

// serveOptions is the whole web server graph on top of coreProviders.
func serveOptions(cfg *shared.Config) fx.Option {
	return fx.Options(
		coreProviders(cfg),
		fx.Provide(
			server.NewHTTPServer,
			fx.Annotate(server.NewMux, fx.ParamTags(`group:"handler_group"`)),
			asHandlerGroupDef(server.NewWebHandlerGroup),
			asHandlerGroupDef(server.NewApiHandlerGroup),
			asHandlerGroupDef(server.NewMetricsHandlerGroup),
		),
		fx.Invoke(
			registerHooks,
			func(*http.Server) {},
		),
	)
}

// coreProviders wires everything a notes load needs; serve and render share it.
func coreProviders(cfg *shared.Config) fx.Option {
	provideConfig := func() *shared.Config {
		return cfg
	}
	provideLogger := func() shared.ILogger {
		return logger
	}
	return fx.Provide(
		provideConfig,
		provideLogger,
		shared.NewUserAgent,
		logic.NewMetrics,
		logic.NewNotesFetcher,
		logic.NewNotesRenderer,
		texts.NewTexts,
		server.NewPageBuilder,
	)
}

func asHandlerGroupDef(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(server.IHandlerGroup)),
		fx.ResultTags(`group:"handler_group"`),
	)
}

func registerHooks(lc fx.Lifecycle, metrics logic.IMetrics) {
	lc.Append(
		fx.Hook{
			OnStart: func(context.Context) error {
				logger.Printf("Application starting up")
				metrics.ServiceStarted()
				return nil
			},
			OnStop: func(context.Context) error {
				logger.Printf("Application shutting down")
				return nil
			},
		},
	)
}
