package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pseudomuto/sqlalign/pkg/cmd"
	"github.com/pseudomuto/sqlalign/pkg/config"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	fx.New(
		// Only container failures are reported, e.g. an invalid .sqlalign.yaml.
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{
				Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
			}
		}),
		fx.Supply(
			os.Args,
			&cmd.Version{
				Version:   version,
				Commit:    commit,
				Timestamp: date,
			},
		),
		fx.Provide(func() context.Context { return context.Background() }),
		config.Module,
		cmd.Module,
	).Run()
}
