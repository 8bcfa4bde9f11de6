package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlalign/pkg/config"
	"github.com/pseudomuto/sqlalign/pkg/consts"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Config     *config.Config
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the sqlalign CLI application. The application is
// started from an fx start hook and shuts fx down with exit code 1 when a
// command fails.
//
// Global Flags:
//   - --config, -c: configuration file (env SQLALIGN_CONFIG, default .sqlalign.yaml)
//   - --verbose, -v: debug logging
//
// When --config names a file explicitly, it replaces the configuration loaded
// by the config module before any command runs.
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := newApp(p.Config, p.Version.Version, p.Commands)

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

func newApp(cfg *config.Config, version string, commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name:  "sqlalign",
		Usage: "Format SQL with tab-stop aligned operators, aliases and comments",
		Description: `sqlalign re-formats SQL deterministically: one clause keyword per line,
members aligned on tab stops, comments and bind parameters kept where they
were written. Every result is checked token by token against its source.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the sqlalign config file",
				Sources: cli.EnvVars(consts.ConfigEnvVar),
				Value:   consts.ConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.IsSet("config") {
				loaded, err := config.LoadConfigFile(cmd.String("config"))
				if err != nil {
					return ctx, errors.Wrap(err, "failed to load config")
				}
				*cfg = *loaded
			}

			level := slog.LevelInfo
			if cmd.Bool("verbose") || cfg.Debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			return ctx, nil
		},
		Commands: commands,
	}
}
