package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlalign/pkg/config"
	"github.com/pseudomuto/sqlalign/pkg/sqlfmt"
	"github.com/urfave/cli/v3"
)

// fmtCmd creates a CLI command for formatting SQL files, similar to gofmt.
//
// The command supports two output modes:
//   - Stdout mode (default): Formatted SQL is written to standard output
//   - Write mode (-w flag): Files are modified in-place with formatted content
//
// Path handling:
//   - File paths: Format the specified SQL file directly
//   - Directory paths: Recursively find and format all .sql files
//
// Formatting options come from the loaded configuration. When validation is
// enabled (the default) a file whose result is not token-equivalent to its
// source fails the command and is never written back.
//
// Examples:
//
//	# Format single file to stdout
//	sqlalign fmt query.sql
//
//	# Format all SQL files in a directory tree in-place
//	sqlalign fmt -w sql/
func fmtCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			pipeline, err := newPipeline(cfg, false)
			if err != nil {
				return err
			}

			return formatPath(pipeline, cmd.Args().First(), cmd.Bool("write"), cmd.Root().Writer)
		},
	}
}

// formatPath formats a single file or every SQL file below a directory, in
// lexicographical order.
func formatPath(p *sqlfmt.Pipeline, path string, writeBack bool, writer io.Writer) error {
	files, err := sqlFiles(path)
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := formatFile(p, file, writeBack, writer); err != nil {
			if len(files) > 1 {
				return errors.Wrapf(err, "failed to format file: %s", file)
			}
			return err
		}
	}

	return nil
}

// formatFile formats a single SQL file and either writes to the writer or
// back to the file. Unchanged files are not rewritten.
func formatFile(p *sqlfmt.Pipeline, path string, writeBack bool, writer io.Writer) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read file: %s", path)
	}

	formatted, err := p.Format(string(content))
	if err != nil {
		return errors.Wrapf(err, "failed to format SQL in file: %s", path)
	}

	if !writeBack {
		if _, err := fmt.Fprint(writer, formatted); err != nil {
			return errors.Wrap(err, "failed to write formatted content to output")
		}
		return nil
	}

	if formatted == string(content) {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, "failed to write formatted content to file: %s", path)
	}

	return nil
}
