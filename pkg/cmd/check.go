package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlalign/pkg/config"
	"github.com/pseudomuto/sqlalign/pkg/validate"
	"github.com/urfave/cli/v3"
)

// checkCmd reports SQL files that are not formatted, or whose formatted form
// would not survive the round-trip check. Nothing is written. The command
// fails when at least one file needs attention, which makes it suitable for
// CI.
//
// Examples:
//
//	sqlalign check sql/
//	sqlalign --config ci.yaml check query.sql
func checkCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Check that SQL files are formatted",
		ArgsUsage: "<path>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			files, err := sqlFiles(cmd.Args().First())
			if err != nil {
				return err
			}

			pipeline, err := newPipeline(cfg, true)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			pal := newPalette(w)
			failed := 0
			for _, file := range files {
				ok, err := checkFile(pipeline.Format, file, w, pal)
				if err != nil {
					return err
				}
				if !ok {
					failed++
				}
			}

			if failed > 0 {
				return errors.Errorf("%d of %d files need formatting", failed, len(files))
			}

			pal.ok.Fprintf(w, "%d files formatted\n", len(files))
			return nil
		},
	}
}

// checkFile reports on a single file and returns whether it passed. Parse
// failures are returned as errors since nothing useful can be said about the
// layout of such a file.
func checkFile(format func(string) (string, error), path string, w io.Writer, pal *palette) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read file: %s", path)
	}

	formatted, err := format(string(content))
	if err != nil {
		var verr *validate.ValidationError
		if !errors.As(err, &verr) {
			return false, errors.Wrapf(err, "failed to format SQL in file: %s", path)
		}

		pal.path.Fprint(w, path)
		pal.fail.Fprintln(w, ": formatting would change the statement")
		fmt.Fprintln(w, strings.TrimRight(verr.ErrorMsg, "\n"))
		return false, nil
	}

	if formatted != string(content) {
		pal.path.Fprint(w, path)
		pal.fail.Fprintln(w, ": not formatted")
		return false, nil
	}

	return true, nil
}
