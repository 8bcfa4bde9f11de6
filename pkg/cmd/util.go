package cmd

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlalign/pkg/config"
	"github.com/pseudomuto/sqlalign/pkg/consts"
	"github.com/pseudomuto/sqlalign/pkg/sqlfmt"
)

// newPipeline builds the formatting pipeline for cfg. forceValidate turns
// validation on regardless of the configuration.
func newPipeline(cfg *config.Config, forceValidate bool) (*sqlfmt.Pipeline, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	return sqlfmt.New(opts, forceValidate || cfg.ShouldValidate()), nil
}

// sqlFiles returns path when it is a file, or every .sql file below it in
// lexicographical order when it is a directory.
func sqlFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to access path: %s", path)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), consts.SQLExt) {
			files = append(files, p)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", path)
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no SQL files found in directory: %s", path)
	}

	return files, nil
}

// palette colors diagnostics when they are written to a terminal.
type palette struct {
	path, ok, fail *color.Color
}

func newPalette(w io.Writer) *palette {
	p := &palette{
		path: color.New(color.Bold),
		ok:   color.New(color.FgGreen),
		fail: color.New(color.FgRed),
	}

	if !isTerminal(w) {
		p.path.DisableColor()
		p.ok.DisableColor()
		p.fail.DisableColor()
	}

	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
