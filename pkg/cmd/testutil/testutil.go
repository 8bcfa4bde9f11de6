package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqlalign/pkg/consts"
	"github.com/stretchr/testify/require"
)

// SQLFixture is a temp directory of SQL files used by command tests.
type SQLFixture struct {
	Dir string
	t   *testing.T
}

// NewSQLFixture creates an isolated, empty fixture directory.
func NewSQLFixture(t *testing.T) *SQLFixture {
	t.Helper()
	return &SQLFixture{Dir: t.TempDir(), t: t}
}

// WithFile writes content to name, relative to the fixture directory,
// creating parent directories as needed.
func (f *SQLFixture) WithFile(name, content string) *SQLFixture {
	f.t.Helper()

	path := f.Path(name)
	require.NoError(f.t, os.MkdirAll(filepath.Dir(path), consts.ModeDir), "Failed to create directory for %s", name)
	require.NoError(f.t, os.WriteFile(path, []byte(content), consts.ModeFile), "Failed to write file: %s", name)

	return f
}

// WithConfig writes a .sqlalign.yaml file into the fixture directory.
func (f *SQLFixture) WithConfig(content string) *SQLFixture {
	f.t.Helper()
	return f.WithFile(consts.ConfigFile, content)
}

// Path returns the absolute path of name within the fixture.
func (f *SQLFixture) Path(name string) string {
	return filepath.Join(f.Dir, name)
}

// Read returns the contents of name within the fixture.
func (f *SQLFixture) Read(name string) string {
	f.t.Helper()

	content, err := os.ReadFile(f.Path(name))
	require.NoError(f.t, err, "Failed to read file: %s", name)
	return string(content)
}
