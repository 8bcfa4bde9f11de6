package config_test

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/pseudomuto/sqlalign/pkg/config"
	"github.com/pseudomuto/sqlalign/pkg/consts"
	"github.com/pseudomuto/sqlalign/pkg/format"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/sqlalign.yaml
var testConfigYAML string

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("empty input uses defaults", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, Defaults(), config)
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader("tab_size: 8\n"))
		require.NoError(t, err)
		require.Equal(t, 8, config.TabSize)
		require.True(t, config.IndentTab)
		require.True(t, config.ComplementAlias)
		require.Equal(t, "upper", config.KeywordCase)
		require.True(t, config.ShouldValidate())
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			name     string
			yaml     string
			contains string
		}{
			{name: "invalid yaml", yaml: "invalid: yaml: [", contains: "failed to unmarshal config"},
			{name: "unknown key", yaml: "tab_sise: 2", contains: "failed to unmarshal config"},
			{name: "bad keyword case", yaml: "keyword_case: shouting", contains: "invalid keyword_case"},
			{name: "bad identifier case", yaml: "identifier_case: camel", contains: "invalid identifier_case"},
			{name: "bad tab size", yaml: "tab_size: 0", contains: "invalid tab_size"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				config, err := LoadConfig(strings.NewReader(tt.yaml))
				require.Error(t, err)
				require.Nil(t, config)
				require.Contains(t, err.Error(), tt.contains)
			})
		}
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), consts.ConfigFile)
		require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), consts.ModeFile))

		config, err := LoadConfigFile(path)
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("error", func(t *testing.T) {
		config, err := LoadConfigFile("nonexistent.yaml")
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to open file")

		// Directory instead of file
		config, err = LoadConfigFile(t.TempDir())
		require.Error(t, err)
		require.Nil(t, config)
		require.True(t, strings.Contains(err.Error(), "failed to open file") ||
			strings.Contains(err.Error(), "failed to unmarshal config"))
	})
}

func TestDefaults(t *testing.T) {
	opts, err := Defaults().Options()
	require.NoError(t, err)
	require.Equal(t, format.DefaultOptions(), opts)
	require.True(t, Defaults().ShouldValidate())
}

func TestConfig_Options(t *testing.T) {
	config, err := LoadConfig(strings.NewReader(testConfigYAML))
	require.NoError(t, err)

	opts, err := config.Options()
	require.NoError(t, err)
	require.Equal(t, 2, opts.TabSize)
	require.False(t, opts.IndentTab)
	require.Equal(t, 80, opts.MaxCharPerLine)
	require.False(t, opts.ComplementAlias)
	require.True(t, opts.ComplementColumnAsKeyword)
	require.False(t, opts.RemoveTableAsKeyword)
	require.True(t, opts.ComplementSQLID)
	require.True(t, opts.TrimBindParam)
	require.Equal(t, format.CaseLower, opts.KeywordCase)
	require.Equal(t, format.CasePreserve, opts.IdentifierCase)
	require.True(t, opts.Debug)
}

// validateTestConfig validates that a config contains the expected test data
func validateTestConfig(t *testing.T, config *Config) {
	t.Helper()
	require.NotNil(t, config)
	require.True(t, config.Debug)
	require.Equal(t, 2, config.TabSize)
	require.False(t, config.IndentTab)
	require.Equal(t, "lower", config.KeywordCase)
	require.Equal(t, "preserve", config.IdentifierCase)
	require.False(t, config.ShouldValidate())
}
