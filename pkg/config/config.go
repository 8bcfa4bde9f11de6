package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlalign/pkg/format"
	"github.com/pseudomuto/sqlalign/pkg/utils"
	"gopkg.in/yaml.v3"
)

// Config represents the formatting configuration read from .sqlalign.yaml.
//
// Every key is optional; missing keys keep the values returned by Defaults.
type Config struct {
	// Debug dumps both token streams when round-trip validation fails
	Debug bool `yaml:"debug"`

	// TabSize is the width of a tab stop
	TabSize int `yaml:"tab_size"`

	// IndentTab renders padding with tabs (true) or spaces (false)
	IndentTab bool `yaml:"indent_tab"`

	// MaxCharPerLine reports lines wider than this; negative disables the report
	MaxCharPerLine int `yaml:"max_char_per_line"`

	ComplementAlias           bool `yaml:"complement_alias"`
	ComplementColumnAsKeyword bool `yaml:"complement_column_as_keyword"`
	RemoveTableAsKeyword      bool `yaml:"remove_table_as_keyword"`
	RemoveRedundantNest       bool `yaml:"remove_redundant_nest"`
	ComplementOuterKeyword    bool `yaml:"complement_outer_keyword"`
	ComplementSQLID           bool `yaml:"complement_sql_id"`
	UnifyNotEqual             bool `yaml:"unify_not_equal"`
	ConvertDoubleColonCast    bool `yaml:"convert_double_colon_cast"`
	TrimBindParam             bool `yaml:"trim_bind_param"`

	// KeywordCase is one of upper, lower or preserve
	KeywordCase string `yaml:"keyword_case"`

	// IdentifierCase is one of upper, lower or preserve
	IdentifierCase string `yaml:"identifier_case"`

	// Validate runs round-trip validation on every format call. Unset means
	// true.
	Validate *bool `yaml:"validate,omitempty"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	o := format.DefaultOptions()

	return &Config{
		Debug:                     o.Debug,
		TabSize:                   o.TabSize,
		IndentTab:                 o.IndentTab,
		MaxCharPerLine:            o.MaxCharPerLine,
		ComplementAlias:           o.ComplementAlias,
		ComplementColumnAsKeyword: o.ComplementColumnAsKeyword,
		RemoveTableAsKeyword:      o.RemoveTableAsKeyword,
		RemoveRedundantNest:       o.RemoveRedundantNest,
		ComplementOuterKeyword:    o.ComplementOuterKeyword,
		ComplementSQLID:           o.ComplementSQLID,
		UnifyNotEqual:             o.UnifyNotEqual,
		ConvertDoubleColonCast:    o.ConvertDoubleColonCast,
		TrimBindParam:             o.TrimBindParam,
		KeywordCase:               o.KeywordCase.String(),
		IdentifierCase:            o.IdentifierCase.String(),
		Validate:                  utils.Ptr(true),
	}
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// The function expects YAML-formatted data and uses a streaming decoder.
// Unknown keys are rejected so that a misspelled option does not silently
// fall back to its default. An empty document yields Defaults().
//
// Example:
//
//	yamlData := `
//	tab_size: 2
//	keyword_case: lower
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	opts, err := cfg.Options()
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := Defaults()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Validate == nil {
		cfg.Validate = utils.Ptr(true)
	}

	if _, err := cfg.Options(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// ShouldValidate reports whether round-trip validation is enabled.
func (c *Config) ShouldValidate() bool {
	return c.Validate == nil || *c.Validate
}

// Options converts the configuration into rendering options.
func (c *Config) Options() (*format.Options, error) {
	if c.TabSize <= 0 {
		return nil, errors.Errorf("invalid tab_size: %d (must be > 0)", c.TabSize)
	}

	keywordCase, err := format.ParseCase(c.KeywordCase)
	if err != nil {
		return nil, errors.Wrap(err, "invalid keyword_case")
	}

	identifierCase, err := format.ParseCase(c.IdentifierCase)
	if err != nil {
		return nil, errors.Wrap(err, "invalid identifier_case")
	}

	return &format.Options{
		TabSize:                   c.TabSize,
		IndentTab:                 c.IndentTab,
		MaxCharPerLine:            c.MaxCharPerLine,
		ComplementAlias:           c.ComplementAlias,
		ComplementColumnAsKeyword: c.ComplementColumnAsKeyword,
		RemoveTableAsKeyword:      c.RemoveTableAsKeyword,
		RemoveRedundantNest:       c.RemoveRedundantNest,
		ComplementOuterKeyword:    c.ComplementOuterKeyword,
		ComplementSQLID:           c.ComplementSQLID,
		UnifyNotEqual:             c.UnifyNotEqual,
		ConvertDoubleColonCast:    c.ConvertDoubleColonCast,
		TrimBindParam:             c.TrimBindParam,
		KeywordCase:               keywordCase,
		IdentifierCase:            identifierCase,
		Debug:                     c.Debug,
	}, nil
}
