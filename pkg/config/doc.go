// Package config loads the formatter configuration from YAML.
//
// A configuration file looks like:
//
//	tab_size: 4
//	indent_tab: true
//	keyword_case: upper
//	identifier_case: lower
//	complement_alias: true
//	validate: true
//
// Every key is optional. Config.Options converts the file into the
// format.Options value passed to every render call.
package config
