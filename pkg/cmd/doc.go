// Package cmd provides the CLI commands for the sqlalign tool.
//
// # Available Commands
//
//   - fmt: Format SQL files to stdout, or in place with -w
//   - check: Report files that are not formatted and exit non-zero
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands receive the
// loaded *config.Config through fx and are registered in the "commands"
// value group.
//
// # Global Options
//
//   - --config, -c: Configuration file (defaults to .sqlalign.yaml, env SQLALIGN_CONFIG)
//   - --verbose, -v: Enable debug logging
//   - --help, -h: Display command help
//   - --version: Display version information
//
// # Example Usage
//
//	sqlalign fmt query.sql          # Print the formatted file
//	sqlalign fmt -w sql/            # Format a directory tree in place
//	sqlalign check sql/             # Fail when anything needs formatting
package cmd
