package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the configuration file looked up in the working directory
	ConfigFile = ".sqlalign.yaml"

	// ConfigEnvVar overrides the configuration file path
	ConfigEnvVar = "SQLALIGN_CONFIG"

	// SQLExt is the extension of files picked up when formatting directories
	SQLExt = ".sql"

	// DefaultTabSize is the width of a single tab stop
	DefaultTabSize = 4

	// DefaultMaxCharPerLine is the informational soft line width
	DefaultMaxCharPerLine = 50
)
