package config

import (
	"os"

	"github.com/pseudomuto/sqlalign/pkg/consts"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Loads the file named by SQLALIGN_CONFIG, or .sqlalign.yaml in the working
	// directory. Defaults are used when neither exists so that formatting works
	// without any setup. The --config flag can replace the result later.
	func() (*Config, error) {
		path := os.Getenv(consts.ConfigEnvVar)
		if path == "" {
			path = consts.ConfigFile
			if _, err := os.Stat(path); os.IsNotExist(err) {
				return Defaults(), nil
			}
		}

		return LoadConfigFile(path)
	},
))
