// Package ioconfig loads configuration from config.yaml and CRASHWX_*
// environment variables.
package ioconfig

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/crashwx/crashwx/internal/iofs"
	"github.com/crashwx/crashwx/pkg/config"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by crashwx.
const EnvPrefix = "CRASHWX"

// envKeys are the persistent configuration keys. They match the fields
// returned by config.ToOptions().
var envKeys = []string{
	"database.url",
	"database.host",
	"database.port",
	"database.user",
	"database.password",
	"database.database",
	"database.ssl_mode",
	"database.batch_size",
	"sources.accidents_path",
	"sources.weather_path",
	"populate.max_rows",
	"training.min_rows",
	"log.level",
	"log.format",
	"log.destination",
	"random_seed",
}

// Load reads the config file at path (a missing file is not an error)
// and overlays environment variables on top of the defaults.
func Load(path string) (*config.Config, error) {
	v := viper.New()
	initEnvVars(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		err := v.ReadInConfig()
		if err != nil && !isNotExist(err) {
			return nil, iofs.ReadFileError(path, err)
		}
	}

	res := config.New()
	if err := v.Unmarshal(res); err != nil {
		return nil, iofs.ReadFileError(path, err)
	}

	return res, nil
}

// Options loads the config file and environment and returns them as
// options to apply on top of the defaults.
func Options(path string) ([]config.Option, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return cfg.ToOptions(), nil
}

func initEnvVars(v *viper.Viper) {
	// Keys are bound one by one so the list of accepted variables stays
	// explicit.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, k := range envKeys {
		_ = v.BindEnv(k)
	}

	v.AutomaticEnv()
}

func isNotExist(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) ||
		errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, os.ErrNotExist)
}
