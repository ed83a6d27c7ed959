// Package iofs prepares the directories and files crashwx keeps in the
// user's home directory.
package iofs

import (
	"bytes"
	"os"

	"github.com/crashwx/crashwx/pkg/config"
	"gopkg.in/yaml.v3"
)

const configHeader = `# crashwx configuration.
#
# Precedence (highest to lowest): CLI flags, CRASHWX_* environment
# variables, this file, built-in defaults.
#
# database.url, when set, overrides the individual database fields.
# populate.max_rows: 0 disables accident sampling.

`

// EnsureDirs creates the config and log directories.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// ConfigYAML renders the default configuration as a commented YAML
// document.
func ConfigYAML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config.New()); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EnsureConfigFile writes the default config.yaml unless it exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	data, err := ConfigYAML()
	if err != nil {
		return WriteConfigError(configPath, err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return WriteConfigError(configPath, err)
	}

	return nil
}
