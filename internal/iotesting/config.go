// Package iotesting provides shared utilities for integration tests.
package iotesting

import (
	"os"
	"path/filepath"

	"github.com/crashwx/crashwx/internal/ioconfig"
	"github.com/crashwx/crashwx/pkg/config"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// Tests never run against a production database.
	TestDatabaseName = "crashwx_test"
)

// GetTestConfig returns a configuration for integration tests.
// It loads the user's config file and CRASHWX_* variables, then forces the
// database name to TestDatabaseName.
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ...
//	}
func GetTestConfig() *config.Config {
	var path string
	if home, err := os.UserHomeDir(); err == nil {
		path = config.ConfigFilePath(home)
	}

	cfg := config.New()
	if opts, err := ioconfig.Options(path); err == nil {
		cfg.Update(opts)
	}

	// a URL would point somewhere else than the test database
	cfg.Database.URL = ""
	cfg.Database.Database = TestDatabaseName
	cfg.Log.Destination = "stderr"

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// WriteCSV writes content to name inside dir and returns the full path.
func WriteCSV(dir, name, content string) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}
