package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseURL sets a complete PostgreSQL connection string.
// It takes precedence over host, port, user, password and database.
func OptDatabaseURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("Database URL", s) {
			c.Database.URL = s
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of rows per INSERT statement.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptSourcesAccidentsPath sets the path to the collision CSV export.
func OptSourcesAccidentsPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Accidents Path", s) {
			c.Sources.AccidentsPath = s
		}
	}
}

// OptSourcesWeatherPath sets the path to the daily weather CSV export.
func OptSourcesWeatherPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Weather Path", s) {
			c.Sources.WeatherPath = s
		}
	}
}

// OptPopulateMaxRows sets the accident sampling cap.
// Zero disables the cap.
func OptPopulateMaxRows(i int) Option {
	return func(c *Config) {
		if isValidNonNegative("Max Rows", i) {
			c.Populate.MaxRows = i
		}
	}
}

// OptPopulateYearMin keeps crashes from this year on.
// Runtime-only field - not in ToOptions().
func OptPopulateYearMin(i int) Option {
	return func(c *Config) {
		if isValidYear("Year Min", i) {
			c.Populate.YearMin = i
		}
	}
}

// OptPopulateYearMax keeps crashes up to and including this year.
// Runtime-only field - not in ToOptions().
func OptPopulateYearMax(i int) Option {
	return func(c *Config) {
		if isValidYear("Year Max", i) {
			c.Populate.YearMax = i
		}
	}
}

// OptTrainingMinRows sets the training row-count floor.
func OptTrainingMinRows(i int) Option {
	return func(c *Config) {
		if isValidInt("Training Min Rows", i) {
			c.Training.MinRows = i
		}
	}
}

// OptRandomSeed sets the seed used for accident sampling.
// Any value is accepted, including zero.
func OptRandomSeed(i int64) Option {
	return func(c *Config) {
		c.RandomSeed = i
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
