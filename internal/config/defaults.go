// Package config provides configuration loading and defaults for trackdown.
package config

// DefaultInput is the default log location. Empty means the input must be
// given as a command argument or configured explicitly.
const DefaultInput = ""

// DefaultExtensions are the file extensions kept when the input is a
// directory.
var DefaultExtensions = []string{".md", ".txt"}

// DefaultLimitThreshold is the cumulative-percentage threshold for --limit.
// Just above 90 so a report whose top entries sum to exactly 90 percent is
// not cut short.
const DefaultLimitThreshold = 90.01

// DefaultConfigDir is the default location for trackdown configuration.
const DefaultConfigDir = "~/.config/trackdown"

// DefaultDBName is the filename for the SQLite usage database.
const DefaultDBName = "trackdown.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color:  true,
	Format: "text",
}

// DefaultUsage holds the default usage-log preferences.
var DefaultUsage = Usage{
	Enabled: true,
}
