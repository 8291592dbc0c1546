/*
File    : pepega/config/config.go
Package : config

Package config loads Pepega's optional ".pepegarc.yaml" file: a handful
of driver-level settings (REPL prompt, server port, whether to echo the
AST before running) that don't belong in the language itself. Grounded
on go-chariot's configs.Config (services/go-chariot/configs/config.go)
for the "one flat struct of settings with defaults" shape, adapted from
its env-var tags to yaml.v3 struct tags since Pepega's settings live in
a checked-in rc file rather than a process environment.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds Pepega's driver-level settings. Every field has a
// sensible default, so a missing or partial .pepegarc.yaml is never an
// error — only a malformed one is.
type Config struct {
	// Prompt is the REPL's line prompt.
	Prompt string `yaml:"prompt"`
	// ServerPort is the default port `pepega server` binds when no
	// port argument is given on the command line.
	ServerPort int `yaml:"server_port"`
	// EchoAST, when true, prints each parsed statement's tree via
	// parser.Print before executing it.
	EchoAST bool `yaml:"echo_ast"`
	// Verbose switches the CLI's diagnostic logger from production
	// (JSON, info+) to development (console, debug+).
	Verbose bool `yaml:"verbose"`
}

// Default returns the settings Pepega runs with when no rc file is
// present.
func Default() Config {
	return Config{
		Prompt:     "pepega> ",
		ServerPort: 8080,
		EchoAST:    false,
		Verbose:    false,
	}
}

// Load reads and parses the YAML file at path, merging it over
// Default(). A missing file is not an error — Load returns the
// defaults unchanged. A present-but-malformed file is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefaultFile loads ".pepegarc.yaml", checking the current
// directory first and the user's home directory second — the
// conventional rc-file search order the CLI uses on startup. Neither
// location existing is not an error; Default() is returned unchanged.
func LoadDefaultFile() (Config, error) {
	const rcName = ".pepegarc.yaml"

	if _, err := os.Stat(rcName); err == nil {
		return Load(rcName)
	}

	if home, err := os.UserHomeDir(); err == nil {
		homePath := filepath.Join(home, rcName)
		if _, err := os.Stat(homePath); err == nil {
			return Load(homePath)
		}
	}

	return Default(), nil
}
