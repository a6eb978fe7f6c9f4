// Package creds resolves API credentials from the usual places, in priority
// order: an explicit flag value, the process environment, a .env file in the
// working directory, then the global config .env.
package creds

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolver looks up credential values. The env file paths are fields so
// tests can point them at temp files.
type Resolver struct {
	LocalEnvPath  string
	GlobalEnvPath string
}

// NewResolver returns a resolver wired to ./.env and the global config .env.
func NewResolver() *Resolver {
	r := &Resolver{LocalEnvPath: ".env"}
	if home, err := os.UserHomeDir(); err == nil {
		r.GlobalEnvPath = filepath.Join(home, ".config", "seasonsort", ".env")
	}
	return r
}

// Get resolves name. cliValue is the flag value and wins when non-empty.
// Returns the value and where it came from; ok is false when nothing set it.
func (r *Resolver) Get(name, cliValue string) (value, source string, ok bool) {
	if cliValue != "" {
		return cliValue, "command line", true
	}
	if v := os.Getenv(name); v != "" {
		return v, "environment", true
	}
	if v, found := readEnvFile(r.LocalEnvPath, name); found {
		return v, r.LocalEnvPath, true
	}
	if r.GlobalEnvPath != "" {
		if v, found := readEnvFile(r.GlobalEnvPath, name); found {
			return v, r.GlobalEnvPath, true
		}
	}
	return "", "", false
}

// Require is Get with a descriptive error naming every place that was
// checked.
func (r *Resolver) Require(name, cliValue string) (string, error) {
	value, _, ok := r.Get(name, cliValue)
	if !ok {
		return "", fmt.Errorf(
			"%s not found: set it via flag, the %s environment variable, %s, or %s",
			name, name, r.LocalEnvPath, r.GlobalEnvPath)
	}
	return value, nil
}

// readEnvFile scans a KEY=VALUE file for name. Lines starting with # are
// comments; surrounding single or double quotes on the value are stripped.
func readEnvFile(path, name string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found || strings.TrimSpace(key) != name {
			continue
		}
		value = strings.TrimSpace(value)
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}
		return value, true
	}
	return "", false
}
