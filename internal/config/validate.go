package config

import (
	"fmt"
	"regexp"
	"strings"
)

var binaryRe = regexp.MustCompile(`^[A-Za-z0-9_./-]+$`)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if cfg.Tool == "" {
		cfg.Tool = "br"
	}
	if cfg.StateDir == "" {
		cfg.StateDir = ".beads"
	}
	if cfg.JQ == "" {
		cfg.JQ = "jq"
	}
	if cfg.IDLength == 0 {
		cfg.IDLength = 20
	}
	if cfg.IDSeparator == nil {
		sep := "-"
		cfg.IDSeparator = &sep
	}

	if !binaryRe.MatchString(cfg.Tool) {
		return fmt.Errorf("config: 'tool' %q must be a command name or path (must match %s)", cfg.Tool, binaryRe)
	}
	if !binaryRe.MatchString(cfg.JQ) {
		return fmt.Errorf("config: 'jq' %q must be a command name or path (must match %s)", cfg.JQ, binaryRe)
	}
	if strings.ContainsAny(cfg.StateDir, "\n\r") {
		return fmt.Errorf("config: 'state-dir' must be a single line")
	}
	if cfg.IDLength < 0 {
		return fmt.Errorf("config: 'id-length' must be >= 0")
	}
	if strings.ContainsFunc(*cfg.IDSeparator, func(r rune) bool { return r == '\n' || r == '\r' }) {
		return fmt.Errorf("config: 'id-separator' must not contain newlines")
	}
	return nil
}
