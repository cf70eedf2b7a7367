package plan

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrMissingTitle        = errors.New("'title' is required")
	ErrDuplicateID         = errors.New("duplicate local id")
	ErrUnresolvedReference = errors.New("unresolved reference")
	ErrInvalidType         = errors.New("invalid type")
)

// Types are emitted unquoted, so they are limited to a word-like vocabulary.
var typeRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ValidateOptions tunes the checks run by Validate.
type ValidateOptions struct {
	IDs IDRule
	// AllowUnresolved skips the depends_on closure check; an unknown
	// reference then fails when the generated script runs.
	AllowUnresolved bool
}

// Validate checks the plan for errors. It does not look for dependency cycles.
func Validate(p *Plan, opts ValidateOptions) error {
	if p.Epic != nil && strings.TrimSpace(p.Epic.Title) == "" {
		return fmt.Errorf("plan: epic: %w", ErrMissingTitle)
	}

	seen := make(map[string]int, len(p.Beads))
	if p.Epic != nil {
		seen[EpicRef] = 0
	}
	for i, b := range p.Beads {
		if strings.TrimSpace(b.Title) == "" {
			return fmt.Errorf("plan: bead %d: %w", i+1, ErrMissingTitle)
		}
		if b.Type != nil && !typeRe.MatchString(*b.Type) {
			return fmt.Errorf("plan: bead %d (%q): %w %q (must match %s)", i+1, b.Title, ErrInvalidType, *b.Type, typeRe)
		}
		id := b.LocalID(opts.IDs)
		if prev, ok := seen[id]; ok {
			if prev == 0 {
				return fmt.Errorf("plan: bead %d (%q): %w %q is reserved for the epic", i+1, b.Title, ErrDuplicateID, id)
			}
			return fmt.Errorf("plan: bead %d (%q): %w %q (already used by bead %d)", i+1, b.Title, ErrDuplicateID, id, prev)
		}
		seen[id] = i + 1
	}

	if opts.AllowUnresolved {
		return nil
	}
	for i, b := range p.Beads {
		for _, dep := range b.DependsOn {
			if _, ok := seen[dep]; !ok {
				return fmt.Errorf("plan: bead %d (%q): depends_on: %w %q", i+1, b.Title, ErrUnresolvedReference, dep)
			}
		}
	}
	return nil
}
