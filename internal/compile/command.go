package compile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jorge-barreto/beadplan/internal/plan"
	"github.com/jorge-barreto/beadplan/internal/shell"
)

// continuation joins the parts of a multi-line command.
const continuation = " \\\n  "

// Synthesize builds the create command for one bead. Optional flags appear in
// a fixed order and only when the field is present; --json is always last so
// the created id can be captured.
func Synthesize(tool string, b plan.Bead) (string, error) {
	if strings.TrimSpace(b.Title) == "" {
		return "", fmt.Errorf("synthesize: %w", plan.ErrMissingTitle)
	}
	parts := []string{shell.Quote(tool) + " create " + shell.Quote(b.Title)}
	if b.Type != nil {
		parts = append(parts, "--type "+*b.Type)
	}
	if b.Priority != nil {
		parts = append(parts, "--priority "+strconv.Itoa(*b.Priority))
	}
	if b.Description != nil {
		parts = append(parts, "--description "+shell.Quote(*b.Description))
	}
	if b.Acceptance != nil {
		parts = append(parts, "--acceptance "+shell.Quote(*b.Acceptance))
	}
	if b.Assignee != nil {
		parts = append(parts, "--assignee "+shell.Quote(*b.Assignee))
	}
	parts = append(parts, "--json")
	return strings.Join(parts, continuation), nil
}
