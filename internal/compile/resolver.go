package compile

import (
	"github.com/jorge-barreto/beadplan/internal/plan"
	"github.com/jorge-barreto/beadplan/internal/shell"
)

const (
	tableVar = "BEAD_IDS"
	epicVar  = "EPIC_ID"
)

// Resolver maps local ids to the runtime table that holds the ids the
// tracker assigns. It is owned by a single Compile call.
//
// Lookups are not checked against captures: an unknown id yields an
// expansion of an unset table entry.
type Resolver struct {
	jq   string
	epic bool
}

// NewResolver returns a resolver that extracts ids with the given jq binary.
func NewResolver(jq string) *Resolver {
	return &Resolver{jq: jq}
}

// Declare returns the statement that creates the runtime table.
func (r *Resolver) Declare() string {
	return "declare -A " + tableVar
}

// Capture runs cmd and stores the id it prints under localID.
func (r *Resolver) Capture(localID, cmd string) string {
	return tableVar + "[" + shell.QuoteAlways(localID) + "]=$(" + r.extract(cmd) + ")"
}

// CaptureEpic runs cmd and stores the id it prints as the epic.
func (r *Resolver) CaptureEpic(cmd string) string {
	r.epic = true
	return epicVar + "=$(" + r.extract(cmd) + ")"
}

// Lookup returns an expansion that reads the id captured for localID.
// Once the epic is captured, plan.EpicRef resolves to it.
func (r *Resolver) Lookup(localID string) string {
	if r.epic && localID == plan.EpicRef {
		return "${" + epicVar + "}"
	}
	return "${" + tableVar + "[" + shell.QuoteAlways(localID) + "]}"
}

// Count returns an expansion of the number of captured beads.
func (r *Resolver) Count() string {
	return "${#" + tableVar + "[@]}"
}

func (r *Resolver) extract(cmd string) string {
	return cmd + " | " + shell.Quote(r.jq) + " -r '.id'"
}
