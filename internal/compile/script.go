package compile

import (
	"fmt"
	"strings"

	"github.com/jorge-barreto/beadplan/internal/plan"
	"github.com/jorge-barreto/beadplan/internal/shell"
)

// Options configures a compilation.
type Options struct {
	Tool            string // tracker binary, e.g. br
	StateDir        string // directory whose absence aborts the script
	JQ              string
	IDs             plan.IDRule
	AllowUnresolved bool
	RunID           string // stamped into the header when set
}

// DefaultOptions returns the options used when no config is present.
func DefaultOptions() Options {
	return Options{
		Tool:     "br",
		StateDir: ".beads",
		JQ:       "jq",
		IDs:      plan.DefaultIDRule,
	}
}

// Result is a compiled script plus what it will create.
type Result struct {
	Script        string
	Epic          bool
	Beads         int
	Links         int
	LabelCommands int
}

type script struct {
	lines []string
}

func (s *script) add(lines ...string) { s.lines = append(s.lines, lines...) }

func (s *script) blank() { s.lines = append(s.lines, "") }

func (s *script) String() string { return strings.Join(s.lines, "\n") + "\n" }

// Compile validates p and assembles the creation script. Beads are created in
// input order; dependency and label commands follow once every bead has been
// captured, so forward references resolve. Nothing is returned on error.
func Compile(p *plan.Plan, opts Options) (*Result, error) {
	if err := plan.Validate(p, plan.ValidateOptions{IDs: opts.IDs, AllowUnresolved: opts.AllowUnresolved}); err != nil {
		return nil, err
	}

	res := &Result{}
	r := NewResolver(opts.JQ)
	tool := shell.Quote(opts.Tool)
	var s script

	preamble(&s, r, opts)

	if p.Epic != nil {
		cmd, err := Synthesize(opts.Tool, p.Epic.Bead())
		if err != nil {
			return nil, fmt.Errorf("epic: %w", err)
		}
		s.add("# Create epic", r.CaptureEpic(cmd))
		s.add(`printf 'Created epic: %s\n' "$` + epicVar + `"`)
		s.blank()
		res.Epic = true
	}

	if len(p.Beads) > 0 {
		s.add("# Create beads")
		for i, b := range p.Beads {
			cmd, err := Synthesize(opts.Tool, b)
			if err != nil {
				return nil, fmt.Errorf("bead %d: %w", i+1, err)
			}
			id := b.LocalID(opts.IDs)
			s.add("# "+shell.Comment(b.Title), r.Capture(id, cmd))
			s.add(`printf 'Created %s: %s\n' ` + shell.Quote(id) + ` "` + r.Lookup(id) + `"`)
			s.blank()
			res.Beads++
		}
	}

	if p.HasDependencies() {
		s.add("# Set up dependencies")
		for _, b := range p.Beads {
			id := b.LocalID(opts.IDs)
			for _, dep := range b.DependsOn {
				s.add(fmt.Sprintf(`%s dep add "%s" "%s"`, tool, r.Lookup(id), r.Lookup(dep)))
				s.add(`printf '  %s depends on %s\n' ` + shell.Quote(id) + " " + shell.Quote(dep))
				res.Links++
			}
		}
		s.blank()
	}

	if p.HasLabels() {
		s.add("# Add labels")
		for _, b := range p.Beads {
			if len(b.Labels) == 0 {
				continue
			}
			labels := make([]string, len(b.Labels))
			for i, l := range b.Labels {
				labels[i] = shell.Quote(l)
			}
			s.add(fmt.Sprintf(`%s label add "%s" %s`, tool, r.Lookup(b.LocalID(opts.IDs)), strings.Join(labels, " ")))
			res.LabelCommands++
		}
		s.blank()
	}

	s.add("# Sync to JSONL for git", tool+" sync --flush-only")
	s.blank()
	s.add(`echo "Done! Created ` + r.Count() + ` beads"`)
	s.add(tool + " ready  # Show actionable work")

	res.Script = s.String()
	return res, nil
}

func preamble(s *script, r *Resolver, opts Options) {
	s.add(
		"#!/bin/bash",
		"# Auto-generated bead creation script",
		"# Review before running!",
	)
	if opts.RunID != "" {
		s.add("# Run ID: "+shell.Comment(opts.RunID), "export BEADPLAN_RUN_ID="+shell.Quote(opts.RunID))
	}
	s.blank()
	s.add("set -euo pipefail")
	s.blank()
	tool := shell.Comment(opts.Tool)
	s.add(
		"# Ensure "+tool+" is initialized",
		"if [ ! -d "+shell.Quote(opts.StateDir)+" ]; then",
		"    echo "+shell.Quote(fmt.Sprintf("Error: %s not initialized. Run: %s init", opts.Tool, opts.Tool))+" >&2",
		"    exit 1",
		"fi",
	)
	s.blank()
	s.add("# Associative array to map local IDs to "+tool+" IDs", r.Declare())
	s.blank()
}
