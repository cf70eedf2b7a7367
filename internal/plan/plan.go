package plan

import (
	"strings"
	"unicode"
)

// EpicRef is the reference name beads use in depends_on to point at the epic.
const EpicRef = "epic"

// Bead is one unit of work. Nil pointer fields are absent and produce no flag.
type Bead struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string   `json:"title" yaml:"title"`
	Type        *string  `json:"type,omitempty" yaml:"type,omitempty"`
	Priority    *int     `json:"priority,omitempty" yaml:"priority,omitempty"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	Acceptance  *string  `json:"acceptance,omitempty" yaml:"acceptance,omitempty"`
	Assignee    *string  `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	Labels      []string `json:"labels,omitempty" yaml:"labels,omitempty"`
	DependsOn   []string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
}

// Epic is the optional parent of a plan. It is always created with type epic.
type Epic struct {
	Title       string  `json:"title" yaml:"title"`
	Priority    *int    `json:"priority,omitempty" yaml:"priority,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Acceptance  *string `json:"acceptance,omitempty" yaml:"acceptance,omitempty"`
	Assignee    *string `json:"assignee,omitempty" yaml:"assignee,omitempty"`
}

// Bead returns the epic as a bead with its type forced to epic.
func (e *Epic) Bead() Bead {
	kind := "epic"
	return Bead{
		Title:       e.Title,
		Type:        &kind,
		Priority:    e.Priority,
		Description: e.Description,
		Acceptance:  e.Acceptance,
		Assignee:    e.Assignee,
	}
}

// Plan is the root document.
type Plan struct {
	Epic  *Epic  `json:"epic,omitempty" yaml:"epic,omitempty"`
	Beads []Bead `json:"beads,omitempty" yaml:"beads,omitempty"`
}

// IDRule controls how local ids are derived from titles.
type IDRule struct {
	Length    int
	Separator string
}

// DefaultIDRule matches the historical 20-character, dash-separated ids.
var DefaultIDRule = IDRule{Length: 20, Separator: "-"}

// Derive lower-cases title, replaces each whitespace rune with the separator,
// and truncates the result to Length runes. A non-positive Length disables
// truncation.
func (r IDRule) Derive(title string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(title) {
		if unicode.IsSpace(c) {
			b.WriteString(r.Separator)
			continue
		}
		b.WriteRune(c)
	}
	id := []rune(b.String())
	if r.Length > 0 && len(id) > r.Length {
		id = id[:r.Length]
	}
	return string(id)
}

// LocalID returns the bead's explicit id, or one derived from its title.
func (b Bead) LocalID(rule IDRule) string {
	if b.ID != "" {
		return b.ID
	}
	return rule.Derive(b.Title)
}

// HasDependencies reports whether any bead declares depends_on entries.
func (p *Plan) HasDependencies() bool {
	for _, b := range p.Beads {
		if len(b.DependsOn) > 0 {
			return true
		}
	}
	return false
}

// HasLabels reports whether any bead declares labels.
func (p *Plan) HasLabels() bool {
	for _, b := range p.Beads {
		if len(b.Labels) > 0 {
			return true
		}
	}
	return false
}
