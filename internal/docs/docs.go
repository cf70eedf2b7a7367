package docs

import (
	"fmt"
	"strings"
)

// Topic holds a single documentation article.
type Topic struct {
	Name    string // short slug used as CLI argument
	Title   string // human-readable title
	Summary string // one-line description for topic listing
	Content string // full article text (plain text, no ANSI)
}

// All returns every topic in display order.
func All() []Topic {
	return topics
}

// Get looks up a topic by name. Names are matched case-insensitively; an
// unknown name gets a suggestion when it starts a topic name or a word of a
// topic title, so "beadplan docs validation" points at "errors".
func Get(name string) (Topic, error) {
	q := strings.ToLower(strings.TrimSpace(name))
	for _, t := range topics {
		if t.Name == q {
			return t, nil
		}
	}
	if s, ok := suggest(q); ok {
		return Topic{}, fmt.Errorf("unknown topic %q, did you mean %q?", name, s.Name)
	}
	return Topic{}, fmt.Errorf("unknown topic %q, run 'beadplan docs' to list available topics", name)
}

func suggest(q string) (Topic, bool) {
	if q == "" {
		return Topic{}, false
	}
	for _, t := range topics {
		if strings.HasPrefix(t.Name, q) {
			return t, true
		}
		for _, w := range strings.Fields(strings.ToLower(t.Title)) {
			if strings.HasPrefix(w, q) {
				return t, true
			}
		}
	}
	return Topic{}, false
}
