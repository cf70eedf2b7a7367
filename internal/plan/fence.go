package plan

import (
	"regexp"
	"strings"
)

// Block is a fenced plan document found inside Markdown.
type Block struct {
	Format  Format
	Content string
}

var fenceOpenRe = regexp.MustCompile("^```(json|yaml|yml)\\s*$")

// extractBlock returns the first fenced json or yaml block in text.
// It recognizes opening fences like:
//
//	```json
//	```yaml
//
// An unterminated block runs to the end of the text.
func extractBlock(text string) (Block, bool) {
	lines := strings.Split(text, "\n")
	var current *Block
	var buf strings.Builder

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if current != nil {
			if trimmed == "```" {
				current.Content = buf.String()
				return *current, true
			}
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(line)
			continue
		}

		m := fenceOpenRe.FindStringSubmatch(trimmed)
		if m != nil {
			current = &Block{Format: FormatYAML}
			if m[1] == "json" {
				current.Format = FormatJSON
			}
		}
	}

	if current != nil {
		current.Content = buf.String()
		return *current, true
	}
	return Block{}, false
}
