package plan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Stdin is the source name that selects standard input.
const Stdin = "-"

// Format is the encoding of a plan document.
type Format int

const (
	FormatAuto Format = iota
	FormatJSON
	FormatYAML
	FormatMarkdown
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatMarkdown:
		return "markdown"
	default:
		return "auto"
	}
}

// ParseError reports a plan document that is not well-formed.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing plan %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads a plan from path, or from stdin when path is "-".
func Load(path string, stdin io.Reader) (*Plan, error) {
	var (
		data   []byte
		err    error
		name   = path
		format = FormatAuto
	)
	if path == Stdin {
		name = "<stdin>"
		data, err = io.ReadAll(stdin)
	} else {
		format = formatFromExt(path)
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading plan %s: %w", name, err)
	}
	return Parse(name, data, format)
}

// Parse decodes a plan document. FormatAuto sniffs the content: a leading
// '{' means JSON, a fenced json/yaml block means Markdown, anything else YAML.
func Parse(source string, data []byte, format Format) (*Plan, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ParseError{Source: source, Err: errors.New("empty document")}
	}
	if format == FormatAuto {
		format = sniff(data)
	}
	if format == FormatMarkdown {
		block, ok := extractBlock(string(data))
		if !ok {
			return nil, &ParseError{Source: source, Err: errors.New("no fenced json or yaml block found")}
		}
		data = []byte(block.Content)
		format = block.Format
	}

	var (
		p   Plan
		err error
	)
	switch format {
	case FormatJSON:
		err = decodeJSON(data, &p)
	default:
		err = decodeYAML(data, &p)
	}
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	return &p, nil
}

var errNotMapping = errors.New("document root must be a mapping with 'epic' and/or 'beads'")

func decodeJSON(data []byte, p *Plan) error {
	// null decodes into a nil map without error.
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "" {
			return errNotMapping
		}
		return err
	}
	if root == nil {
		return errNotMapping
	}
	return json.Unmarshal(data, p)
}

func decodeYAML(data []byte, p *Plan) error {
	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("no document found")
		}
		return err
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return errNotMapping
	}
	return doc.Content[0].Decode(p)
}

func formatFromExt(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatAuto
	}
}

func sniff(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	if _, ok := extractBlock(string(data)); ok {
		return FormatMarkdown
	}
	return FormatYAML
}
