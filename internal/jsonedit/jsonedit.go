// Package jsonedit reads and surgically rewrites JSON-with-comments
// documents. Parsing tolerates // and /* */ comments and trailing commas.
// Edits are minimal text splices that replace, insert, or remove a single
// top-level property while leaving every other byte of the document
// untouched, comments and formatting included.
package jsonedit

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
)

// FormattingOptions controls how inserted or replaced values are rendered.
// They are supplied by the caller; the package never guesses a style from
// the document.
type FormattingOptions struct {
	// InsertSpaces selects space indentation; false means tabs.
	InsertSpaces bool

	// TabSize is the number of spaces per indent level when InsertSpaces
	// is set.
	TabSize int

	// EOL is the line ending for newly produced lines.
	EOL string
}

func (o FormattingOptions) indentUnit() string {
	if o.InsertSpaces {
		n := o.TabSize
		if n <= 0 {
			n = 2
		}
		return strings.Repeat(" ", n)
	}
	return "\t"
}

func (o FormattingOptions) eol() string {
	if o.EOL == "" {
		return "\n"
	}
	return o.EOL
}

// Parse unmarshals a JSON-with-comments document into v. Comments and
// trailing commas are stripped before decoding.
func Parse(data []byte, v any) error {
	if err := json.Unmarshal(jsonc.ToJSON(data), v); err != nil {
		return fmt.Errorf("parsing jsonc: %w", err)
	}
	return nil
}

// Edit is a single text splice: Length bytes at Offset are replaced by
// Content.
type Edit struct {
	Offset  int
	Length  int
	Content string
}

// ApplyEdits applies a set of non-overlapping edits to text.
func ApplyEdits(text string, edits []Edit) (string, error) {
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset > sorted[j].Offset })

	out := text
	lastStart := len(text) + 1
	for _, e := range sorted {
		if e.Offset < 0 || e.Offset+e.Length > len(text) {
			return "", fmt.Errorf("edit out of range: offset %d length %d in %d bytes", e.Offset, e.Length, len(text))
		}
		if e.Offset+e.Length > lastStart {
			return "", fmt.Errorf("overlapping edits at offset %d", e.Offset)
		}
		lastStart = e.Offset
		out = out[:e.Offset] + e.Content + out[e.Offset+e.Length:]
	}
	return out, nil
}

// SetProperty produces the edits that set the named top-level property to
// value. An existing property has just its value replaced in place; a
// missing one is appended to the root object.
func SetProperty(text, name string, value any, opts FormattingOptions) ([]Edit, error) {
	doc, err := scanDocument(text)
	if err != nil {
		return nil, err
	}

	if prop, ok := doc.property(name); ok {
		indent := lineIndent(text, prop.keyStart)
		content, err := formatValue(value, opts, indent)
		if err != nil {
			return nil, err
		}
		return []Edit{{Offset: prop.valueStart, Length: prop.valueEnd - prop.valueStart, Content: content}}, nil
	}

	indent := doc.bodyIndent(text, opts)
	content, err := formatValue(value, opts, indent)
	if err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(name)
	if err != nil {
		return nil, err
	}
	pair := string(encoded) + ": " + content

	if len(doc.properties) == 0 {
		insert := opts.eol() + indent + pair + opts.eol()
		return []Edit{{Offset: doc.openBrace + 1, Length: 0, Content: insert}}, nil
	}
	last := doc.properties[len(doc.properties)-1]
	if last.commaAfter >= 0 {
		insert := opts.eol() + indent + pair
		return []Edit{{Offset: last.commaAfter + 1, Length: 0, Content: insert}}, nil
	}
	insert := "," + opts.eol() + indent + pair
	return []Edit{{Offset: last.valueEnd, Length: 0, Content: insert}}, nil
}

// RemoveProperty produces the edits that delete the named top-level
// property, adjusting the neighboring comma so the document stays valid.
// A missing property yields no edits.
func RemoveProperty(text, name string) ([]Edit, error) {
	doc, err := scanDocument(text)
	if err != nil {
		return nil, err
	}
	prop, ok := doc.property(name)
	if !ok {
		return nil, nil
	}

	start := prop.keyStart
	end := prop.valueEnd
	switch {
	case prop.commaAfter >= 0:
		end = prop.commaAfter + 1
		start = trimIndentBack(text, start)
	case prop.commaBefore >= 0:
		start = prop.commaBefore
	default:
		start = trimIndentBack(text, start)
	}
	return []Edit{{Offset: start, Length: end - start, Content: ""}}, nil
}

// formatValue renders value as JSON indented one level deeper than
// baseIndent, with continuation lines prefixed by baseIndent so the value
// slots into the document at that indentation.
func formatValue(value any, opts FormattingOptions, baseIndent string) (string, error) {
	data, err := json.MarshalIndent(value, baseIndent, opts.indentUnit())
	if err != nil {
		return "", fmt.Errorf("encoding value: %w", err)
	}
	s := string(data)
	if eol := opts.eol(); eol != "\n" {
		s = strings.ReplaceAll(s, "\n", eol)
	}
	return s, nil
}

// lineIndent returns the whitespace run at the start of the line
// containing offset.
func lineIndent(text string, offset int) string {
	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
	i := lineStart
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	return text[lineStart:i]
}

// trimIndentBack walks offset backwards over whitespace, including at
// most one line break, so removing a property also removes its line.
func trimIndentBack(text string, offset int) int {
	i := offset
	for i > 0 && (text[i-1] == ' ' || text[i-1] == '\t') {
		i--
	}
	if i > 0 && text[i-1] == '\n' {
		i--
		if i > 0 && text[i-1] == '\r' {
			i--
		}
	}
	return i
}
