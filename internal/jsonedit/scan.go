package jsonedit

import (
	"encoding/json"
	"fmt"
)

// property records the text ranges of one top-level object property.
// Offsets index into the original document text.
type property struct {
	name        string
	keyStart    int // opening quote of the key
	keyEnd      int // one past the closing quote of the key
	valueStart  int
	valueEnd    int // one past the last byte of the value
	commaBefore int // offset of the separating comma before this property, -1 if first
	commaAfter  int // offset of the comma after the value, -1 if none
}

// document is the scanned structure of a JSONC document's root object.
type document struct {
	openBrace  int
	closeBrace int
	properties []property
}

func (d *document) property(name string) (property, bool) {
	for _, p := range d.properties {
		if p.name == name {
			return p, true
		}
	}
	return property{}, false
}

// bodyIndent returns the indentation to use for a property inserted into
// the root object: the first existing property's indentation, or one
// indent unit in an empty object.
func (d *document) bodyIndent(text string, opts FormattingOptions) string {
	if len(d.properties) > 0 {
		return lineIndent(text, d.properties[0].keyStart)
	}
	return opts.indentUnit()
}

// scanDocument walks a JSONC document and records the text ranges of the
// root object's properties. Comments and trailing commas are tolerated;
// nested values are skipped without interpretation.
func scanDocument(text string) (*document, error) {
	s := &jsoncScanner{text: text}

	s.skipTrivia()
	if s.eof() || s.text[s.pos] != '{' {
		return nil, fmt.Errorf("document has no root object")
	}
	doc := &document{openBrace: s.pos}
	s.pos++

	prevComma := -1
	for {
		s.skipTrivia()
		if s.eof() {
			return nil, fmt.Errorf("unterminated root object")
		}
		if s.text[s.pos] == '}' {
			doc.closeBrace = s.pos
			return doc, nil
		}

		if s.text[s.pos] != '"' {
			return nil, fmt.Errorf("expected property name at offset %d", s.pos)
		}
		keyStart := s.pos
		if err := s.scanString(); err != nil {
			return nil, err
		}
		keyEnd := s.pos

		s.skipTrivia()
		if s.eof() || s.text[s.pos] != ':' {
			return nil, fmt.Errorf("expected ':' at offset %d", s.pos)
		}
		s.pos++

		s.skipTrivia()
		valueStart := s.pos
		if err := s.scanValue(); err != nil {
			return nil, err
		}
		valueEnd := s.pos

		prop := property{
			keyStart:    keyStart,
			keyEnd:      keyEnd,
			valueStart:  valueStart,
			valueEnd:    valueEnd,
			commaBefore: prevComma,
			commaAfter:  -1,
		}
		var name string
		if err := json.Unmarshal([]byte(text[keyStart:keyEnd]), &name); err != nil {
			return nil, fmt.Errorf("invalid property name at offset %d: %w", keyStart, err)
		}
		prop.name = name

		s.skipTrivia()
		if !s.eof() && s.text[s.pos] == ',' {
			prop.commaAfter = s.pos
			prevComma = s.pos
			s.pos++
		} else {
			prevComma = -1
		}
		doc.properties = append(doc.properties, prop)
	}
}

// jsoncScanner is a cursor over JSONC text that knows how to skip
// comments, strings, and balanced brackets.
type jsoncScanner struct {
	text string
	pos  int
}

func (s *jsoncScanner) eof() bool {
	return s.pos >= len(s.text)
}

// skipTrivia advances past whitespace and comments.
func (s *jsoncScanner) skipTrivia() {
	for !s.eof() {
		c := s.text[s.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.pos++
		case c == '/' && s.pos+1 < len(s.text) && s.text[s.pos+1] == '/':
			for !s.eof() && s.text[s.pos] != '\n' {
				s.pos++
			}
		case c == '/' && s.pos+1 < len(s.text) && s.text[s.pos+1] == '*':
			s.pos += 2
			for s.pos+1 < len(s.text) && !(s.text[s.pos] == '*' && s.text[s.pos+1] == '/') {
				s.pos++
			}
			if s.pos+1 < len(s.text) {
				s.pos += 2
			} else {
				s.pos = len(s.text)
			}
		default:
			return
		}
	}
}

// scanString advances past a double-quoted string, honoring escapes. The
// cursor must be on the opening quote.
func (s *jsoncScanner) scanString() error {
	start := s.pos
	s.pos++
	for !s.eof() {
		switch s.text[s.pos] {
		case '\\':
			s.pos += 2
		case '"':
			s.pos++
			return nil
		default:
			s.pos++
		}
	}
	return fmt.Errorf("unterminated string at offset %d", start)
}

// scanValue advances past one JSON value of any kind.
func (s *jsoncScanner) scanValue() error {
	if s.eof() {
		return fmt.Errorf("expected value at offset %d", s.pos)
	}
	switch c := s.text[s.pos]; c {
	case '"':
		return s.scanString()
	case '{', '[':
		return s.scanBalanced()
	default:
		// number, true, false, null
		for !s.eof() {
			c := s.text[s.pos]
			if c == ',' || c == '}' || c == ']' || c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '/' {
				return nil
			}
			s.pos++
		}
		return nil
	}
}

// scanBalanced advances past a bracketed value, tracking nesting and
// skipping strings and comments. The cursor must be on '{' or '['.
func (s *jsoncScanner) scanBalanced() error {
	start := s.pos
	depth := 0
	for !s.eof() {
		switch s.text[s.pos] {
		case '{', '[':
			depth++
			s.pos++
		case '}', ']':
			depth--
			s.pos++
			if depth == 0 {
				return nil
			}
		case '"':
			if err := s.scanString(); err != nil {
				return err
			}
		case '/':
			before := s.pos
			s.skipTrivia()
			if s.pos == before {
				s.pos++
			}
		default:
			s.pos++
		}
	}
	return fmt.Errorf("unbalanced brackets starting at offset %d", start)
}
