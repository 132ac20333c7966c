package signature

import "fmt"

// ParseError reports a malformed signature. It carries the cursor position at
// which parsing failed so callers can point at the offending character.
type ParseError struct {
	Msg   string
	Pos   int
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at position %d in %q", e.Msg, e.Pos, e.Input)
}

// parser is a forward-only cursor over a signature string. Lookahead is one
// character; every production of the grammar is distinguished by its first
// character.
//
// The parser also accumulates every type variable constructed during the
// parse, so the top-level entry points can back-link them to the enclosing
// signature once it exists.
type parser struct {
	input    string
	pos      int
	typeVars []*TypeVariableSignature
}

func newParser(input string) *parser {
	return &parser{input: input}
}

func (p *parser) hasMore() bool {
	return p.pos < len(p.input)
}

// peek returns the current character, or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) next() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	ch := p.input[p.pos]
	p.pos++
	return ch
}

func (p *parser) expect(ch byte) error {
	if got := p.peek(); got != ch {
		if got == 0 {
			return p.errorf("expected %q, got end of input", ch)
		}
		return p.errorf("expected %q, got %q", ch, got)
	}
	p.pos++
	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Pos: p.pos, Input: p.input}
}

// recordTypeVariable registers a freshly parsed type variable with the
// per-parse accumulator. Called exactly once per TypeVariableSignature, at
// the moment of construction.
func (p *parser) recordTypeVariable(tv *TypeVariableSignature) {
	p.typeVars = append(p.typeVars, tv)
}

// takeTypeVariables hands the accumulated type variables, in parse order, to
// the finalization step and clears the accumulator.
func (p *parser) takeTypeVariables() []*TypeVariableSignature {
	tvs := p.typeVars
	p.typeVars = nil
	return tvs
}

// parseIdentifier reads characters up to the next grammar delimiter.
func (p *parser) parseIdentifier() (string, error) {
	start := p.pos
loop:
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ';', ':', '<', '>', '.', '/', '^', '(', ')', '[', '*', '+', '-':
			break loop
		default:
			p.pos++
		}
	}
	if p.pos == start {
		return "", p.errorf("expected identifier")
	}
	return p.input[start:p.pos], nil
}

// parseClassName reads a qualified class name, treating '/' as a package
// separator, and returns it in source form. Stops at ';', '<' or the '.'
// that introduces a nested-class suffix.
func (p *parser) parseClassName() (string, error) {
	start := p.pos
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if ch == ';' || ch == '<' || ch == '.' {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected class name")
	}
	return SourceName(p.input[start:p.pos]), nil
}
