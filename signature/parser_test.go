package signature

import (
	"errors"
	"strings"
	"testing"
)

func TestParserCursor(t *testing.T) {
	t.Run("peek does not advance", func(t *testing.T) {
		p := newParser("AB")
		if got := p.peek(); got != 'A' {
			t.Errorf("peek() = %q, want %q", got, byte('A'))
		}
		if got := p.peek(); got != 'A' {
			t.Errorf("second peek() = %q, want %q", got, byte('A'))
		}
	})

	t.Run("peek at end returns zero", func(t *testing.T) {
		p := newParser("")
		if got := p.peek(); got != 0 {
			t.Errorf("peek() = %q, want 0", got)
		}
		if p.hasMore() {
			t.Error("hasMore() = true, want false")
		}
	})

	t.Run("next advances", func(t *testing.T) {
		p := newParser("AB")
		if got := p.next(); got != 'A' {
			t.Errorf("next() = %q, want %q", got, byte('A'))
		}
		if got := p.next(); got != 'B' {
			t.Errorf("next() = %q, want %q", got, byte('B'))
		}
		if p.hasMore() {
			t.Error("hasMore() = true after consuming all input")
		}
	})

	t.Run("expect matching literal", func(t *testing.T) {
		p := newParser("(")
		if err := p.expect('('); err != nil {
			t.Fatalf("expect('(') returned error: %v", err)
		}
		if p.hasMore() {
			t.Error("expect did not advance")
		}
	})

	t.Run("expect mismatch", func(t *testing.T) {
		p := newParser(")")
		err := p.expect('(')
		if err == nil {
			t.Fatal("expect('(') on \")\" returned no error")
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("error is %T, want *ParseError", err)
		}
		if parseErr.Pos != 0 {
			t.Errorf("Pos = %d, want 0", parseErr.Pos)
		}
	})

	t.Run("error carries position and input", func(t *testing.T) {
		p := newParser("(I")
		p.next()
		p.next()
		err := p.errorf("ran out of input while parsing method signature")
		want := `ran out of input while parsing method signature at position 2 in "(I"`
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})
}

func TestParseIdentifier(t *testing.T) {
	t.Run("stops at delimiter", func(t *testing.T) {
		p := newParser("T0Bar;rest")
		name, err := p.parseIdentifier()
		if err != nil {
			t.Fatalf("parseIdentifier() returned error: %v", err)
		}
		if name != "T0Bar" {
			t.Errorf("parseIdentifier() = %q, want %q", name, "T0Bar")
		}
		if got := p.peek(); got != ';' {
			t.Errorf("cursor at %q, want %q", got, byte(';'))
		}
	})

	t.Run("empty identifier is an error", func(t *testing.T) {
		p := newParser(":")
		if _, err := p.parseIdentifier(); err == nil {
			t.Error("parseIdentifier() on \":\" returned no error")
		}
	})
}

func TestParseClassName(t *testing.T) {
	t.Run("converts slashes to dots", func(t *testing.T) {
		p := newParser("java/util/List;")
		name, err := p.parseClassName()
		if err != nil {
			t.Fatalf("parseClassName() returned error: %v", err)
		}
		if name != "java.util.List" {
			t.Errorf("parseClassName() = %q, want %q", name, "java.util.List")
		}
	})

	t.Run("stops at suffix separator", func(t *testing.T) {
		p := newParser("java/util/Map.Entry;")
		name, err := p.parseClassName()
		if err != nil {
			t.Fatalf("parseClassName() returned error: %v", err)
		}
		if name != "java.util.Map" {
			t.Errorf("parseClassName() = %q, want %q", name, "java.util.Map")
		}
		if got := p.peek(); got != '.' {
			t.Errorf("cursor at %q, want %q", got, byte('.'))
		}
	})
}

func TestTypeVariableAccumulator(t *testing.T) {
	p := newParser("TT;TU;")
	for _, want := range []string{"T", "U"} {
		tv, err := parseTypeVariable(p)
		if err != nil {
			t.Fatalf("parseTypeVariable() returned error: %v", err)
		}
		if tv.Name != want {
			t.Errorf("Name = %q, want %q", tv.Name, want)
		}
	}

	tvs := p.takeTypeVariables()
	if len(tvs) != 2 {
		t.Fatalf("takeTypeVariables() returned %d entries, want 2", len(tvs))
	}
	names := []string{tvs[0].Name, tvs[1].Name}
	if got := strings.Join(names, ","); got != "T,U" {
		t.Errorf("accumulated order = %q, want %q", got, "T,U")
	}
	if again := p.takeTypeVariables(); len(again) != 0 {
		t.Errorf("second takeTypeVariables() returned %d entries, want 0", len(again))
	}
}
