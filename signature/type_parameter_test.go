package signature

import "testing"

func TestParseTypeParameters(t *testing.T) {
	t.Run("absent section yields empty list", func(t *testing.T) {
		p := newParser("()V")
		params, err := parseTypeParameters(p)
		if err != nil {
			t.Fatalf("parseTypeParameters() returned error: %v", err)
		}
		if params == nil {
			t.Fatal("parseTypeParameters() = nil, want empty slice")
		}
		if len(params) != 0 {
			t.Errorf("got %d parameters, want 0", len(params))
		}
		if got := p.peek(); got != '(' {
			t.Errorf("cursor at %q, want %q (no input consumed)", got, byte('('))
		}
	})

	t.Run("single parameter with class bound", func(t *testing.T) {
		p := newParser("<T:Ljava/lang/Object;>")
		params, err := parseTypeParameters(p)
		if err != nil {
			t.Fatal(err)
		}
		if len(params) != 1 {
			t.Fatalf("got %d parameters, want 1", len(params))
		}
		param := params[0]
		if param.Name != "T" {
			t.Errorf("Name = %q, want %q", param.Name, "T")
		}
		if got := param.String(); got != "T extends java.lang.Object" {
			t.Errorf("String() = %q, want %q", got, "T extends java.lang.Object")
		}
		if got := param.Descriptor(); got != "T:Ljava/lang/Object;" {
			t.Errorf("Descriptor() = %q, want %q", got, "T:Ljava/lang/Object;")
		}
	})

	t.Run("empty class bound with interface bound", func(t *testing.T) {
		p := newParser("<T::Ljava/lang/Comparable<TT;>;>")
		params, err := parseTypeParameters(p)
		if err != nil {
			t.Fatal(err)
		}
		param := params[0]
		if param.ClassBound != nil {
			t.Errorf("ClassBound = %v, want nil", param.ClassBound)
		}
		if len(param.InterfaceBounds) != 1 {
			t.Fatalf("got %d interface bounds, want 1", len(param.InterfaceBounds))
		}
		if got := param.String(); got != "T extends java.lang.Comparable<T>" {
			t.Errorf("String() = %q, want %q", got, "T extends java.lang.Comparable<T>")
		}
		if got := param.Descriptor(); got != "T::Ljava/lang/Comparable<TT;>;" {
			t.Errorf("Descriptor() = %q, want %q", got, "T::Ljava/lang/Comparable<TT;>;")
		}
	})

	t.Run("multiple parameters preserve order", func(t *testing.T) {
		p := newParser("<K:Ljava/lang/Object;V:Ljava/lang/Object;:Ljava/io/Serializable;>")
		params, err := parseTypeParameters(p)
		if err != nil {
			t.Fatal(err)
		}
		if len(params) != 2 {
			t.Fatalf("got %d parameters, want 2", len(params))
		}
		if params[0].Name != "K" || params[1].Name != "V" {
			t.Errorf("names = %q, %q, want K, V", params[0].Name, params[1].Name)
		}
		if len(params[1].InterfaceBounds) != 1 {
			t.Fatalf("V: got %d interface bounds, want 1", len(params[1].InterfaceBounds))
		}
		if got := params[1].String(); got != "V extends java.lang.Object & java.io.Serializable" {
			t.Errorf("V.String() = %q, want %q", got, "V extends java.lang.Object & java.io.Serializable")
		}
	})

	t.Run("unterminated list is an error", func(t *testing.T) {
		p := newParser("<T:Ljava/lang/Object;")
		if _, err := parseTypeParameters(p); err == nil {
			t.Error("parseTypeParameters() on unterminated list returned no error")
		}
	})
}

func TestTypeParameterEquality(t *testing.T) {
	parse := func(t *testing.T, input string) *TypeParameter {
		t.Helper()
		p := newParser(input)
		params, err := parseTypeParameters(p)
		if err != nil {
			t.Fatal(err)
		}
		return params[0]
	}

	bounded := parse(t, "<T:Ljava/lang/Object;>")
	unbounded := parse(t, "<T:>")
	sameAgain := parse(t, "<T:Ljava/lang/Object;>")

	if !bounded.Equal(sameAgain) {
		t.Error("identical type parameters compared unequal")
	}
	if bounded.Equal(unbounded) {
		t.Error("bounded parameter compared equal to unbounded one")
	}
	if bounded.Hash() != sameAgain.Hash() {
		t.Error("identical type parameters hashed differently")
	}
}
