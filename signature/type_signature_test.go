package signature

import (
	"errors"
	"testing"
)

func TestParseTypeRendering(t *testing.T) {
	tests := []struct {
		input      string
		wantString string
	}{
		{"I", "int"},
		{"Z", "boolean"},
		{"V", "void"},
		{"[[D", "double[][]"},
		{"[Ljava/lang/String;", "java.lang.String[]"},
		{"Ljava/lang/String;", "java.lang.String"},
		{"TE;", "E"},
		{"Ljava/util/List<Ljava/lang/String;>;", "java.util.List<java.lang.String>"},
		{"Ljava/util/List<*>;", "java.util.List<?>"},
		{"Ljava/util/List<+Ljava/lang/Number;>;", "java.util.List<? extends java.lang.Number>"},
		{"Ljava/util/List<-TE;>;", "java.util.List<? super E>"},
		{"Ljava/util/Map<TK;TV;>.Entry<TK;TV;>;", "java.util.Map<K, V>.Entry<K, V>"},
		{"Ljava/util/List<[I>;", "java.util.List<int[]>"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sig, err := ParseType(tt.input)
			if err != nil {
				t.Fatalf("ParseType(%q) returned error: %v", tt.input, err)
			}
			if got := sig.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
			if got := sig.Descriptor(); got != tt.input {
				t.Errorf("Descriptor() = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestParseTypeErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "missing type signature"},
		{"Q", "missing type signature"},
		{"II", "extra characters at end of type descriptor"},
		{"[", "missing array element type signature"},
		{"Ljava/lang/String", `expected ';', got end of input`},
		{"TT", `expected ';', got end of input`},
		{"Ljava/util/List<I>;", "missing type argument signature"},
		{"Ljava/util/List<Ljava/lang/String;", "ran out of input while parsing type arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseType(tt.input)
			if err == nil {
				t.Fatalf("ParseType(%q) returned no error", tt.input)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("error is %T, want *ParseError", err)
			}
			if parseErr.Msg != tt.want {
				t.Errorf("Msg = %q, want %q", parseErr.Msg, tt.want)
			}
		})
	}
}

func TestTypeSignatureEquality(t *testing.T) {
	t.Run("equal across variants requires same variant", func(t *testing.T) {
		intType := &BaseTypeSignature{Name: "int"}
		variable := &TypeVariableSignature{Name: "int"}
		if intType.Equal(variable) {
			t.Error("base type compared equal to type variable of same name")
		}
	})

	t.Run("array equality includes dimensions", func(t *testing.T) {
		one, err := ParseType("[I")
		if err != nil {
			t.Fatal(err)
		}
		two, err := ParseType("[[I")
		if err != nil {
			t.Fatal(err)
		}
		if one.Equal(two) {
			t.Error("[I compared equal to [[I")
		}
	})

	t.Run("class ref equality includes type arguments", func(t *testing.T) {
		plain, err := ParseType("Ljava/util/List;")
		if err != nil {
			t.Fatal(err)
		}
		generic, err := ParseType("Ljava/util/List<Ljava/lang/String;>;")
		if err != nil {
			t.Fatal(err)
		}
		if plain.Equal(generic) {
			t.Error("raw List compared equal to List<String>")
		}
		if plain.Hash() == generic.Hash() {
			t.Error("raw List hashed equal to List<String>")
		}
	})
}

func TestParseTypeCollectsClassNames(t *testing.T) {
	sig, err := ParseType("Ljava/util/Map<TK;[Ljava/lang/String;>.Entry<+Ljava/lang/Number;*>;")
	if err != nil {
		t.Fatal(err)
	}
	got := ReferencedClassNames(sig)
	want := []string{"java.lang.Number", "java.lang.String", "java.util.Map"}
	if len(got) != len(want) {
		t.Fatalf("ReferencedClassNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ReferencedClassNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
