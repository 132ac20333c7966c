// Package signature parses JVM generic type signatures, the compact strings
// stored in the Signature attribute of a classfile, into immutable syntax
// trees.
//
// The entry points are ParseMethod, ParseClass and ParseType. A parse either
// returns a fully resolved tree or a *ParseError; there are no partial
// results. Returned trees are safe for concurrent readers: every field is
// written before the entry point returns and never mutated afterwards.
package signature

import (
	"hash/fnv"
	"strings"
)

// TypeSignature is implemented by every parsed type node: base types, class
// references, type variables and array types.
type TypeSignature interface {
	// String renders the node in Java source form ("java.util.List<int[]>").
	String() string
	// Descriptor re-renders the node in JVM signature syntax
	// ("Ljava/util/List<[I>;"). Parsing the result yields an equal tree.
	Descriptor() string
	// Equal reports structural equality. Back-links are not compared.
	Equal(other TypeSignature) bool
	// Hash returns a structural hash consistent with Equal.
	Hash() uint32

	ClassNameCollector
}

// ClassNameCollector is implemented by every node that can report the class
// names it transitively references.
type ClassNameCollector interface {
	// CollectClassNames adds every referenced class name, in source form, to
	// names.
	CollectClassNames(names map[string]struct{})
}

func hashDescriptor(node interface{ Descriptor() string }) uint32 {
	h := fnv.New32a()
	h.Write([]byte(node.Descriptor()))
	return h.Sum32()
}

// BaseTypeSignature is a primitive type, or void in result position.
type BaseTypeSignature struct {
	// Name is the Java source name of the type ("int", "void", ...).
	Name string
}

func baseTypeName(ch byte) string {
	switch ch {
	case 'B':
		return "byte"
	case 'C':
		return "char"
	case 'D':
		return "double"
	case 'F':
		return "float"
	case 'I':
		return "int"
	case 'J':
		return "long"
	case 'S':
		return "short"
	case 'Z':
		return "boolean"
	case 'V':
		return "void"
	}
	return ""
}

func baseTypeChar(name string) byte {
	switch name {
	case "byte":
		return 'B'
	case "char":
		return 'C'
	case "double":
		return 'D'
	case "float":
		return 'F'
	case "int":
		return 'I'
	case "long":
		return 'J'
	case "short":
		return 'S'
	case "boolean":
		return 'Z'
	case "void":
		return 'V'
	}
	return 0
}

// parseBaseType matches a single primitive type character. Returns nil
// without consuming input when the cursor is not at a primitive.
func parseBaseType(p *parser) *BaseTypeSignature {
	name := baseTypeName(p.peek())
	if name == "" {
		return nil
	}
	p.next()
	return &BaseTypeSignature{Name: name}
}

func (b *BaseTypeSignature) String() string { return b.Name }

func (b *BaseTypeSignature) Descriptor() string { return string(baseTypeChar(b.Name)) }

func (b *BaseTypeSignature) Equal(other TypeSignature) bool {
	o, ok := other.(*BaseTypeSignature)
	return ok && o.Name == b.Name
}

func (b *BaseTypeSignature) Hash() uint32 { return hashDescriptor(b) }

func (b *BaseTypeSignature) CollectClassNames(names map[string]struct{}) {}

// ArrayTypeSignature is an array type: a dimension count and exactly one
// element type.
type ArrayTypeSignature struct {
	ElementType TypeSignature
	Dims        int
}

// parseArray matches '['+ followed by one type signature. Returns (nil, nil)
// without consuming input when the cursor is not at '['.
func parseArray(p *parser) (*ArrayTypeSignature, error) {
	if p.peek() != '[' {
		return nil, nil
	}
	dims := 0
	for p.peek() == '[' {
		p.next()
		dims++
	}
	elem, err := parseType(p)
	if err != nil {
		return nil, err
	}
	if elem == nil {
		return nil, p.errorf("missing array element type signature")
	}
	return &ArrayTypeSignature{ElementType: elem, Dims: dims}, nil
}

func (a *ArrayTypeSignature) String() string {
	var sb strings.Builder
	sb.WriteString(a.ElementType.String())
	for i := 0; i < a.Dims; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

func (a *ArrayTypeSignature) Descriptor() string {
	return strings.Repeat("[", a.Dims) + a.ElementType.Descriptor()
}

func (a *ArrayTypeSignature) Equal(other TypeSignature) bool {
	o, ok := other.(*ArrayTypeSignature)
	return ok && o.Dims == a.Dims && a.ElementType.Equal(o.ElementType)
}

func (a *ArrayTypeSignature) Hash() uint32 { return hashDescriptor(a) }

func (a *ArrayTypeSignature) CollectClassNames(names map[string]struct{}) {
	if a.ElementType != nil {
		a.ElementType.CollectClassNames(names)
	}
}

// parseType parses any type signature: base type, class reference, type
// variable or array. Returns (nil, nil) without consuming input when the
// cursor does not start a type.
func parseType(p *parser) (TypeSignature, error) {
	switch p.peek() {
	case 'L':
		ref, err := parseClassRef(p)
		if err != nil {
			return nil, err
		}
		return ref, nil
	case 'T':
		tv, err := parseTypeVariable(p)
		if err != nil {
			return nil, err
		}
		return tv, nil
	case '[':
		arr, err := parseArray(p)
		if err != nil {
			return nil, err
		}
		return arr, nil
	default:
		if base := parseBaseType(p); base != nil {
			return base, nil
		}
		return nil, nil
	}
}

// parseReferenceType is parseType restricted to reference types, as required
// in bound and type-argument position.
func parseReferenceType(p *parser) (TypeSignature, error) {
	switch p.peek() {
	case 'L', 'T', '[':
		return parseType(p)
	}
	return nil, nil
}

// ParseType parses a single standalone type signature, such as the value of a
// field's Signature attribute. Type variables in the result carry no
// back-links, since there is no enclosing scope.
func ParseType(input string) (TypeSignature, error) {
	p := newParser(input)
	t, err := parseType(p)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, p.errorf("missing type signature")
	}
	if p.hasMore() {
		return nil, p.errorf("extra characters at end of type descriptor")
	}
	return t, nil
}
