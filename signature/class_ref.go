package signature

import "strings"

// Wildcard is the wildcard kind of a type argument.
type Wildcard int

const (
	// WildcardNone marks a concrete type argument.
	WildcardNone Wildcard = iota
	// WildcardAny is an unbounded wildcard, '*' in signature syntax.
	WildcardAny
	// WildcardExtends is an upper-bounded wildcard, '+' in signature syntax.
	WildcardExtends
	// WildcardSuper is a lower-bounded wildcard, '-' in signature syntax.
	WildcardSuper
)

// TypeArgument is one generic argument of a class reference. Type is nil
// exactly when Wildcard is WildcardAny.
type TypeArgument struct {
	Wildcard Wildcard
	Type     TypeSignature
}

func parseTypeArgument(p *parser) (TypeArgument, error) {
	switch p.peek() {
	case '*':
		p.next()
		return TypeArgument{Wildcard: WildcardAny}, nil
	case '+':
		p.next()
		t, err := parseReferenceType(p)
		if err != nil {
			return TypeArgument{}, err
		}
		if t == nil {
			return TypeArgument{}, p.errorf("missing type argument signature")
		}
		return TypeArgument{Wildcard: WildcardExtends, Type: t}, nil
	case '-':
		p.next()
		t, err := parseReferenceType(p)
		if err != nil {
			return TypeArgument{}, err
		}
		if t == nil {
			return TypeArgument{}, p.errorf("missing type argument signature")
		}
		return TypeArgument{Wildcard: WildcardSuper, Type: t}, nil
	default:
		t, err := parseReferenceType(p)
		if err != nil {
			return TypeArgument{}, err
		}
		if t == nil {
			return TypeArgument{}, p.errorf("missing type argument signature")
		}
		return TypeArgument{Wildcard: WildcardNone, Type: t}, nil
	}
}

// parseTypeArguments matches an optional '<' TypeArgument+ '>' section.
// Returns (nil, nil) without consuming input when the section is absent.
func parseTypeArguments(p *parser) ([]TypeArgument, error) {
	if p.peek() != '<' {
		return nil, nil
	}
	p.next()
	var args []TypeArgument
	for p.peek() != '>' {
		if !p.hasMore() {
			return nil, p.errorf("ran out of input while parsing type arguments")
		}
		arg, err := parseTypeArgument(p)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	p.next()
	return args, nil
}

func (a TypeArgument) String() string {
	switch a.Wildcard {
	case WildcardAny:
		return "?"
	case WildcardExtends:
		return "? extends " + a.Type.String()
	case WildcardSuper:
		return "? super " + a.Type.String()
	}
	return a.Type.String()
}

func (a TypeArgument) Descriptor() string {
	switch a.Wildcard {
	case WildcardAny:
		return "*"
	case WildcardExtends:
		return "+" + a.Type.Descriptor()
	case WildcardSuper:
		return "-" + a.Type.Descriptor()
	}
	return a.Type.Descriptor()
}

func (a TypeArgument) Equal(other TypeArgument) bool {
	if a.Wildcard != other.Wildcard {
		return false
	}
	if a.Type == nil || other.Type == nil {
		return a.Type == nil && other.Type == nil
	}
	return a.Type.Equal(other.Type)
}

func (a TypeArgument) CollectClassNames(names map[string]struct{}) {
	if a.Type != nil {
		a.Type.CollectClassNames(names)
	}
}

// ClassRefSuffix is one link of a nested-class chain, with its own type
// arguments ("Entry" in "java.util.Map<K, V>.Entry").
type ClassRefSuffix struct {
	Name          string
	TypeArguments []TypeArgument
}

// ClassRefTypeSignature is a reference to a class type, possibly generic and
// possibly nested.
type ClassRefTypeSignature struct {
	// ClassName is the fully qualified name of the outermost class, in
	// source form ("java.util.Map").
	ClassName     string
	TypeArguments []TypeArgument
	Suffixes      []ClassRefSuffix
}

// parseClassRef matches 'L' ClassName TypeArguments? ('.' Suffix)* ';'.
// Returns (nil, nil) without consuming input when the cursor is not at 'L'.
func parseClassRef(p *parser) (*ClassRefTypeSignature, error) {
	if p.peek() != 'L' {
		return nil, nil
	}
	p.next()
	className, err := p.parseClassName()
	if err != nil {
		return nil, err
	}
	args, err := parseTypeArguments(p)
	if err != nil {
		return nil, err
	}
	var suffixes []ClassRefSuffix
	for p.peek() == '.' {
		p.next()
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		suffixArgs, err := parseTypeArguments(p)
		if err != nil {
			return nil, err
		}
		suffixes = append(suffixes, ClassRefSuffix{Name: name, TypeArguments: suffixArgs})
	}
	if err := p.expect(';'); err != nil {
		return nil, err
	}
	return &ClassRefTypeSignature{
		ClassName:     className,
		TypeArguments: args,
		Suffixes:      suffixes,
	}, nil
}

func writeTypeArguments(sb *strings.Builder, args []TypeArgument) {
	if len(args) == 0 {
		return
	}
	sb.WriteByte('<')
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteByte('>')
}

func (c *ClassRefTypeSignature) String() string {
	var sb strings.Builder
	sb.WriteString(c.ClassName)
	writeTypeArguments(&sb, c.TypeArguments)
	for _, suffix := range c.Suffixes {
		sb.WriteByte('.')
		sb.WriteString(suffix.Name)
		writeTypeArguments(&sb, suffix.TypeArguments)
	}
	return sb.String()
}

func (c *ClassRefTypeSignature) Descriptor() string {
	var sb strings.Builder
	sb.WriteByte('L')
	sb.WriteString(InternalName(c.ClassName))
	writeTypeArgumentDescriptors(&sb, c.TypeArguments)
	for _, suffix := range c.Suffixes {
		sb.WriteByte('.')
		sb.WriteString(suffix.Name)
		writeTypeArgumentDescriptors(&sb, suffix.TypeArguments)
	}
	sb.WriteByte(';')
	return sb.String()
}

func writeTypeArgumentDescriptors(sb *strings.Builder, args []TypeArgument) {
	if len(args) == 0 {
		return
	}
	sb.WriteByte('<')
	for _, arg := range args {
		sb.WriteString(arg.Descriptor())
	}
	sb.WriteByte('>')
}

func (c *ClassRefTypeSignature) Equal(other TypeSignature) bool {
	o, ok := other.(*ClassRefTypeSignature)
	if !ok || o.ClassName != c.ClassName {
		return false
	}
	if len(o.TypeArguments) != len(c.TypeArguments) || len(o.Suffixes) != len(c.Suffixes) {
		return false
	}
	for i, arg := range c.TypeArguments {
		if !arg.Equal(o.TypeArguments[i]) {
			return false
		}
	}
	for i, suffix := range c.Suffixes {
		if suffix.Name != o.Suffixes[i].Name {
			return false
		}
		if len(suffix.TypeArguments) != len(o.Suffixes[i].TypeArguments) {
			return false
		}
		for j, arg := range suffix.TypeArguments {
			if !arg.Equal(o.Suffixes[i].TypeArguments[j]) {
				return false
			}
		}
	}
	return true
}

func (c *ClassRefTypeSignature) Hash() uint32 { return hashDescriptor(c) }

func (c *ClassRefTypeSignature) CollectClassNames(names map[string]struct{}) {
	names[c.ClassName] = struct{}{}
	for _, arg := range c.TypeArguments {
		arg.CollectClassNames(names)
	}
	for _, suffix := range c.Suffixes {
		for _, arg := range suffix.TypeArguments {
			arg.CollectClassNames(names)
		}
	}
}
