package signature

import "strings"

// TypeParameter is one generic placeholder declared by a method or class,
// with its bounds.
type TypeParameter struct {
	Name string
	// ClassBound is nil when the grammar's class bound slot is empty
	// (an immediate ':' with no type).
	ClassBound      TypeSignature
	InterfaceBounds []TypeSignature
}

// parseTypeParameters matches the optional '<' TypeParameter+ '>' section.
// An absent section yields an empty, never nil, slice.
func parseTypeParameters(p *parser) ([]*TypeParameter, error) {
	params := []*TypeParameter{}
	if p.peek() != '<' {
		return params, nil
	}
	p.next()
	for p.peek() != '>' {
		if !p.hasMore() {
			return nil, p.errorf("ran out of input while parsing type parameters")
		}
		param, err := parseTypeParameter(p)
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	p.next()
	return params, nil
}

func parseTypeParameter(p *parser) (*TypeParameter, error) {
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(':'); err != nil {
		return nil, err
	}
	// The class bound may be empty, signaled by an immediate ':' or '>'.
	classBound, err := parseReferenceType(p)
	if err != nil {
		return nil, err
	}
	var interfaceBounds []TypeSignature
	for p.peek() == ':' {
		p.next()
		bound, err := parseReferenceType(p)
		if err != nil {
			return nil, err
		}
		if bound == nil {
			return nil, p.errorf("missing interface bound signature")
		}
		interfaceBounds = append(interfaceBounds, bound)
	}
	return &TypeParameter{
		Name:            name,
		ClassBound:      classBound,
		InterfaceBounds: interfaceBounds,
	}, nil
}

func (t *TypeParameter) String() string {
	if t.ClassBound == nil && len(t.InterfaceBounds) == 0 {
		return t.Name
	}
	var sb strings.Builder
	sb.WriteString(t.Name)
	sb.WriteString(" extends ")
	first := true
	if t.ClassBound != nil {
		sb.WriteString(t.ClassBound.String())
		first = false
	}
	for _, bound := range t.InterfaceBounds {
		if !first {
			sb.WriteString(" & ")
		}
		sb.WriteString(bound.String())
		first = false
	}
	return sb.String()
}

func (t *TypeParameter) Descriptor() string {
	var sb strings.Builder
	sb.WriteString(t.Name)
	sb.WriteByte(':')
	if t.ClassBound != nil {
		sb.WriteString(t.ClassBound.Descriptor())
	}
	for _, bound := range t.InterfaceBounds {
		sb.WriteByte(':')
		sb.WriteString(bound.Descriptor())
	}
	return sb.String()
}

func (t *TypeParameter) Equal(other *TypeParameter) bool {
	if other == nil || other.Name != t.Name {
		return false
	}
	if t.ClassBound == nil || other.ClassBound == nil {
		if t.ClassBound != nil || other.ClassBound != nil {
			return false
		}
	} else if !t.ClassBound.Equal(other.ClassBound) {
		return false
	}
	if len(t.InterfaceBounds) != len(other.InterfaceBounds) {
		return false
	}
	for i, bound := range t.InterfaceBounds {
		if !bound.Equal(other.InterfaceBounds[i]) {
			return false
		}
	}
	return true
}

func (t *TypeParameter) Hash() uint32 { return hashDescriptor(t) }

func (t *TypeParameter) CollectClassNames(names map[string]struct{}) {
	if t.ClassBound != nil {
		t.ClassBound.CollectClassNames(names)
	}
	for _, bound := range t.InterfaceBounds {
		bound.CollectClassNames(names)
	}
}
