package signature

// TypeVariableSignature is a use-site reference to a type parameter by name.
//
// Whether the name actually matches a type parameter declared in the resolved
// scope is not checked here; consumers that need name resolution walk the
// back-linked scopes themselves.
type TypeVariableSignature struct {
	Name string

	// Back-links to the scope that introduced the type parameter. They are
	// unset at construction and assigned exactly once, inside the entry
	// point that finishes parsing the enclosing signature. Nothing else
	// writes them.
	containingMethod *MethodSignature
	containingClass  *ClassSignature
}

// ContainingMethod returns the method signature this type variable was parsed
// as part of, or nil for a standalone type parse.
func (t *TypeVariableSignature) ContainingMethod() *MethodSignature {
	return t.containingMethod
}

// ContainingClass returns the signature of the class whose scope encloses
// this type variable, or nil when no class context was supplied.
func (t *TypeVariableSignature) ContainingClass() *ClassSignature {
	return t.containingClass
}

// parseTypeVariable matches 'T' Identifier ';'. Returns (nil, nil) without
// consuming input when the cursor is not at 'T'.
func parseTypeVariable(p *parser) (*TypeVariableSignature, error) {
	if p.peek() != 'T' {
		return nil, nil
	}
	p.next()
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(';'); err != nil {
		return nil, err
	}
	tv := &TypeVariableSignature{Name: name}
	p.recordTypeVariable(tv)
	return tv, nil
}

func (t *TypeVariableSignature) String() string { return t.Name }

func (t *TypeVariableSignature) Descriptor() string { return "T" + t.Name + ";" }

// Equal compares by name only; back-links carry no identity.
func (t *TypeVariableSignature) Equal(other TypeSignature) bool {
	o, ok := other.(*TypeVariableSignature)
	return ok && o.Name == t.Name
}

func (t *TypeVariableSignature) Hash() uint32 { return hashDescriptor(t) }

func (t *TypeVariableSignature) CollectClassNames(names map[string]struct{}) {}
