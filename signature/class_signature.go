package signature

import "strings"

// ClassSignature is the parsed generic type signature of a class: its type
// parameters, superclass and superinterfaces, in declaration order.
type ClassSignature struct {
	TypeParameters      []*TypeParameter
	SuperclassType      *ClassRefTypeSignature
	SuperinterfaceTypes []*ClassRefTypeSignature
}

// ClassSignature implements DeclaringClass, so a parsed class signature can
// be passed directly to ParseMethod via WithDeclaringClass.
func (c *ClassSignature) ClassSignature() *ClassSignature { return c }

// ParseClass parses a class type signature, such as
// "<E:Ljava/lang/Object;>Ljava/util/AbstractList<TE;>;Ljava/util/List<TE;>;".
//
// Type variables occurring in the signature are back-linked to the returned
// ClassSignature before it escapes to the caller.
func ParseClass(input string) (*ClassSignature, error) {
	p := newParser(input)
	typeParams, err := parseTypeParameters(p)
	if err != nil {
		return nil, err
	}
	superclass, err := parseClassRef(p)
	if err != nil {
		return nil, err
	}
	if superclass == nil {
		return nil, p.errorf("missing superclass signature")
	}
	interfaces := []*ClassRefTypeSignature{}
	for p.hasMore() {
		iface, err := parseClassRef(p)
		if err != nil {
			return nil, err
		}
		if iface == nil {
			return nil, p.errorf("extra characters at end of type descriptor")
		}
		interfaces = append(interfaces, iface)
	}

	class := &ClassSignature{
		TypeParameters:      typeParams,
		SuperclassType:      superclass,
		SuperinterfaceTypes: interfaces,
	}
	for _, tv := range p.takeTypeVariables() {
		tv.containingClass = class
	}
	return class, nil
}

// String renders the signature in Java-like form, e.g.
// "<E> extends java.util.AbstractList<E> implements java.util.List<E>".
func (c *ClassSignature) String() string {
	var sb strings.Builder
	if len(c.TypeParameters) > 0 {
		sb.WriteByte('<')
		for i, param := range c.TypeParameters {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(param.String())
		}
		sb.WriteByte('>')
		sb.WriteByte(' ')
	}
	sb.WriteString("extends ")
	sb.WriteString(c.SuperclassType.String())
	if len(c.SuperinterfaceTypes) > 0 {
		sb.WriteString(" implements ")
		for i, iface := range c.SuperinterfaceTypes {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(iface.String())
		}
	}
	return sb.String()
}

// Descriptor re-renders the signature in JVM signature syntax.
func (c *ClassSignature) Descriptor() string {
	var sb strings.Builder
	if len(c.TypeParameters) > 0 {
		sb.WriteByte('<')
		for _, param := range c.TypeParameters {
			sb.WriteString(param.Descriptor())
		}
		sb.WriteByte('>')
	}
	sb.WriteString(c.SuperclassType.Descriptor())
	for _, iface := range c.SuperinterfaceTypes {
		sb.WriteString(iface.Descriptor())
	}
	return sb.String()
}

// Equal reports structural equality over the ordered field values.
func (c *ClassSignature) Equal(other *ClassSignature) bool {
	if other == nil {
		return false
	}
	if len(c.TypeParameters) != len(other.TypeParameters) ||
		len(c.SuperinterfaceTypes) != len(other.SuperinterfaceTypes) {
		return false
	}
	for i, param := range c.TypeParameters {
		if !param.Equal(other.TypeParameters[i]) {
			return false
		}
	}
	if !c.SuperclassType.Equal(other.SuperclassType) {
		return false
	}
	for i, iface := range c.SuperinterfaceTypes {
		if !iface.Equal(other.SuperinterfaceTypes[i]) {
			return false
		}
	}
	return true
}

// Hash returns a structural hash consistent with Equal.
func (c *ClassSignature) Hash() uint32 { return hashDescriptor(c) }

// CollectClassNames adds every class name referenced anywhere in the
// signature to names.
func (c *ClassSignature) CollectClassNames(names map[string]struct{}) {
	for _, param := range c.TypeParameters {
		if param != nil {
			param.CollectClassNames(names)
		}
	}
	if c.SuperclassType != nil {
		c.SuperclassType.CollectClassNames(names)
	}
	for _, iface := range c.SuperinterfaceTypes {
		if iface != nil {
			iface.CollectClassNames(names)
		}
	}
}
