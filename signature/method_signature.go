package signature

import "strings"

// DeclaringClass supplies the class-level signature of the class a method
// belongs to. It is consumed only as a back-link target; *ClassSignature
// itself implements it.
type DeclaringClass interface {
	ClassSignature() *ClassSignature
}

// Option configures a method signature parse.
type Option func(*config)

type config struct {
	declaringClass DeclaringClass
}

// WithDeclaringClass makes ParseMethod back-link every type variable in the
// parsed signature to the given class, in addition to the method itself.
func WithDeclaringClass(class DeclaringClass) Option {
	return func(c *config) {
		c.declaringClass = class
	}
}

// MethodSignature is the parsed generic type signature of a method: its type
// parameters, parameter types, result type and declared thrown types, each in
// declaration order.
type MethodSignature struct {
	TypeParameters []*TypeParameter
	ParameterTypes []TypeSignature
	ResultType     TypeSignature
	// ThrowsTypes holds the '^'-prefixed throws entries; each element is a
	// *ClassRefTypeSignature or a *TypeVariableSignature.
	ThrowsTypes []TypeSignature
}

// ParseMethod parses a method type signature or plain method descriptor,
// such as "<T:Ljava/lang/Object;>(TT;I)V^Ljava/lang/Exception;".
//
// After a successful parse every type variable in the tree is back-linked to
// the returned signature (and to the declaring class, when supplied via
// WithDeclaringClass) before the tree escapes to the caller.
func ParseMethod(input string, opts ...Option) (*MethodSignature, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	p := newParser(input)
	typeParams, err := parseTypeParameters(p)
	if err != nil {
		return nil, err
	}
	if err := p.expect('('); err != nil {
		return nil, err
	}
	paramTypes := []TypeSignature{}
	for p.peek() != ')' {
		if !p.hasMore() {
			return nil, p.errorf("ran out of input while parsing method signature")
		}
		paramType, err := parseType(p)
		if err != nil {
			return nil, err
		}
		if paramType == nil {
			return nil, p.errorf("missing method parameter type signature")
		}
		paramTypes = append(paramTypes, paramType)
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	resultType, err := parseType(p)
	if err != nil {
		return nil, err
	}
	if resultType == nil {
		return nil, p.errorf("missing method result type signature")
	}
	throwsTypes := []TypeSignature{}
	for p.peek() == '^' {
		p.next()
		classRef, err := parseClassRef(p)
		if err != nil {
			return nil, err
		}
		if classRef != nil {
			throwsTypes = append(throwsTypes, classRef)
			continue
		}
		typeVar, err := parseTypeVariable(p)
		if err != nil {
			return nil, err
		}
		if typeVar == nil {
			return nil, p.errorf("missing type variable signature")
		}
		throwsTypes = append(throwsTypes, typeVar)
	}
	if p.hasMore() {
		return nil, p.errorf("extra characters at end of type descriptor")
	}

	method := &MethodSignature{
		TypeParameters: typeParams,
		ParameterTypes: paramTypes,
		ResultType:     resultType,
		ThrowsTypes:    throwsTypes,
	}

	// Type variables are constructed before the enclosing signature exists,
	// so their scope references are patched in as a second pass, using the
	// occurrences the parser accumulated.
	var class *ClassSignature
	if cfg.declaringClass != nil {
		class = cfg.declaringClass.ClassSignature()
	}
	for _, tv := range p.takeTypeVariables() {
		tv.containingMethod = method
		if class != nil {
			tv.containingClass = class
		}
	}
	return method, nil
}

// String renders the signature in Java-like form, e.g.
// "<T extends java.lang.Object> void (java.lang.String, int) throws java.lang.Exception".
func (m *MethodSignature) String() string {
	var sb strings.Builder
	if len(m.TypeParameters) > 0 {
		sb.WriteByte('<')
		for i, param := range m.TypeParameters {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(param.String())
		}
		sb.WriteByte('>')
		sb.WriteByte(' ')
	}
	sb.WriteString(m.ResultType.String())
	sb.WriteString(" (")
	for i, param := range m.ParameterTypes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(param.String())
	}
	sb.WriteByte(')')
	if len(m.ThrowsTypes) > 0 {
		sb.WriteString(" throws ")
		for i, throws := range m.ThrowsTypes {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(throws.String())
		}
	}
	return sb.String()
}

// Descriptor re-renders the signature in JVM signature syntax. Parsing the
// result yields an equal signature.
func (m *MethodSignature) Descriptor() string {
	var sb strings.Builder
	if len(m.TypeParameters) > 0 {
		sb.WriteByte('<')
		for _, param := range m.TypeParameters {
			sb.WriteString(param.Descriptor())
		}
		sb.WriteByte('>')
	}
	sb.WriteByte('(')
	for _, param := range m.ParameterTypes {
		sb.WriteString(param.Descriptor())
	}
	sb.WriteByte(')')
	sb.WriteString(m.ResultType.Descriptor())
	for _, throws := range m.ThrowsTypes {
		sb.WriteByte('^')
		sb.WriteString(throws.Descriptor())
	}
	return sb.String()
}

// Equal reports structural equality over the ordered field values. Back-links
// inside type variables are not compared.
func (m *MethodSignature) Equal(other *MethodSignature) bool {
	if other == nil {
		return false
	}
	if len(m.TypeParameters) != len(other.TypeParameters) ||
		len(m.ParameterTypes) != len(other.ParameterTypes) ||
		len(m.ThrowsTypes) != len(other.ThrowsTypes) {
		return false
	}
	for i, param := range m.TypeParameters {
		if !param.Equal(other.TypeParameters[i]) {
			return false
		}
	}
	for i, param := range m.ParameterTypes {
		if !param.Equal(other.ParameterTypes[i]) {
			return false
		}
	}
	if !m.ResultType.Equal(other.ResultType) {
		return false
	}
	for i, throws := range m.ThrowsTypes {
		if !throws.Equal(other.ThrowsTypes[i]) {
			return false
		}
	}
	return true
}

// Hash returns a structural hash consistent with Equal.
func (m *MethodSignature) Hash() uint32 { return hashDescriptor(m) }

// CollectClassNames adds every class name referenced anywhere in the
// signature to names.
func (m *MethodSignature) CollectClassNames(names map[string]struct{}) {
	for _, param := range m.TypeParameters {
		if param != nil {
			param.CollectClassNames(names)
		}
	}
	for _, param := range m.ParameterTypes {
		if param != nil {
			param.CollectClassNames(names)
		}
	}
	if m.ResultType != nil {
		m.ResultType.CollectClassNames(names)
	}
	for _, throws := range m.ThrowsTypes {
		if throws != nil {
			throws.CollectClassNames(names)
		}
	}
}
