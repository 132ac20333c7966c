package format

import (
	"encoding/json"
	"fmt"
	"io"

	"jsig/signature"
)

// JSONEncoder writes the structured form of a signature as indented JSON.
type JSONEncoder struct {
	w     io.Writer
	value any
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(value any) error {
	e.value = value
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := buildValue(e.value)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

type jsonMethod struct {
	TypeParameters []jsonTypeParameter `json:"typeParameters,omitempty"`
	ParameterTypes []jsonType          `json:"parameterTypes"`
	ResultType     jsonType            `json:"resultType"`
	Throws         []jsonType          `json:"throws,omitempty"`
	Rendered       string              `json:"rendered"`
}

type jsonClass struct {
	TypeParameters  []jsonTypeParameter `json:"typeParameters,omitempty"`
	Superclass      jsonType            `json:"superclass"`
	Superinterfaces []jsonType          `json:"superinterfaces,omitempty"`
	Rendered        string              `json:"rendered"`
}

type jsonTypeParameter struct {
	Name            string     `json:"name"`
	ClassBound      *jsonType  `json:"classBound,omitempty"`
	InterfaceBounds []jsonType `json:"interfaceBounds,omitempty"`
}

type jsonType struct {
	Kind          string        `json:"kind"`
	Name          string        `json:"name,omitempty"`
	ArrayDepth    int           `json:"arrayDepth,omitempty"`
	ElementType   *jsonType     `json:"elementType,omitempty"`
	TypeArguments []jsonTypeArg `json:"typeArguments,omitempty"`
	Suffixes      []jsonSuffix  `json:"suffixes,omitempty"`
}

type jsonTypeArg struct {
	Wildcard string    `json:"wildcard,omitempty"`
	Type     *jsonType `json:"type,omitempty"`
}

type jsonSuffix struct {
	Name          string        `json:"name"`
	TypeArguments []jsonTypeArg `json:"typeArguments,omitempty"`
}

func buildValue(value any) (any, error) {
	switch v := value.(type) {
	case *signature.MethodSignature:
		return buildMethod(v), nil
	case *signature.ClassSignature:
		return buildClass(v), nil
	case signature.TypeSignature:
		return buildType(v), nil
	}
	return nil, fmt.Errorf("cannot encode %T as JSON", value)
}

func buildMethod(m *signature.MethodSignature) jsonMethod {
	data := jsonMethod{
		ParameterTypes: []jsonType{},
		ResultType:     buildType(m.ResultType),
		Rendered:       m.String(),
	}
	for _, param := range m.TypeParameters {
		data.TypeParameters = append(data.TypeParameters, buildTypeParameter(param))
	}
	for _, param := range m.ParameterTypes {
		data.ParameterTypes = append(data.ParameterTypes, buildType(param))
	}
	for _, throws := range m.ThrowsTypes {
		data.Throws = append(data.Throws, buildType(throws))
	}
	return data
}

func buildClass(c *signature.ClassSignature) jsonClass {
	data := jsonClass{
		Superclass: buildType(c.SuperclassType),
		Rendered:   c.String(),
	}
	for _, param := range c.TypeParameters {
		data.TypeParameters = append(data.TypeParameters, buildTypeParameter(param))
	}
	for _, iface := range c.SuperinterfaceTypes {
		data.Superinterfaces = append(data.Superinterfaces, buildType(iface))
	}
	return data
}

func buildTypeParameter(p *signature.TypeParameter) jsonTypeParameter {
	data := jsonTypeParameter{Name: p.Name}
	if p.ClassBound != nil {
		bound := buildType(p.ClassBound)
		data.ClassBound = &bound
	}
	for _, bound := range p.InterfaceBounds {
		data.InterfaceBounds = append(data.InterfaceBounds, buildType(bound))
	}
	return data
}

func buildType(t signature.TypeSignature) jsonType {
	switch v := t.(type) {
	case *signature.BaseTypeSignature:
		return jsonType{Kind: "base", Name: v.Name}
	case *signature.TypeVariableSignature:
		return jsonType{Kind: "typeVariable", Name: v.Name}
	case *signature.ArrayTypeSignature:
		elem := buildType(v.ElementType)
		return jsonType{Kind: "array", ArrayDepth: v.Dims, ElementType: &elem}
	case *signature.ClassRefTypeSignature:
		data := jsonType{Kind: "class", Name: v.ClassName}
		for _, arg := range v.TypeArguments {
			data.TypeArguments = append(data.TypeArguments, buildTypeArg(arg))
		}
		for _, suffix := range v.Suffixes {
			s := jsonSuffix{Name: suffix.Name}
			for _, arg := range suffix.TypeArguments {
				s.TypeArguments = append(s.TypeArguments, buildTypeArg(arg))
			}
			data.Suffixes = append(data.Suffixes, s)
		}
		return data
	}
	return jsonType{}
}

func buildTypeArg(arg signature.TypeArgument) jsonTypeArg {
	data := jsonTypeArg{}
	switch arg.Wildcard {
	case signature.WildcardAny:
		data.Wildcard = "any"
	case signature.WildcardExtends:
		data.Wildcard = "extends"
	case signature.WildcardSuper:
		data.Wildcard = "super"
	}
	if arg.Type != nil {
		t := buildType(arg.Type)
		data.Type = &t
	}
	return data
}
