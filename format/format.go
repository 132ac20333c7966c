// Package format renders parsed signature trees for output.
package format

import "encoding"

// Encoder renders a parsed signature value to an output stream. Supported
// values are *signature.MethodSignature, *signature.ClassSignature and any
// signature.TypeSignature.
type Encoder interface {
	encoding.TextMarshaler
	Encode(value any) error
}
