package format

import (
	"fmt"
	"io"
)

// TextEncoder writes the canonical Java-like rendering of a signature,
// followed by a newline.
type TextEncoder struct {
	w     io.Writer
	value any
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(value any) error {
	e.value = value
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	s, ok := e.value.(fmt.Stringer)
	if !ok {
		return nil, fmt.Errorf("cannot encode %T as text", e.value)
	}
	return []byte(s.String() + "\n"), nil
}
