// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Ints.

package bigint

import "fmt"

// MarshalText implements the encoding.TextMarshaler interface.
func (x *Int) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.Append(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. It accepts
// the format accepted by Parse.
func (z *Int) UnmarshalText(text []byte) error {
	if _, err := z.Parse(string(text)); err != nil {
		return fmt.Errorf("bigint: cannot unmarshal %q into a *bigint.Int (%w)", text, err)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface. x is encoded as a JSON
// number.
func (x *Int) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("null"), nil
	}
	return x.Append(nil), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. A JSON null leaves
// z unchanged.
func (z *Int) UnmarshalJSON(text []byte) error {
	// Ignore null, like in the main JSON package.
	if string(text) == "null" {
		return nil
	}
	return z.UnmarshalText(text)
}
