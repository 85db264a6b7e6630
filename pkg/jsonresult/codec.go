// Package jsonresult encodes and decodes two-outcome values through an
// untagged JSON representation. The wire form of a value is the JSON of
// whichever payload is populated, with no wrapper object and no
// discriminant key; decoding recovers the outcome by attempting the
// success shape first and the error shape second.
package jsonresult

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/zeebo/errs"

	"github.com/Philanthropists/json-result/pkg/result"
)

// Unmatched classifies decode failures where the payload was valid JSON
// but satisfied neither candidate shape. Syntax errors are not in this
// class; they carry the json package's own error.
var Unmatched = errs.Class("unmatched payload")

// Marshal encodes whichever side of r is populated. The output is
// indistinguishable from a freestanding encoded T or E.
func Marshal[T, E any](r result.Result[T, E]) ([]byte, error) {
	if e, isErr := r.Err(); isErr {
		raw, err := json.Marshal(e)
		return raw, errs.Wrap(err)
	}
	raw, err := json.Marshal(r.Value())
	return raw, errs.Wrap(err)
}

// Unmarshal decodes data as a success payload T, falling back to the
// error payload E. Malformed JSON fails before either shape is tried.
// When both shapes reject the payload the returned error is in the
// Unmatched class and names both candidate types with their respective
// failure details.
func Unmarshal[T, E any](data []byte) (result.Result[T, E], error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return result.Result[T, E]{}, errs.Wrap(err)
	}
	return decodeEither[T, E](raw)
}

// attempt is one candidate shape in a priority-ordered decode: a display
// name for diagnostics and a decode function targeting that shape.
type attempt struct {
	name   string
	decode func(raw json.RawMessage) error
}

// firstMatch runs attempts in order against the same parsed raw value.
// The first attempt to succeed wins, regardless of whether a later one
// would also have matched. When every attempt fails the failures are
// aggregated into a single Unmatched diagnostic, in attempt order.
func firstMatch(raw json.RawMessage, attempts ...attempt) error {
	details := make([]string, 0, len(attempts))
	for _, a := range attempts {
		err := a.decode(raw)
		if err == nil {
			return nil
		}
		details = append(details, "failed to parse as "+a.name+": "+err.Error())
	}
	return Unmatched.New("%s", strings.Join(details, "\n"))
}

// decodeEither applies the two-shape policy: T first, E second.
func decodeEither[T, E any](raw json.RawMessage) (result.Result[T, E], error) {
	var (
		okVal  T
		errVal E
		isErr  bool
	)

	err := firstMatch(raw,
		attempt{
			name: typeName[T](),
			decode: func(raw json.RawMessage) error {
				return decodeShape(raw, &okVal)
			},
		},
		attempt{
			name: typeName[E](),
			decode: func(raw json.RawMessage) error {
				if err := decodeShape(raw, &errVal); err != nil {
					return err
				}
				isErr = true
				return nil
			},
		},
	)
	if err != nil {
		return result.Result[T, E]{}, err
	}

	if isErr {
		return result.Err[T, E](errVal), nil
	}
	return result.Ok[T, E](okVal), nil
}

// typeName is the identity used for a shape in diagnostics.
func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
