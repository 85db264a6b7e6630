package jsonresult

import (
	"encoding/json"

	"github.com/zeebo/errs"

	"github.com/Philanthropists/json-result/pkg/result"
)

// JSONResult is the explicit two-variant view of a decoded payload, for
// callers who want to branch on the outcome by name. The zero value is
// the Success variant holding T's zero value.
type JSONResult[T, E any] struct {
	res result.Result[T, E]
}

// Success builds the success variant.
func Success[T, E any](v T) JSONResult[T, E] {
	return JSONResult[T, E]{res: result.Ok[T, E](v)}
}

// Failure builds the failure variant.
func Failure[T, E any](e E) JSONResult[T, E] {
	return JSONResult[T, E]{res: result.Err[T, E](e)}
}

// FromResult maps a native two-outcome value onto its variant. The
// mapping is total: the success side becomes Success, the error side
// becomes Failure.
func FromResult[T, E any](r result.Result[T, E]) JSONResult[T, E] {
	return JSONResult[T, E]{res: r}
}

// ToResult is the inverse of FromResult.
func (r JSONResult[T, E]) ToResult() result.Result[T, E] {
	return r.res
}

func (r JSONResult[T, E]) IsSuccess() bool {
	return r.res.IsOk()
}

func (r JSONResult[T, E]) IsFailure() bool {
	return r.res.IsErr()
}

// Success returns the success payload and whether this is the Success
// variant.
func (r JSONResult[T, E]) Success() (T, bool) {
	return r.res.Ok()
}

// Failure returns the error payload and whether this is the Failure
// variant.
func (r JSONResult[T, E]) Failure() (E, bool) {
	return r.res.Err()
}

// MarshalJSON writes the populated payload only; the variant is not
// recorded on the wire.
func (r JSONResult[T, E]) MarshalJSON() ([]byte, error) {
	return Marshal(r.res)
}

// UnmarshalJSON decodes with the success-shape-first policy. A dual
// miss propagates the Unmatched diagnostic.
func (r *JSONResult[T, E]) UnmarshalJSON(data []byte) error {
	res, err := Unmarshal[T, E](data)
	if err != nil {
		return err
	}
	r.res = res
	return nil
}

// ToValue converts the populated payload into the generic structured
// form (maps, slices and scalars).
func (r JSONResult[T, E]) ToValue() (any, error) {
	raw, err := Marshal(r.res)
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, errs.Wrap(err)
	}

	return v, nil
}

// FromValue decodes a generic structured value into a variant, applying
// the same two-shape policy as UnmarshalJSON.
func FromValue[T, E any](v any) (JSONResult[T, E], error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return JSONResult[T, E]{}, errs.Wrap(err)
	}

	res, err := decodeEither[T, E](raw)
	if err != nil {
		return JSONResult[T, E]{}, err
	}

	return JSONResult[T, E]{res: res}, nil
}
