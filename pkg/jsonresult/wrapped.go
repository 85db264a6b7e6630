package jsonresult

import (
	"encoding/json"

	"github.com/zeebo/errs"

	"github.com/Philanthropists/json-result/pkg/result"
)

// Wrapped carries a native result.Result through an untagged JSON
// representation. Every operation of the wrapped value is reachable
// through the wrapper, including replacing the value outright, so
// callers never need to unwrap it. The zero value wraps a zero Result.
type Wrapped[T, E any] struct {
	res result.Result[T, E]
}

// Wrap builds a wrapper around an existing two-outcome value.
func Wrap[T, E any](r result.Result[T, E]) *Wrapped[T, E] {
	return &Wrapped[T, E]{res: r}
}

// Result returns the wrapped value as it is right now.
func (w *Wrapped[T, E]) Result() result.Result[T, E] {
	return w.res
}

// SetResult replaces the wrapped value. The replacement is visible to
// every subsequent read.
func (w *Wrapped[T, E]) SetResult(r result.Result[T, E]) {
	w.res = r
}

func (w *Wrapped[T, E]) IsOk() bool {
	return w.res.IsOk()
}

func (w *Wrapped[T, E]) IsErr() bool {
	return w.res.IsErr()
}

func (w *Wrapped[T, E]) Value() T {
	return w.res.Value()
}

func (w *Wrapped[T, E]) ErrValue() E {
	return w.res.ErrValue()
}

func (w *Wrapped[T, E]) Ok() (T, bool) {
	return w.res.Ok()
}

func (w *Wrapped[T, E]) Err() (E, bool) {
	return w.res.Err()
}

// MarshalJSON writes the populated payload only.
func (w *Wrapped[T, E]) MarshalJSON() ([]byte, error) {
	return Marshal(w.res)
}

// UnmarshalJSON parses data once; malformed JSON fails here with the
// parser's error before either shape is attempted. Both shape attempts
// then consume the same parsed form under the success-first policy.
func (w *Wrapped[T, E]) UnmarshalJSON(data []byte) error {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errs.Wrap(err)
	}

	res, err := decodeEither[T, E](raw)
	if err != nil {
		return err
	}

	w.res = res
	return nil
}

// ToValue converts the populated payload into the generic structured
// form (maps, slices and scalars).
func (w *Wrapped[T, E]) ToValue() (any, error) {
	return FromResult(w.res).ToValue()
}
