// Package result provides a generic two-outcome value: a success payload
// of type T or an error payload of type E, never both.
package result

// Result holds exactly one of a success value or an error value. The zero
// Result is the success side holding T's zero value.
type Result[T, E any] struct {
	val    T
	errVal E
	isErr  bool
}

// Ok builds a Result populated on the success side.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{val: v}
}

// Err builds a Result populated on the error side.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{errVal: e, isErr: true}
}

// Of adapts an idiomatic Go (value, error) pair. A nil error selects the
// success side.
func Of[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

func (r Result[T, E]) IsOk() bool {
	return !r.isErr
}

func (r Result[T, E]) IsErr() bool {
	return r.isErr
}

// Value returns the success payload, or T's zero value when the error
// side is populated.
func (r Result[T, E]) Value() T {
	return r.val
}

// ErrValue returns the error payload, or E's zero value when the
// success side is populated. It is deliberately not named Error: that
// would make any instantiation with a string error payload satisfy the
// error interface and print as one.
func (r Result[T, E]) ErrValue() E {
	return r.errVal
}

// Ok returns the success payload and whether the success side is populated.
func (r Result[T, E]) Ok() (T, bool) {
	return r.val, !r.isErr
}

// Err returns the error payload and whether the error side is populated.
func (r Result[T, E]) Err() (E, bool) {
	return r.errVal, r.isErr
}
