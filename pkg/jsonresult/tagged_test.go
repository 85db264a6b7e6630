package jsonresult

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Philanthropists/json-result/pkg/result"
)

func Test_SuccessVariantAccessors(t *testing.T) {
	r := Success[goodT, badE](goodT{X: 123})

	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())

	v, ok := r.Success()
	assert.True(t, ok)
	assert.Equal(t, goodT{X: 123}, v)

	_, ok = r.Failure()
	assert.False(t, ok)
}

func Test_FailureVariantAccessors(t *testing.T) {
	r := Failure[goodT, badE](badE{Msg: "fail"})

	assert.False(t, r.IsSuccess())
	assert.True(t, r.IsFailure())

	e, ok := r.Failure()
	assert.True(t, ok)
	assert.Equal(t, badE{Msg: "fail"}, e)

	_, ok = r.Success()
	assert.False(t, ok)
}

func Test_FromResultMapsBothSides(t *testing.T) {
	ok := FromResult(result.Ok[goodT, badE](goodT{X: 1}))
	assert.True(t, ok.IsSuccess())

	failed := FromResult(result.Err[goodT, badE](badE{Msg: "down"}))
	assert.True(t, failed.IsFailure())

	assert.Equal(t, result.Err[goodT, badE](badE{Msg: "down"}), failed.ToResult())
}

func Test_TaggedMarshalWritesPayloadOnly(t *testing.T) {
	raw, err := json.Marshal(Success[goodT, badE](goodT{X: 123}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":123}`, string(raw))

	raw, err = json.Marshal(Failure[goodT, badE](badE{Msg: "boom"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"msg":"boom"}`, string(raw))
}

func Test_TaggedUnmarshalPicksVariant(t *testing.T) {
	var r JSONResult[goodT, badE]

	require.NoError(t, json.Unmarshal([]byte(`{"x":42}`), &r))
	v, ok := r.Success()
	assert.True(t, ok)
	assert.Equal(t, uint32(42), v.X)

	require.NoError(t, json.Unmarshal([]byte(`{"msg":"fail"}`), &r))
	e, ok := r.Failure()
	assert.True(t, ok)
	assert.Equal(t, "fail", e.Msg)
}

func Test_TaggedUnmarshalPropagatesDiagnostic(t *testing.T) {
	var r JSONResult[goodT, badE]
	err := json.Unmarshal([]byte(`{"something":9999}`), &r)

	require.Error(t, err)
	assert.True(t, Unmatched.Has(err))
	assert.Contains(t, err.Error(), "goodT")
	assert.Contains(t, err.Error(), "badE")
}

func Test_ToValueProducesGenericTree(t *testing.T) {
	v, err := Success[goodT, badE](goodT{X: 123}).ToValue()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": float64(123)}, v)

	v, err = Failure[goodT, badE](badE{Msg: "oops"}).ToValue()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"msg": "oops"}, v)
}

func Test_FromValueRoundTrip(t *testing.T) {
	original := Success[goodT, badE](goodT{X: 42})

	v, err := original.ToValue()
	require.NoError(t, err)

	parsed, err := FromValue[goodT, badE](v)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func Test_FromValueDualFailure(t *testing.T) {
	_, err := FromValue[goodT, badE](map[string]any{"something": 9999})

	require.Error(t, err)
	assert.True(t, Unmatched.Has(err))
}

func Test_FromValueScalars(t *testing.T) {
	r, err := FromValue[int, string](123)
	require.NoError(t, err)
	assert.True(t, r.IsSuccess())

	r, err = FromValue[int, string]("err")
	require.NoError(t, err)
	e, ok := r.Failure()
	assert.True(t, ok)
	assert.Equal(t, "err", e)
}
