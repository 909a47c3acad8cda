package result_test

import (
	"registry/pkg/result"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	r := result.OK("hello")

	require.True(t, r.IsSuccess())
	data, ok := r.Data()
	require.True(t, ok)
	require.Equal(t, "hello", data)
	require.Empty(t, r.Errors())
}

func TestEmpty(t *testing.T) {
	r := result.Empty[int]()

	require.True(t, r.IsSuccess())
	_, ok := r.Data()
	require.False(t, ok)
	require.Empty(t, r.Errors())
}

func TestFailUsesGenericCode(t *testing.T) {
	r := result.Fail[string]("something broke")

	require.False(t, r.IsSuccess())
	_, ok := r.Data()
	require.False(t, ok)
	require.Equal(t, []result.ErrorRecord{{Code: result.CodeGeneric, Message: "something broke"}}, r.Errors())
}

func TestFailManyKeepsOrder(t *testing.T) {
	recs := []result.ErrorRecord{
		{Code: result.CodeValidation, Message: "is required", Field: "email"},
		{Code: result.CodeValidation, Message: "is required", Field: "name"},
	}
	r := result.FailMany[int](recs)

	require.Equal(t, recs, r.Errors())
	recs[0].Field = "mutated"
	require.Equal(t, "email", r.Errors()[0].Field, "result must not alias caller slice")

	first, ok := r.FirstError()
	require.True(t, ok)
	require.Equal(t, "email", first.Field)
}

func TestFailManyNeverEmpty(t *testing.T) {
	r := result.FailMany[int](nil)

	require.False(t, r.IsSuccess())
	require.Len(t, r.Errors(), 1)
}

func TestRecast(t *testing.T) {
	src := result.FailWith[int](result.ErrorRecord{Code: result.CodeNotFound, Message: "missing"})
	dst := result.Recast[string](src)

	require.False(t, dst.IsSuccess())
	require.Equal(t, src.Errors(), dst.Errors())

	bad := result.Recast[string](result.OK(1))
	require.False(t, bad.IsSuccess())
}

func TestEnvelope(t *testing.T) {
	env := result.OK(7).Envelope()
	require.True(t, env.Success)
	require.NotNil(t, env.Data)
	require.Equal(t, 7, *env.Data)
	require.Nil(t, env.Errors)

	fail := result.Fail[int]("x").Envelope()
	require.False(t, fail.Success)
	require.Nil(t, fail.Data)
	require.Len(t, fail.Errors, 1)
}

func TestErrorRecordString(t *testing.T) {
	require.Equal(t, "[VALIDATION_ERROR] email: bad", result.ErrorRecord{
		Code: result.CodeValidation, Message: "bad", Field: "email",
	}.String())
	require.Equal(t, "[GENERIC_ERROR] bad", result.ErrorRecord{Code: result.CodeGeneric, Message: "bad"}.String())
}
