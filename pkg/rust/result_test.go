package rust

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOkUnwrap(t *testing.T) {
	r := Ok[int, error](12)
	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())
	assert.Equal(t, 12, r.Unwrap())
}

func TestErrUnwrapPanicsWithPayloadText(t *testing.T) {
	err := recoverPanicError(t, func() {
		Err[int, error](errors.New("boom")).Unwrap()
	})
	assert.True(t, UnwrapOnErr.Has(err))
	assert.Contains(t, err.Error(), "boom", "the error payload text must survive into the panic")
}

func TestErrUnwrapWithNonErrorPayload(t *testing.T) {
	err := recoverPanicError(t, func() {
		Err[int, string]("disk full").Unwrap()
	})
	assert.True(t, UnwrapOnErr.Has(err))
	assert.Contains(t, err.Error(), "disk full")
}

func TestResultUnwrapOr(t *testing.T) {
	assert.Equal(t, 3, Ok[int, error](3).UnwrapOr(7))
	assert.Equal(t, 7, Err[int, error](errors.New("nope")).UnwrapOr(7))
}

func TestResultUnwrapOrGetLaziness(t *testing.T) {
	calls := 0
	supplier := func() int {
		calls++
		return 7
	}

	assert.Equal(t, 3, Ok[int, error](3).UnwrapOrGet(supplier))
	assert.Equal(t, 0, calls)

	assert.Equal(t, 7, Err[int, error](errors.New("nope")).UnwrapOrGet(supplier))
	assert.Equal(t, 1, calls)
}

func TestResultExpect(t *testing.T) {
	assert.Equal(t, 3, Ok[int, error](3).Expect("must be ok"))

	failed := Err[int, string]("root cause")

	// the payload stays reachable before unwrapping
	assert.Equal(t, "root cause", failed.Fail().Unwrap())

	err := recoverPanicError(t, func() {
		failed.Expect("config lookup failed")
	})
	assert.EqualError(t, err, "config lookup failed", "Expect carries exactly the caller message")
}

func TestGetAndFailProjections(t *testing.T) {
	ok := Ok[int, string](9)
	assert.Equal(t, 9, ok.Get().Unwrap())
	assert.True(t, ok.Fail().IsNone())

	failed := Err[int, string]("gone")
	assert.True(t, failed.Get().IsNone(), "Get discards the error payload")
	assert.Equal(t, "gone", failed.Fail().Unwrap())
}

func TestVoidConstructors(t *testing.T) {
	ok := OkVoid[error]()
	require.True(t, ok.IsOk())
	assert.Equal(t, Unit{}, ok.Unwrap())

	failed := ErrVoid[int]()
	require.True(t, failed.IsErr())
	assert.Equal(t, Unit{}, failed.Fail().Unwrap())
}

func TestTryFrom(t *testing.T) {
	assert.Equal(t, 5, TryFrom(5, nil).Unwrap())

	cause := errors.New("not found")
	r := TryFrom(0, cause)
	require.True(t, r.IsErr())
	assert.Equal(t, cause, r.Fail().Unwrap())
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "Ok(5)", Ok[int, error](5).String())
	assert.Equal(t, "Err(boom)", Err[int, error](errors.New("boom")).String())
}

func TestAsyncAliases(t *testing.T) {
	ch := make(chan Result[int, error], 1)
	ch <- Ok[int, error](7)
	close(ch)

	var pending AsyncResult[int, error] = ch
	assert.Equal(t, 7, (<-pending).Unwrap())

	och := make(chan Option[string], 1)
	och <- Some("done")
	close(och)

	var pendingOpt AsyncOption[string] = och
	assert.Equal(t, "done", (<-pendingOpt).Unwrap())
}
