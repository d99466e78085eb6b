package option

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSome(t *testing.T) {
	assert := assert.New(t)

	o := Some(42)
	assert.True(o.IsSome())
	assert.False(o.IsNone())
	assert.Equal(42, o.Get())

	v, ok := o.GetOK()
	assert.True(ok)
	assert.Equal(42, v)
	assert.Equal(42, o.OrElse(7))
	assert.Equal("Some(42)", o.String())
}

func TestSomeZeroValue(t *testing.T) {
	// a present zero value is still present
	o := Some("")
	assert.True(t, o.IsSome())
	assert.Equal(t, "", o.Get())
}

func TestNone(t *testing.T) {
	assert := assert.New(t)

	o := None[int]()
	assert.False(o.IsSome())
	assert.True(o.IsNone())

	v, ok := o.GetOK()
	assert.False(ok)
	assert.Equal(0, v)
	assert.Equal(7, o.OrElse(7))
	assert.Equal("None", o.String())

	var zero Option[string]
	assert.True(zero.IsNone())
}

func TestFrom(t *testing.T) {
	assert.True(t, From(1, true).IsSome())
	assert.True(t, From(1, false).IsNone())
}

func TestGetOnNonePanics(t *testing.T) {
	assert.PanicsWithError(t, ErrEmptyValueAccess.Error(), func() {
		None[int]().Get()
	})

	var recovered any
	func() {
		defer func() {
			recovered = recover()
		}()
		_ = None[string]().Get()
	}()

	err, ok := recovered.(error)
	require.True(t, ok, "panic value should be an error")
	assert.True(t, errors.Is(err, ErrEmptyValueAccess))

	// the panic value carries the stack of the offending call
	_, hasStack := err.(interface{ StackTrace() errors.StackTrace })
	assert.True(t, hasStack)
}
