package datacontext

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBinder(t *testing.T) {
	b, err := NewBinder(reflect.TypeOf(&appContext{}), "Articles", "Tags", "Drafts")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Articles", "Tags", "Drafts"}, b.Collections())
}

func TestNewBinderUnknownCollection(t *testing.T) {
	// A name missing from the context's shape is a startup configuration
	// error, not a per-request miss.
	_, err := NewBinder(reflect.TypeOf(&appContext{}), "Articles", "Bogus")
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestNewBinderInvalidContext(t *testing.T) {
	_, err := NewBinder(nil)
	assert.ErrorIs(t, err, ErrInvalidContext)

	_, err = NewBinder(reflect.TypeOf(0), "Articles")
	assert.Error(t, err)
}

func TestBinderCollection(t *testing.T) {
	b, err := NewBinder(reflect.TypeOf(&appContext{}), "Articles", "Drafts")
	require.NoError(t, err)

	ctx := testContext()

	got, ok := b.Collection(ctx, "Articles")
	require.True(t, ok)
	assert.Len(t, got, 2)

	// Bound method properties resolve too.
	got, ok = b.Collection(ctx, "Drafts")
	require.True(t, ok)
	assert.Len(t, got, 1)

	// Unbound names report "none" even when the context exposes them.
	_, ok = b.Collection(ctx, "Tags")
	assert.False(t, ok)

	_, ok = b.Collection(nil, "Articles")
	assert.False(t, ok)
}

// A collection bound through the pointer method set must still resolve when
// the context is handed over by value.
func TestBinderMethodCollectionOnValueContext(t *testing.T) {
	b, err := NewBinder(reflect.TypeOf(appContext{}), "Drafts")
	require.NoError(t, err)

	got, ok := b.Collection(*testContext(), "Drafts")
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, article{ID: 99, Title: "Draft"}, got[0])
}

func TestBinderMember(t *testing.T) {
	b, err := NewBinder(reflect.TypeOf(&appContext{}), "Articles")
	require.NoError(t, err)

	got, ok := b.Member(testContext(), "Articles", "41")
	require.True(t, ok)
	assert.Equal(t, article{ID: 41, Title: "First"}, got)

	_, ok = b.Member(testContext(), "Articles", "404")
	assert.False(t, ok)
}
