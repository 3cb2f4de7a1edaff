package transaction

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/catapult-client/packages/model"
)

func requireContractViolation(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered, "expected a panic")
		err, isError := recovered.(error)
		require.True(t, isError, "expected the panic value to be an error")
		require.True(t, errors.Is(err, ErrContractViolation))
	}()

	f()
}

func TestNamespaceRegistration_VariantExclusivity(t *testing.T) {
	root, err := NewRootNamespaceRegistration("foo", 1000)
	require.NoError(t, err)
	assert.Equal(t, model.RootNamespace, root.RegistrationType())
	assert.Equal(t, model.BlockDuration(1000), root.Duration())
	requireContractViolation(t, func() { root.ParentID() })

	child, err := NewChildNamespaceRegistration("bar", root.NamespaceID())
	require.NoError(t, err)
	assert.Equal(t, model.ChildNamespace, child.RegistrationType())
	assert.Equal(t, root.NamespaceID(), child.ParentID())
	requireContractViolation(t, func() { child.Duration() })
}

func TestNamespaceRegistration_Variant(t *testing.T) {
	root, err := NewRootNamespaceRegistration("foo", 10)
	require.NoError(t, err)
	child, err := NewChildNamespaceRegistration("bar", root.NamespaceID())
	require.NoError(t, err)

	switch variant := root.Variant().(type) {
	case RootNamespace:
		assert.Equal(t, model.BlockDuration(10), variant.Duration)
	default:
		t.Fatalf("unexpected variant %T", variant)
	}

	switch variant := child.Variant().(type) {
	case ChildNamespace:
		assert.Equal(t, root.NamespaceID(), variant.ParentID)
	default:
		t.Fatalf("unexpected variant %T", variant)
	}
}

func TestNamespaceRegistration_Layout(t *testing.T) {
	child, err := NewChildNamespaceRegistration("bar", 0x8000000000000001)
	require.NoError(t, err)

	bytes := child.Bytes()
	require.Len(t, bytes, 1+8+8+1+3)
	assert.Equal(t, byte(model.ChildNamespace), bytes[0])
	assert.Equal(t, []byte{0x01, 0, 0, 0, 0, 0, 0, 0x80}, bytes[1:9])
	assert.Equal(t, model.GenerateNamespaceID("bar", 0x8000000000000001).Bytes(), bytes[9:17])
	assert.Equal(t, []byte{0x03, 'b', 'a', 'r'}, bytes[17:])

	bytes[0] = 0x02
	_, _, err = NamespaceRegistrationFromBytes(bytes)
	require.ErrorIs(t, err, ErrUnknownDiscriminant)
}

func TestNamespaceRegistration_NameLength(t *testing.T) {
	_, err := NewRootNamespaceRegistration(strings.Repeat("a", MaxNameLength+1), 1)
	require.ErrorIs(t, err, ErrContractViolation)

	registration, err := NewRootNamespaceRegistration(strings.Repeat("a", MaxNameLength), 1)
	require.NoError(t, err)
	assert.Len(t, registration.Bytes(), registration.Size())
}
