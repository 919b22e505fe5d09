package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/gas-delivery/internal/auth"
)

func TestPlaintextVerifier(t *testing.T) {
	verifier := auth.NewPlaintextVerifier()

	stored, err := verifier.Hash("p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", stored)

	assert.True(t, verifier.Verify("p1", "p1"))
	assert.False(t, verifier.Verify("p1", "P1"))
	assert.False(t, verifier.Verify("p1", "p1 "))
	assert.False(t, verifier.Verify("p1", ""))
}

func TestBcryptVerifier(t *testing.T) {
	verifier := auth.NewBcryptVerifier(4)

	stored, err := verifier.Hash("p1")
	require.NoError(t, err)
	assert.NotEqual(t, "p1", stored)

	assert.True(t, verifier.Verify(stored, "p1"))
	assert.False(t, verifier.Verify(stored, "wrong"))
}
