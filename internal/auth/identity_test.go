package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/gas-delivery/internal/auth"
)

func TestHeaderResolver(t *testing.T) {
	resolver := auth.NewHeaderResolver()

	userID, err := resolver.Resolve(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	_, err = resolver.Resolve(context.Background(), "")
	assert.Error(t, err)
}

func TestTokenResolver(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", 5)
	resolver := auth.NewTokenResolver(tokens)

	token, _, err := tokens.GenerateToken("u1")
	require.NoError(t, err)

	userID, err := resolver.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	_, err = resolver.Resolve(context.Background(), "not-a-token")
	assert.Error(t, err)

	// Tokens signed with a different secret do not resolve.
	other, _, err := auth.NewTokenManager("other-secret", 5).GenerateToken("u1")
	require.NoError(t, err)
	_, err = resolver.Resolve(context.Background(), other)
	assert.Error(t, err)
}
