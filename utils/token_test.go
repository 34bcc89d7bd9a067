package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, err := tm.Issue(7)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-one").Issue(7)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-two").Verify(token)
	assert.Error(t, err)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := NewTokenManager("test-secret").Verify("not-a-token")
	assert.Error(t, err)
}
