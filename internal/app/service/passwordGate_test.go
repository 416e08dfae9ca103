package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordGateVerify(t *testing.T) {
	gate := NewPasswordGate("test-secret", time.Hour)

	hash, err := gate.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, gate.Verify("s3cret", hash))
	assert.False(t, gate.Verify("wrong", hash))
	assert.False(t, gate.Verify("", hash))
	assert.False(t, gate.Verify("s3cret", "not-a-hash"))
}

func TestPasswordGateUnlockToken(t *testing.T) {
	gate := NewPasswordGate("test-secret", time.Hour)

	token, err := gate.UnlockToken("abc123")
	require.NoError(t, err)

	assert.True(t, gate.ValidateUnlock(token, "abc123"))
	assert.False(t, gate.ValidateUnlock(token, "other"))
	assert.False(t, gate.ValidateUnlock("garbage", "abc123"))
}

func TestPasswordGateUnlockTokenExpiry(t *testing.T) {
	gate := NewPasswordGate("test-secret", -time.Minute)

	token, err := gate.UnlockToken("abc123")
	require.NoError(t, err)

	assert.False(t, gate.ValidateUnlock(token, "abc123"))
}

func TestPasswordGateUnlockTokenWrongSecret(t *testing.T) {
	gate := NewPasswordGate("test-secret", time.Hour)
	other := NewPasswordGate("other-secret", time.Hour)

	token, err := gate.UnlockToken("abc123")
	require.NoError(t, err)

	assert.False(t, other.ValidateUnlock(token, "abc123"))
}
