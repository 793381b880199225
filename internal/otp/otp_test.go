package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	code, hash, expires, err := Generate()
	require.NoError(t, err)

	assert.Len(t, code, 6)
	assert.Regexp(t, `^[1-9]\d{5}$`, code)
	assert.Equal(t, Hash(code), hash)
	assert.WithinDuration(t, time.Now().Add(TTL), expires, time.Second)
}

func TestMatches(t *testing.T) {
	code, hash, _, err := Generate()
	require.NoError(t, err)

	assert.True(t, Matches(code, hash))
	assert.False(t, Matches("000000", hash))
	assert.False(t, Matches(code, ""))
}

func TestExpired(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Minute)

	assert.True(t, Expired(nil))
	assert.True(t, Expired(&past))
	assert.False(t, Expired(&future))
}
