package common

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandHexString(t *testing.T) {
	s1, err := MakeRandHexString(32)
	require.NoError(t, err)
	assert.Len(t, s1, 64)

	_, err = hex.DecodeString(s1)
	require.NoError(t, err, "result must be valid hex")

	s2, err := MakeRandHexString(32)
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2, "two tokens must not collide")
}

func TestWipeByteArray(t *testing.T) {
	b := []byte("admin1234")
	WipeByteArray(b)
	for i, v := range b {
		assert.Zerof(t, v, "byte %d not wiped", i)
	}

	assert.NotPanics(t, func() { WipeByteArray(nil) })
}
