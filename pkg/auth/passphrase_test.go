package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassphraseRoundtrip(t *testing.T) {
	encoded, err := HashPassphrase("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))

	ok, err := VerifyPassphrase("correct horse battery staple", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassphrase("wrong", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPassphraseSaltVaries(t *testing.T) {
	a, err := HashPassphrase("same input")
	require.NoError(t, err)
	b, err := HashPassphrase("same input")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifyPassphraseMalformed(t *testing.T) {
	for _, encoded := range []string{
		"",
		"plaintext",
		"$bcrypt$whatever",
		"$argon2id$v=19$m=65536,t=1,p=4$notbase64!!$x",
	} {
		ok, err := VerifyPassphrase("x", encoded)
		assert.Error(t, err, "hash %q", encoded)
		assert.False(t, ok)
	}
}
