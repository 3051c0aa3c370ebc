package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery", hash)

	// Salted: hashing the same password twice yields different hashes.
	hash2, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("correct horse battery", hash))
	assert.False(t, VerifyPassword("wrong password", hash))
}

func TestVerifyPassword_FailsClosed(t *testing.T) {
	tests := []struct {
		name     string
		password string
		hash     string
	}{
		{name: "malformed hash", password: "anything", hash: "not-a-bcrypt-hash"},
		{name: "empty hash", password: "anything", hash: ""},
		{name: "empty password", password: "", hash: "$2a$10$abcdefghijklmnopqrstuv"},
		{name: "both empty", password: "", hash: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, VerifyPassword(tt.password, tt.hash))
		})
	}
}
