package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "valid simple", username: "alice", wantErr: false},
		{name: "valid with digits and underscore", username: "alice_42", wantErr: false},
		{name: "empty", username: "", wantErr: true},
		{name: "too short", username: "ab", wantErr: true},
		{name: "too long", username: strings.Repeat("a", 33), wantErr: true},
		{name: "invalid characters", username: "alice!", wantErr: true},
		{name: "spaces", username: "alice smith", wantErr: true},
		{name: "minimum length", username: "abc", wantErr: false},
		{name: "maximum length", username: strings.Repeat("a", 32), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "alice@example.com", wantErr: false},
		{name: "valid with plus", email: "alice+tag@example.com", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "missing domain", email: "alice@", wantErr: true},
		{name: "missing at", email: "alice.example.com", wantErr: true},
		{name: "display name form rejected", email: "Alice <alice@example.com>", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "correct horse battery", wantErr: false},
		{name: "empty", password: "", wantErr: true},
		{name: "too short", password: "short", wantErr: true},
		{name: "minimum length", password: "12345678", wantErr: false},
		{name: "over bcrypt limit", password: strings.Repeat("x", 73), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
