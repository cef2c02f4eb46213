package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "alex@example.com", false},
		{"valid with plus", "alex+band@example.com", false},
		{"empty", "", true},
		{"missing at", "alexexample.com", true},
		{"missing domain", "alex@", true},
		{"spaces", "alex @example.com", true},
		{"too long", strings.Repeat("a", 250) + "@x.io", true},
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
		{"valid", "correct-horse", false},
		{"minimum length", "12345678", false},
		{"too short", "1234567", true},
		{"empty", "", true},
		{"too long", strings.Repeat("x", 129), true},
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

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Jo"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("n", 101)))
}

func TestValidateRole(t *testing.T) {
	assert.NoError(t, ValidateRole("Drummer"))
	assert.NoError(t, ValidateRole(""))
	assert.Error(t, ValidateRole(strings.Repeat("r", 51)))
}

func TestValidateURL(t *testing.T) {
	assert.NoError(t, ValidateURL("image_url", "https://cdn.example.com/a.png"))
	assert.NoError(t, ValidateURL("image_url", ""))
	assert.Error(t, ValidateURL("image_url", "https://x.io/"+strings.Repeat("p", 2048)))
}
