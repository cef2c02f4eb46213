// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const (
	minPasswordLen = 8
	maxPasswordLen = 128
	maxNameLen     = 100
	maxRoleLen     = 50
	maxURLLen      = 2048
)

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	return nil
}

// ValidatePassword checks if a password meets length requirements
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return fmt.Errorf("password must not exceed %d characters", maxPasswordLen)
	}
	return nil
}

// ValidateName checks display name requirements
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("name must not exceed %d characters", maxNameLen)
	}
	return nil
}

// ValidateRole checks the free-text musician role tag
func ValidateRole(role string) error {
	if len(role) > maxRoleLen {
		return fmt.Errorf("role must not exceed %d characters", maxRoleLen)
	}
	return nil
}

// ValidateURL bounds the length of optional URL fields
func ValidateURL(field, url string) error {
	if len(url) > maxURLLen {
		return fmt.Errorf("%s must not exceed %d characters", field, maxURLLen)
	}
	return nil
}
