// Package config provides password configuration and verification for the
// single-credential API login.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig holds the bcrypt-hashed API password and hashing settings.
type PasswordConfig struct {
	BcryptCost int
	// APIPasswordHash is the stored bcrypt hash the login endpoint
	// verifies against.
	APIPasswordHash string
}

// NewPasswordConfig creates a new password configuration from environment
// variables. It reads API_PASSWORD_HASH (required for the server) and
// BCRYPT_COST (default: 12).
func NewPasswordConfig() (*PasswordConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12"
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	config := &PasswordConfig{
		BcryptCost:      cost,
		APIPasswordHash: os.Getenv("API_PASSWORD_HASH"),
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *PasswordConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// HashPassword hashes a password using bcrypt. Used by the hash-password
// helper command to produce API_PASSWORD_HASH values.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against the stored hash.
func (c *PasswordConfig) VerifyPassword(pw string) bool {
	if c.APIPasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.APIPasswordHash), []byte(pw)) == nil
}
