// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"medisupply/config"
	domainerrors "medisupply/internal/domain/errors"
	"medisupply/internal/domain/service"
)

const defaultMinPasswordLength = 8

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// The cost factor and the strength policy both come from configuration.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordStrengthConfig{MinLength: defaultMinPasswordLength}
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
		if policy.MinLength <= 0 {
			policy.MinLength = defaultMinPasswordLength
		}
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// ValidatePasswordStrength checks a plaintext password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	violations := make([]string, 0, 4)

	if len(password) < h.policy.MinLength {
		violations = append(violations, "too short")
	}
	if h.policy.MaxLength > 0 && len(password) > h.policy.MaxLength {
		violations = append(violations, "too long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if h.policy.RequireUppercase && !hasUpper {
		violations = append(violations, "missing an uppercase letter")
	}
	if h.policy.RequireLowercase && !hasLower {
		violations = append(violations, "missing a lowercase letter")
	}
	if h.policy.RequireNumbers && !hasNumber {
		violations = append(violations, "missing a number")
	}
	if h.policy.RequireSpecial && !hasSpecial {
		violations = append(violations, "missing a special character")
	}

	if len(violations) > 0 {
		return domainerrors.ErrPasswordStrength.WithDetails("Password is " + strings.Join(violations, ", "))
	}

	return nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}
