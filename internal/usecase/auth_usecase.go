// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"medisupply/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupUserInput defines the data required to register an individual buyer.
type SignupUserInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string // Comma-separated; normalized into the structured address.
	Password string
}

// SignupCompanyInput defines the data required to register a company account.
type SignupCompanyInput struct {
	CompanyName       string
	CompanyType       string
	Email             string
	Phone             string
	AdministratorName string
	MedicalLicense    string
	Address           string
	Password          string
}

// SignupAdminInput defines the data required to register an administrator.
// AdminCode must match the configured registration code.
type SignupAdminInput struct {
	Name      string
	Email     string
	Password  string
	AdminCode string
}

// LoginInput defines the data required for any principal to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateUserProfileInput carries a profile update for an individual buyer.
// Password is mandatory: if it verifies against the stored hash it is left
// unchanged, otherwise it is treated as the new password.
type UpdateUserProfileInput struct {
	UserID   uuid.UUID
	Name     string
	Email    string
	Phone    string
	Address  string // Comma-separated; normalized into the structured address.
	Password string
}

// UpdateCompanyProfileInput carries a profile update for a company account.
type UpdateCompanyProfileInput struct {
	CompanyID         uuid.UUID
	CompanyName       string
	CompanyType       string
	Email             string
	Phone             string
	AdministratorName string
	MedicalLicense    string
	Address           string
	Password          string
}

// --- Output DTOs ---

// AccountSummary is the minimal account view returned with a fresh token.
type AccountSummary struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  entity.Role
}

// AuthOutput returns the issued token and the account it belongs to.
type AuthOutput struct {
	Token   string
	Account AccountSummary
}

// UpdateUserProfileOutput reports the result of a user profile update.
// Changed is false when the update was a no-op ("No changes detected.").
type UpdateUserProfileOutput struct {
	Changed bool
	User    *entity.User
}

// UpdateCompanyProfileOutput reports the result of a company profile update.
type UpdateCompanyProfileOutput struct {
	Changed bool
	Company *entity.Company
}

// AuthUsecase defines the interface for account and session business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	SignupUser(ctx context.Context, input *SignupUserInput) (*AuthOutput, error)
	SignupCompany(ctx context.Context, input *SignupCompanyInput) (*AuthOutput, error)
	SignupAdmin(ctx context.Context, input *SignupAdminInput) (*AuthOutput, error)

	LoginUser(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	LoginCompany(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	LoginAdmin(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	UpdateUserProfile(ctx context.Context, input *UpdateUserProfileInput) (*UpdateUserProfileOutput, error)
	UpdateCompanyProfile(ctx context.Context, input *UpdateCompanyProfileInput) (*UpdateCompanyProfileOutput, error)

	// ValidateToken reports whether the bearer token is valid. It never
	// returns an error; any uncertainty counts as invalid.
	ValidateToken(ctx context.Context, tokenString string) bool
}
