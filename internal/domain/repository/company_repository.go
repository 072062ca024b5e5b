package repository

import (
	"context"
	"errors"

	"medisupply/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCompanyNotFound is a domain-specific error returned when a company is not found.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepository defines the standard operations for company persistence.
// Companies carry four uniquely-constrained fields, each with its own
// existence probe so signup can report the exact colliding field.
type CompanyRepository interface {
	// FindByID retrieves a single company by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)

	// FindByEmail retrieves a single company by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Company, error)

	// ExistsByEmail reports whether a company with the given email already exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByName reports whether a company with the given company name already exists.
	ExistsByName(ctx context.Context, companyName string) (bool, error)

	// ExistsByLicense reports whether the medical license is already registered.
	ExistsByLicense(ctx context.Context, medicalLicense string) (bool, error)

	// ExistsByPhone reports whether the phone number is already registered.
	ExistsByPhone(ctx context.Context, phone string) (bool, error)

	// Create persists a new company entity to the storage.
	Create(ctx context.Context, company *entity.Company) error

	// Update modifies an existing company entity in the storage.
	Update(ctx context.Context, company *entity.Company) error
}
