package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// duplicateIndexFields maps unique index names to the request field that
// collided. The insert path uses this to recover the exact field when two
// signups race past the pre-insert existence probes.
var duplicateIndexFields = map[string]string{
	"uniq_users_email":               "email",
	"uniq_admins_email":              "email",
	"uniq_companies_email":           "email",
	"uniq_companies_company_name":    "companyName",
	"uniq_companies_phone":           "phone",
	"uniq_companies_medical_license": "medicalLicense",
}

// duplicateFieldFromError resolves the colliding field name from a unique
// constraint violation, falling back to the given default when the index
// name cannot be identified from the driver message.
func duplicateFieldFromError(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	errMsg := err.Error()
	for index, field := range duplicateIndexFields {
		if strings.Contains(errMsg, index) {
			return field
		}
	}

	return fallback
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// The translated error is not always surfaced; fall back to the
	// PostgreSQL unique_violation message patterns.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return false
}

func isNotNullConstraintViolation(err error) bool {
	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
