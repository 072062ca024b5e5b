package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company is an institutional buyer account (pharmacy, clinic, hospital).
// Email, company name, medical license and phone are each unique across companies.
type Company struct {
	ID                uuid.UUID // The Global Unique Identifier (GUID) for the company.
	CompanyName       string    // The registered company name; unique.
	CompanyType       string    // The kind of institution, e.g., "pharmacy", "hospital".
	Email             string    // The login identifier; unique across companies.
	Phone             string    // Contact phone number; unique across companies.
	AdministratorName string    // Name of the person administering this account.
	MedicalLicense    string    // The official medical license number; unique.
	Address           Address   // Structured billing/shipping address.
	PasswordHash      string    // The bcrypt-hashed password. Never serialized outward.
	CreatedAt         time.Time // Timestamp of when this account was created.
	UpdatedAt         time.Time // Timestamp of the last modification to this account.
}
