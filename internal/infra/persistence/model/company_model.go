package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyModel mirrors the 'companies' table. Four fields carry unique
// indexes; the index names are load-bearing for duplicate-field mapping.
type CompanyModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyName       string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_companies_company_name"`
	CompanyType       string    `gorm:"type:varchar(100)"`
	Email             string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_companies_email"`
	Phone             string    `gorm:"type:varchar(50);uniqueIndex:uniq_companies_phone"`
	AdministratorName string    `gorm:"type:varchar(100)"`
	MedicalLicense    string    `gorm:"type:varchar(100);not null;uniqueIndex:uniq_companies_medical_license"`
	Street            string    `gorm:"type:varchar(255)"`
	City              string    `gorm:"type:varchar(100)"`
	State             string    `gorm:"type:varchar(100)"`
	Zip               string    `gorm:"type:varchar(20)"`
	Country           string    `gorm:"type:varchar(100)"`
	PasswordHash      string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}
