package postgres

import (
	"context"

	"medisupply/internal/domain/entity"
	domainerrors "medisupply/internal/domain/errors"
	"medisupply/internal/domain/repository"
	"medisupply/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// companyRepository implements the domain.CompanyRepository interface using GORM.
type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository is the constructor for companyRepository.
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

// FindByID retrieves a single company by its unique ID.
func (repo *companyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	var companyM model.CompanyModel
	if err := repo.db.WithContext(ctx).First(&companyM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by id")
	}

	return toCompanyDomain(&companyM), nil
}

// FindByEmail retrieves a single company by its email address.
func (repo *companyRepository) FindByEmail(ctx context.Context, email string) (*entity.Company, error) {
	var companyM model.CompanyModel
	if err := repo.db.WithContext(ctx).First(&companyM, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCompanyNotFound
		}

		return nil, errors.Wrap(err, "failed to find company by email")
	}

	return toCompanyDomain(&companyM), nil
}

// ExistsByEmail reports whether a company with the given email already exists.
func (repo *companyRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return repo.exists(ctx, "email = ?", email)
}

// ExistsByName reports whether a company with the given company name already exists.
func (repo *companyRepository) ExistsByName(ctx context.Context, companyName string) (bool, error) {
	return repo.exists(ctx, "company_name = ?", companyName)
}

// ExistsByLicense reports whether the medical license is already registered.
func (repo *companyRepository) ExistsByLicense(ctx context.Context, medicalLicense string) (bool, error) {
	return repo.exists(ctx, "medical_license = ?", medicalLicense)
}

// ExistsByPhone reports whether the phone number is already registered.
func (repo *companyRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return repo.exists(ctx, "phone = ?", phone)
}

func (repo *companyRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CompanyModel{}).
		Where(query, arg).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check company field existence")
	}

	return count > 0, nil
}

// Create persists a new company entity to the database. A unique violation is
// mapped back to the colliding field so signup races still report it exactly.
func (repo *companyRepository) Create(ctx context.Context, company *entity.Company) error {
	companyM := fromCompanyDomain(company)

	if err := repo.db.WithContext(ctx).Create(companyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDuplicateFieldError(duplicateFieldFromError(err, "companyName"))
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required company information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create company")
	}

	company.ID = companyM.ID
	company.CreatedAt = companyM.CreatedAt
	company.UpdatedAt = companyM.UpdatedAt

	return nil
}

// Update modifies an existing company entity in the database.
func (repo *companyRepository) Update(ctx context.Context, company *entity.Company) error {
	companyM := fromCompanyDomain(company)

	if err := repo.db.WithContext(ctx).Save(companyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDuplicateFieldError(duplicateFieldFromError(err, "companyName"))
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required company information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update company")
	}

	company.UpdatedAt = companyM.UpdatedAt

	return nil
}

// toCompanyDomain converts a GORM CompanyModel to a domain Company entity.
func toCompanyDomain(data *model.CompanyModel) *entity.Company {
	if data == nil {
		return nil
	}

	return &entity.Company{
		ID:                data.ID,
		CompanyName:       data.CompanyName,
		CompanyType:       data.CompanyType,
		Email:             data.Email,
		Phone:             data.Phone,
		AdministratorName: data.AdministratorName,
		MedicalLicense:    data.MedicalLicense,
		Address: entity.Address{
			Street:  data.Street,
			City:    data.City,
			State:   data.State,
			Zip:     data.Zip,
			Country: data.Country,
		},
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromCompanyDomain converts a domain Company entity to a GORM CompanyModel for persistence.
func fromCompanyDomain(data *entity.Company) *model.CompanyModel {
	if data == nil {
		return nil
	}

	return &model.CompanyModel{
		ID:                data.ID,
		CompanyName:       data.CompanyName,
		CompanyType:       data.CompanyType,
		Email:             data.Email,
		Phone:             data.Phone,
		AdministratorName: data.AdministratorName,
		MedicalLicense:    data.MedicalLicense,
		Street:            data.Address.Street,
		City:              data.Address.City,
		State:             data.Address.State,
		Zip:               data.Address.Zip,
		Country:           data.Address.Country,
		PasswordHash:      data.PasswordHash,
	}
}
