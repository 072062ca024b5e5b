package postgres

import (
	"context"
	"time"

	"medisupply/internal/domain/entity"
	domainerrors "medisupply/internal/domain/errors"
	"medisupply/internal/domain/repository"
	"medisupply/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the domain.AdminRepository interface using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// FindByEmail retrieves a single admin by their email address.
func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminM model.AdminModel
	if err := repo.db.WithContext(ctx).First(&adminM, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	return toAdminDomain(&adminM), nil
}

// ExistsByEmail reports whether an admin with the given email already exists.
func (repo *adminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.AdminModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check admin email existence")
	}

	return count > 0, nil
}

// Create persists a new admin entity to the database.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDuplicateFieldError(duplicateFieldFromError(err, "email"))
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required admin information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

// UpdateLastLogin records the time of the most recent successful login.
func (repo *adminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminModel{}).
		Where("id = ?", id).
		Update("last_login", at)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update admin last login")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdminNotFound
	}

	return nil
}

// toAdminDomain converts a GORM AdminModel to a domain Admin entity.
func toAdminDomain(data *model.AdminModel) *entity.Admin {
	if data == nil {
		return nil
	}

	return &entity.Admin{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		LastLogin:    data.LastLogin,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAdminDomain converts a domain Admin entity to a GORM AdminModel for persistence.
func fromAdminDomain(data *entity.Admin) *model.AdminModel {
	if data == nil {
		return nil
	}

	return &model.AdminModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		LastLogin:    data.LastLogin,
	}
}
