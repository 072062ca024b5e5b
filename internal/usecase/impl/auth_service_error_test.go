package impl

import (
	"context"
	"testing"

	"medisupply/internal/domain/entity"
	domainerrors "medisupply/internal/domain/errors"
	"medisupply/internal/domain/repository"
	mockRepo "medisupply/internal/mocks/repository"
	"medisupply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthService_SignupUser_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupUserInput{
		Name:     "Alice Buyer",
		Email:    "alice@example.com",
		Password: "Str0ng!Passw0rd",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)

	fx.onExecute(ctx, domainerrors.NewDuplicateFieldError("email"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(true, nil)
	})

	output, err := fx.service.SignupUser(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)

	var dupErr *domainerrors.DuplicateFieldError
	assert.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "email", dupErr.Field())
	assert.Equal(t, "duplicate", dupErr.ErrorType())

	// A duplicate signup never spends a bcrypt hash.
	fx.hasher.AssertNotCalled(t, "Hash", input.Password)
}

func TestAuthService_SignupCompany_DuplicateLicense(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupCompanyInput{
		CompanyName:    "Santa Fe Clinic",
		Email:          "admin@santafe.example.com",
		Phone:          "555-0202",
		MedicalLicense: "ML-4471",
		Password:       "Str0ng!Passw0rd",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)

	// Checks run in declaration order; the phone check is never reached.
	fx.onExecute(ctx, domainerrors.NewDuplicateFieldError("medicalLicense"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
		factory.EXPECT().CompanyRepo().Return(mockCompanyRepo)

		mockCompanyRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
		mockCompanyRepo.EXPECT().ExistsByName(ctx, input.CompanyName).Return(false, nil)
		mockCompanyRepo.EXPECT().ExistsByLicense(ctx, input.MedicalLicense).Return(true, nil)
	})

	_, err := fx.service.SignupCompany(ctx, input)

	assert.Error(t, err)

	var dupErr *domainerrors.DuplicateFieldError
	assert.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "medicalLicense", dupErr.Field())

	fx.hasher.AssertNotCalled(t, "Hash", input.Password)
}

func TestAuthService_SignupUser_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupUserInput{
		Name:     "Alice Buyer",
		Email:    "alice@example.com",
		Password: "short",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(errors.New("password must be at least 8 characters long"))

	output, err := fx.service.SignupUser(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestAuthService_SignupAdmin_InvalidCode(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupAdminInput{
		Name:      "Ops Admin",
		Email:     "ops@example.com",
		Password:  "Str0ng!Passw0rd",
		AdminCode: "wrong-code",
	}

	output, err := fx.service.SignupAdmin(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAdminCodeInvalid))
}

func TestAuthService_LoginUser_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "nobody@example.com", Password: "Str0ng!Passw0rd"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.LoginUser(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_LoginUser_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "stored-hash"}
	input := &usecase.LoginInput{Email: user.Email, Password: "wrong-password"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.LoginUser(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)

	// Both failure modes surface the same error so callers cannot probe
	// which emails are registered.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_LoginCompany_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "nobody@example.com", Password: "Str0ng!Passw0rd"}

	fx.companyRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrCompanyNotFound)

	_, err := fx.service.LoginCompany(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_LoginAdmin_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "nobody@example.com", Password: "Str0ng!Passw0rd"}

	fx.adminRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrAdminNotFound)

	_, err := fx.service.LoginAdmin(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_UpdateUserProfile_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateUserProfileInput{UserID: userID, Name: "New Name"}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrUserNotFound, "user profile update failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	output, err := fx.service.UpdateUserProfile(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_UpdateUserProfile_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingUser := &entity.User{
		ID:           userID,
		Email:        "alice@example.com",
		PasswordHash: "stored-hash",
	}
	input := &usecase.UpdateUserProfileInput{UserID: userID, Email: "taken@example.com"}

	fx.onExecute(ctx, domainerrors.NewDuplicateFieldError("email"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
		mockUserRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(true, nil)
	})

	_, err := fx.service.UpdateUserProfile(ctx, input)

	assert.Error(t, err)

	var dupErr *domainerrors.DuplicateFieldError
	assert.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "email", dupErr.Field())
}

func TestAuthService_UpdateCompanyProfile_DuplicateName(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	companyID := uuid.New()
	existingCompany := &entity.Company{
		ID:           companyID,
		CompanyName:  "Santa Fe Clinic",
		PasswordHash: "stored-hash",
	}
	input := &usecase.UpdateCompanyProfileInput{CompanyID: companyID, CompanyName: "Taken Name"}

	fx.onExecute(ctx, domainerrors.NewDuplicateFieldError("companyName"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
		factory.EXPECT().CompanyRepo().Return(mockCompanyRepo)

		mockCompanyRepo.EXPECT().FindByID(ctx, companyID).Return(existingCompany, nil)
		mockCompanyRepo.EXPECT().ExistsByName(ctx, input.CompanyName).Return(true, nil)
	})

	_, err := fx.service.UpdateCompanyProfile(ctx, input)

	assert.Error(t, err)

	var dupErr *domainerrors.DuplicateFieldError
	assert.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "companyName", dupErr.Field())
}

func TestAuthService_SignupUser_TokenGenerationFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.SignupUserInput{
		Name:     "Alice Buyer",
		Email:    "alice@example.com",
		Password: "Str0ng!Passw0rd",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = userID
			}).
			Return(nil)
	})

	fx.tokenService.EXPECT().Generate(userID, "user").Return("", errors.New("signing failed"))

	output, err := fx.service.SignupUser(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenGeneration))
}
