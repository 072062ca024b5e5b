package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"medisupply/config"
	"medisupply/internal/domain/entity"
	"medisupply/internal/domain/repository"
	domainservice "medisupply/internal/domain/service"
	mockRepo "medisupply/internal/mocks/repository"
	mockSvc "medisupply/internal/mocks/service"
	"medisupply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAdminCode = "supply-admin-code"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	t            *testing.T
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	companyRepo  *mockRepo.MockCompanyRepository
	adminRepo    *mockRepo.MockAdminRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	companyRepo := mockRepo.NewMockCompanyRepository(t)
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	cfg := &config.Config{
		Auth: &config.AuthConfig{AdminCode: testAdminCode},
	}

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		CompanyRepo:  companyRepo,
		AdminRepo:    adminRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		companyRepo:  companyRepo,
		adminRepo:    adminRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// onExecute stubs one transaction: setup wires the repositories the callback
// will ask the factory for, result is what Execute reports back.
func (fx authServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func TestAuthService_SignupUser_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.SignupUserInput{
		Name:     "Alice Buyer",
		Email:    "alice@example.com",
		Phone:    "555-0101",
		Address:  "12 Main St, Springfield, IL, 62701, USA",
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
				assert.Equal(t, "hashed-password", user.PasswordHash)
				assert.Equal(t, entity.Address{
					Street: "12 Main St", City: "Springfield", State: "IL", Zip: "62701", Country: "USA",
				}, user.Address)
				user.ID = userID
			}).
			Return(nil)
	})

	fx.tokenService.EXPECT().Generate(userID, "user").Return("signed-token", nil)

	output, err := fx.service.SignupUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, userID, output.Account.ID)
	assert.Equal(t, input.Name, output.Account.Name)
	assert.Equal(t, entity.RoleUser, output.Account.Role)
}

func TestAuthService_SignupCompany_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	companyID := uuid.New()
	input := &usecase.SignupCompanyInput{
		CompanyName:       "Santa Fe Clinic",
		CompanyType:       "clinic",
		Email:             "admin@santafe.example.com",
		Phone:             "555-0202",
		AdministratorName: "Dr. Reyes",
		MedicalLicense:    "ML-4471",
		Address:           "400 Clinic Ave, Santa Fe, NM",
		Password:          "Str0ng!Passw0rd",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
		factory.EXPECT().CompanyRepo().Return(mockCompanyRepo)

		mockCompanyRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
		mockCompanyRepo.EXPECT().ExistsByName(ctx, input.CompanyName).Return(false, nil)
		mockCompanyRepo.EXPECT().ExistsByLicense(ctx, input.MedicalLicense).Return(false, nil)
		mockCompanyRepo.EXPECT().ExistsByPhone(ctx, input.Phone).Return(false, nil)
		mockCompanyRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Company")).
			Run(func(ctx context.Context, company *entity.Company) {
				assert.Equal(t, entity.Address{
					Street: "400 Clinic Ave", City: "Santa Fe", State: "NM",
				}, company.Address)
				company.ID = companyID
			}).
			Return(nil)
	})

	fx.tokenService.EXPECT().Generate(companyID, "company").Return("signed-token", nil)

	output, err := fx.service.SignupCompany(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, companyID, output.Account.ID)
	assert.Equal(t, input.CompanyName, output.Account.Name)
	assert.Equal(t, entity.RoleCompany, output.Account.Role)
}

func TestAuthService_SignupAdmin_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	adminID := uuid.New()
	input := &usecase.SignupAdminInput{
		Name:      "Ops Admin",
		Email:     "ops@example.com",
		Password:  "Str0ng!Passw0rd",
		AdminCode: testAdminCode,
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockAdminRepo := mockRepo.NewMockAdminRepository(t)
		factory.EXPECT().AdminRepo().Return(mockAdminRepo)

		mockAdminRepo.EXPECT().ExistsByEmail(ctx, input.Email).Return(false, nil)
		mockAdminRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Admin")).
			Run(func(ctx context.Context, admin *entity.Admin) {
				admin.ID = adminID
			}).
			Return(nil)
	})

	fx.tokenService.EXPECT().Generate(adminID, "admin").Return("signed-token", nil)

	output, err := fx.service.SignupAdmin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, adminID, output.Account.ID)
	assert.Equal(t, entity.RoleAdmin, output.Account.Role)
}

func TestAuthService_LoginUser_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Name:         "Alice Buyer",
		Email:        "alice@example.com",
		PasswordHash: "stored-hash",
	}
	input := &usecase.LoginInput{Email: user.Email, Password: "Str0ng!Passw0rd"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Generate(userID, "user").Return("signed-token", nil)

	output, err := fx.service.LoginUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, userID, output.Account.ID)
	assert.Equal(t, entity.RoleUser, output.Account.Role)
}

func TestAuthService_LoginCompany_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	companyID := uuid.New()
	company := &entity.Company{
		ID:           companyID,
		CompanyName:  "Santa Fe Clinic",
		Email:        "admin@santafe.example.com",
		PasswordHash: "stored-hash",
	}
	input := &usecase.LoginInput{Email: company.Email, Password: "Str0ng!Passw0rd"}

	fx.companyRepo.EXPECT().FindByEmail(ctx, input.Email).Return(company, nil)
	fx.hasher.EXPECT().Check(input.Password, company.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Generate(companyID, "company").Return("signed-token", nil)

	output, err := fx.service.LoginCompany(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, company.CompanyName, output.Account.Name)
	assert.Equal(t, entity.RoleCompany, output.Account.Role)
}

func TestAuthService_LoginAdmin_RecordsLastLogin(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	adminID := uuid.New()
	admin := &entity.Admin{
		ID:           adminID,
		Name:         "Ops Admin",
		Email:        "ops@example.com",
		PasswordHash: "stored-hash",
	}
	input := &usecase.LoginInput{Email: admin.Email, Password: "Str0ng!Passw0rd"}

	fx.adminRepo.EXPECT().FindByEmail(ctx, input.Email).Return(admin, nil)
	fx.hasher.EXPECT().Check(input.Password, admin.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Generate(adminID, "admin").Return("signed-token", nil)
	fx.adminRepo.EXPECT().UpdateLastLogin(ctx, adminID, mock.AnythingOfType("time.Time")).Return(nil)

	output, err := fx.service.LoginAdmin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, adminID, output.Account.ID)
	assert.Equal(t, entity.RoleAdmin, output.Account.Role)
}

func TestAuthService_LoginAdmin_LastLoginWriteFailureDoesNotBlock(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	adminID := uuid.New()
	admin := &entity.Admin{ID: adminID, Email: "ops@example.com", PasswordHash: "stored-hash"}
	input := &usecase.LoginInput{Email: admin.Email, Password: "Str0ng!Passw0rd"}

	fx.adminRepo.EXPECT().FindByEmail(ctx, input.Email).Return(admin, nil)
	fx.hasher.EXPECT().Check(input.Password, admin.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Generate(adminID, "admin").Return("signed-token", nil)
	fx.adminRepo.EXPECT().UpdateLastLogin(ctx, adminID, mock.AnythingOfType("time.Time")).Return(errors.New("db error"))

	output, err := fx.service.LoginAdmin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
}

func TestAuthService_UpdateUserProfile_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingUser := &entity.User{
		ID:           userID,
		Name:         "Old Name",
		Email:        "alice@example.com",
		Phone:        "555-0101",
		PasswordHash: "stored-hash",
	}
	input := &usecase.UpdateUserProfileInput{
		UserID:   userID,
		Name:     "New Name",
		Password: "Str0ng!Passw0rd",
	}

	// The supplied password matches the stored hash, so it stays unchanged.
	fx.hasher.EXPECT().Check(input.Password, "stored-hash").Return(true)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
		mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	output, err := fx.service.UpdateUserProfile(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.Changed)
	assert.Equal(t, "New Name", output.User.Name)
}

func TestAuthService_UpdateUserProfile_NoChanges(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingUser := &entity.User{
		ID:           userID,
		Name:         "Alice Buyer",
		Email:        "alice@example.com",
		PasswordHash: "stored-hash",
	}
	input := &usecase.UpdateUserProfileInput{
		UserID:   userID,
		Name:     existingUser.Name,
		Password: "Str0ng!Passw0rd",
	}

	fx.hasher.EXPECT().Check(input.Password, "stored-hash").Return(true)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		// No Update expectation: a no-op must not touch the row.
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
	})

	output, err := fx.service.UpdateUserProfile(ctx, input)

	require.NoError(t, err)
	assert.False(t, output.Changed)
}

func TestAuthService_UpdateUserProfile_PasswordChange(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingUser := &entity.User{
		ID:           userID,
		Name:         "Alice Buyer",
		Email:        "alice@example.com",
		PasswordHash: "stored-hash",
	}
	input := &usecase.UpdateUserProfileInput{
		UserID:   userID,
		Password: "N3w!Passw0rd",
	}

	// Does not verify against the stored hash, so it becomes the new password.
	fx.hasher.EXPECT().Check(input.Password, "stored-hash").Return(false)
	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("new-hash", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
		mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				assert.Equal(t, "new-hash", user.PasswordHash)
			}).
			Return(nil)
	})

	output, err := fx.service.UpdateUserProfile(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.Changed)
}

func TestAuthService_UpdateCompanyProfile_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	companyID := uuid.New()
	existingCompany := &entity.Company{
		ID:           companyID,
		CompanyName:  "Santa Fe Clinic",
		Email:        "admin@santafe.example.com",
		Phone:        "555-0202",
		PasswordHash: "stored-hash",
	}
	input := &usecase.UpdateCompanyProfileInput{
		CompanyID: companyID,
		Phone:     "555-0303",
		Password:  "Str0ng!Passw0rd",
	}

	fx.hasher.EXPECT().Check(input.Password, "stored-hash").Return(true)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
		factory.EXPECT().CompanyRepo().Return(mockCompanyRepo)

		mockCompanyRepo.EXPECT().FindByID(ctx, companyID).Return(existingCompany, nil)
		mockCompanyRepo.EXPECT().ExistsByPhone(ctx, input.Phone).Return(false, nil)
		mockCompanyRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Company")).Return(nil)
	})

	output, err := fx.service.UpdateCompanyProfile(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.Changed)
	assert.Equal(t, "555-0303", output.Company.Phone)
}

func TestAuthService_ValidateToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().Validate("good-token").Return(&domainservice.Claims{PrincipalID: uuid.New(), Role: "user"}, nil)
	fx.tokenService.EXPECT().Validate("bad-token").Return(nil, errors.New("token is expired"))

	assert.True(t, fx.service.ValidateToken(ctx, "good-token"))
	assert.False(t, fx.service.ValidateToken(ctx, "bad-token"))
	assert.False(t, fx.service.ValidateToken(ctx, ""))
}
