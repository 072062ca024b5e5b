// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"medisupply/config"
	deliverycontext "medisupply/internal/delivery/context"
	"medisupply/internal/domain/entity"
	domainerrors "medisupply/internal/domain/errors"
	"medisupply/internal/domain/repository"
	"medisupply/internal/domain/service"
	"medisupply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	companyRepo  repository.CompanyRepository
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	adminCode    string
	logger       *slog.Logger
}

// uniqueCheck probes one uniquely-constrained field before insert. The checks
// exist to report the exact colliding field; the database unique index remains
// authoritative and insert-time violations are recovered to the same error shape.
type uniqueCheck struct {
	Field  string
	Exists func(ctx context.Context, repoFactory repository.RepositoryFactory) (bool, error)
}

type signupConfig struct {
	Role         entity.Role
	Email        string
	Password     string
	UniqueChecks []uniqueCheck
	Persist      func(ctx context.Context, repoFactory repository.RepositoryFactory, passwordHash string) (*usecase.AccountSummary, error)
}

// credentials is the minimal account view the shared login path operates on.
type credentials struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	CompanyRepo  repository.CompanyRepository
	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	adminCode := ""
	if params.Config != nil && params.Config.Auth != nil {
		adminCode = params.Config.Auth.AdminCode
	}

	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		companyRepo:  params.CompanyRepo,
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		adminCode:    adminCode,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignupUser registers a new individual buyer account.
func (srv *authService) SignupUser(ctx context.Context, input *usecase.SignupUserInput) (*usecase.AuthOutput, error) {
	cfg := &signupConfig{
		Role:     entity.RoleUser,
		Email:    input.Email,
		Password: input.Password,
		UniqueChecks: []uniqueCheck{
			{Field: "email", Exists: func(ctx context.Context, f repository.RepositoryFactory) (bool, error) {
				return f.UserRepo().ExistsByEmail(ctx, input.Email)
			}},
		},
		Persist: func(ctx context.Context, f repository.RepositoryFactory, passwordHash string) (*usecase.AccountSummary, error) {
			newUser := &entity.User{
				Name:         input.Name,
				Email:        input.Email,
				Phone:        input.Phone,
				Address:      entity.ParseAddress(input.Address),
				PasswordHash: passwordHash,
			}
			if err := f.UserRepo().Create(ctx, newUser); err != nil {
				return nil, errors.Wrap(err, "failed to create user during signup")
			}

			return &usecase.AccountSummary{
				ID:    newUser.ID,
				Name:  newUser.Name,
				Email: newUser.Email,
				Role:  entity.RoleUser,
			}, nil
		},
	}

	return srv.executeSignup(ctx, cfg)
}

// SignupCompany registers a new company account. All four uniquely-constrained
// fields are probed individually so the response names the exact collision.
func (srv *authService) SignupCompany(ctx context.Context, input *usecase.SignupCompanyInput) (*usecase.AuthOutput, error) {
	cfg := &signupConfig{
		Role:     entity.RoleCompany,
		Email:    input.Email,
		Password: input.Password,
		UniqueChecks: []uniqueCheck{
			{Field: "email", Exists: func(ctx context.Context, f repository.RepositoryFactory) (bool, error) {
				return f.CompanyRepo().ExistsByEmail(ctx, input.Email)
			}},
			{Field: "companyName", Exists: func(ctx context.Context, f repository.RepositoryFactory) (bool, error) {
				return f.CompanyRepo().ExistsByName(ctx, input.CompanyName)
			}},
			{Field: "medicalLicense", Exists: func(ctx context.Context, f repository.RepositoryFactory) (bool, error) {
				return f.CompanyRepo().ExistsByLicense(ctx, input.MedicalLicense)
			}},
			{Field: "phone", Exists: func(ctx context.Context, f repository.RepositoryFactory) (bool, error) {
				return f.CompanyRepo().ExistsByPhone(ctx, input.Phone)
			}},
		},
		Persist: func(ctx context.Context, f repository.RepositoryFactory, passwordHash string) (*usecase.AccountSummary, error) {
			newCompany := &entity.Company{
				CompanyName:       input.CompanyName,
				CompanyType:       input.CompanyType,
				Email:             input.Email,
				Phone:             input.Phone,
				AdministratorName: input.AdministratorName,
				MedicalLicense:    input.MedicalLicense,
				Address:           entity.ParseAddress(input.Address),
				PasswordHash:      passwordHash,
			}
			if err := f.CompanyRepo().Create(ctx, newCompany); err != nil {
				return nil, errors.Wrap(err, "failed to create company during signup")
			}

			return &usecase.AccountSummary{
				ID:    newCompany.ID,
				Name:  newCompany.CompanyName,
				Email: newCompany.Email,
				Role:  entity.RoleCompany,
			}, nil
		},
	}

	return srv.executeSignup(ctx, cfg)
}

// SignupAdmin registers a back-office administrator. The configured admin code
// is checked before anything else touches the database.
func (srv *authService) SignupAdmin(ctx context.Context, input *usecase.SignupAdminInput) (*usecase.AuthOutput, error) {
	if srv.adminCode == "" || input.AdminCode != srv.adminCode {
		srv.log(ctx).Warn("Admin signup rejected by registration code", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrAdminCodeInvalid, "admin signup rejected")
	}

	cfg := &signupConfig{
		Role:     entity.RoleAdmin,
		Email:    input.Email,
		Password: input.Password,
		UniqueChecks: []uniqueCheck{
			{Field: "email", Exists: func(ctx context.Context, f repository.RepositoryFactory) (bool, error) {
				return f.AdminRepo().ExistsByEmail(ctx, input.Email)
			}},
		},
		Persist: func(ctx context.Context, f repository.RepositoryFactory, passwordHash string) (*usecase.AccountSummary, error) {
			newAdmin := &entity.Admin{
				Name:         input.Name,
				Email:        input.Email,
				PasswordHash: passwordHash,
			}
			if err := f.AdminRepo().Create(ctx, newAdmin); err != nil {
				return nil, errors.Wrap(err, "failed to create admin during signup")
			}

			return &usecase.AccountSummary{
				ID:    newAdmin.ID,
				Name:  newAdmin.Name,
				Email: newAdmin.Email,
				Role:  entity.RoleAdmin,
			}, nil
		},
	}

	return srv.executeSignup(ctx, cfg)
}

func (srv *authService) executeSignup(ctx context.Context, cfg *signupConfig) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.Any("role", cfg.Role), slog.String("email", cfg.Email))

	// Password strength is validated before any record is created.
	if err := srv.hasher.ValidatePasswordStrength(cfg.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during signup", slog.Any("role", cfg.Role), slog.String("email", cfg.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, err.Error())
	}

	var account *usecase.AccountSummary
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		for _, check := range cfg.UniqueChecks {
			taken, existsErr := check.Exists(ctx, repoFactory)
			if existsErr != nil {
				return errors.Wrapf(existsErr, "failed to check %s uniqueness", check.Field)
			}
			if taken {
				return domainerrors.NewDuplicateFieldError(check.Field)
			}
		}

		// Hash only once every unique check has passed; a duplicate signup
		// must not pay the bcrypt cost.
		hashedPassword, hashErr := srv.hasher.Hash(cfg.Password)
		if hashErr != nil {
			return errors.Wrap(hashErr, "failed to hash password during signup")
		}

		var persistErr error
		account, persistErr = cfg.Persist(ctx, repoFactory, hashedPassword)

		return persistErr
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.Any("role", cfg.Role), slog.String("email", cfg.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	token, err := srv.tokenService.Generate(account.ID, cfg.Role.String())
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after signup", slog.Any("role", cfg.Role), slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenGeneration, "failed to issue token after signup")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("role", cfg.Role), slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{Token: token, Account: *account}, nil
}

// LoginUser authenticates an individual buyer.
func (srv *authService) LoginUser(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return srv.executeLogin(ctx, entity.RoleUser, input, func(ctx context.Context) (*credentials, error) {
		user, err := srv.userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return nil, errors.Wrap(err, "failed to find user by email")
		}

		return &credentials{ID: user.ID, Name: user.Name, Email: user.Email, PasswordHash: user.PasswordHash}, nil
	}, nil)
}

// LoginCompany authenticates a company account.
func (srv *authService) LoginCompany(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return srv.executeLogin(ctx, entity.RoleCompany, input, func(ctx context.Context) (*credentials, error) {
		company, err := srv.companyRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrCompanyNotFound) {
				return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return nil, errors.Wrap(err, "failed to find company by email")
		}

		return &credentials{ID: company.ID, Name: company.CompanyName, Email: company.Email, PasswordHash: company.PasswordHash}, nil
	}, nil)
}

// LoginAdmin authenticates an administrator and records the login time.
func (srv *authService) LoginAdmin(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return srv.executeLogin(ctx, entity.RoleAdmin, input, func(ctx context.Context) (*credentials, error) {
		admin, err := srv.adminRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrAdminNotFound) {
				return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return nil, errors.Wrap(err, "failed to find admin by email")
		}

		return &credentials{ID: admin.ID, Name: admin.Name, Email: admin.Email, PasswordHash: admin.PasswordHash}, nil
	}, func(ctx context.Context, adminID uuid.UUID) {
		// Best effort; a failed timestamp write must not block the login.
		if err := srv.adminRepo.UpdateLastLogin(ctx, adminID, time.Now()); err != nil {
			srv.log(ctx).Warn("Failed to record admin last login", slog.Any("adminID", adminID), slog.Any("error", err))
		}
	})
}

// executeLogin is the shared login path. An unknown email and a wrong password
// produce the same invalid-credentials error so callers cannot distinguish them.
func (srv *authService) executeLogin(
	ctx context.Context,
	role entity.Role,
	input *usecase.LoginInput,
	loadCredentials func(ctx context.Context) (*credentials, error),
	onSuccess func(ctx context.Context, accountID uuid.UUID),
) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.Any("role", role), slog.String("email", input.Email))

	creds, err := loadCredentials(ctx)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.Any("role", role), slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, creds.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.Any("role", role), slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Generate(creds.ID, role.String())
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Any("role", role), slog.Any("accountID", creds.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenGeneration, "failed to issue token during login")
	}

	if onSuccess != nil {
		onSuccess(ctx, creds.ID)
	}

	srv.log(ctx).Debug("Login completed", slog.Any("role", role), slog.Any("accountID", creds.ID))

	return &usecase.AuthOutput{
		Token: token,
		Account: usecase.AccountSummary{
			ID:    creds.ID,
			Name:  creds.Name,
			Email: creds.Email,
			Role:  role,
		},
	}, nil
}

// UpdateUserProfile applies a field-by-field diff to a user account. The
// supplied password either verifies against the stored hash (unchanged) or
// becomes the new password. A fully unchanged profile is reported as a no-op
// without touching the row.
func (srv *authService) UpdateUserProfile(ctx context.Context, input *usecase.UpdateUserProfileInput) (*usecase.UpdateUserProfileOutput, error) {
	srv.log(ctx).Info("Starting user profile update", slog.Any("userID", input.UserID))

	var output *usecase.UpdateUserProfileOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user profile update failed")
			}

			return errors.Wrap(err, "failed to load user for profile update")
		}

		changed := false
		if input.Name != "" && input.Name != user.Name {
			user.Name = input.Name
			changed = true
		}
		if input.Email != "" && input.Email != user.Email {
			taken, existsErr := userRepo.ExistsByEmail(ctx, input.Email)
			if existsErr != nil {
				return errors.Wrap(existsErr, "failed to check email uniqueness")
			}
			if taken {
				return domainerrors.NewDuplicateFieldError("email")
			}
			user.Email = input.Email
			changed = true
		}
		if input.Phone != "" && input.Phone != user.Phone {
			user.Phone = input.Phone
			changed = true
		}
		if input.Address != "" {
			if parsed := entity.ParseAddress(input.Address); parsed != user.Address {
				user.Address = parsed
				changed = true
			}
		}

		passwordChanged, err := srv.applyPasswordUpdate(input.Password, &user.PasswordHash)
		if err != nil {
			return err
		}
		changed = changed || passwordChanged

		if !changed {
			output = &usecase.UpdateUserProfileOutput{Changed: false, User: user}

			return nil
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user profile")
		}

		output = &usecase.UpdateUserProfileOutput{Changed: true, User: user}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User profile update failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user profile update transaction")
	}

	return output, nil
}

// UpdateCompanyProfile applies a field-by-field diff to a company account.
func (srv *authService) UpdateCompanyProfile(ctx context.Context, input *usecase.UpdateCompanyProfileInput) (*usecase.UpdateCompanyProfileOutput, error) {
	srv.log(ctx).Info("Starting company profile update", slog.Any("companyID", input.CompanyID))

	var output *usecase.UpdateCompanyProfileOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		companyRepo := repoFactory.CompanyRepo()

		company, err := companyRepo.FindByID(ctx, input.CompanyID)
		if err != nil {
			if errors.Is(err, repository.ErrCompanyNotFound) {
				return errors.Wrap(domainerrors.ErrCompanyNotFound, "company profile update failed")
			}

			return errors.Wrap(err, "failed to load company for profile update")
		}

		changed := false
		if input.CompanyName != "" && input.CompanyName != company.CompanyName {
			taken, existsErr := companyRepo.ExistsByName(ctx, input.CompanyName)
			if existsErr != nil {
				return errors.Wrap(existsErr, "failed to check company name uniqueness")
			}
			if taken {
				return domainerrors.NewDuplicateFieldError("companyName")
			}
			company.CompanyName = input.CompanyName
			changed = true
		}
		if input.CompanyType != "" && input.CompanyType != company.CompanyType {
			company.CompanyType = input.CompanyType
			changed = true
		}
		if input.Email != "" && input.Email != company.Email {
			taken, existsErr := companyRepo.ExistsByEmail(ctx, input.Email)
			if existsErr != nil {
				return errors.Wrap(existsErr, "failed to check email uniqueness")
			}
			if taken {
				return domainerrors.NewDuplicateFieldError("email")
			}
			company.Email = input.Email
			changed = true
		}
		if input.Phone != "" && input.Phone != company.Phone {
			taken, existsErr := companyRepo.ExistsByPhone(ctx, input.Phone)
			if existsErr != nil {
				return errors.Wrap(existsErr, "failed to check phone uniqueness")
			}
			if taken {
				return domainerrors.NewDuplicateFieldError("phone")
			}
			company.Phone = input.Phone
			changed = true
		}
		if input.AdministratorName != "" && input.AdministratorName != company.AdministratorName {
			company.AdministratorName = input.AdministratorName
			changed = true
		}
		if input.MedicalLicense != "" && input.MedicalLicense != company.MedicalLicense {
			taken, existsErr := companyRepo.ExistsByLicense(ctx, input.MedicalLicense)
			if existsErr != nil {
				return errors.Wrap(existsErr, "failed to check medical license uniqueness")
			}
			if taken {
				return domainerrors.NewDuplicateFieldError("medicalLicense")
			}
			company.MedicalLicense = input.MedicalLicense
			changed = true
		}
		if input.Address != "" {
			if parsed := entity.ParseAddress(input.Address); parsed != company.Address {
				company.Address = parsed
				changed = true
			}
		}

		passwordChanged, err := srv.applyPasswordUpdate(input.Password, &company.PasswordHash)
		if err != nil {
			return err
		}
		changed = changed || passwordChanged

		if !changed {
			output = &usecase.UpdateCompanyProfileOutput{Changed: false, Company: company}

			return nil
		}

		if err := companyRepo.Update(ctx, company); err != nil {
			return errors.Wrap(err, "failed to update company profile")
		}

		output = &usecase.UpdateCompanyProfileOutput{Changed: true, Company: company}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Company profile update failed", slog.Any("companyID", input.CompanyID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute company profile update transaction")
	}

	return output, nil
}

// applyPasswordUpdate implements verify-or-set: a password matching the stored
// hash leaves it untouched, any other value becomes the new password.
func (srv *authService) applyPasswordUpdate(password string, hash *string) (bool, error) {
	if password == "" || srv.hasher.Check(password, *hash) {
		return false, nil
	}

	if err := srv.hasher.ValidatePasswordStrength(password); err != nil {
		return false, errors.Wrap(domainerrors.ErrPasswordStrength, err.Error())
	}

	newHash, err := srv.hasher.Hash(password)
	if err != nil {
		return false, errors.Wrap(err, "failed to hash new password")
	}
	*hash = newHash

	return true, nil
}

// ValidateToken reports whether the bearer token verifies. It never surfaces
// an error; all uncertainty counts as invalid.
func (srv *authService) ValidateToken(ctx context.Context, tokenString string) bool {
	if tokenString == "" {
		return false
	}

	if _, err := srv.tokenService.Validate(tokenString); err != nil {
		srv.log(ctx).Debug("Token validation failed", slog.Any("error", err))

		return false
	}

	return true
}
