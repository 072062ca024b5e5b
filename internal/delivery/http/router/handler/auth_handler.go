// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"medisupply/internal/delivery/http/response"
	"medisupply/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// SignupUserRequest represents the request body for individual buyer registration
type SignupUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password" validate:"required"`
}

// SignupCompanyRequest represents the request body for company registration
type SignupCompanyRequest struct {
	CompanyName       string `json:"companyName" validate:"required"`
	CompanyType       string `json:"companyType" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone" validate:"required"`
	AdministratorName string `json:"administratorName" validate:"required"`
	MedicalLicense    string `json:"medicalLicense" validate:"required"`
	Address           string `json:"address"`
	Password          string `json:"password" validate:"required"`
}

// SignupAdminRequest represents the request body for administrator registration
type SignupAdminRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	AdminCode string `json:"adminCode" validate:"required"`
}

// LoginRequest represents the request body shared by all login endpoints
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserProfileRequest represents the request body for a user profile update
type UpdateUserProfileRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password" validate:"required"`
}

// UpdateCompanyProfileRequest represents the request body for a company profile update
type UpdateCompanyProfileRequest struct {
	CompanyName       string `json:"companyName" validate:"required"`
	CompanyType       string `json:"companyType" validate:"required"`
	Email             string `json:"email" validate:"required,email"`
	Phone             string `json:"phone" validate:"required"`
	AdministratorName string `json:"administratorName" validate:"required"`
	MedicalLicense    string `json:"medicalLicense" validate:"required"`
	Address           string `json:"address"`
	Password          string `json:"password" validate:"required"`
}

// AccountResponse is the account view returned with a fresh token
type AccountResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// AuthResponse is the response body of signup and login endpoints
type AuthResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

func toAuthResponse(output *usecase.AuthOutput) AuthResponse {
	return AuthResponse{
		Token: output.Token,
		Account: AccountResponse{
			ID:    output.Account.ID,
			Name:  output.Account.Name,
			Email: output.Account.Email,
			Role:  output.Account.Role.String(),
		},
	}
}

// SignupUser handles individual buyer registration
func (h *AuthHandler) SignupUser(c echo.Context) error {
	var req SignupUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.authUC.SignupUser(c.Request().Context(), &usecase.SignupUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(output), "Account created successfully")
}

// SignupCompany handles company registration
func (h *AuthHandler) SignupCompany(c echo.Context) error {
	var req SignupCompanyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.authUC.SignupCompany(c.Request().Context(), &usecase.SignupCompanyInput{
		CompanyName:       req.CompanyName,
		CompanyType:       req.CompanyType,
		Email:             req.Email,
		Phone:             req.Phone,
		AdministratorName: req.AdministratorName,
		MedicalLicense:    req.MedicalLicense,
		Address:           req.Address,
		Password:          req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(output), "Account created successfully")
}

// SignupAdmin handles administrator registration
func (h *AuthHandler) SignupAdmin(c echo.Context) error {
	var req SignupAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.authUC.SignupAdmin(c.Request().Context(), &usecase.SignupAdminInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		AdminCode: req.AdminCode,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(output), "Account created successfully")
}

// LoginUser handles individual buyer login
func (h *AuthHandler) LoginUser(c echo.Context) error {
	return h.login(c, h.authUC.LoginUser)
}

// LoginCompany handles company login
func (h *AuthHandler) LoginCompany(c echo.Context) error {
	return h.login(c, h.authUC.LoginCompany)
}

// LoginAdmin handles administrator login
func (h *AuthHandler) LoginAdmin(c echo.Context) error {
	return h.login(c, h.authUC.LoginAdmin)
}

func (h *AuthHandler) login(c echo.Context, loginFn func(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error)) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := loginFn(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output), "Login successful")
}

// UpdateUserProfile handles a user profile update
func (h *AuthHandler) UpdateUserProfile(c echo.Context) error {
	principalID, err := getPrincipalID(c)
	if err != nil {
		return err
	}

	var req UpdateUserProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.authUC.UpdateUserProfile(c.Request().Context(), &usecase.UpdateUserProfileInput{
		UserID:   principalID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !output.Changed {
		return response.NoChange(c, "No changes detected.")
	}

	user := output.User
	return response.Success(c, http.StatusOK, map[string]any{
		"id":      user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"phone":   user.Phone,
		"address": user.Address.String(),
	}, "Profile updated successfully")
}

// UpdateCompanyProfile handles a company profile update
func (h *AuthHandler) UpdateCompanyProfile(c echo.Context) error {
	principalID, err := getPrincipalID(c)
	if err != nil {
		return err
	}

	var req UpdateCompanyProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.authUC.UpdateCompanyProfile(c.Request().Context(), &usecase.UpdateCompanyProfileInput{
		CompanyID:         principalID,
		CompanyName:       req.CompanyName,
		CompanyType:       req.CompanyType,
		Email:             req.Email,
		Phone:             req.Phone,
		AdministratorName: req.AdministratorName,
		MedicalLicense:    req.MedicalLicense,
		Address:           req.Address,
		Password:          req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !output.Changed {
		return response.NoChange(c, "No changes detected.")
	}

	company := output.Company
	return response.Success(c, http.StatusOK, map[string]any{
		"id":                company.ID,
		"companyName":       company.CompanyName,
		"companyType":       company.CompanyType,
		"email":             company.Email,
		"phone":             company.Phone,
		"administratorName": company.AdministratorName,
		"medicalLicense":    company.MedicalLicense,
		"address":           company.Address.String(),
	}, "Profile updated successfully")
}

// ValidateToken reports whether the bearer token of the request is valid.
// It always answers 200; an absent or malformed header counts as invalid.
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	valid := false

	authHeader := c.Request().Header.Get("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if authHeader != "" && tokenString != authHeader {
		valid = h.authUC.ValidateToken(c.Request().Context(), tokenString)
	}

	// Bare body by contract; token checks never use the response envelope.
	return c.JSON(http.StatusOK, map[string]bool{"AUTH": valid})
}

// getPrincipalID extracts the authenticated principal ID set by the auth middleware.
func getPrincipalID(c echo.Context) (uuid.UUID, error) {
	principalID, ok := c.Get("principalID").(uuid.UUID)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	return principalID, nil
}
