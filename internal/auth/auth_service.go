package auth

import (
	"context"
	"os"
	"time"

	autherrors "github.com/DevHanzala/TMS-PORTAL/internal/auth/errors"
	"github.com/DevHanzala/TMS-PORTAL/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

const tokenTTL = 12 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	// LoginHR checks the shared HR password against the configured
	// bcrypt hash and issues an HR session token.
	LoginHR(ctx context.Context, password string) (token string, resp AuthResponse, err error)

	// LoginEmployee authenticates an employee by email + CNIC lookup
	// against the roster.
	LoginEmployee(ctx context.Context, email, cnic string) (token string, resp AuthResponse, err error)
}

type service struct {
	employees employee.Repository
}

func NewService(employees employee.Repository) Service {
	return &service{employees: employees}
}

func (s *service) LoginHR(ctx context.Context, password string) (string, AuthResponse, error) {
	hash := os.Getenv("HR_PASSWORD_HASH")
	if hash == "" {
		return "", AuthResponse{}, autherrors.ErrHRPasswordNotConfigured
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := generateToken("hr", RoleHR, tokenTTL)
	if err != nil {
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return token, AuthResponse{Role: RoleHR}, nil
}

func (s *service) LoginEmployee(ctx context.Context, email, cnic string) (string, AuthResponse, error) {
	emp, err := s.employees.FindByEmailAndCNIC(ctx, email, cnic)
	if err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := generateToken(emp.ID.String(), RoleEmployee, tokenTTL)
	if err != nil {
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return token, AuthResponse{
		ID:         emp.ID.String(),
		EmployeeID: emp.EmployeeID,
		Email:      emp.Email,
		Name:       emp.FullName,
		Role:       RoleEmployee,
	}, nil
}

func generateToken(userID, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
