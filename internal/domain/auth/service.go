package auth

import (
	"context"
	"net/mail"
	"strings"

	"NestEgg/internal/domain/user"
	appErrors "NestEgg/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type Credentials struct {
	Email    string
	Password string
}

type Service struct {
	Repository  user.UserRepository
	UserService *user.Service
}

func NewService(repo user.UserRepository, userSvc *user.Service) *Service {
	return &Service{
		Repository:  repo,
		UserService: userSvc,
	}
}

// Register creates a new account. The plaintext password never reaches the
// repository; it is replaced with the bcrypt hash before persistence.
func (s *Service) Register(ctx context.Context, name, email, password string) (*user.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	if name == "" {
		return nil, appErrors.NewValidationError("name", "is required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := PasswordRequirements(password); err != nil {
		return nil, err
	}

	exists, err := s.emailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, appErrors.ErrEmailAlreadyInUse
	}

	hash, err := PasswordHashing(password)
	if err != nil {
		return nil, err
	}

	entity := &user.User{
		Name:     name,
		Email:    email,
		Password: hash,
	}
	if err := s.UserService.Create(ctx, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

// Login verifies credentials. Unknown email and wrong password produce the
// same INVALID_CREDENTIALS error so accounts cannot be enumerated.
func (s *Service) Login(ctx context.Context, creds Credentials) (*user.User, error) {
	email := strings.TrimSpace(strings.ToLower(creds.Email))
	if email == "" || creds.Password == "" {
		return nil, appErrors.NewValidationError("credentials", "email and password are required")
	}

	entity, err := s.Repository.GetByEmail(ctx, email)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrUserNotFound.Code {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := PasswordValidate(creds.Password, entity.Password); err != nil {
		return nil, err
	}

	return entity, nil
}

func (s *Service) emailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.Repository.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		return false, appErrors.ErrInternalServer.WithError(err)
	}
	if appErr.Code == appErrors.ErrUserNotFound.Code {
		return false, nil
	}
	return false, appErr
}

func validateEmail(email string) error {
	if email == "" {
		return appErrors.NewValidationError("email", "is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return appErrors.NewValidationError("email", "must be a valid email address")
	}
	return nil
}

func PasswordRequirements(password string) error {
	if len(password) < 8 {
		return appErrors.NewValidationError("password", "must be at least 8 characters")
	}
	return nil
}

func PasswordValidate(inputPassword, storedHash string) error {
	if inputPassword == "" {
		return appErrors.NewValidationError("password", "is required")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(inputPassword)); err != nil {
		return appErrors.ErrInvalidCredentials
	}
	return nil
}

func PasswordHashing(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return string(hash), nil
}
