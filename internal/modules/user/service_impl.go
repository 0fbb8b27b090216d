package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/nthanfp/vhiweb-assignment/internal/validate"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) RegisterUser(ctx context.Context, req RegisterRequest) (*User, error) {
	errs := validate.Errors{}
	errs.Required("email", req.Email)
	if req.Email != "" && !strings.Contains(req.Email, "@") {
		errs.Add("email", "The email field must be a valid email address.")
	}
	errs.Required("password", req.Password)
	if req.Password != "" && len(req.Password) < 8 {
		errs.Add("password", "The password field must be at least 8 characters.")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
