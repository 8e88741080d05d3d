package auth

import (
	"strings"

	"github.com/xyz-asif/ecocheck-admin/internal/pkg/validator"
)

func ValidateLogin(req *LoginRequest) error {
	req.Email = strings.TrimSpace(req.Email)
	if err := validator.Email(req.Email); err != nil {
		return err
	}
	if req.Password == "" {
		return validator.ErrPasswordRequired
	}
	return nil
}

func ValidateRegister(req *RegisterRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if !validator.IsValidName(req.Name) {
		return validator.ErrNameInvalid
	}
	if err := validator.Email(req.Email); err != nil {
		return err
	}
	return validator.PasswordPair(req.Password, req.ConfirmPassword)
}
