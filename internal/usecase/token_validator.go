package usecase

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator_mock.go -package=usecasemock

import (
	"errors"

	"escape-booking/internal/domain/account"
	"escape-booking/internal/pkg/jwt"
)

var ErrTokenValidation = errors.New("token validation failed")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (account.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (account.Principal, error) {
	principal, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return account.Principal{}, errors.Join(ErrTokenValidation, err)
	}
	return principal, nil
}
