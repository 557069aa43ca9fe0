package service

import (
	"context"

	"craft-economy/internal/core/ports"
	"craft-economy/pkg/apperror"

	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService: a single configured admin
// key, verified against its stored hash, exchanged for a JWT.
type AuthServiceImpl struct {
	verifier ports.KeyVerifier
	tokens   ports.TokenService
	keyHash  string
	log      zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(verifier ports.KeyVerifier, tokens ports.TokenService, keyHash string, log zerolog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		verifier: verifier,
		tokens:   tokens,
		keyHash:  keyHash,
		log:      log,
	}
}

// Login implements ports.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, accessKey string) (string, error) {
	if s.keyHash == "" {
		s.log.Warn().Msg("admin login attempted with no key hash configured")
		return "", apperror.ErrInvalidCredentials()
	}
	ok, err := s.verifier.Verify(accessKey, s.keyHash)
	if err != nil {
		return "", apperror.InternalError(err)
	}
	if !ok {
		s.log.Warn().Msg("admin login rejected")
		return "", apperror.ErrInvalidCredentials()
	}

	token, err := s.tokens.Generate("admin")
	if err != nil {
		return "", apperror.InternalError(err)
	}
	s.log.Info().Msg("admin session issued")
	return token, nil
}
