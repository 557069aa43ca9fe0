package service

import (
	"context"
	"errors"
	"testing"

	"craft-economy/internal/core/ports/mocks"
	"craft-economy/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := mocks.NewMockKeyVerifier(ctrl)
	tokens := mocks.NewMockTokenService(ctrl)
	svc := NewAuthService(verifier, tokens, "$argon2id$hash", zerolog.Nop())

	verifier.EXPECT().Verify("sk_admin", "$argon2id$hash").Return(true, nil)
	tokens.EXPECT().Generate("admin").Return("jwt-token", nil)

	token, err := svc.Login(context.Background(), "sk_admin")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestAuthService_Login_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := mocks.NewMockKeyVerifier(ctrl)
	tokens := mocks.NewMockTokenService(ctrl)
	svc := NewAuthService(verifier, tokens, "$argon2id$hash", zerolog.Nop())

	verifier.EXPECT().Verify("wrong", "$argon2id$hash").Return(false, nil)

	_, err := svc.Login(context.Background(), "wrong")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Login_NoHashConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewAuthService(mocks.NewMockKeyVerifier(ctrl), mocks.NewMockTokenService(ctrl), "", zerolog.Nop())

	_, err := svc.Login(context.Background(), "anything")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Login_VerifierError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := mocks.NewMockKeyVerifier(ctrl)
	svc := NewAuthService(verifier, mocks.NewMockTokenService(ctrl), "$argon2id$hash", zerolog.Nop())

	verifier.EXPECT().Verify("key", "$argon2id$hash").Return(false, errors.New("malformed hash"))

	_, err := svc.Login(context.Background(), "key")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}
