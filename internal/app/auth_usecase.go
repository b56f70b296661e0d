package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"quirknotes/internal/domain/entities"
	"quirknotes/internal/domain/services"
	"quirknotes/internal/ports/api"
	"quirknotes/internal/ports/repositories"
	svc "quirknotes/internal/ports/services"
	"quirknotes/pkg/logger"
)

const (
	methodRegister     = "Register"
	methodLogin        = "Login"
	methodAuthenticate = "Authenticate"

	msgStartRegistration   = "starting user registration"
	msgEmptyUsername       = "empty username provided"
	msgEmptyPassword       = "empty password provided"
	msgUsernameExists      = "user with this username already exists"
	msgUserRegistered      = "user registered successfully"
	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt with non-existent username"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"
	msgTokenRejected       = "access token rejected"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrGenerateToken     = "failed to generate access token"
	msgErrFindingUser       = "error finding user by username"
	msgErrVerifyingPassword = "error verifying password"

	errCtxValidatingUsername = "validating username"
	errCtxValidatingPassword = "validating password"
	errCtxCheckingUser       = "checking existing user"
	errCtxUsernameTaken      = "username already registered"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxGeneratingToken    = "generating token"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxAuthenticating     = "authenticating"
)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo     repositories.UserRepository
	passwordSvc  svc.PasswordService
	tokenSvc     svc.TokenService
	storeTimeout time.Duration
}

// NewAuthUseCase создает сервис аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
	storeTimeout time.Duration,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:     userRepo,
		passwordSvc:  passwordSvc,
		tokenSvc:     tokenSvc,
		storeTimeout: storeTimeout,
	}
}

// Register создает пользователя и сразу выдает ему токен.
func (a *AuthUseCaseImpl) Register(ctx context.Context, username, password string) (*services.TokenResult, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("username", username))
	log.Debug(ctx, msgStartRegistration)

	if username == "" {
		log.Debug(ctx, msgEmptyUsername)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUsername, entities.ErrEmptyUsername)
	}
	if password == "" {
		log.Debug(ctx, msgEmptyPassword)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, entities.ErrEmptyPassword)
	}

	existingUser, err := a.findUser(ctx, username)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if existingUser != nil {
		log.Debug(ctx, msgUsernameExists)
		return nil, fmt.Errorf("%s: %w", errCtxUsernameTaken, entities.ErrUsernameTaken)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPassword) {
			log.Debug(ctx, msgErrHashPassword, zap.Error(err))
		} else {
			log.Error(ctx, msgErrHashPassword, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	storeCtx, cancel := storeContext(ctx, a.storeTimeout)
	createdUser, err := a.userRepo.Create(storeCtx, &entities.User{
		Username:     username,
		PasswordHash: hashedPassword,
	})
	cancel()
	if err != nil {
		if errors.Is(err, entities.ErrUsernameTaken) {
			log.Debug(ctx, msgUsernameExists)
		} else {
			log.Error(ctx, msgErrCreateUser, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered)

	return a.issueToken(ctx, log, createdUser.Username)
}

// Login проверяет учетные данные и выдает токен.
func (a *AuthUseCaseImpl) Login(ctx context.Context, username, password string) (*services.TokenResult, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("username", username))
	log.Debug(ctx, msgLoginAttempt)

	if username == "" {
		log.Debug(ctx, msgEmptyUsername)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUsername, entities.ErrEmptyUsername)
	}
	if password == "" {
		log.Debug(ctx, msgEmptyPassword)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, entities.ErrEmptyPassword)
	}

	user, err := a.findUser(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth)
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	log.Info(ctx, msgUserLoggedIn)

	return a.issueToken(ctx, log, user.Username)
}

// Authenticate возвращает имя пользователя из действующего токена.
func (a *AuthUseCaseImpl) Authenticate(ctx context.Context, token string) (string, error) {
	username, err := a.tokenSvc.ValidateAccessToken(ctx, token)
	if err != nil {
		logger.Log(ctx).Debug(ctx, msgTokenRejected,
			zap.String("method", methodAuthenticate),
			zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxAuthenticating, err)
	}
	return username, nil
}

func (a *AuthUseCaseImpl) findUser(ctx context.Context, username string) (*entities.User, error) {
	storeCtx, cancel := storeContext(ctx, a.storeTimeout)
	defer cancel()
	return a.userRepo.FindByUsername(storeCtx, username)
}

func (a *AuthUseCaseImpl) issueToken(ctx context.Context, log *logger.Logger, username string) (*services.TokenResult, error) {
	token, expiresAt, err := a.tokenSvc.GenerateAccessToken(ctx, username)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxGeneratingToken, services.ErrTokenGenerationFailed, err)
	}

	return &services.TokenResult{
		Username:    username,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
