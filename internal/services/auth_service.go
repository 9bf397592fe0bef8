package services

import (
	"context"
	"errors"
	"strings"

	"banarts/internal/auth"
	"banarts/internal/logger"
	"banarts/internal/models"
	"banarts/internal/repositories"
	"banarts/internal/services/dto"
	"banarts/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.AuthResponse, error)
	// Register creates a user account without signing it in; the security
	// question is optional here.
	Register(db *gorm.DB, req *dto.SignupRequest) (*models.User, error)
	AuthStatus(db *gorm.DB, email string) (*dto.AuthStatusResponse, error)
	ChangePassword(db *gorm.DB, req *dto.ChangePasswordRequest) error
	ForgotPassword(db *gorm.DB, req *dto.ForgotPasswordRequest) error
	SeedFirstAdmin(db *gorm.DB, admin AdminSeed) (bool, error)
}

// AdminSeed describes the account created on first start.
type AdminSeed struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AccountNotifier tells a user about security-relevant account changes.
type AccountNotifier interface {
	PasswordChanged(ctx context.Context, to, name string) error
	PasswordReset(ctx context.Context, to, name string) error
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
	notifier AccountNotifier
}

// NewAuthService builds the service; notifier may be nil.
func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager, notifier AccountNotifier) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
		notifier: notifier,
	}
}

// Login checks the credentials and issues a token.
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err, "auth")
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.CtxWarn(statementContext(db), "Login rejected", "email", user.Email)
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.NewForbiddenError("Account is disabled")
	}

	return s.issueToken(user)
}

func (s *AuthServiceImpl) Signup(db *gorm.DB, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if strings.TrimSpace(req.SecurityQuestion) == "" || strings.TrimSpace(req.SecurityAnswer) == "" {
		return nil, apperrors.NewBadRequestError("Security question and answer are required")
	}
	user, err := createAccount(db, s.userRepo, newAccount{
		Email:            req.Email,
		Password:         req.Password,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Role:             models.UserRoleUser,
		SecurityQuestion: req.SecurityQuestion,
		SecurityAnswer:   req.SecurityAnswer,
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(statementContext(db), "User signed up", "user_id", user.ID)
	return s.issueToken(user)
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.SignupRequest) (*models.User, error) {
	if (strings.TrimSpace(req.SecurityQuestion) == "") != (strings.TrimSpace(req.SecurityAnswer) == "") {
		return nil, apperrors.NewBadRequestError("Security question and answer must be given together")
	}
	user, err := createAccount(db, s.userRepo, newAccount{
		Email:            req.Email,
		Password:         req.Password,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Role:             models.UserRoleUser,
		SecurityQuestion: req.SecurityQuestion,
		SecurityAnswer:   req.SecurityAnswer,
	})
	if err != nil {
		return nil, err
	}
	logger.CtxInfo(statementContext(db), "User registered", "user_id", user.ID)
	return user, nil
}

func (s *AuthServiceImpl) AuthStatus(db *gorm.DB, email string) (*dto.AuthStatusResponse, error) {
	user, err := s.findUser(db, email)
	if err != nil {
		return nil, err
	}

	resp := &dto.AuthStatusResponse{Success: true, HasOAuthProvider: user.IsOAuth()}
	if user.IsOAuth() {
		provider := user.OAuthProvider
		resp.OAuthProvider = &provider
	}
	return resp, nil
}

func (s *AuthServiceImpl) ChangePassword(db *gorm.DB, req *dto.ChangePasswordRequest) error {
	user, err := s.findUser(db, req.Email)
	if err != nil {
		return err
	}
	if user.IsOAuth() {
		return apperrors.ErrOAuthAccount(user.OAuthProvider)
	}
	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrWrongCurrentPassword
	}
	if err := s.setPassword(db, user, req.NewPassword); err != nil {
		return err
	}
	s.notifyAccount(db, user, AccountNotifier.PasswordChanged)
	return nil
}

// ForgotPassword resets the password; accounts with a security answer must
// supply it.
func (s *AuthServiceImpl) ForgotPassword(db *gorm.DB, req *dto.ForgotPasswordRequest) error {
	user, err := s.findUser(db, req.Email)
	if err != nil {
		return err
	}
	if user.IsOAuth() {
		return apperrors.ErrOAuthAccount(user.OAuthProvider)
	}
	if user.SecurityAnswerHash != "" && !auth.CheckSecurityAnswer(req.SecurityAnswer, user.SecurityAnswerHash) {
		return apperrors.ErrWrongSecurityAnswer
	}
	if err := s.setPassword(db, user, req.NewPassword); err != nil {
		return err
	}
	s.notifyAccount(db, user, AccountNotifier.PasswordReset)
	return nil
}

// SeedFirstAdmin creates the admin account when no user holds its email.
// It reports whether an account was created.
func (s *AuthServiceImpl) SeedFirstAdmin(db *gorm.DB, admin AdminSeed) (bool, error) {
	ctx := statementContext(db)
	if admin.Email == "" {
		return false, nil
	}

	_, err := s.userRepo.FindByEmail(db, admin.Email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return false, err
	}
	if admin.Password == "" {
		logger.CtxWarn(ctx, "Admin account missing and no admin password configured", "email", admin.Email)
		return false, nil
	}

	hash, err := auth.HashPassword(admin.Password)
	if err != nil {
		return false, err
	}
	user := &models.User{
		Email:        admin.Email,
		PasswordHash: hash,
		FirstName:    admin.FirstName,
		LastName:     admin.LastName,
		Role:         models.UserRoleAdmin,
		UserType:     models.UserTypeVisitor,
		IsActive:     true,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		return false, err
	}
	logger.CtxInfo(ctx, "Admin account created", "email", user.Email)
	return true, nil
}

// ---------------- helpers ----------------

func (s *AuthServiceImpl) findUser(db *gorm.DB, email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(db, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err, "auth")
	}
	return user, nil
}

func (s *AuthServiceImpl) setPassword(db *gorm.DB, user *models.User, password string) error {
	if err := auth.ValidatePassword(password); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.UpdatePassword(db, user.ID, hash); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.DatabaseError(err, "auth")
	}
	logger.CtxInfo(statementContext(db), "Password changed", "user_id", user.ID)
	return nil
}

// notifyAccount sends a notice; mail failures never fail the request.
func (s *AuthServiceImpl) notifyAccount(db *gorm.DB, user *models.User, send func(AccountNotifier, context.Context, string, string) error) {
	if s.notifier == nil {
		return
	}
	ctx := statementContext(db)
	if err := send(s.notifier, ctx, user.Email, user.FirstName); err != nil {
		logger.CtxWithError(ctx, "Failed to send account notice", err, "user_id", user.ID)
	}
}

func (s *AuthServiceImpl) issueToken(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		Success: true,
		Token:   token,
		User:    dto.NewUserSummary(user),
	}, nil
}
