package services

import (
	"errors"
	"mime/multipart"
	"strings"

	"banarts/internal/auth"
	"banarts/internal/logger"
	"banarts/internal/models"
	"banarts/internal/repositories"
	"banarts/internal/services/dto"
	"banarts/pkg/apperrors"

	"gorm.io/gorm"
)

const profilePictureFolder = "profiles"

type UserService interface {
	ListUsers(db *gorm.DB) ([]models.User, error)
	GetUser(db *gorm.DB, id uint) (*models.User, error)
	CreateUser(db *gorm.DB, req *dto.CreateUserRequest) (*models.User, error)
	UpdateUser(db *gorm.DB, id uint, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(db *gorm.DB, id uint) error
	UploadProfilePicture(db *gorm.DB, userID uint, file *multipart.FileHeader) (string, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	uploads  UploadService
}

func NewUserService(userRepo repositories.UserRepository, uploads UploadService) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		uploads:  uploads,
	}
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB) ([]models.User, error) {
	users, err := s.userRepo.List(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err, "user")
	}
	return users, nil
}

func (s *UserServiceImpl) GetUser(db *gorm.DB, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		return nil, mapUserError(err)
	}
	return user, nil
}

// CreateUser adds an account on behalf of an administrator; the role
// defaults to user.
func (s *UserServiceImpl) CreateUser(db *gorm.DB, req *dto.CreateUserRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = models.UserRoleUser
	}
	user, err := createAccount(db, s.userRepo, newAccount{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
	})
	if err != nil {
		return nil, err
	}
	logger.CtxInfo(statementContext(db), "User created", "user_id", user.ID, "role", user.Role)
	return s.GetUser(db, user.ID)
}

func (s *UserServiceImpl) UpdateUser(db *gorm.DB, id uint, req *dto.UpdateUserRequest) (*models.User, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}

	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		return nil, mapUserError(err)
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Bio != nil {
		user.Bio = sanitize(*req.Bio)
	}
	if req.Location != nil {
		user.Location = *req.Location
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, mapUserError(err)
	}
	return s.GetUser(db, id)
}

func (s *UserServiceImpl) DeleteUser(db *gorm.DB, id uint) error {
	if err := s.userRepo.Delete(db, id); err != nil {
		return mapUserError(err)
	}
	logger.CtxInfo(statementContext(db), "User deleted", "user_id", id)
	return nil
}

// UploadProfilePicture stores file and points the user's profile_picture at it.
func (s *UserServiceImpl) UploadProfilePicture(db *gorm.DB, userID uint, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", apperrors.NewBadRequestError("No file uploaded")
	}
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return "", mapUserError(err)
	}

	ctx := statementContext(db)
	url, err := s.uploads.SaveImage(ctx, file, profilePictureFolder)
	if err != nil {
		return "", err
	}

	old := user.ProfilePicture
	user.ProfilePicture = url
	if err := s.userRepo.Update(db, user); err != nil {
		s.uploads.Remove(ctx, url)
		return "", mapUserError(err)
	}
	if old != "" && old != url {
		s.uploads.Remove(ctx, old)
	}
	return models.NormalizeImagePath(url), nil
}

// newAccount is what every account creation path collects.
type newAccount struct {
	Email            string
	Password         string
	FirstName        string
	LastName         string
	Role             models.UserRole
	SecurityQuestion string
	SecurityAnswer   string
}

// createAccount checks the password rule, hashes the secrets and inserts an
// active user. A taken email maps to ErrEmailAlreadyExists.
func createAccount(db *gorm.DB, repo repositories.UserRepository, in newAccount) (*models.User, error) {
	if err := auth.ValidatePassword(in.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	passwordHash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:            in.Email,
		PasswordHash:     passwordHash,
		FirstName:        strings.TrimSpace(in.FirstName),
		LastName:         strings.TrimSpace(in.LastName),
		Role:             in.Role,
		UserType:         models.UserTypeVisitor,
		IsActive:         true,
		SecurityQuestion: strings.TrimSpace(in.SecurityQuestion),
	}
	if strings.TrimSpace(in.SecurityAnswer) != "" {
		answerHash, err := auth.HashSecurityAnswer(in.SecurityAnswer)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.SecurityAnswerHash = answerHash
	}

	if err := repo.Create(db, user); err != nil {
		return nil, mapUserError(err)
	}
	return user, nil
}

func mapUserError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrUserNotFound):
		return apperrors.ErrUserNotFound
	case errors.Is(err, repositories.ErrUserAlreadyExists):
		return apperrors.ErrEmailAlreadyExists
	default:
		return apperrors.DatabaseError(err, "user")
	}
}
