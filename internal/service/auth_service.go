package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dayboard/internal/auth"
	"dayboard/internal/cache"
	apperrors "dayboard/internal/errors"
	"dayboard/internal/model"
	"dayboard/internal/repository"
)

const (
	bcryptCost   = 10
	userCacheTTL = 5 * time.Minute
)

// AuthResult is returned by register and login.
type AuthResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// AuthService handles accounts and bearer tokens.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Verify(ctx context.Context, token string) (uuid.UUID, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	cache      *cache.Client
}

// NewAuthService creates a new authentication service. cache may be nil.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, cache *cache.Client) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		cache:      cache,
	}
}

func (s *authService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id.String())
}

// Register creates a user with a bcrypt-hashed password and signs them in.
func (s *authService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	name, email, err := validateRegistration(name, email, password)
	if err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal("check user existence", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperrors.Internal("hash password", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, apperrors.Internal("create user", err)
	}

	return s.issue(user)
}

// Login returns the same error for an unknown email and a wrong password.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Burn comparable time so response latency does not reveal the miss.
			_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Internal("find user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(user)
}

// Verify checks the token signature and expiry and that its user still exists.
func (s *authService) Verify(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, apperrors.ErrUnauthorized
	}
	userID, err := s.jwtService.UserID(token)
	if err != nil {
		return uuid.Nil, apperrors.ErrUnauthorized
	}
	if _, err := s.lookupUser(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperrors.ErrUnauthorized
		}
		return uuid.Nil, apperrors.Internal("verify user", err)
	}
	return userID, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.lookupUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Internal("get profile", err)
	}
	return user, nil
}

// UpdateProfile changes only the supplied fields; absent ones are untouched.
func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*model.User, error) {
	fields, err := validateProfileUpdate(update)
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateFields(ctx, userID, fields); err != nil {
			return nil, apperrors.Internal("update profile", err)
		}
		_ = s.cache.Delete(ctx, s.cacheKey(userID))
	}

	return s.GetProfile(ctx, userID)
}

func (s *authService) lookupUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, s.cacheKey(id), user, userCacheTTL)
	return user, nil
}

func (s *authService) issue(user *model.User) (*AuthResult, error) {
	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.Internal("generate token", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

var (
	dummyHashOnce sync.Once
	dummyHashVal  []byte
)

func dummyHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHashVal, _ = bcrypt.GenerateFromPassword([]byte("dayboard-dummy-password"), bcryptCost)
	})
	return dummyHashVal
}
