package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dayboard/internal/auth"
	apperrors "dayboard/internal/errors"
	"dayboard/internal/model"
)

func newTestAuthService(repo *MockUserRepository) AuthService {
	return NewAuthService(repo, auth.NewJWTService("test-secret", 0), nil)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name         string
		userName     string
		email        string
		password     string
		setupMock    func(*MockUserRepository)
		expectedErr  error
		expectedKind apperrors.Kind
	}{
		{
			name:     "successful registration",
			userName: "Ann",
			email:    "Ann@X.com ",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ann@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:     "email taken case-insensitively",
			userName: "Ann",
			email:    "ANN@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ann@x.com").Return(&model.User{Email: "ann@x.com"}, nil)
			},
			expectedErr:  apperrors.ErrEmailTaken,
			expectedKind: apperrors.KindConflict,
		},
		{
			name:     "duplicate key on insert",
			userName: "Ann",
			email:    "ann@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ann@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
			},
			expectedErr:  apperrors.ErrEmailTaken,
			expectedKind: apperrors.KindConflict,
		},
		{
			name:         "short password",
			userName:     "Ann",
			email:        "ann@x.com",
			password:     "12345",
			setupMock:    func(m *MockUserRepository) {},
			expectedErr:  apperrors.Validation("password must be at least 6 characters"),
			expectedKind: apperrors.KindValidation,
		},
		{
			name:         "multibyte password over bcrypt limit",
			userName:     "Ann",
			email:        "ann@x.com",
			password:     strings.Repeat("é", 40),
			setupMock:    func(m *MockUserRepository) {},
			expectedErr:  apperrors.Validation("password must be at most 72 bytes"),
			expectedKind: apperrors.KindValidation,
		},
		{
			name:         "missing name",
			userName:     "  ",
			email:        "ann@x.com",
			password:     "secret1",
			setupMock:    func(m *MockUserRepository) {},
			expectedErr:  apperrors.Validation("name, email and password are required"),
			expectedKind: apperrors.KindValidation,
		},
		{
			name:     "store failure",
			userName: "Ann",
			email:    "ann@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ann@x.com").Return(nil, errors.New("db down"))
			},
			expectedErr:  errors.New("check user existence: db down"),
			expectedKind: apperrors.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			result, err := newTestAuthService(mockRepo).Register(context.Background(), tt.userName, tt.email, tt.password)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
				assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.NotEmpty(t, result.Token)
				assert.Equal(t, "Ann", result.User.Name)
				assert.Equal(t, "ann@x.com", result.User.Email)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("secret1")))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	stored := &model.User{ID: userID, Name: "Ann", Email: "ann@x.com", PasswordHash: hashed(t, "secret1")}

	t.Run("successful login", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "ann@x.com").Return(stored, nil)

		svc := newTestAuthService(mockRepo)
		result, err := svc.Login(context.Background(), " ANN@x.com", "secret1")

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, userID, result.User.ID)

		got, err := auth.NewJWTService("test-secret", 0).UserID(result.Token)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "ann@x.com").Return(stored, nil)
		mockRepo.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, gorm.ErrRecordNotFound)
		svc := newTestAuthService(mockRepo)

		_, wrongPassword := svc.Login(context.Background(), "ann@x.com", "wrong-password")
		_, unknownEmail := svc.Login(context.Background(), "nobody@x.com", "secret1")

		assert.Equal(t, apperrors.ErrInvalidCredentials, wrongPassword)
		assert.Equal(t, wrongPassword, unknownEmail)
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
		mockRepo.AssertExpectations(t)
	})

	t.Run("store failure is internal", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByEmail", mock.Anything, "ann@x.com").Return(nil, errors.New("db down"))

		_, err := newTestAuthService(mockRepo).Login(context.Background(), "ann@x.com", "secret1")
		assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
	})
}

func TestAuthService_Verify(t *testing.T) {
	userID := uuid.New()
	jwtSvc := auth.NewJWTService("test-secret", 0)
	token, err := jwtSvc.GenerateToken(userID)
	require.NoError(t, err)
	expired, err := auth.NewJWTService("test-secret", -time.Minute).GenerateToken(userID)
	require.NoError(t, err)

	t.Run("valid token for existing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)

		got, err := NewAuthService(mockRepo, jwtSvc, nil).Verify(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("user no longer exists", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewAuthService(mockRepo, jwtSvc, nil).Verify(context.Background(), token)
		assert.Equal(t, apperrors.ErrUnauthorized, err)
	})

	for name, tok := range map[string]string{"missing": "", "malformed": "abc", "expired": expired} {
		t.Run(name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			_, err := NewAuthService(mockRepo, jwtSvc, nil).Verify(context.Background(), tok)
			assert.Equal(t, apperrors.ErrUnauthorized, err)
			mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("only supplied fields change", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("UpdateFields", mock.Anything, userID, map[string]interface{}{"avatar": "https://img/a.png"}).Return(nil)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Name: "Ann", Avatar: "https://img/a.png"}, nil)

		avatar := "https://img/a.png"
		user, err := newTestAuthService(mockRepo).UpdateProfile(context.Background(), userID, ProfileUpdate{Avatar: &avatar})

		require.NoError(t, err)
		assert.Equal(t, "Ann", user.Name)
		assert.Equal(t, avatar, user.Avatar)
		mockRepo.AssertExpectations(t)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		blank := "   "

		_, err := newTestAuthService(mockRepo).UpdateProfile(context.Background(), userID, ProfileUpdate{Name: &blank})

		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		mockRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty update returns current profile", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Name: "Ann"}, nil)

		user, err := newTestAuthService(mockRepo).UpdateProfile(context.Background(), userID, ProfileUpdate{})

		require.NoError(t, err)
		assert.Equal(t, "Ann", user.Name)
		mockRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	id := uuid.New()
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := newTestAuthService(mockRepo).GetProfile(context.Background(), id)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
