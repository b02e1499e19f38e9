package auth

import (
	"context"
	"testing"

	"eventstay/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockJWT struct{}

func (mockJWT) GenerateToken(userID int64) (string, error) { return "token-for-tests", nil }

func TestService_Register_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := NewService(mockUsers, mockJWT{})

	mockUsers.On("ExistsByEmail", mock.Anything, "attendee@example.com").Return(false, nil)
	mockUsers.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, token, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Attendee",
		Email:    "attendee@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "token-for-tests", token)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := NewService(mockUsers, mockJWT{})

	mockUsers.On("ExistsByEmail", mock.Anything, "attendee@example.com").Return(true, nil)

	_, _, err := service.Register(context.Background(), RegisterRequest{
		Name:     "Attendee",
		Email:    "attendee@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := NewService(mockUsers, mockJWT{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	mockUsers.On("GetByEmail", mock.Anything, "attendee@example.com").
		Return(&domain.User{ID: 42, Email: "attendee@example.com", PasswordHash: string(hash)}, nil)

	user, token, err := service.Login(context.Background(), LoginRequest{
		Email:    "attendee@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.NotEmpty(t, token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := NewService(mockUsers, mockJWT{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	mockUsers.On("GetByEmail", mock.Anything, "attendee@example.com").
		Return(&domain.User{ID: 42, Email: "attendee@example.com", PasswordHash: string(hash)}, nil)

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "attendee@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	service := NewService(mockUsers, mockJWT{})

	mockUsers.On("GetByEmail", mock.Anything, "nobody@example.com").
		Return(nil, gorm.ErrRecordNotFound)

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
