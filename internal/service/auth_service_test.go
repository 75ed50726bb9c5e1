package service

import (
	"testing"

	"github.com/ndthang/quizhub/config"
	"github.com/ndthang/quizhub/internal/apperr"
	"github.com/ndthang/quizhub/internal/auth"
	"github.com/ndthang/quizhub/internal/dto"
	"github.com/ndthang/quizhub/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testTokenService() *auth.TokenService {
	return auth.NewTokenService(&config.Config{
		JWT: config.JWT{Secret: "test-secret", TTLMinutes: 60},
	})
}

func hashedUser(id uint, email, password string) *model.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &model.User{
		ID:       id,
		Name:     "Ann",
		Email:    email,
		Password: string(hashed),
		Role:     model.RoleUser,
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testTokenService())

	userRepo.On("FindByEmail", "ann@example.com").Return(hashedUser(1, "ann@example.com", "secret"), nil)

	resp, err := svc.Signup(dto.SignupDTO{Name: "Ann", Email: "ann@example.com", Password: "secret1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrEmailTaken)
	assert.Nil(t, resp)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSignupCreatesUserRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testTokenService())

	userRepo.On("FindByEmail", "ann@example.com").Return(nil, gorm.ErrRecordNotFound)

	var created *model.User
	userRepo.On("Create", mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*model.User)
		created.ID = 3
	}).Return(nil)

	resp, err := svc.Signup(dto.SignupDTO{Name: "Ann", Email: "ann@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, uint(3), resp.UserID)
	require.NotNil(t, created)
	assert.Equal(t, model.RoleUser, created.Role)
}

func TestLoginUnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testTokenService())

	userRepo.On("FindByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	token, err := svc.Login(dto.LoginDTO{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	assert.Empty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, testTokenService())

	userRepo.On("FindByEmail", "ann@example.com").Return(hashedUser(1, "ann@example.com", "secret1"), nil)

	token, err := svc.Login(dto.LoginDTO{Email: "ann@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	assert.Empty(t, token)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokens := testTokenService()
	svc := NewAuthService(userRepo, tokens)

	userRepo.On("FindByEmail", "ann@example.com").Return(hashedUser(1, "ann@example.com", "secret1"), nil)

	token, err := svc.Login(dto.LoginDTO{Email: "ann@example.com", Password: "secret1"})

	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, model.RoleUser, claims.Role)
}
