package service

import (
	"errors"
	"fmt"

	"github.com/ndthang/quizhub/internal/apperr"
	"github.com/ndthang/quizhub/internal/auth"
	"github.com/ndthang/quizhub/internal/dto"
	"github.com/ndthang/quizhub/internal/model"
	"github.com/ndthang/quizhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(req dto.SignupDTO) (*dto.SignupResponseDTO, error)
	// Login verifies credentials and returns a signed session token.
	Login(req dto.LoginDTO) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenService) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Signup(req dto.SignupDTO) (*dto.SignupResponseDTO, error) {
	existing, err := s.userRepo.FindByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Msg("Signup: failed to look up email")
		return nil, fmt.Errorf("error checking existing user: %w", err)
	}
	if existing != nil {
		return nil, apperr.ErrEmailTaken
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password, // hashed by the model's BeforeSave hook
		Role:     model.RoleUser,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Signup: failed to create user")
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return &dto.SignupResponseDTO{Message: "User created", UserID: user.ID}, nil
}

func (s *authService) Login(req dto.LoginDTO) (string, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.ErrUnauthorized
		}
		log.Error().Err(err).Msg("Login: failed to look up user")
		return "", fmt.Errorf("error fetching user: %w", err)
	}

	if !user.CheckPassword(req.Password) {
		return "", apperr.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: failed to issue session token")
		return "", fmt.Errorf("error issuing session: %w", err)
	}
	return token, nil
}
