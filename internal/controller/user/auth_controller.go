package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ndthang/quizhub/internal/apperr"
	"github.com/ndthang/quizhub/internal/auth"
	"github.com/ndthang/quizhub/internal/dto"
	"github.com/ndthang/quizhub/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
	tokens      *auth.TokenService
}

func NewAuthController(authService service.AuthService, tokens *auth.TokenService) *AuthController {
	return &AuthController{authService: authService, tokens: tokens}
}

// Signup godoc
// @Summary Register a new account
// @Description Creates a user with the "user" role. Email must be unique.
// @Tags Auth
// @Accept json
// @Produce json
// @Param signup_data body dto.SignupDTO true "Name, email and password"
// @Success 201 {object} dto.SignupResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing fields or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.authService.Signup(req)
	if err != nil {
		if errors.Is(err, apperr.ErrEmailTaken) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Email already registered"})
			return
		}
		log.Error().Err(err).Msg("Signup: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create user"})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and sets the session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param login_data body dto.LoginDTO true "Email and password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 401 {object} dto.ErrorResponse "Unknown email or wrong password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	token, err := c.authService.Login(req)
	if err != nil {
		if errors.Is(err, apperr.ErrUnauthorized) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid email or password"})
			return
		}
		log.Error().Err(err).Msg("Login: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to log in"})
		return
	}

	c.tokens.SetSessionCookie(ctx, token)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged in"})
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.tokens.ClearSessionCookie(ctx)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// Me godoc
// @Summary Current session
// @Description Reports whether the caller is logged in, and who they are.
// Always 200; logged_in is false when the cookie is absent or invalid.
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.MeResponseDTO
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	token, err := ctx.Cookie(auth.SessionCookieName)
	if err != nil || token == "" {
		ctx.JSON(http.StatusOK, dto.MeResponseDTO{LoggedIn: false})
		return
	}
	claims, err := c.tokens.Parse(token)
	if err != nil {
		ctx.JSON(http.StatusOK, dto.MeResponseDTO{LoggedIn: false})
		return
	}
	ctx.JSON(http.StatusOK, dto.MeResponseDTO{
		LoggedIn: true,
		User:     &dto.PrincipalDTO{ID: claims.UserID, Name: claims.Name, Role: claims.Role},
	})
}
