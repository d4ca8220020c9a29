package user

import (
	"errors"
	"net/http"

	"fitbook/internal/api"
	"fitbook/internal/auth"
	"fitbook/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Signup godoc
// @Summary      Register new user
// @Description  Creates an account. The password is stored hashed and never returned.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      user.SignupRequest  true  "User registration data"
// @Success      200      {object}  user.User
// @Failure      400      {object}  api.ErrorResponse
// @Failure      422      {object}  api.ValidationErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /signup/ [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if !api.Bind(c, &req) {
		return
	}

	user, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "Email already registered"})
			return
		}
		logger.Error("Signup failed", "email", req.Email, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Login godoc
// @Summary      Login user
// @Description  OAuth2 password flow: username carries the email. Returns a bearer token.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      200       {object}  user.TokenResponse
// @Failure      400       {object}  api.ErrorResponse
// @Failure      500       {object}  api.ErrorResponse
// @Router       /login/ [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !api.Bind(c, &req) {
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "Invalid email or password"})
			return
		}
		logger.Error("Login failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: auth.TokenType})
}

// GetMe godoc
// @Summary      Get current user
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  user.User
// @Failure      401  {object}  api.ErrorResponse
// @Router       /me/ [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Detail: "Could not validate credentials"})
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Detail: "Could not validate credentials"})
			return
		}
		logger.Error("Failed to load current user", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Failed to load user"})
		return
	}

	c.JSON(http.StatusOK, user)
}
