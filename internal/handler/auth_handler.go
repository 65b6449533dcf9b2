package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"todoapi/internal/errors"
	"todoapi/internal/service"
)

// AuthHandler handles the signup and login endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents a signup request. The password tag is the custom
// composite rule registered on the router's validator.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=3,max=40,password"`
	Name     string `json:"name" validate:"required,min=3,max=50"`
}

// LoginRequest represents a login request. Deliberately no validate tags:
// login performs no schema validation, an absent or malformed email simply
// fails the lookup.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} errors.ErrorResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"error": firstValidationMessage(err)})
	}

	if err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Name); err != nil {
		if err == service.ErrDuplicateEmail {
			return echo.NewHTTPError(http.StatusConflict, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "DUPLICATE_EMAIL",
			})
		}
		return echo.NewHTTPError(http.StatusConflict, errors.ErrorResponse{
			Error: "failed to sign up",
			Code:  "STORE_ERROR",
		})
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "User SignedUp Successfully"})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 403 {object} MessageResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			return echo.NewHTTPError(http.StatusForbidden, echo.Map{"message": "User does not exist"})
		case service.ErrInvalidCredentials:
			return echo.NewHTTPError(http.StatusForbidden, echo.Map{"message": "invalid credentials"})
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, echo.Map{"message": "failed to login"})
		}
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// firstValidationMessage surfaces the first violated rule's message, matching
// the one-issue-at-a-time contract of signup validation.
func firstValidationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "email must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "password":
		return "The Password must contain at least 1 uppercase, 1 lowercase, 1 number and 1 special character."
	default:
		return fe.Error()
	}
}
