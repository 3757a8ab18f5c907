package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/shopease/helpdesk/internal/api/dto"
	"github.com/shopease/helpdesk/internal/service"
	apperrors "github.com/shopease/helpdesk/pkg/util"
)

// AuthHandler exposes signup and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("firstName, lastName, email, password required", nil)
	}

	customer, err := h.auth.Signup(c.Context(), service.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.SignupResponse{
		Email: customer.Email,
		Role:  string(customer.Role),
	})
}

// Login handles POST /login with a JSON body.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	email := req.Username
	if email == "" {
		email = req.Email
	}
	if email == "" || req.Password == "" {
		return apperrors.NewValidationError("username/email and password required", nil)
	}
	return h.issueToken(c, email, req.Password)
}

// Token handles POST /token, the OAuth2 password-grant form flow.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	email := c.FormValue("username")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}
	return h.issueToken(c, email, password)
}

func (h *AuthHandler) issueToken(c *fiber.Ctx, email, password string) error {
	token, _, err := h.auth.Login(c.Context(), email, password)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}
