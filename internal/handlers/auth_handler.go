package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/middleware"
	"ledgerly/internal/services"
)

// AuthHandler handles registration, login, and logout.
type AuthHandler struct {
	userService    services.UserServicer
	sessionService services.SessionServicer
	cookieMaxAge   int
	secureCookie   bool
}

// NewAuthHandler creates a new AuthHandler. cookieMaxAge is in seconds.
func NewAuthHandler(userService services.UserServicer, sessionService services.SessionServicer, cookieMaxAge int, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		userService:    userService,
		sessionService: sessionService,
		cookieMaxAge:   cookieMaxAge,
		secureCookie:   secureCookie,
	}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Username string `json:"username" binding:"required,max=50"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// MessageResponse is a plain success message envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationResponse carries field-level validation failures.
type ValidationResponse struct {
	Errors []FieldError `json:"errors"`
}

// Register handles user registration and logs the new user straight in.
// @Summary     Register a new user
// @Description Register with email, username and password; a session cookie is issued on success
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} MessageResponse "User registered"
// @Failure     400 {object} ValidationResponse "Field-level validation errors"
// @Failure     409 {object} ErrorResponse "User already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ValidationResponse{Errors: fieldErrors(err)})
		return
	}

	user, err := h.userService.CreateUser(req.Email, req.Username, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := h.sessionService.Create(user.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	middleware.SetSessionCookie(c, token, h.cookieMaxAge, h.secureCookie)

	c.JSON(http.StatusCreated, MessageResponse{Message: "User registered successfully"})
}

// Login authenticates a user and redirects to the landing view.
// @Summary     Login user
// @Description Authenticate with email and password; a session cookie is issued and the browser is redirected
// @Tags        auth
// @Accept      json
// @Param       request body LoginRequest true "User login credentials"
// @Success     302 "Redirect to /dashboard"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid email or password"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "email and password are required"))
		return
	}

	user, err := h.userService.AttemptLogin(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := h.sessionService.Create(user.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	middleware.SetSessionCookie(c, token, h.cookieMaxAge, h.secureCookie)

	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout destroys the current session. Safe to call with no session at all.
// @Summary     Logout
// @Description Destroy the current session and redirect to the login view
// @Tags        auth
// @Success     302 "Redirect to /login"
// @Router      /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookieName); err == nil && token != "" {
		if err := h.sessionService.Destroy(token); err != nil {
			respondWithError(c, err)
			return
		}
	}
	middleware.ClearSessionCookie(c, h.secureCookie)

	c.Redirect(http.StatusFound, "/login")
}

// GetProfile returns the authenticated user's account details.
// @Summary     Get user profile
// @Tags        user
// @Produce     json
// @Success     200 {object} map[string]interface{} "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
		},
	})
}

// Dashboard is the authenticated landing probe.
// @Summary     Dashboard
// @Tags        user
// @Produce     json
// @Success     200 {object} MessageResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard [get]
func (h *AuthHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "You are viewing a secured route."})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
