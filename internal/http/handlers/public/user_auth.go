package public

import (
	"github.com/stylemart/internal/http/response"
	"github.com/stylemart/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account and returns a signed token.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	result, err := h.AuthService.Register(service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrEmailExists, code: response.CodeBadRequest, msg: "email already registered"},
			{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid registration input"},
		}, response.CodeInternal, "failed to register")
		return
	}
	response.Created(c, result)
}

// LoginRequest is the signin payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and returns a signed token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	result, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, msg: "invalid email or password"},
		}, response.CodeInternal, "failed to login")
		return
	}
	response.Success(c, result)
}

// Profile returns the signed-in user's account.
func (h *Handler) Profile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.AuthService.GetProfile(uid)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrUserNotFound, code: response.CodeNotFound, msg: "user not found"},
		}, response.CodeInternal, "failed to fetch profile")
		return
	}
	response.Success(c, user)
}
