// File: handlers/auth.go
package handlers

import (
	"net/http"

	"estateconnect/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// userService is injected from main.
var userService user.UserService

// SetUserService wires the user service for the auth and profile handlers.
func SetUserService(svc user.UserService) {
	userService = svc
}

type registerRequest struct {
	user.RegistrationRequest
	ConfirmPassword string `json:"confirmPassword"`
}

// RegisterUserHandler creates an account. A mismatched password confirmation
// is rejected before the service is consulted.
func RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	resp, err := userService.Register(req.RegistrationRequest)
	if err != nil {
		logger.Warn("RegisterUserHandler: registration rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthenticateUserHandler signs a user in.
func AuthenticateUserHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := userService.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOutHandler revokes the caller's token.
func SignOutHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := userService.SignOut(userID.(string)); err != nil {
		logger.Error("SignOutHandler: failed to revoke token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}
