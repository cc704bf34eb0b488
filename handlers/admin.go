// File: handlers/admin.go
package handlers

import (
	"net/http"

	"estateconnect/services/catalog"
	"estateconnect/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the administrative dashboard endpoints.
type AdminHandler struct {
	Users   user.UserService
	Catalog catalog.CatalogService
}

// NewAdminHandler wires the admin dependencies.
func NewAdminHandler(users user.UserService, cat catalog.CatalogService) *AdminHandler {
	return &AdminHandler{Users: users, Catalog: cat}
}

// GetAllUsersHandler lists every account. Password and token hashes never
// serialize.
func (h *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	logger := getLogger(c)

	users, err := h.Users.GetAllUsers()
	if err != nil {
		logger.Error("GetAllUsersHandler: failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetStatsHandler returns platform counters for the dashboard.
func (h *AdminHandler) GetStatsHandler(c *gin.Context) {
	logger := getLogger(c)

	byKind, pending, err := h.Catalog.Stats()
	if err != nil {
		logger.Error("GetStatsHandler: failed to load listing stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	userCount, err := h.Users.CountUsers()
	if err != nil {
		logger.Error("GetStatsHandler: failed to count users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listingsByKind": byKind,
		"pendingReview":  pending,
		"users":          userCount,
	})
}
