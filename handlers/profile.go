// File: handlers/profile.go
package handlers

import (
	"net/http"

	"estateconnect/models"
	"estateconnect/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// catalogService is injected from main for the profile's own-listings view.
var catalogService catalog.CatalogService

// SetCatalogService wires the catalog service for the profile handlers.
func SetCatalogService(svc catalog.CatalogService) {
	catalogService = svc
}

// GetProfileHandler returns the authenticated user's profile together with
// their submitted properties and plans.
func GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := userService.GetUserByID(userID.(string))
	if err != nil {
		logger.Error("Failed to get user profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	submitted, err := catalogService.GetByCreator(userID.(string))
	if err != nil {
		logger.Error("Failed to load user listings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	var properties, plans []models.Listing
	for _, l := range submitted {
		if l.Kind == models.KindPlan {
			plans = append(plans, l)
		} else {
			properties = append(properties, l)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":    profile,
		"properties": properties,
		"plans":      plans,
	})
}

// UpdateProfileHandler updates the authenticated user's profile.
func UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var updateReq models.UserUpdateRequest
	if err := c.ShouldBindJSON(&updateReq); err != nil {
		logger.Error("Invalid update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updatedUser, err := userService.UpdateProfile(userID.(string), updateReq)
	if err != nil {
		logger.Error("Failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, updatedUser)
}
