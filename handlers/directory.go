// File: handlers/directory.go
package handlers

import (
	"errors"
	"net/http"

	"estateconnect/services/directory"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves the seed user directory endpoints.
type DirectoryHandler struct {
	Store *directory.Store
}

// NewDirectoryHandler wires the directory store.
func NewDirectoryHandler(store *directory.Store) *DirectoryHandler {
	return &DirectoryHandler{Store: store}
}

// ListHandler returns all directory records in insertion order.
func (h *DirectoryHandler) ListHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.List())
}

type addDirectoryUserRequest struct {
	Name string `json:"name"`
}

// AddHandler appends a record. A missing name yields a 400 and leaves the
// collection unchanged.
func (h *DirectoryHandler) AddHandler(c *gin.Context) {
	var req addDirectoryUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	created, err := h.Store.Add(req.Name)
	if err != nil {
		if errors.Is(err, directory.ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add user"})
		return
	}
	c.JSON(http.StatusCreated, created)
}
