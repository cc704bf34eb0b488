// File: handlers/feed.go
package handlers

import (
	"net/http"

	"estateconnect/services/feed"

	"github.com/gin-gonic/gin"
)

// FeedHandler serves home-page content.
type FeedHandler struct {
	Rotator *feed.Rotator
}

// NewFeedHandler wires the testimonial rotator.
func NewFeedHandler(rotator *feed.Rotator) *FeedHandler {
	return &FeedHandler{Rotator: rotator}
}

// TestimonialHandler returns the testimonial at the current rotation index.
func (h *FeedHandler) TestimonialHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Rotator.Current())
}
