// File: handlers/wizard.go
package handlers

import (
	"errors"
	"net/http"

	"estateconnect/models"
	"estateconnect/services/wizard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler serves the listing submission flow.
type WizardHandler struct {
	Service wizard.WizardService
}

// NewWizardHandler wires the wizard service.
func NewWizardHandler(svc wizard.WizardService) *WizardHandler {
	return &WizardHandler{Service: svc}
}

func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID.(string), true
}

// sessionResponse augments the raw session with the display metadata the
// client needs for the current step.
func sessionResponse(session *models.WizardSession) gin.H {
	return gin.H{
		"session":          session,
		"steps":            models.WizardSteps,
		"visibleGroups":    wizard.VisibleFieldGroups(session.Step, session.Kind),
		"categoryOptions":  wizard.CategoryOptions(session.Kind),
		"previousDisabled": session.Step == models.FirstStep,
		"isReviewStep":     session.Step == models.LastStep,
	}
}

func (h *WizardHandler) respond(c *gin.Context, session *models.WizardSession, err error) {
	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
			return
		}
		getLogger(c).Error("wizard operation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// StartHandler opens a fresh submission session.
func (h *WizardHandler) StartHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	session, err := h.Service.Start(userID)
	if err != nil {
		getLogger(c).Error("StartHandler: failed to start session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start submission"})
		return
	}
	c.JSON(http.StatusCreated, sessionResponse(session))
}

// GetHandler returns the session and its step metadata.
func (h *WizardHandler) GetHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	session, err := h.Service.Get(userID, c.Param("sessionID"))
	h.respond(c, session, err)
}

// NextHandler advances one step.
func (h *WizardHandler) NextHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	session, err := h.Service.Next(userID, c.Param("sessionID"))
	h.respond(c, session, err)
}

// PreviousHandler retreats one step.
func (h *WizardHandler) PreviousHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	session, err := h.Service.Previous(userID, c.Param("sessionID"))
	h.respond(c, session, err)
}

// UpdateHandler merges submitted field values into the session.
func (h *WizardHandler) UpdateHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req wizard.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	session, err := h.Service.Update(userID, c.Param("sessionID"), req)
	h.respond(c, session, err)
}

// SaveDraftHandler extends the session's lifetime.
func (h *WizardHandler) SaveDraftHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.Service.SaveDraft(userID, c.Param("sessionID")); err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
			return
		}
		getLogger(c).Error("SaveDraftHandler: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save draft"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "draft saved"})
}

// FeePreviewHandler returns the listing fee for the session.
func (h *WizardHandler) FeePreviewHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quote, err := h.Service.FeePreview(userID, c.Param("sessionID"))
	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quote)
}

// PublishHandler submits the listing for review.
func (h *WizardHandler) PublishHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listingID, err := h.Service.Publish(userID, c.Param("sessionID"))
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
		case errors.Is(err, wizard.ErrNotAtReview):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"listingId": listingID,
		"status":    "pending review",
		"message":   "Your listing will be reviewed and published within 24 hours.",
	})
}
