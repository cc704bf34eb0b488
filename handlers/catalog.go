// File: handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"estateconnect/models"
	"estateconnect/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves listing search and detail endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// NewCatalogHandler wires the catalog service.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// SearchListingsHandler binds search criteria from query parameters and
// returns one page of ordered matches plus the total count.
func (h *CatalogHandler) SearchListingsHandler(c *gin.Context) {
	logger := getLogger(c)

	var criteria models.SearchCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid search criteria: " + err.Error()})
		return
	}
	criteria.Normalize()

	result, err := h.Service.Search(criteria)
	if err != nil {
		logger.Error("SearchListingsHandler: search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search listings"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetListingHandler returns one listing by its sequence ID.
func (h *CatalogHandler) GetListingHandler(c *gin.Context) {
	logger := getLogger(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing id"})
		return
	}

	listing, err := h.Service.GetByID(id)
	if err != nil {
		logger.Error("GetListingHandler: fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listing"})
		return
	}
	if listing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}

	currency := models.Currency(c.Query("currency"))
	if currency != models.CurrencyUSD {
		currency = models.CurrencyUGX
	}
	c.JSON(http.StatusOK, gin.H{
		"listing":        listing,
		"formattedPrice": catalog.FormatPrice(*listing, currency),
	})
}
