package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/storefront/backend/internal/application/catalog"
)

// SkuHandler handles SKU counter endpoints
type SkuHandler struct {
	BaseHandler
	counters *appcatalog.SkuCounterService
}

// NewSkuHandler creates a new SkuHandler
func NewSkuHandler(counters *appcatalog.SkuCounterService) *SkuHandler {
	return &SkuHandler{counters: counters}
}

// NextSkuResponse carries the peeked next counter value
type NextSkuResponse struct {
	Count int64 `json:"count"`
}

// NextSku returns the next SKU number for a tenant and category without
// advancing the counter
func (h *SkuHandler) NextSku(c *gin.Context) {
	next, err := h.counters.PeekNext(c.Request.Context(), c.Param("userId"), c.Param("category"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, NextSkuResponse{Count: next})
}
