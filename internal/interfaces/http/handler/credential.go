package handler

import (
	"github.com/gin-gonic/gin"

	appcredential "github.com/storefront/backend/internal/application/credential"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// CredentialHandler handles tenant credential endpoints
type CredentialHandler struct {
	BaseHandler
	service *appcredential.Service
}

// NewCredentialHandler creates a new CredentialHandler
func NewCredentialHandler(service *appcredential.Service) *CredentialHandler {
	return &CredentialHandler{service: service}
}

// SaveCredentialsRequest is the save-credentials request body. Field names
// match the platform's own vocabulary (mId is the merchant identifier).
type SaveCredentialsRequest struct {
	UserID     string `json:"userId" binding:"required"`
	Token      string `json:"token" binding:"required"`
	MerchantID string `json:"mId" binding:"required"`
}

// CredentialsResponse is the credential lookup response payload
type CredentialsResponse struct {
	Token      string `json:"token"`
	MerchantID string `json:"mId"`
}

// Save stores or replaces a tenant's platform credentials
func (h *CredentialHandler) Save(c *gin.Context) {
	var req SaveCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if details := middleware.ValidationDetails(err); len(details) > 0 {
			h.ValidationError(c, details)
			return
		}
		h.BadRequest(c, "request body must be valid JSON")
		return
	}

	if _, err := h.service.Save(c.Request.Context(), req.UserID, req.Token, req.MerchantID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Credentials saved"})
}

// Get returns the stored credentials for a tenant
func (h *CredentialHandler) Get(c *gin.Context) {
	cred, err := h.service.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, CredentialsResponse{
		Token:      cred.Token,
		MerchantID: cred.MerchantID,
	})
}
