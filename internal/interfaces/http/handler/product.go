package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appprovisioning "github.com/storefront/backend/internal/application/provisioning"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/commerce"
	"github.com/storefront/backend/internal/infrastructure/logger"
)

// ProductHandler handles product provisioning and listing endpoints
type ProductHandler struct {
	BaseHandler
	provisioner *appprovisioning.Service
	listing     *appprovisioning.ItemListingService
	logger      *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(provisioner *appprovisioning.Service, listing *appprovisioning.ItemListingService, logger *zap.Logger) *ProductHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductHandler{
		provisioner: provisioner,
		listing:     listing,
		logger:      logger,
	}
}

// CreateProductRequest is the create-product request body. It binds from
// JSON or multipart form; an optional image file is accepted and discarded.
type CreateProductRequest struct {
	UserID      string `json:"userId" form:"userId" binding:"required"`
	Name        string `json:"name" form:"name"`
	Category    string `json:"category" form:"category"`
	Subcategory string `json:"subcategory" form:"subcategory"`
	Price       int64  `json:"price" form:"price"`
	SKU         string `json:"sku" form:"sku"`
	StockCount  int64  `json:"stockCount" form:"stockCount"`
	Cost        string `json:"cost" form:"cost"`
}

// CreateProductResponse is the create-product response payload
type CreateProductResponse struct {
	Message   string                    `json:"message"`
	Product   *commerce.RemoteItem      `json:"product"`
	Inventory *commerce.RemoteItemStock `json:"inventory"`
}

// Create provisions a product on the commerce platform
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := h.bindCreateRequest(c, &req); err != nil {
		h.BadRequest(c, "userId is required")
		return
	}

	ctx, log := logger.WithTenantID(c.Request.Context(), h.logger, req.UserID)

	// The upload field is accepted for wire compatibility but never stored.
	if file, err := c.FormFile("image"); err == nil && file != nil {
		log.Debug("discarding uploaded product image",
			zap.String("filename", file.Filename),
			zap.Int64("size", file.Size))
	}

	draft, err := catalog.NewProductDraft(req.Name, req.Price, req.Cost, req.SKU, req.Category, req.Subcategory, req.StockCount)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	result, err := h.provisioner.ProvisionProduct(ctx, req.UserID, draft)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, CreateProductResponse{
		Message:   "Product created and inventory updated",
		Product:   result.Product,
		Inventory: result.Stock,
	})
}

// bindCreateRequest binds JSON or multipart form bodies
func (h *ProductHandler) bindCreateRequest(c *gin.Context, req *CreateProductRequest) error {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return c.ShouldBind(req)
	}
	return c.ShouldBindJSON(req)
}

// ListItemsResponse is the item listing response payload
type ListItemsResponse struct {
	Elements []commerce.RemoteItem `json:"elements"`
	Total    int64                 `json:"total"`
}

// List returns one page of the tenant's platform items
func (h *ProductHandler) List(c *gin.Context) {
	tenantID := c.Param("userId")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	page, err := h.listing.ListItems(c.Request.Context(), tenantID, limit, offset)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	limit, offset = appprovisioning.NormalizePage(limit, offset)
	h.SuccessWithMeta(c, ListItemsResponse{Elements: page.Elements, Total: page.Total}, page.Total, limit, offset)
}
