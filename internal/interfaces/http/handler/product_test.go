package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appprovisioning "github.com/storefront/backend/internal/application/provisioning"
	"github.com/storefront/backend/internal/domain/commerce"
	"github.com/storefront/backend/internal/domain/credential"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// ---------------------------------------------------------------------------
// Test Fixtures
// ---------------------------------------------------------------------------

// stubCredentialSource returns one fixed credential set
type stubCredentialSource struct {
	err error
}

func (s *stubCredentialSource) Get(ctx context.Context, tenantID string) (*credential.Credential, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &credential.Credential{TenantID: tenantID, Token: "tok", MerchantID: "M123"}, nil
}

// stubPlatform provisions happily and records nothing beyond the listing query
type stubPlatform struct {
	failStock  bool
	listResult *commerce.ItemPage
}

func (s *stubPlatform) FindOrCreateCategory(ctx context.Context, creds commerce.Credentials, name string) (*commerce.RemoteCategory, error) {
	return &commerce.RemoteCategory{ID: "C1", Name: name}, nil
}

func (s *stubPlatform) CreateItem(ctx context.Context, creds commerce.Credentials, draft commerce.ItemDraft) (*commerce.RemoteItem, error) {
	return &commerce.RemoteItem{ID: "I1", Name: draft.Name, SKU: draft.SKU, Price: draft.PriceCents}, nil
}

func (s *stubPlatform) AssociateItemWithCategory(ctx context.Context, creds commerce.Credentials, categoryID, itemID string) error {
	return nil
}

func (s *stubPlatform) SetItemStock(ctx context.Context, creds commerce.Credentials, itemID string, quantity int64) (*commerce.RemoteItemStock, error) {
	if s.failStock {
		return nil, &commerce.RemoteCallError{Operation: "SetItemStock", StatusCode: 500, Body: "boom"}
	}
	return &commerce.RemoteItemStock{ItemID: itemID, Quantity: quantity}, nil
}

func (s *stubPlatform) ListItems(ctx context.Context, creds commerce.Credentials, query commerce.ListItemsQuery) (*commerce.ItemPage, error) {
	if s.listResult != nil {
		return s.listResult, nil
	}
	return &commerce.ItemPage{Total: 1000}, nil
}

func (s *stubPlatform) UploadItemImage(ctx context.Context, creds commerce.Credentials, itemID, filename string, r io.Reader) (*commerce.RemoteImage, error) {
	return &commerce.RemoteImage{ID: "IMG1"}, nil
}

func (s *stubPlatform) SetItemImage(ctx context.Context, creds commerce.Credentials, itemID, imageID string) error {
	return nil
}

var _ commerce.Platform = (*stubPlatform)(nil)

type stubCommitter struct {
	commits int
}

func (s *stubCommitter) CommitIncrement(ctx context.Context, tenantID, category string) error {
	s.commits++
	return nil
}

func setupProductRouter(platform commerce.Platform, source appprovisioning.CredentialSource, committer appprovisioning.SkuCommitter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	provisioner := appprovisioning.NewService(source, committer, platform, zap.NewNop())
	listing := appprovisioning.NewItemListingService(source, platform, zap.NewNop())
	h := NewProductHandler(provisioner, listing, zap.NewNop())

	r := gin.New()
	r.POST("/catalog/products", h.Create)
	r.GET("/catalog/items/:userId", h.List)
	return r
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// ---------------------------------------------------------------------------
// Create Tests
// ---------------------------------------------------------------------------

func TestProductHandler_Create(t *testing.T) {
	validBody := `{
		"userId": "u1",
		"name": "Ring",
		"category": "Jewelry",
		"subcategory": "Rings",
		"price": 1999,
		"sku": "R-001",
		"stockCount": 3,
		"cost": "5.00"
	}`

	t.Run("provisions and returns 201", func(t *testing.T) {
		committer := &stubCommitter{}
		router := setupProductRouter(&stubPlatform{}, &stubCredentialSource{}, committer)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/catalog/products", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		require.True(t, resp.Success)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "Product created and inventory updated", data["message"])
		product := data["product"].(map[string]interface{})
		assert.Equal(t, "I1", product["id"])
		inventory := data["inventory"].(map[string]interface{})
		assert.Equal(t, float64(3), inventory["quantity"])

		assert.Equal(t, 1, committer.commits)
	})

	t.Run("missing userId returns 400", func(t *testing.T) {
		router := setupProductRouter(&stubPlatform{}, &stubCredentialSource{}, &stubCommitter{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/catalog/products", strings.NewReader(`{"name":"Ring"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
	})

	t.Run("missing draft fields return 400", func(t *testing.T) {
		router := setupProductRouter(&stubPlatform{}, &stubCredentialSource{}, &stubCommitter{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/catalog/products", strings.NewReader(`{"userId":"u1","name":"Ring"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
	})

	t.Run("unprovisioned tenant returns 404", func(t *testing.T) {
		router := setupProductRouter(&stubPlatform{}, &stubCredentialSource{err: credential.ErrCredentialNotFound}, &stubCommitter{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/catalog/products", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("remote failure returns 502 without a commit", func(t *testing.T) {
		committer := &stubCommitter{}
		router := setupProductRouter(&stubPlatform{failStock: true}, &stubCredentialSource{}, committer)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/catalog/products", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeRemoteCall, resp.Error.Code)
		assert.Zero(t, committer.commits)
	})

	t.Run("multipart form with image is accepted", func(t *testing.T) {
		router := setupProductRouter(&stubPlatform{}, &stubCredentialSource{}, &stubCommitter{})

		var buf bytes.Buffer
		form := multipart.NewWriter(&buf)
		for k, v := range map[string]string{
			"userId":      "u1",
			"name":        "Ring",
			"category":    "Jewelry",
			"subcategory": "Rings",
			"price":       "1999",
			"stockCount":  "2",
		} {
			require.NoError(t, form.WriteField(k, v))
		}
		part, err := form.CreateFormFile("image", "ring.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-png-bytes"))
		require.NoError(t, err)
		require.NoError(t, form.Close())

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/catalog/products", &buf)
		req.Header.Set("Content-Type", form.FormDataContentType())
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

// ---------------------------------------------------------------------------
// List Tests
// ---------------------------------------------------------------------------

func TestProductHandler_List(t *testing.T) {
	t.Run("returns elements and total", func(t *testing.T) {
		platform := &stubPlatform{listResult: &commerce.ItemPage{
			Elements: []commerce.RemoteItem{{ID: "I1", Name: "Ring"}},
			Total:    321,
		}}
		router := setupProductRouter(platform, &stubCredentialSource{}, &stubCommitter{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/catalog/items/u1?limit=10&offset=0", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(321), data["total"])
		assert.Len(t, data["elements"], 1)

		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(321), resp.Meta.Total)
		assert.Equal(t, 10, resp.Meta.Limit)
		assert.Equal(t, 0, resp.Meta.Offset)
	})

	t.Run("unknown tenant returns 404", func(t *testing.T) {
		router := setupProductRouter(&stubPlatform{}, &stubCredentialSource{err: credential.ErrCredentialNotFound}, &stubCommitter{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/catalog/items/ghost", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
