package clover

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/storefront/backend/internal/domain/commerce"
)

const (
	// maxResponseSize limits response bodies to prevent memory exhaustion
	maxResponseSize = 10 * 1024 * 1024 // 10MB
	// maxErrorBodyBytes caps how much of a failing response is kept on the error
	maxErrorBodyBytes = 2048
	// defaultListExpand is the expansion applied to item listings when the
	// caller does not override it
	defaultListExpand = "itemStock,categories"
)

// Fixed flags applied to every provisioned item
const (
	priceTypeFixed = "FIXED"
)

// Adapter implements the commerce.Platform port against the Clover
// inventory REST API. It is stateless with respect to tenants: credentials
// arrive on every call and are never retained.
type Adapter struct {
	config     *Config
	httpClient *http.Client
}

// NewAdapter creates a new Clover adapter with the given configuration
func NewAdapter(config *Config) (*Adapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// ---------------------------------------------------------------------------
// Category Operations
// ---------------------------------------------------------------------------

// FindOrCreateCategory scans the merchant's categories for an exact,
// case-sensitive name match and creates the category when no page contains
// one. Two racing callers can both miss and create duplicates; the
// platform accepts that, and serialization is left to the caller.
func (a *Adapter) FindOrCreateCategory(ctx context.Context, creds commerce.Credentials, name string) (*commerce.RemoteCategory, error) {
	if err := checkCredentials(creds); err != nil {
		return nil, err
	}

	pageSize := a.config.CategoryPageSize
	for offset := 0; ; offset += pageSize {
		listURL := fmt.Sprintf("%s/v3/merchants/%s/categories?limit=%d&offset=%d",
			a.config.BaseURL, url.PathEscape(creds.MerchantID), pageSize, offset)

		var page categoryListResponse
		if err := a.getJSON(ctx, creds, "FindOrCreateCategory", listURL, &page); err != nil {
			return nil, err
		}

		for _, cat := range page.Elements {
			if cat.Name == name {
				return &commerce.RemoteCategory{ID: cat.ID, Name: cat.Name}, nil
			}
		}

		if len(page.Elements) < pageSize {
			break
		}
	}

	createURL := fmt.Sprintf("%s/v3/merchants/%s/categories",
		a.config.BaseURL, url.PathEscape(creds.MerchantID))

	var created categoryPayload
	if err := a.postJSON(ctx, creds, "FindOrCreateCategory", createURL, categoryPayload{Name: name}, &created); err != nil {
		return nil, err
	}

	return &commerce.RemoteCategory{ID: created.ID, Name: created.Name}, nil
}

// ---------------------------------------------------------------------------
// Item Operations
// ---------------------------------------------------------------------------

// CreateItem creates an inventory item with the service's fixed flags:
// visible, available, auto-managed stock, default tax rates, revenue
// tracked, fixed pricing.
func (a *Adapter) CreateItem(ctx context.Context, creds commerce.Credentials, draft commerce.ItemDraft) (*commerce.RemoteItem, error) {
	if err := checkCredentials(creds); err != nil {
		return nil, err
	}

	req := itemCreateRequest{
		Name:            draft.Name,
		Price:           draft.PriceCents,
		Cost:            draft.CostCents,
		SKU:             draft.SKU,
		Hidden:          false,
		Available:       true,
		AutoManage:      true,
		DefaultTaxRates: true,
		IsRevenue:       true,
		PriceType:       priceTypeFixed,
	}
	if draft.CategoryID != "" {
		req.Categories = []idRef{{ID: draft.CategoryID}}
	}

	createURL := fmt.Sprintf("%s/v3/merchants/%s/items",
		a.config.BaseURL, url.PathEscape(creds.MerchantID))

	var created itemPayload
	if err := a.postJSON(ctx, creds, "CreateItem", createURL, req, &created); err != nil {
		return nil, err
	}

	item := toRemoteItem(created)
	return &item, nil
}

// AssociateItemWithCategory links an existing item to an existing category
func (a *Adapter) AssociateItemWithCategory(ctx context.Context, creds commerce.Credentials, categoryID, itemID string) error {
	if err := checkCredentials(creds); err != nil {
		return err
	}

	req := categoryItemsRequest{
		Elements: []categoryItemElement{
			{Category: idRef{ID: categoryID}, Item: idRef{ID: itemID}},
		},
	}

	assocURL := fmt.Sprintf("%s/v3/merchants/%s/category_items",
		a.config.BaseURL, url.PathEscape(creds.MerchantID))

	return a.postJSON(ctx, creds, "AssociateItemWithCategory", assocURL, req, nil)
}

// SetItemStock sets the absolute stock quantity for an item
func (a *Adapter) SetItemStock(ctx context.Context, creds commerce.Credentials, itemID string, quantity int64) (*commerce.RemoteItemStock, error) {
	if err := checkCredentials(creds); err != nil {
		return nil, err
	}

	stockURL := fmt.Sprintf("%s/v3/merchants/%s/item_stocks/%s",
		a.config.BaseURL, url.PathEscape(creds.MerchantID), url.PathEscape(itemID))

	var stock itemStockPayload
	if err := a.postJSON(ctx, creds, "SetItemStock", stockURL, itemStockPayload{Quantity: quantity}, &stock); err != nil {
		return nil, err
	}

	result := &commerce.RemoteItemStock{ItemID: itemID, Quantity: stock.Quantity}
	if stock.Item != nil && stock.Item.ID != "" {
		result.ItemID = stock.Item.ID
	}
	return result, nil
}

// ListItems returns one page of the merchant's items. When the platform
// response carries no total, the configured fallback is reported instead
// so paginating clients always see a bound.
func (a *Adapter) ListItems(ctx context.Context, creds commerce.Credentials, query commerce.ListItemsQuery) (*commerce.ItemPage, error) {
	if err := checkCredentials(creds); err != nil {
		return nil, err
	}

	expand := query.Expand
	if expand == "" {
		expand = defaultListExpand
	}

	params := url.Values{}
	params.Set("expand", expand)
	params.Set("limit", strconv.Itoa(query.Limit))
	params.Set("offset", strconv.Itoa(query.Offset))

	listURL := fmt.Sprintf("%s/v3/merchants/%s/items?%s",
		a.config.BaseURL, url.PathEscape(creds.MerchantID), params.Encode())

	var resp itemListResponse
	if err := a.getJSON(ctx, creds, "ListItems", listURL, &resp); err != nil {
		return nil, err
	}

	page := &commerce.ItemPage{
		Elements: make([]commerce.RemoteItem, len(resp.Elements)),
		Total:    resp.Total,
	}
	for i, item := range resp.Elements {
		page.Elements[i] = toRemoteItem(item)
	}
	if page.Total <= 0 {
		page.Total = a.config.TotalFallback
	}
	return page, nil
}

// ---------------------------------------------------------------------------
// Image Operations
// ---------------------------------------------------------------------------

// UploadItemImage uploads an image for an item through the media endpoint.
// Not part of the provisioning sequence; kept for callers that manage item
// media separately.
func (a *Adapter) UploadItemImage(ctx context.Context, creds commerce.Credentials, itemID, filename string, r io.Reader) (*commerce.RemoteImage, error) {
	if err := checkCredentials(creds); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("clover: failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("clover: failed to read image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("clover: failed to finalize upload form: %w", err)
	}

	uploadURL := fmt.Sprintf("%s/v1/menuImage/merchants/%s/item/%s",
		a.config.UploadBaseURL, url.PathEscape(creds.MerchantID), url.PathEscape(itemID))

	body, err := a.doRequest(ctx, creds, "UploadItemImage", http.MethodPost, uploadURL, &buf, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}

	var resp imageUploadResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("clover: failed to parse upload response: %w", err)
	}
	return &commerce.RemoteImage{ID: resp.ID, URL: resp.URL}, nil
}

// SetItemImage attaches a previously uploaded image to an item
func (a *Adapter) SetItemImage(ctx context.Context, creds commerce.Credentials, itemID, imageID string) error {
	if err := checkCredentials(creds); err != nil {
		return err
	}

	itemURL := fmt.Sprintf("%s/v3/merchants/%s/items/%s",
		a.config.BaseURL, url.PathEscape(creds.MerchantID), url.PathEscape(itemID))

	return a.putJSON(ctx, creds, "SetItemImage", itemURL, itemImageUpdateRequest{ImageID: imageID}, nil)
}

// ---------------------------------------------------------------------------
// Internal Helpers
// ---------------------------------------------------------------------------

// getJSON performs a GET request and decodes the JSON response into out
func (a *Adapter) getJSON(ctx context.Context, creds commerce.Credentials, op, reqURL string, out any) error {
	body, err := a.doRequest(ctx, creds, op, http.MethodGet, reqURL, nil, "")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("clover: failed to parse response: %w", err)
	}
	return nil
}

// postJSON performs a POST request with a JSON body; out may be nil when
// the response payload is not needed
func (a *Adapter) postJSON(ctx context.Context, creds commerce.Credentials, op, reqURL string, in any, out any) error {
	return a.sendJSON(ctx, creds, op, http.MethodPost, reqURL, in, out)
}

// putJSON performs a PUT request with a JSON body
func (a *Adapter) putJSON(ctx context.Context, creds commerce.Credentials, op, reqURL string, in any, out any) error {
	return a.sendJSON(ctx, creds, op, http.MethodPut, reqURL, in, out)
}

func (a *Adapter) sendJSON(ctx context.Context, creds commerce.Credentials, op, method, reqURL string, in any, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("clover: failed to marshal request: %w", err)
	}

	body, err := a.doRequest(ctx, creds, op, method, reqURL, bytes.NewReader(payload), "application/json")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("clover: failed to parse response: %w", err)
	}
	return nil
}

// doRequest performs an HTTP request against the Clover API. Transport
// failures and non-2xx statuses both surface as *commerce.RemoteCallError.
func (a *Adapter) doRequest(ctx context.Context, creds commerce.Credentials, op, method, reqURL string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("clover: failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+creds.Token)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, &commerce.RemoteCallError{Operation: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &commerce.RemoteCallError{Operation: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &commerce.RemoteCallError{
			Operation:  op,
			StatusCode: resp.StatusCode,
			Body:       capBody(respBody),
		}
	}

	return respBody, nil
}

// capBody trims an error response body to a loggable size
func capBody(body []byte) string {
	if len(body) > maxErrorBodyBytes {
		return string(body[:maxErrorBodyBytes])
	}
	return string(body)
}

// checkCredentials rejects calls made without a token or merchant
func checkCredentials(creds commerce.Credentials) error {
	if creds.Token == "" || creds.MerchantID == "" {
		return commerce.ErrPlatformNotConfigured
	}
	return nil
}

// toRemoteItem converts a wire item to the domain shape
func toRemoteItem(p itemPayload) commerce.RemoteItem {
	item := commerce.RemoteItem{
		ID:              p.ID,
		Name:            p.Name,
		SKU:             p.SKU,
		Price:           p.Price,
		PriceType:       p.PriceType,
		Hidden:          p.Hidden,
		Available:       p.Available,
		AutoManage:      p.AutoManage,
		DefaultTaxRates: p.DefaultTaxRates,
		IsRevenue:       p.IsRevenue,
	}
	if p.ItemStock != nil {
		item.Stock = &commerce.RemoteItemStock{ItemID: p.ID, Quantity: p.ItemStock.Quantity}
	}
	if p.Categories != nil {
		item.Categories = make([]commerce.RemoteCategory, len(p.Categories.Elements))
		for i, cat := range p.Categories.Elements {
			item.Categories[i] = commerce.RemoteCategory{ID: cat.ID, Name: cat.Name}
		}
	}
	return item
}

// Ensure Adapter implements the commerce.Platform interface
var _ commerce.Platform = (*Adapter)(nil)
