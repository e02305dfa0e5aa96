package commerce

import (
	"context"
	"io"
)

// Credentials identifies the tenant's merchant account on the commerce
// platform. They are passed on every call so a single client instance can
// serve all tenants without holding per-tenant state.
type Credentials struct {
	Token      string
	MerchantID string
}

// ItemDraft is the platform-facing shape of a product create request
type ItemDraft struct {
	Name       string
	PriceCents int64
	CostCents  int64
	SKU        string
	CategoryID string
}

// ListItemsQuery carries pagination and expansion options for item listing
type ListItemsQuery struct {
	Limit  int
	Offset int
	Expand string
}

// Platform is the outbound port to the commerce platform's inventory API.
//
// FindOrCreateCategory looks up a category by exact name and creates it
// when absent; two racing callers may both observe absence and create
// duplicates, which is accepted platform behavior unless callers serialize
// themselves.
type Platform interface {
	FindOrCreateCategory(ctx context.Context, creds Credentials, name string) (*RemoteCategory, error)
	CreateItem(ctx context.Context, creds Credentials, draft ItemDraft) (*RemoteItem, error)
	AssociateItemWithCategory(ctx context.Context, creds Credentials, categoryID, itemID string) error
	SetItemStock(ctx context.Context, creds Credentials, itemID string, quantity int64) (*RemoteItemStock, error)
	ListItems(ctx context.Context, creds Credentials, query ListItemsQuery) (*ItemPage, error)

	// Image operations exist on the platform but are not part of the
	// provisioning sequence; handlers accept and discard image uploads.
	UploadItemImage(ctx context.Context, creds Credentials, itemID, filename string, r io.Reader) (*RemoteImage, error)
	SetItemImage(ctx context.Context, creds Credentials, itemID, imageID string) error
}
