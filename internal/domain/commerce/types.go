package commerce

// RemoteCategory is a category as known to the commerce platform
type RemoteCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RemoteItem is an inventory item as returned by the commerce platform.
// Stock and Categories are only populated when the listing was requested
// with the corresponding expansions.
type RemoteItem struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	SKU             string           `json:"sku,omitempty"`
	Price           int64            `json:"price"`
	PriceType       string           `json:"priceType,omitempty"`
	Hidden          bool             `json:"hidden"`
	Available       bool             `json:"available"`
	AutoManage      bool             `json:"autoManage"`
	DefaultTaxRates bool             `json:"defaultTaxRates"`
	IsRevenue       bool             `json:"isRevenue"`
	Stock           *RemoteItemStock `json:"itemStock,omitempty"`
	Categories      []RemoteCategory `json:"categories,omitempty"`
}

// RemoteItemStock is the stock record attached to a platform item
type RemoteItemStock struct {
	ItemID   string `json:"itemId,omitempty"`
	Quantity int64  `json:"quantity"`
}

// RemoteImage is an uploaded item image as acknowledged by the platform
type RemoteImage struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}

// ItemPage is one page of a tenant's item listing. Total is the platform's
// reported total when present, otherwise a configured fallback sentinel.
type ItemPage struct {
	Elements []RemoteItem `json:"elements"`
	Total    int64        `json:"total"`
}
