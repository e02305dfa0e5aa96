package clover

// Wire shapes for the Clover inventory API (v3). Only the fields this
// service reads or writes are modeled.

type categoryPayload struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type categoryListResponse struct {
	Elements []categoryPayload `json:"elements"`
}

type idRef struct {
	ID string `json:"id"`
}

type itemCreateRequest struct {
	Name            string  `json:"name"`
	Price           int64   `json:"price"`
	Cost            int64   `json:"cost,omitempty"`
	SKU             string  `json:"sku,omitempty"`
	Hidden          bool    `json:"hidden"`
	Available       bool    `json:"available"`
	AutoManage      bool    `json:"autoManage"`
	DefaultTaxRates bool    `json:"defaultTaxRates"`
	IsRevenue       bool    `json:"isRevenue"`
	PriceType       string  `json:"priceType"`
	Categories      []idRef `json:"categories,omitempty"`
}

type itemPayload struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Price           int64             `json:"price"`
	SKU             string            `json:"sku,omitempty"`
	Hidden          bool              `json:"hidden"`
	Available       bool              `json:"available"`
	AutoManage      bool              `json:"autoManage"`
	DefaultTaxRates bool              `json:"defaultTaxRates"`
	IsRevenue       bool              `json:"isRevenue"`
	PriceType       string            `json:"priceType,omitempty"`
	ItemStock       *itemStockPayload `json:"itemStock,omitempty"`
	Categories      *categoryElements `json:"categories,omitempty"`
}

type categoryElements struct {
	Elements []categoryPayload `json:"elements"`
}

type itemListResponse struct {
	Elements []itemPayload `json:"elements"`
	// Clover only reports a total when requested with a count expansion;
	// zero means absent.
	Total int64 `json:"total,omitempty"`
}

type itemStockPayload struct {
	Item     *idRef `json:"item,omitempty"`
	Quantity int64  `json:"quantity"`
}

type categoryItemsRequest struct {
	Elements []categoryItemElement `json:"elements"`
}

type categoryItemElement struct {
	Category idRef `json:"category"`
	Item     idRef `json:"item"`
}

type imageUploadResponse struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}

type itemImageUpdateRequest struct {
	ImageID string `json:"imageId"`
}
