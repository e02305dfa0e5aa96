package provisioning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/commerce"
	"github.com/storefront/backend/internal/domain/credential"
)

// capturingPlatform records the listing query it receives
type capturingPlatform struct {
	fakePlatform
	lastQuery commerce.ListItemsQuery
	page      *commerce.ItemPage
}

func (c *capturingPlatform) ListItems(ctx context.Context, creds commerce.Credentials, query commerce.ListItemsQuery) (*commerce.ItemPage, error) {
	c.lastQuery = query
	if c.page != nil {
		return c.page, nil
	}
	return &commerce.ItemPage{Total: 1000}, nil
}

func newTestListingService(platform commerce.Platform) *ItemListingService {
	source := &fakeCredentialSource{creds: &credential.Credential{
		TenantID:   "u1",
		Token:      "tok",
		MerchantID: "M123",
	}}
	return NewItemListingService(source, platform, zap.NewNop())
}

func TestItemListingService_ListItems(t *testing.T) {
	t.Run("forwards limit and offset", func(t *testing.T) {
		platform := &capturingPlatform{}
		service := newTestListingService(platform)

		_, err := service.ListItems(context.Background(), "u1", 50, 200)
		require.NoError(t, err)
		assert.Equal(t, 50, platform.lastQuery.Limit)
		assert.Equal(t, 200, platform.lastQuery.Offset)
	})

	t.Run("defaults and clamps bounds", func(t *testing.T) {
		platform := &capturingPlatform{}
		service := newTestListingService(platform)
		ctx := context.Background()

		_, err := service.ListItems(ctx, "u1", 0, -5)
		require.NoError(t, err)
		assert.Equal(t, DefaultListLimit, platform.lastQuery.Limit)
		assert.Equal(t, 0, platform.lastQuery.Offset)

		_, err = service.ListItems(ctx, "u1", 10_000, 0)
		require.NoError(t, err)
		assert.Equal(t, MaxListLimit, platform.lastQuery.Limit)
	})

	t.Run("returns the platform page verbatim", func(t *testing.T) {
		platform := &capturingPlatform{page: &commerce.ItemPage{
			Elements: []commerce.RemoteItem{{ID: "I1", Name: "Ring"}},
			Total:    321,
		}}
		service := newTestListingService(platform)

		page, err := service.ListItems(context.Background(), "u1", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(321), page.Total)
		require.Len(t, page.Elements, 1)
		assert.Equal(t, "Ring", page.Elements[0].Name)
	})

	t.Run("unknown tenant fails before any remote call", func(t *testing.T) {
		platform := &capturingPlatform{}
		service := NewItemListingService(&fakeCredentialSource{err: credential.ErrCredentialNotFound}, platform, zap.NewNop())

		_, err := service.ListItems(context.Background(), "ghost", 10, 0)
		assert.ErrorIs(t, err, credential.ErrCredentialNotFound)
		assert.Zero(t, platform.lastQuery.Limit)
	})
}

var _ commerce.Platform = (*capturingPlatform)(nil)
