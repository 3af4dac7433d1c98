package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kvrepo "starmarket/internal/adapter/repository"
	"starmarket/internal/infrastructure/kvstore"
	"starmarket/internal/usecase"
	"starmarket/internal/view"
	"starmarket/pkg/config"
)

func newViewHandler(t *testing.T) *ViewHandler {
	t.Helper()

	store, err := kvstore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{ListingTTL: 7 * 24 * time.Hour, PriceCapFactor: 10}
	listingUseCase := usecase.NewListingUseCase(
		kvrepo.NewKVListingRepository(store, cfg.ListingTTL),
		kvrepo.NewKVUserRepository(store),
		kvrepo.NewKVNotificationRepository(store),
		kvrepo.NewKVTransactionRepository(store),
		cfg,
	)
	return NewViewHandler(view.NewController(true), listingUseCase)
}

func TestViewSnapshotListsCategories(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/view", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	viewHandler := newViewHandler(t)

	if assert.NoError(t, viewHandler.Current(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"view":"main"`)
		// The full category set rides along for clients to render.
		for _, name := range []string{"NFT", "Account", "Chat", "Channel", "Number", "Other"} {
			assert.Contains(t, rec.Body.String(), `"`+name+`"`)
		}
	}
}
