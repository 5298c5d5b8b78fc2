package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /clothes/{variant}/{slug}/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	handler := Middleware(mux)
	pattern := "/clothes/{variant}/{slug}/"

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("418", http.MethodGet, pattern))

	for _, path := range []string{"/clothes/shoes/air-max/", "/clothes/pants/slim-fit/"} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusTeapot, rr.Code)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("418", http.MethodGet, pattern))
	assert.InDelta(t, 2, after-before, 0.001, "both slugs share one series")
	assert.InDelta(t, 0, testutil.ToFloat64(httpRequestsInFlight), 0.001)
}

func TestMiddleware_Unmatched(t *testing.T) {
	handler := Middleware(http.NewServeMux())

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("404", http.MethodGet, "unmatched"))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope/123", nil))

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("404", http.MethodGet, "unmatched"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.InDelta(t, 1, after-before, 0.001)
}

func TestDomainCounters(t *testing.T) {
	orders := testutil.ToFloat64(ordersPlacedTotal.WithLabelValues("delivery"))
	adds := testutil.ToFloat64(cartMutationsTotal.WithLabelValues(CartActionAdd))
	failed := testutil.ToFloat64(notificationsTotal.WithLabelValues("failed"))

	RecordOrderPlaced("delivery")
	RecordCartMutation(CartActionAdd)
	RecordCartMutation(CartActionAdd)
	RecordNotification("failed")

	assert.InDelta(t, orders+1, testutil.ToFloat64(ordersPlacedTotal.WithLabelValues("delivery")), 0.001)
	assert.InDelta(t, adds+2, testutil.ToFloat64(cartMutationsTotal.WithLabelValues(CartActionAdd)), 0.001)
	assert.InDelta(t, failed+1, testutil.ToFloat64(notificationsTotal.WithLabelValues("failed")), 0.001)
}

func TestHandler_ExposesMetrics(t *testing.T) {
	RecordCartMutation(CartActionQty)

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "store_cart_mutations_total")
}
