package opensearch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

func newTestRepository(t *testing.T, handler http.HandlerFunc) *bookingRepository {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := opensearch.NewClient(opensearch.Config{Addresses: []string{server.URL}})
	require.NoError(t, err)

	return &bookingRepository{client: client, config: &config.OpenSearchConfig{IndexPrefix: "bookings"}}
}

func TestBuildSearchQuery(t *testing.T) {
	query := buildSearchQuery(&domain.BookingSearchFilter{TenantID: "t1", Query: "civic", Status: "pending", Page: 2, PageSize: 10})

	assert.Equal(t, 10, query["from"])
	assert.Equal(t, 10, query["size"])

	must := query["query"].(map[string]any)["bool"].(map[string]any)["must"].([]map[string]any)
	require.Len(t, must, 2)
	assert.Contains(t, must[0], "multi_match")
	assert.Equal(t, map[string]any{"status": "pending"}, must[1]["term"])
}

func TestBuildBulkBody(t *testing.T) {
	body, err := buildBulkBody("bookings_t1", []domain.Booking{{ID: "b1", TenantID: "t1"}, {ID: "b2", TenantID: "t1"}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 4)
	assert.JSONEq(t, `{"index":{"_index":"bookings_t1","_id":"b1"}}`, lines[0])
	assert.Contains(t, lines[1], `"id":"b1"`)
}

func TestSearch_MissingIndexReturnsEmpty(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings_t1/_search", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":{"type":"index_not_found_exception"},"status":404}`)
	})

	bookings, total, err := repo.Search(context.Background(), &domain.BookingSearchFilter{TenantID: "t1", Query: "x"})
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.Zero(t, total)
}

func TestSearch_DecodesHits(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"hits":{"total":{"value":1},"hits":[{"_source":{"id":"b1","tenant_id":"t1","customer_name":"Ada"}}]}}`)
	})

	bookings, total, err := repo.Search(context.Background(), &domain.BookingSearchFilter{TenantID: "t1", Query: "ada"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Ada", bookings[0].CustomerName)
}

func TestSearch_RequiresTenant(t *testing.T) {
	repo := &bookingRepository{config: &config.OpenSearchConfig{IndexPrefix: "bookings"}}
	_, _, err := repo.Search(context.Background(), &domain.BookingSearchFilter{})
	assert.Error(t, err)
}
