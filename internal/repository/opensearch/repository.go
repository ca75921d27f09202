package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/repository"
)

type bookingRepository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewRepository(client *opensearch.Client, config *config.OpenSearchConfig) repository.BookingSearchRepository {
	return &bookingRepository{
		client: client,
		config: config,
	}
}

func (r *bookingRepository) Index(ctx context.Context, booking *domain.Booking) error {
	indexName := r.config.GetIndexName(booking.TenantID)

	// Ensure index exists
	if err := r.CreateIndex(ctx, booking.TenantID); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	data, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      indexName,
		DocumentID: booking.ID,
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *bookingRepository) BulkIndex(ctx context.Context, bookings []domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	// Group bookings by tenant index
	groups := make(map[string][]domain.Booking)
	for _, b := range bookings {
		groups[b.TenantID] = append(groups[b.TenantID], b)
	}

	for tenantID, group := range groups {
		if err := r.bulkIndexGroup(ctx, tenantID, group); err != nil {
			return fmt.Errorf("failed to bulk index group for tenant %s: %w", tenantID, err)
		}
	}

	return nil
}

func (r *bookingRepository) bulkIndexGroup(ctx context.Context, tenantID string, bookings []domain.Booking) error {
	if err := r.CreateIndex(ctx, tenantID); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	body, err := buildBulkBody(r.config.GetIndexName(tenantID), bookings)
	if err != nil {
		return err
	}

	req := opensearchapi.BulkRequest{
		Body: strings.NewReader(body),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to execute bulk request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk request failed: %s", res.String())
	}

	return nil
}

// buildBulkBody renders the NDJSON action/document pairs for a bulk request
func buildBulkBody(indexName string, bookings []domain.Booking) (string, error) {
	var bulkBody strings.Builder
	for _, b := range bookings {
		action := map[string]any{
			"index": map[string]any{
				"_index": indexName,
				"_id":    b.ID,
			},
		}
		actionLine, err := json.Marshal(action)
		if err != nil {
			return "", fmt.Errorf("failed to marshal action: %w", err)
		}
		bulkBody.Write(actionLine)
		bulkBody.WriteString("\n")

		docLine, err := json.Marshal(b)
		if err != nil {
			return "", fmt.Errorf("failed to marshal document: %w", err)
		}
		bulkBody.Write(docLine)
		bulkBody.WriteString("\n")
	}
	return bulkBody.String(), nil
}

func (r *bookingRepository) Search(ctx context.Context, filter *domain.BookingSearchFilter) ([]domain.Booking, int64, error) {
	if filter.TenantID == "" {
		return nil, 0, fmt.Errorf("tenant_id is required")
	}

	queryJSON, err := json.Marshal(buildSearchQuery(filter))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetIndexName(filter.TenantID)},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		// Tenant has never had a booking indexed
		if res.StatusCode == 404 {
			return []domain.Booking{}, 0, nil
		}
		return nil, 0, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source domain.Booking `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, 0, fmt.Errorf("failed to decode response: %w", err)
	}

	bookings := make([]domain.Booking, 0, len(searchResult.Hits.Hits))
	for _, hit := range searchResult.Hits.Hits {
		bookings = append(bookings, hit.Source)
	}

	return bookings, searchResult.Hits.Total.Value, nil
}

// buildSearchQuery constructs the OpenSearch query for a booking search
func buildSearchQuery(filter *domain.BookingSearchFilter) map[string]any {
	must := make([]map[string]any, 0)

	if filter.Query != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query": filter.Query,
				"fields": []string{
					"customer_name^3", "customer_email", "customer_phone",
					"vehicle_make^2", "vehicle_model^2", "vehicle_vin",
					"service_type", "notes",
				},
				"fuzziness": "AUTO",
			},
		})
	}

	if filter.Status != "" {
		must = append(must, map[string]any{
			"term": map[string]any{
				"status": filter.Status,
			},
		})
	}

	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
			},
		},
		"track_total_hits": true,
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query["from"] = (filter.Page - 1) * filter.PageSize
		query["size"] = filter.PageSize
	}

	query["sort"] = []any{
		"_score",
		map[string]any{
			"start_time": map[string]any{
				"order": "desc",
			},
		},
	}

	return query
}

// getIndexMapping returns the mapping for the booking index
func (r *bookingRepository) getIndexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"id": { "type": "keyword" },
				"tenant_id": { "type": "keyword" },
				"customer_name": { "type": "text" },
				"customer_email": { "type": "text", "fields": { "raw": { "type": "keyword" } } },
				"customer_phone": { "type": "keyword" },
				"vehicle_make": { "type": "text" },
				"vehicle_model": { "type": "text" },
				"vehicle_year": { "type": "integer" },
				"vehicle_vin": { "type": "keyword" },
				"service_type": { "type": "text", "fields": { "raw": { "type": "keyword" } } },
				"status": { "type": "keyword" },
				"notes": { "type": "text" },
				"price_cents": { "type": "long" },
				"calendar_event_id": { "type": "keyword" },
				"start_time": { "type": "date", "format": "epoch_millis" },
				"end_time": { "type": "date", "format": "epoch_millis" },
				"created_at": { "type": "date", "format": "epoch_millis" },
				"updated_at": { "type": "date", "format": "epoch_millis" }
			}
		},
		"settings": {
			"index": {
				"number_of_shards": 1,
				"number_of_replicas": 1,
				"refresh_interval": "1s"
			}
		}
	}`
}

func (r *bookingRepository) CreateIndex(ctx context.Context, tenantID string) error {
	indexName := r.config.GetIndexName(tenantID)

	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		return nil // Index already exists
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(r.getIndexMapping()),
	}

	res, err = create.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	return nil
}

func (r *bookingRepository) DeleteIndex(ctx context.Context, tenantID string) error {
	req := opensearchapi.IndicesDeleteRequest{
		Index: []string{r.config.GetIndexName(tenantID)},
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("error deleting index: %s", res.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, tenantID, bookingID string) error {
	req := opensearchapi.DeleteRequest{
		Index:      r.config.GetIndexName(tenantID),
		DocumentID: bookingID,
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("error deleting document: %s", res.String())
	}

	return nil
}
