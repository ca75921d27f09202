package config

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"

	"github.com/opensearch-project/opensearch-go/v2"
)

type OpenSearchConfig struct {
	Host        string
	Port        string
	Username    string
	Password    string
	IndexPrefix string
}

func DefaultOpenSearchConfig() *OpenSearchConfig {
	return &OpenSearchConfig{
		Host:        getEnvOrDefault("OPENSEARCH_HOST", "localhost"),
		Port:        getEnvOrDefault("OPENSEARCH_PORT", "9200"),
		Username:    getEnvOrDefault("OPENSEARCH_USERNAME", ""),
		Password:    getEnvOrDefault("OPENSEARCH_PASSWORD", ""),
		IndexPrefix: getEnvOrDefault("OPENSEARCH_INDEX_PREFIX", "bookings"),
	}
}

func (c *OpenSearchConfig) GetClient() (*opensearch.Client, error) {
	config := opensearch.Config{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		},
		Addresses: []string{
			fmt.Sprintf("http://%s:%s", c.Host, c.Port),
		},
	}

	if c.Username != "" && c.Password != "" {
		config.Username = c.Username
		config.Password = c.Password
	}

	return opensearch.NewClient(config)
}

// GetIndexName returns the booking index for a tenant
// Format: bookings_<tenant_id>
func (c *OpenSearchConfig) GetIndexName(tenantID string) string {
	return fmt.Sprintf("%s_%s", c.IndexPrefix, tenantID)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
