package domain

type EmbeddingSource string

const (
	EmbeddingSourceAnalysis EmbeddingSource = "vehicle_analysis"
	EmbeddingSourceBooking  EmbeddingSource = "booking"
)

type Embedding struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID   string    `gorm:"type:uuid;not null;index:idx_embeddings_tenant_source,priority:1" json:"tenant_id"`
	SourceType string    `gorm:"type:text;not null;index:idx_embeddings_tenant_source,priority:2" json:"source_type"`
	SourceID   string    `gorm:"type:text;not null" json:"source_id"`
	Model      string    `gorm:"type:text" json:"model"`
	Vector     []float32 `gorm:"type:jsonb;serializer:json" json:"vector"`
	CreatedAt  int64     `gorm:"autoCreateTime:milli" json:"created_at"`
}

func (Embedding) TableName() string {
	return "embeddings"
}

// SimilarityMatch is one result of a nearest-neighbour lookup.
type SimilarityMatch struct {
	SourceType string  `json:"source_type"`
	SourceID   string  `json:"source_id"`
	Score      float64 `json:"score"`
}
