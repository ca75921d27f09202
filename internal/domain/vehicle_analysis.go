package domain

type AnalysisStatus string

const (
	AnalysisPending    AnalysisStatus = "pending"
	AnalysisProcessing AnalysisStatus = "processing"
	AnalysisCompleted  AnalysisStatus = "completed"
	AnalysisFailed     AnalysisStatus = "failed"
)

// Finding is a single observation the model reported about the vehicle.
type Finding struct {
	Area             string `json:"area"`
	Severity         string `json:"severity"`
	Description      string `json:"description"`
	EstimatedCostUSD int64  `json:"estimated_cost_usd,omitempty"`
}

type VehicleAnalysis struct {
	ID             string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID       string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	BookingID      *string   `gorm:"type:uuid;index" json:"booking_id,omitempty"`
	RequestedBy    string    `gorm:"type:text" json:"requested_by"`
	VehicleInfo    string    `gorm:"type:text;not null" json:"vehicle_info"`
	FileIDs        []string  `gorm:"type:jsonb;serializer:json" json:"file_ids"`
	Status         string    `gorm:"type:text;not null;default:'pending'" json:"status"`
	Summary        string    `gorm:"type:text" json:"summary"`
	ConditionScore *int      `json:"condition_score,omitempty"`
	Findings       []Finding `gorm:"type:jsonb;serializer:json" json:"findings"`
	Model          string    `gorm:"type:text" json:"model"`
	StreamID       string    `gorm:"type:text" json:"stream_id"`
	Error          string    `gorm:"type:text" json:"error,omitempty"`
	CreatedAt      int64     `gorm:"autoCreateTime:milli" json:"created_at"`
	UpdatedAt      int64     `gorm:"autoUpdateTime:milli" json:"updated_at"`
	Tenant         *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (VehicleAnalysis) TableName() string {
	return "vehicle_analyses"
}
