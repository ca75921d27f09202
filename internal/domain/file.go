package domain

type FileCategory string

const (
	FileCategoryVehiclePhoto FileCategory = "vehicle_photo"
	FileCategoryDocument     FileCategory = "document"
	FileCategoryOther        FileCategory = "other"
)

type File struct {
	ID          string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID    string  `gorm:"type:uuid;not null;index" json:"tenant_id"`
	UploaderID  string  `gorm:"type:uuid;not null" json:"uploader_id"`
	BookingID   *string `gorm:"type:uuid;index" json:"booking_id,omitempty"`
	StorageKey  string  `gorm:"type:text;not null" json:"storage_key"`
	FileName    string  `gorm:"type:text;not null" json:"file_name"`
	ContentType string  `gorm:"type:text" json:"content_type"`
	Size        int64   `gorm:"not null;default:0" json:"size"`
	Category    string  `gorm:"type:text;not null;default:'other'" json:"category"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli" json:"created_at"`
	Tenant      *Tenant `gorm:"foreignKey:TenantID" json:"-"`
	Uploader    *User   `gorm:"foreignKey:UploaderID" json:"-"`
}

func (File) TableName() string {
	return "files"
}

type FileFilter struct {
	TenantID  string `json:"tenant_id"`
	BookingID string `json:"booking_id"`
	Category  string `json:"category"`
	Limit     int    `json:"limit"`
	Offset    int    `json:"offset"`
}
