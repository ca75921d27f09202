package domain

// MigrationRecord marks a schema step as applied. It is global, not tenant scoped.
type MigrationRecord struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"type:text;not null;uniqueIndex" json:"name"`
	AppliedAt int64  `gorm:"autoCreateTime:milli" json:"applied_at"`
}

func (MigrationRecord) TableName() string {
	return "schema_migrations"
}
