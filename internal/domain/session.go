package domain

// Session is a login session created by the identity provider callback.
// Token is the opaque value stored in the session cookie.
type Session struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID  string `gorm:"type:uuid;not null;index" json:"tenant_id"`
	UserID    string `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string `gorm:"type:text;not null;uniqueIndex" json:"-"`
	ExpiresAt int64  `gorm:"not null;index" json:"expires_at"`
	UserAgent string `gorm:"type:text" json:"user_agent"`
	IPAddress string `gorm:"type:text" json:"ip_address"`
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"created_at"`
	User      *User  `gorm:"foreignKey:UserID" json:"-"`
}

func (Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is past its expiry at nowMillis.
func (s *Session) Expired(nowMillis int64) bool {
	return s.ExpiresAt <= nowMillis
}
