package domain

type StreamStatus string

const (
	StreamPending   StreamStatus = "pending"
	StreamStreaming StreamStatus = "streaming"
	StreamDone      StreamStatus = "done"
	StreamError     StreamStatus = "error"
)

// TextStream holds generated text that clients poll or follow over the
// websocket. Producers patch Body and Status as output arrives.
type TextStream struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID  string `gorm:"type:uuid;not null;index" json:"tenant_id"`
	OwnerID   string `gorm:"type:text" json:"owner_id"`
	Status    string `gorm:"type:text;not null;default:'pending'" json:"status"`
	Body      string `gorm:"type:text;not null;default:''" json:"body"`
	Error     string `gorm:"type:text" json:"error,omitempty"`
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"created_at"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli" json:"updated_at"`
}

func (TextStream) TableName() string {
	return "text_streams"
}

// Terminal reports whether the stream accepts no further chunks.
func (s *TextStream) Terminal() bool {
	return s.Status == string(StreamDone) || s.Status == string(StreamError)
}
