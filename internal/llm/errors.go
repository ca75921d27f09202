package llm

import "errors"

var (
	ErrProviderUnavailable = errors.New("llm provider unavailable")
	ErrInferenceTimeout    = errors.New("llm inference timeout")
	ErrInvalidResponse     = errors.New("llm provider returned invalid response")
	ErrNotConfigured       = errors.New("llm provider is not configured")
)
