package model

import "strings"

// Identity is the authenticated principal as issued by the external auth service.
// It is read-only inside this service.
type Identity struct {
	ID       string         `json:"id"`
	Email    string         `json:"email"`
	Metadata map[string]any `json:"user_metadata,omitempty"`
}

// MetadataString returns a trimmed string metadata value, or "" when absent or not a string.
func (i *Identity) MetadataString(key string) string {
	if i == nil || i.Metadata == nil {
		return ""
	}
	v, ok := i.Metadata[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}
