package service

import (
	"strings"

	"buildhub/internal/model"
)

// Fallbacks used when neither the profile nor the identity has a value.
const (
	FallbackEmail = "Unknown"
	FallbackName  = "Admin User"
)

// BuildUserView merges identity and profile into the display record.
// Per field the first non-blank of profile, identity and fallback wins. profile may be nil.
func BuildUserView(identity *model.Identity, profile *model.Profile) model.UserView {
	var email, name, role string
	if profile != nil {
		email, name, role = deref(profile.Email), deref(profile.FullName), profile.Role
	}

	return model.UserView{
		ID:    identity.ID,
		Email: firstNonBlank(email, identity.Email, FallbackEmail),
		Name:  firstNonBlank(name, identity.MetadataString("full_name"), FallbackName),
		Role:  firstNonBlank(role, model.RoleUser),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
