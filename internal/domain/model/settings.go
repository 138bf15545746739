package model

import (
	"fmt"
	"strings"
)

// DefaultBranch is the branch used when none is configured.
const DefaultBranch = "main"

// Settings is the persisted user configuration.
type Settings struct {
	Token        string
	Repository   string
	Branch       string
	Organization OrganizationPolicy
}

// WithDefaults fills the optional fields.
func (s Settings) WithDefaults() Settings {
	if strings.TrimSpace(s.Branch) == "" {
		s.Branch = DefaultBranch
	}
	if s.Organization == "" {
		s.Organization = DefaultPolicy
	}
	return s
}

// Validate checks the fields required to publish.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Token) == "" || strings.TrimSpace(s.Repository) == "" {
		return fmt.Errorf("%w: please fill in all required fields", ErrInvalidSettings)
	}
	owner, name, ok := strings.Cut(s.Repository, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("%w: repository must look like owner/name, got %q", ErrInvalidSettings, s.Repository)
	}
	return nil
}
