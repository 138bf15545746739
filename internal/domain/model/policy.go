package model

import "strings"

// OrganizationPolicy selects which snapshot attribute becomes the repository path prefix.
type OrganizationPolicy string

const (
	ByLanguage   OrganizationPolicy = "language"
	ByDifficulty OrganizationPolicy = "difficulty"
	Flat         OrganizationPolicy = "flat"
)

// DefaultPolicy is used when no organization has been configured.
const DefaultPolicy = ByLanguage

// ParsePolicy maps a configured value onto a policy. Empty input yields the default;
// any other unrecognised value organizes files flat.
func ParsePolicy(s string) OrganizationPolicy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultPolicy
	case string(ByLanguage):
		return ByLanguage
	case string(ByDifficulty):
		return ByDifficulty
	default:
		return Flat
	}
}
