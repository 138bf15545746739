package leetcode

import (
	"net/url"
	"strings"
)

const siteHost = "leetcode.com"

// IsProblemPage reports whether u points at a LeetCode problem page.
func IsProblemPage(u *url.URL) bool {
	if u == nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host != siteHost && !strings.HasSuffix(host, "."+siteHost) {
		return false
	}
	return Slug(u) != ""
}

// IsProblemPageURL is IsProblemPage for a raw URL string.
func IsProblemPageURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return IsProblemPage(u)
}

// Slug returns the path segment following "problems", or "".
func Slug(u *url.URL) string {
	if u == nil {
		return ""
	}
	parts := strings.Split(u.Path, "/")
	for i, part := range parts {
		if part == "problems" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

// ProblemURL builds the canonical problem link for a slug.
func ProblemURL(slug string) string {
	return "https://" + siteHost + "/problems/" + slug + "/"
}
