package config

import (
	"regexp"
	"strings"
)

// invalidPackageChars matches every character Dart forbids in a package name.
var invalidPackageChars = regexp.MustCompile(`[^a-z0-9_]`)

// SanitizePackageName converts an arbitrary project name into a valid Dart
// package name: lowercase, every illegal character replaced with an
// underscore, and an "app_" prefix when the result would not start with a
// letter. An empty name becomes "app". Applying the function twice yields
// the same result as applying it once.
func SanitizePackageName(name string) string {
	sanitized := invalidPackageChars.ReplaceAllString(strings.ToLower(name), "_")
	if sanitized == "" {
		return "app"
	}
	if first := sanitized[0]; first < 'a' || first > 'z' {
		sanitized = "app_" + sanitized
	}
	return sanitized
}
