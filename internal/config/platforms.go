package config

import (
	"fmt"
	"strings"
)

// Platform identifies a Flutter build target in the spelling
// `flutter create --platforms` accepts.
type Platform string

const (
	PlatformIos     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformMacos   Platform = "macos"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
	PlatformWeb     Platform = "web"
)

// supportedPlatforms fixes the order used in error messages and help text.
var supportedPlatforms = []Platform{
	PlatformIos,
	PlatformAndroid,
	PlatformMacos,
	PlatformLinux,
	PlatformWindows,
	PlatformWeb,
}

// platformAliases maps accepted shorthand spellings to canonical names.
var platformAliases = map[string]Platform{
	"osx": PlatformMacos,
	"win": PlatformWindows,
}

// ResolvePlatforms canonicalizes raw platform tokens: lowercases, expands
// aliases, drops empty tokens, and removes duplicates while keeping first
// occurrence order. Any token that is neither a platform nor an alias fails
// the whole resolution.
func ResolvePlatforms(tokens []string) ([]Platform, error) {
	var resolved []Platform
	seen := make(map[Platform]bool)
	for _, token := range tokens {
		name := strings.ToLower(strings.TrimSpace(token))
		if name == "" {
			continue
		}
		platform, err := resolvePlatform(name)
		if err != nil {
			return nil, err
		}
		if seen[platform] {
			continue
		}
		seen[platform] = true
		resolved = append(resolved, platform)
	}
	if len(resolved) == 0 {
		return nil, NewValidationError("at least one platform is required", nil)
	}
	return resolved, nil
}

func resolvePlatform(name string) (Platform, error) {
	if platform, ok := platformAliases[name]; ok {
		return platform, nil
	}
	for _, platform := range supportedPlatforms {
		if name == string(platform) {
			return platform, nil
		}
	}
	return "", NewValidationError(
		fmt.Sprintf("unsupported platform %q (supported: %s)", name, strings.Join(SupportedPlatformNames(), ", ")),
		nil,
	)
}

// SupportedPlatformNames lists the canonical platform names for help output.
func SupportedPlatformNames() []string {
	names := make([]string, len(supportedPlatforms))
	for i, platform := range supportedPlatforms {
		names[i] = string(platform)
	}
	return names
}
