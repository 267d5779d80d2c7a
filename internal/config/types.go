package config

import (
	"path/filepath"
	"strings"
)

// Channel is a named release track of the Flutter SDK. Upstream publishes
// each channel as a git branch of the flutter/flutter repository, so the
// value doubles as the branch name for clone and checkout operations.
type Channel string

const (
	ChannelStable Channel = "stable"
	ChannelBeta   Channel = "beta"
)

// Template selects the project layout passed to `flutter create`.
type Template string

const (
	TemplateApp    Template = "app"
	TemplatePlugin Template = "plugin"
)

// IosLanguage is the iOS host-code language for plugin projects.
type IosLanguage string

const (
	IosSwift IosLanguage = "swift"
	IosObjc  IosLanguage = "objc"
)

// AndroidLanguage is the Android host-code language for plugin projects.
type AndroidLanguage string

const (
	AndroidKotlin AndroidLanguage = "kotlin"
	AndroidJava   AndroidLanguage = "java"
)

// UpdateMode controls how an already-present SDK checkout is brought up to
// date before the project is generated.
type UpdateMode string

const (
	// UpdateReset fetches and fast-forwards the existing checkout, asking
	// for confirmation before discarding diverged local history.
	UpdateReset UpdateMode = "reset"
	// UpdateReclone deletes the checkout and clones fresh.
	UpdateReclone UpdateMode = "reclone"
	// UpdateSkip fast-forwards when possible but leaves a diverged
	// checkout untouched.
	UpdateSkip UpdateMode = "skip"
)

// ParseChannel validates a channel name given on the command line.
func ParseChannel(s string) (Channel, error) {
	switch c := Channel(s); c {
	case ChannelStable, ChannelBeta:
		return c, nil
	}
	return "", NewValidationError("unsupported channel "+s+" (supported: stable, beta)", nil)
}

// ParseUpdateMode validates an update mode given on the command line.
func ParseUpdateMode(s string) (UpdateMode, error) {
	switch m := UpdateMode(s); m {
	case UpdateReset, UpdateReclone, UpdateSkip:
		return m, nil
	}
	return "", NewValidationError("unsupported update mode "+s+" (supported: reset, reclone, skip)", nil)
}

// RunConfig carries everything a full provisioning run needs, resolved from
// command-line arguments and flags before any stage executes.
type RunConfig struct {
	// ProjectName is the directory name of the generated project, exactly
	// as the user typed it. The Dart package name is derived, not stored.
	ProjectName string

	// Org is the reverse-domain organization identifier used for bundle
	// and application IDs.
	Org string

	// Channel is the SDK release track to install or synchronize.
	Channel Channel

	// OutputDir is the parent directory the project is created under.
	OutputDir string

	// Template selects the flutter create template.
	Template Template

	// IosLanguage and AndroidLanguage only matter for plugin templates;
	// they are carried regardless and ignored for app projects.
	IosLanguage     IosLanguage
	AndroidLanguage AndroidLanguage

	// UpdateMode controls the SDK synchronizer when a checkout exists.
	UpdateMode UpdateMode

	// DryRun prints every mutating command instead of executing it.
	DryRun bool

	// Platforms is the resolved, deduplicated platform list in the order
	// the user gave it.
	Platforms []Platform
}

// Validate rejects configurations the rest of the pipeline must never see.
// Platform tokens are validated earlier during resolution; this covers the
// enum fields and required values.
func (c RunConfig) Validate() error {
	if c.ProjectName == "" {
		return NewValidationError("project name must not be empty", nil)
	}
	if len(c.Platforms) == 0 {
		return NewValidationError("at least one platform is required", nil)
	}
	if _, err := ParseChannel(string(c.Channel)); err != nil {
		return err
	}
	switch c.Template {
	case TemplateApp, TemplatePlugin:
	default:
		return NewValidationError("unsupported template "+string(c.Template)+" (supported: app, plugin)", nil)
	}
	switch c.IosLanguage {
	case IosSwift, IosObjc:
	default:
		return NewValidationError("unsupported iOS language "+string(c.IosLanguage)+" (supported: swift, objc)", nil)
	}
	switch c.AndroidLanguage {
	case AndroidKotlin, AndroidJava:
	default:
		return NewValidationError("unsupported Android language "+string(c.AndroidLanguage)+" (supported: kotlin, java)", nil)
	}
	if _, err := ParseUpdateMode(string(c.UpdateMode)); err != nil {
		return err
	}
	return nil
}

// ProjectPath is the directory `flutter create` writes into.
func (c RunConfig) ProjectPath() string {
	return filepath.Join(c.OutputDir, c.ProjectName)
}

// PackageName is the Dart package name derived from the project name.
func (c RunConfig) PackageName() string {
	return SanitizePackageName(c.ProjectName)
}

// PlatformsCSV renders the platform list the way `flutter create`'s
// --platforms flag wants it.
func (c RunConfig) PlatformsCSV() string {
	names := make([]string, len(c.Platforms))
	for i, p := range c.Platforms {
		names[i] = string(p)
	}
	return strings.Join(names, ",")
}

// HasPlatform reports whether the run targets the given platform.
func (c RunConfig) HasPlatform(p Platform) bool {
	for _, have := range c.Platforms {
		if have == p {
			return true
		}
	}
	return false
}
