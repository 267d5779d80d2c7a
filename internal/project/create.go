package project

import (
	"fmt"

	"flutter-setup/internal/config"
	"flutter-setup/internal/logger"
	"flutter-setup/internal/runner"
	"flutter-setup/internal/scaffold"
)

// Creator generates the Flutter project by shelling out to flutter create.
type Creator struct {
	Runner runner.Runner
	Writer *scaffold.Writer

	// Bin is the flutter executable of the synced SDK.
	Bin string
}

// Create runs flutter create for cfg. An already-existing project directory
// is left untouched: generation is skipped, not failed, so a re-run of the
// whole setup stays safe.
func (c *Creator) Create(cfg config.RunConfig) error {
	path := cfg.ProjectPath()
	if c.Writer.Exists(path) {
		logger.Warn("[WARN] Directory %s exists, skipping project creation\n", path)
		return nil
	}

	if err := c.Writer.MkdirAll(cfg.OutputDir); err != nil {
		return fmt.Errorf("failed to create %s: %w", cfg.OutputDir, err)
	}

	logger.Info("[INFO] Creating Flutter project at %s...\n", path)
	if _, err := c.Runner.Run("", c.Bin, buildCreateArgs(cfg)...); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	logger.Info("[INFO] Project created at %s\n", path)
	return nil
}

// buildCreateArgs assembles the flutter create argument list. The project
// directory keeps the user's spelling; only the package name is sanitized.
func buildCreateArgs(cfg config.RunConfig) []string {
	args := []string{
		"create",
		"--org", cfg.Org,
		"--project-name", cfg.PackageName(),
		"--platforms", cfg.PlatformsCSV(),
		"--template", string(cfg.Template),
	}
	if cfg.Template == config.TemplatePlugin {
		args = append(args,
			"--ios-language", string(cfg.IosLanguage),
			"--android-language", string(cfg.AndroidLanguage),
		)
	}
	return append(args, cfg.ProjectPath())
}
