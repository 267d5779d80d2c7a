package cmd

import (
	"github.com/spf13/cobra"

	"flutter-setup/internal/config"
	"flutter-setup/internal/setup"
)

// run flags, bound in init. The plugin languages are boolean toggles; cobra
// enforces that at most one per platform is set.
var (
	runOrg      string
	runChannel  string
	runDir      string
	runTemplate string
	runSwift    bool
	runObjc     bool
	runKotlin   bool
	runJava     bool
	runUpdate   string
	runDryRun   bool
)

// runCmd executes the full pipeline: prerequisites, SDK, project, bootstrap.
var runCmd = &cobra.Command{
	Use:   "run <project_name> <platform>...",
	Short: "Provision the toolchain and create a ready-to-code Flutter project",
	Long: `Checks and installs prerequisites (Xcode Command Line Tools, Homebrew,
git, CocoaPods), installs or updates the Flutter SDK, persists its PATH
entry, runs flutter doctor, creates the project and bootstraps the
development environment inside it.

Platforms: ios, android, macos, linux, windows, web (aliases: osx, win).`,
	Example: `  flutter-setup run MyApp ios android
  flutter-setup run MyApp web --template plugin --objc --dry-run`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return config.NewValidationError("run needs a project name and at least one platform", nil)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildRunConfig(args[0], args[1:])
		if err != nil {
			return err
		}
		return setup.New(cfg).Run()
	},
}

func init() {
	runCmd.Flags().StringVar(&runOrg, "org", "com.example", "Organization identifier in reverse-domain notation")
	runCmd.Flags().StringVar(&runChannel, "channel", "stable", "Flutter channel (stable|beta)")
	runCmd.Flags().StringVar(&runDir, "dir", ".", "Directory the project is created under")
	runCmd.Flags().StringVar(&runTemplate, "template", "app", "Project template (app|plugin)")
	runCmd.Flags().BoolVar(&runSwift, "swift", false, "Use Swift for iOS plugin code (default)")
	runCmd.Flags().BoolVar(&runObjc, "objc", false, "Use Objective-C for iOS plugin code")
	runCmd.Flags().BoolVar(&runKotlin, "kotlin", false, "Use Kotlin for Android plugin code (default)")
	runCmd.Flags().BoolVar(&runJava, "java", false, "Use Java for Android plugin code")
	runCmd.Flags().StringVar(&runUpdate, "flutter-update", "reset", "How to update an existing SDK checkout (reset|reclone|skip)")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Preview every action without executing it")

	runCmd.MarkFlagsMutuallyExclusive("swift", "objc")
	runCmd.MarkFlagsMutuallyExclusive("kotlin", "java")
}

// buildRunConfig turns the positionals and flags into a validated RunConfig.
func buildRunConfig(name string, rawPlatforms []string) (config.RunConfig, error) {
	platforms, err := config.ResolvePlatforms(rawPlatforms)
	if err != nil {
		return config.RunConfig{}, err
	}

	cfg := config.RunConfig{
		ProjectName:     name,
		Org:             runOrg,
		Channel:         config.Channel(runChannel),
		OutputDir:       runDir,
		Template:        config.Template(runTemplate),
		IosLanguage:     config.IosSwift,
		AndroidLanguage: config.AndroidKotlin,
		UpdateMode:      config.UpdateMode(runUpdate),
		DryRun:          runDryRun,
		Platforms:       platforms,
	}
	if runObjc {
		cfg.IosLanguage = config.IosObjc
	}
	if runJava {
		cfg.AndroidLanguage = config.AndroidJava
	}

	if err := cfg.Validate(); err != nil {
		return config.RunConfig{}, err
	}
	return cfg, nil
}
