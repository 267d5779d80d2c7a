// Package setup binds the pipeline stages together: prerequisites, SDK
// synchronization, PATH persistence, doctor, project generation and the
// development-environment bootstrap, in that order, failing fast.
package setup

import (
	"fmt"

	"flutter-setup/internal/bootstrap"
	"flutter-setup/internal/config"
	"flutter-setup/internal/flutter"
	"flutter-setup/internal/installer"
	"flutter-setup/internal/logger"
	"flutter-setup/internal/project"
	"flutter-setup/internal/prompt"
	"flutter-setup/internal/runner"
	"flutter-setup/internal/scaffold"
)

// Setup carries one run's configuration and the shared capabilities every
// stage goes through: the subprocess runner, the filesystem writer and the
// confirmation prompt.
type Setup struct {
	Config config.RunConfig
	Runner runner.Runner
	Writer *scaffold.Writer
	Ask    prompt.Func
}

// New wires the capabilities for cfg. Dry-run swaps all of them at once:
// mutating commands echo instead of executing, writes are logged instead of
// performed, and confirmations auto-answer yes so every later stage still
// shows what it would do.
func New(cfg config.RunConfig) *Setup {
	ask := prompt.Confirm
	if cfg.DryRun {
		ask = prompt.Always
	}
	return &Setup{
		Config: cfg,
		Runner: runner.New(cfg.DryRun),
		Writer: scaffold.NewWriter(cfg.DryRun),
		Ask:    ask,
	}
}

// Run executes the full pipeline for the configured project. The first
// failing stage aborts the run; stages are idempotent, so rerunning after a
// fix picks up where things stand.
func (s *Setup) Run() error {
	s.printBanner()

	logger.Info("[INFO] Checking prerequisites...\n")
	inst := installer.New(s.Runner, s.Config.DryRun)
	if err := inst.EnsureAll(s.Config.Platforms); err != nil {
		return err
	}

	logger.Info("[INFO] Setting up the Flutter SDK...\n")
	root, profile, err := s.syncSDK()
	if err != nil {
		return err
	}

	logger.Info("[INFO] Creating the Flutter project...\n")
	creator := &project.Creator{Runner: s.Runner, Writer: s.Writer, Bin: flutter.BinPath(root)}
	if err := creator.Create(s.Config); err != nil {
		return err
	}

	logger.Info("[INFO] Bootstrapping the development environment...\n")
	boot := &bootstrap.Bootstrap{
		Runner:     s.Runner,
		Writer:     s.Writer,
		FlutterBin: flutter.BinPath(root),
		DartBin:    flutter.DartPath(root),
	}
	if err := boot.Run(s.Config); err != nil {
		return err
	}

	s.printNextSteps(profile)
	return nil
}

// syncSDK brings the checkout to the configured channel, persists the PATH
// entry and runs flutter doctor. Doctor problems are reported but never
// abort the run. Returns the SDK root and the shell profile it wrote to.
func (s *Setup) syncSDK() (string, string, error) {
	sync, err := flutter.NewSynchronizer(s.Runner, s.Writer, s.Ask, s.Config.Channel, s.Config.UpdateMode)
	if err != nil {
		return "", "", err
	}
	if err := sync.Ensure(); err != nil {
		return "", "", err
	}

	profile, err := flutter.NewProfile(s.Writer)
	if err != nil {
		return "", "", err
	}
	if err := profile.Apply(sync.Root); err != nil {
		return "", "", err
	}

	doctor := &flutter.Doctor{
		Runner:  s.Runner,
		Ask:     s.Ask,
		Bin:     flutter.BinPath(sync.Root),
		Android: s.Config.HasPlatform(config.PlatformAndroid),
	}
	if err := doctor.Run(); err != nil {
		logger.Warn("[WARN] flutter doctor could not run: %v\n", err)
	}

	return sync.Root, profile.Path(), nil
}

func (s *Setup) printBanner() {
	cfg := s.Config
	logger.Info("[INFO] Starting Flutter setup for: %s\n", cfg.ProjectName)
	logger.Info("[INFO] Template: %s | Org: %s | Channel: %s\n", cfg.Template, cfg.Org, cfg.Channel)
	logger.Info("[INFO] Platforms: %s | Package: %s\n", cfg.PlatformsCSV(), cfg.PackageName())
	logger.Info("[INFO] Output: %s\n", cfg.ProjectPath())
	if cfg.DryRun {
		logger.Dry("[DRY-RUN] No changes will be made; commands and writes are echoed instead\n")
	}
}

func (s *Setup) printNextSteps(profile string) {
	logger.Info("[INFO] Setup completed successfully!\n")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println()
	fmt.Printf("  1. Activate Flutter in your shell:  source %s\n", profile)
	fmt.Printf("  2. Navigate to your project:        cd %q\n", s.Config.ProjectPath())
	fmt.Println("  3. Run your app:                    make run (Chrome), make run_ios, make run_android")
	fmt.Println("  4. Test your setup:                 make test, make analyze")
	fmt.Println("  5. Open in Cursor/VS Code and hit F5 (\"Flutter Debug\") to debug")
	fmt.Println()
	fmt.Printf("Your project is located at: %s\n", s.Config.ProjectPath())
}
