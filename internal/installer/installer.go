package installer

import (
	"os"
	"path/filepath"

	"flutter-setup/internal/config"
	"flutter-setup/internal/logger"
	"flutter-setup/internal/runner"
)

// homebrewInstall is the official single-command Homebrew installer, run
// non-interactively so it never stops to ask for confirmation.
const homebrewInstall = `NONINTERACTIVE=1 curl -fsSL "https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh" | bash`

// appleSiliconBrew is where Homebrew lands on arm64 Macs, which is not on
// the default PATH of a fresh machine.
const appleSiliconBrew = "/opt/homebrew/bin/brew"

// requiredFormulae must be present before the SDK can be cloned and iOS
// dependencies resolved. A failed install here aborts the run.
var requiredFormulae = []string{"git", "cocoapods"}

// androidCasks provide a JDK and the Android SDK command line tools. They
// are large GUI-adjacent installs, so failures only warn.
var androidCasks = []string{"temurin", "android-commandlinetools"}

// Installer checks for and installs the system tools a Flutter workstation
// needs. All commands go through the injected Runner.
type Installer struct {
	Runner runner.Runner

	// DryRun relaxes the abort-on-missing-tool rules so a dry run can
	// echo the whole pipeline instead of stopping at the first gap.
	DryRun bool

	// brewPath is where an Apple Silicon Homebrew lives when it is not
	// on PATH yet. Overridable for tests.
	brewPath string
}

// New returns an Installer that shells out through r.
func New(r runner.Runner, dryRun bool) *Installer {
	return &Installer{Runner: r, DryRun: dryRun, brewPath: appleSiliconBrew}
}

// EnsureAll verifies every prerequisite for the given platforms, installing
// what it can. Required tools abort with a PrereqError when they cannot be
// made available; platform extras only warn.
func (i *Installer) EnsureAll(platforms []config.Platform) error {
	if err := i.ensureXcodeTools(); err != nil {
		return err
	}
	if err := i.ensureHomebrew(); err != nil {
		return err
	}
	for _, formula := range requiredFormulae {
		if err := i.EnsureFormula(formula); err != nil {
			return err
		}
	}
	if hasPlatform(platforms, config.PlatformAndroid) {
		i.ensureAndroidTools()
	}
	if hasPlatform(platforms, config.PlatformIos) {
		i.updatePodRepo()
	}
	return nil
}

// ensureXcodeTools checks for the Xcode Command Line Tools. They cannot be
// installed unattended: a missing install is triggered through Apple's GUI
// flow and the run aborts so the user can finish it and come back.
func (i *Installer) ensureXcodeTools() error {
	path, err := i.Runner.Query("", "xcode-select", "-p")
	if err == nil {
		logger.Info("[INFO] Xcode Command Line Tools found at %s\n", path)
		return nil
	}

	logger.Warn("[WARN] Xcode Command Line Tools not found, starting installation...\n")
	if err := i.Runner.RunAttached("", "xcode-select", "--install"); err != nil {
		return NewPrereqError("failed to start Xcode Command Line Tools installation", err)
	}
	if i.DryRun {
		return nil
	}
	logger.Info("[INFO] Complete the installation in the popup window, then run the setup again.\n")
	return NewPrereqError("Xcode Command Line Tools installation required", nil)
}

// ensureHomebrew makes sure brew is runnable, installing it with the
// official script when missing.
func (i *Installer) ensureHomebrew() error {
	if _, err := i.Runner.LookPath("brew"); err == nil {
		logger.Info("[INFO] Homebrew found\n")
		i.ensureHomebrewPath()
		return nil
	}

	logger.Warn("[WARN] Homebrew not found, installing...\n")
	if _, err := i.Runner.Run("", "/bin/bash", "-c", homebrewInstall); err != nil {
		return NewPrereqError("failed to install Homebrew", err)
	}
	i.ensureHomebrewPath()
	if i.DryRun {
		return nil
	}
	if _, err := i.Runner.LookPath("brew"); err != nil {
		return NewPrereqError("Homebrew installed but brew is still not on PATH", err)
	}
	logger.Info("[INFO] Homebrew installed\n")
	return nil
}

// ensureHomebrewPath prepends the Apple Silicon Homebrew directory to PATH
// for this process when brew lives there but is not reachable yet. Later
// stages shell out to brew and pod and inherit the fixed PATH.
func (i *Installer) ensureHomebrewPath() {
	if _, err := i.Runner.LookPath("brew"); err == nil {
		return
	}
	if _, err := os.Stat(i.brewPath); err != nil {
		return
	}
	dir := filepath.Dir(i.brewPath)
	if err := os.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH")); err != nil {
		logger.Warn("[WARN] Could not add %s to PATH: %v\n", dir, err)
		return
	}
	logger.Info("[INFO] Added %s to PATH for this session\n", dir)
}

// EnsureFormula installs a Homebrew formula unless it is already present.
func (i *Installer) EnsureFormula(name string) error {
	if _, err := i.Runner.Query("", "brew", "list", name); err == nil {
		logger.Info("[INFO] %s already installed\n", name)
		return nil
	}

	logger.Info("[INFO] Installing %s...\n", name)
	if _, err := i.Runner.Run("", "brew", "install", name); err != nil {
		return NewPrereqError("failed to install "+name, err)
	}
	return nil
}

// ensureAndroidTools installs the Android toolchain casks. These are
// nice-to-have for a first build, so failures do not abort the run.
func (i *Installer) ensureAndroidTools() {
	logger.Info("[INFO] Setting up Android development tools...\n")
	for _, cask := range androidCasks {
		if _, err := i.Runner.Query("", "brew", "list", "--cask", cask); err == nil {
			logger.Info("[INFO] %s already installed\n", cask)
			continue
		}
		logger.Info("[INFO] Installing %s...\n", cask)
		if _, err := i.Runner.Run("", "brew", "install", "--cask", cask); err != nil {
			logger.Warn("[WARN] Failed to install %s, continuing: %v\n", cask, err)
		}
	}
}

// updatePodRepo refreshes the CocoaPods spec repo so the first `pod install`
// inside a generated project does not stall. Failure is not fatal.
func (i *Installer) updatePodRepo() {
	logger.Info("[INFO] Updating CocoaPods repositories...\n")
	if _, err := i.Runner.Run("", "pod", "repo", "update"); err != nil {
		logger.Warn("[WARN] CocoaPods repo update failed, continuing: %v\n", err)
	}
}

func hasPlatform(platforms []config.Platform, want config.Platform) bool {
	for _, p := range platforms {
		if p == want {
			return true
		}
	}
	return false
}
