package main

import (
	"github.com/joho/godotenv"

	"flutter-setup/cmd" // CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The flutter-setup project automates Flutter development environment setup on macOS:
//   - Checks and installs prerequisites: Xcode Command Line Tools, Homebrew,
//     git and CocoaPods, plus the Android toolchain casks when an Android
//     platform is requested
//   - Installs the Flutter SDK as a shallow git checkout of the requested
//     channel, or brings an existing checkout up to date (fetch plus
//     fast-forward, with confirmation before discarding diverged history)
//   - Persists the SDK's bin directory on PATH through a single idempotent
//     export line in the user's shell profile (zsh or bash)
//   - Validates the toolchain with flutter doctor and can accept Android SDK
//     licenses interactively
//   - Creates the Flutter project with flutter create, then bootstraps an
//     editor-ready workspace: VS Code/Cursor settings, Makefile, test
//     scaffolding, CI workflow, lint configuration and dotenv wiring
//
// Error handling strategy:
//   - Validation and prerequisite failures exit with status 2, runtime
//     failures with 1; the first failing stage aborts the run
//   - Optional conveniences (casks, pod repo update, pub add, dart format)
//     only warn on failure so a run is never blocked by nice-to-haves
//   - Every stage is idempotent on its own precondition, so rerunning after
//     a fix is always safe
//
// Dry-run support:
//   - --dry-run routes every mutating command and file write through
//     echo-only implementations, previewing the full run without changes
func main() {
	// Overrides such as FLUTTER_SETUP_ROOT may come from a local .env file.
	_ = godotenv.Load()

	cmd.Execute()
}
