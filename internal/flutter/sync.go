package flutter

import (
	"fmt"
	"os"
	"path/filepath"

	"flutter-setup/internal/config"
	"flutter-setup/internal/logger"
	"flutter-setup/internal/prompt"
	"flutter-setup/internal/runner"
	"flutter-setup/internal/scaffold"
)

// defaultRepo is the canonical Flutter SDK repository.
const defaultRepo = "https://github.com/flutter/flutter.git"

// DefaultRoot returns where the SDK lives: $FLUTTER_SETUP_ROOT when set,
// otherwise ~/development/flutter.
func DefaultRoot() (string, error) {
	if root := os.Getenv("FLUTTER_SETUP_ROOT"); root != "" {
		return root, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, "development", "flutter"), nil
}

// RepoURL returns the SDK repository to clone from, overridable through
// $FLUTTER_SETUP_REPO for mirrors.
func RepoURL() string {
	if repo := os.Getenv("FLUTTER_SETUP_REPO"); repo != "" {
		return repo
	}
	return defaultRepo
}

// BinDir is the SDK's executable directory.
func BinDir(root string) string {
	return filepath.Join(root, "bin")
}

// BinPath is the flutter executable inside the SDK.
func BinPath(root string) string {
	return filepath.Join(root, "bin", "flutter")
}

// DartPath is the dart executable that ships with the SDK.
func DartPath(root string) string {
	return filepath.Join(root, "bin", "dart")
}

// Synchronizer brings the SDK checkout at Root to the requested channel.
// The checkout is plain git state: a shallow clone on first install, then
// fetch plus fast-forward on later runs, with divergence handled according
// to Mode.
type Synchronizer struct {
	Runner  runner.Runner
	Writer  *scaffold.Writer
	Ask     prompt.Func
	Root    string
	Repo    string
	Channel config.Channel
	Mode    config.UpdateMode
}

// NewSynchronizer resolves the SDK location from the environment and wires
// the capabilities a sync needs.
func NewSynchronizer(r runner.Runner, w *scaffold.Writer, ask prompt.Func, channel config.Channel, mode config.UpdateMode) (*Synchronizer, error) {
	root, err := DefaultRoot()
	if err != nil {
		return nil, err
	}
	return &Synchronizer{
		Runner:  r,
		Writer:  w,
		Ask:     ask,
		Root:    root,
		Repo:    RepoURL(),
		Channel: channel,
		Mode:    mode,
	}, nil
}

// Ensure makes the checkout exist on the requested channel. Reclone mode
// always starts from scratch; otherwise a missing checkout is cloned and an
// existing one updated in place.
func (s *Synchronizer) Ensure() error {
	if s.Mode == config.UpdateReclone {
		if s.Writer.Exists(s.Root) {
			logger.Info("[INFO] Removing %s for a fresh clone...\n", s.Root)
			if err := s.Writer.RemoveAll(s.Root); err != nil {
				return fmt.Errorf("failed to remove %s: %w", s.Root, err)
			}
		}
		return s.clone()
	}

	if !s.HasCheckout() {
		if s.Writer.Exists(s.Root) {
			return fmt.Errorf("%s exists but is not a git checkout; re-run with --flutter-update reclone to replace it", s.Root)
		}
		return s.clone()
	}
	return s.update()
}

// HasCheckout reports whether Root holds a git checkout of the SDK.
func (s *Synchronizer) HasCheckout() bool {
	return s.Writer.Exists(s.Root) && s.Writer.Exists(filepath.Join(s.Root, ".git"))
}

func (s *Synchronizer) clone() error {
	logger.Info("[INFO] Installing Flutter SDK (%s channel) into %s...\n", s.Channel, s.Root)
	if err := s.Writer.MkdirAll(filepath.Dir(s.Root)); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(s.Root), err)
	}
	// Shallow clone: the SDK history is huge and only the channel tip matters.
	if _, err := s.Runner.Run("", "git", "clone", "--depth", "1", "-b", string(s.Channel), s.Repo, s.Root); err != nil {
		return fmt.Errorf("failed to clone Flutter SDK: %w", err)
	}
	logger.Info("[INFO] Flutter SDK installed\n")
	return nil
}

func (s *Synchronizer) update() error {
	logger.Info("[INFO] Updating Flutter SDK (%s channel)...\n", s.Channel)

	// Point a checkout cloned from a mirror back at the configured
	// repository. Harmless when it fails.
	if _, err := s.Runner.Run(s.Root, "git", "remote", "set-url", "origin", s.Repo); err != nil {
		logger.Warn("[WARN] Could not update origin URL, continuing: %v\n", err)
	}

	if _, err := s.Runner.Run(s.Root, "git", "fetch", "origin", "--prune"); err != nil {
		return fmt.Errorf("failed to fetch from origin: %w", err)
	}

	if err := s.checkoutChannel(); err != nil {
		return err
	}

	if _, err := s.Runner.Run(s.Root, "git", "merge", "--ff-only", s.remoteRef()); err == nil {
		logger.Info("[INFO] Flutter SDK updated (fast-forward)\n")
		return nil
	}

	return s.reconcileDiverged()
}

// checkoutChannel switches to the channel branch, creating it from origin
// when this checkout has never been on that channel before.
func (s *Synchronizer) checkoutChannel() error {
	if _, err := s.Runner.Run(s.Root, "git", "checkout", string(s.Channel)); err == nil {
		return nil
	}
	if _, err := s.Runner.Run(s.Root, "git", "checkout", "-b", string(s.Channel), s.remoteRef()); err != nil {
		return fmt.Errorf("failed to check out channel %s: %w", s.Channel, err)
	}
	return nil
}

// reconcileDiverged handles a local branch that cannot fast-forward. Skip
// mode leaves it alone; otherwise the user decides whether local history is
// discarded. Declining is not an error, the checkout just stays as it is.
func (s *Synchronizer) reconcileDiverged() error {
	if s.Mode == config.UpdateSkip {
		logger.Warn("[WARN] Flutter checkout has diverged from origin; leaving it as is (update mode: skip)\n")
		return nil
	}

	logger.Warn("[WARN] Flutter checkout has diverged from origin\n")
	if remote, local, err := s.Divergence(); err == nil {
		logger.Info("[INFO] origin ahead by %d, local ahead by %d\n", remote, local)
	}

	if !s.Ask(fmt.Sprintf("Discard local changes and reset to %s?", s.remoteRef())) {
		logger.Warn("[WARN] Reset declined; leaving the checkout as is. Re-run with --flutter-update reclone or resolve the divergence manually.\n")
		return nil
	}

	logger.Info("[INFO] Resetting to %s (discarding local changes)...\n", s.remoteRef())
	if _, err := s.Runner.Run(s.Root, "git", "reset", "--hard", s.remoteRef()); err != nil {
		return fmt.Errorf("failed to reset to %s: %w", s.remoteRef(), err)
	}
	logger.Info("[INFO] Flutter SDK reset to %s\n", s.remoteRef())
	return nil
}

func (s *Synchronizer) remoteRef() string {
	return "origin/" + string(s.Channel)
}
