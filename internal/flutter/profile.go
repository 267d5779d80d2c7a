package flutter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"flutter-setup/internal/logger"
	"flutter-setup/internal/scaffold"
)

// Profile persists the SDK PATH entry in the user's shell startup file and
// fixes the current process PATH so later stages can run the freshly
// installed tools.
type Profile struct {
	Writer *scaffold.Writer
	Home   string

	// Override names the startup file directly, bypassing shell
	// detection. Wired from $FLUTTER_SETUP_PROFILE.
	Override string
}

// NewProfile builds a Profile for the current user.
func NewProfile(w *scaffold.Writer) (*Profile, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return &Profile{
		Writer:   w,
		Home:     home,
		Override: os.Getenv("FLUTTER_SETUP_PROFILE"),
	}, nil
}

// Apply ensures the startup file exports the SDK bin directory and that the
// current process sees it on PATH.
func (p *Profile) Apply(root string) error {
	profile := p.Path()
	line := fmt.Sprintf(`export PATH="%s:$PATH"`, BinDir(root))

	added, err := p.Writer.EnsureLine(profile, line)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", profile, err)
	}
	if added {
		logger.Info("[INFO] Added Flutter to PATH in %s\n", profile)
	} else {
		logger.Info("[INFO] Flutter PATH already configured in %s\n", profile)
	}

	prependProcessPath(BinDir(root))
	return nil
}

// Path picks the startup file for the user's shell. zsh is the macOS
// default and the fallback for anything unrecognized.
func (p *Profile) Path() string {
	if p.Override != "" {
		return p.Override
	}
	if detectShell() == "bash" {
		return filepath.Join(p.Home, ".bash_profile")
	}
	return filepath.Join(p.Home, ".zprofile")
}

// detectShell figures out the user's shell from the SHELL environment
// variable. Only zsh and bash are recognized; anything else is treated as
// zsh.
func detectShell() string {
	shell := os.Getenv("SHELL")
	logger.Debug("[DEBUG] Detected shell environment: %s\n", shell)

	if strings.Contains(shell, "zsh") {
		return "zsh"
	} else if strings.Contains(shell, "bash") {
		return "bash"
	}
	return "zsh"
}

// prependProcessPath puts dir first on this process's PATH unless it is
// already listed. Child processes such as the flutter tool inherit it.
func prependProcessPath(dir string) {
	current := os.Getenv("PATH")
	for _, entry := range filepath.SplitList(current) {
		if entry == dir {
			return
		}
	}
	if err := os.Setenv("PATH", dir+string(os.PathListSeparator)+current); err != nil {
		logger.Warn("[WARN] Could not add %s to PATH: %v\n", dir, err)
		return
	}
	logger.Debug("[DEBUG] Added %s to PATH for this session\n", dir)
}
