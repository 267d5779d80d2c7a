package runner

import (
	"os"
	"os/exec"
	"strings"

	"flutter-setup/internal/logger"

	"github.com/kballard/go-shellquote"
)

// Runner executes external commands. Every shell-out in the tool goes through
// this interface so stages can be tested against fakes and so dry-run can be
// enforced in exactly one place.
//
// The split between Run and Query is the dry-run contract: Run and
// RunAttached mutate the machine and are suppressed in dry-run mode, Query
// and LookPath only read state and always execute.
type Runner interface {
	// Run executes a mutating command in dir (empty means the current
	// directory) and returns its combined output.
	Run(dir, name string, args ...string) (string, error)

	// Query executes a read-only command and returns its combined output
	// with surrounding whitespace trimmed.
	Query(dir, name string, args ...string) (string, error)

	// RunAttached executes a mutating command with the user's terminal
	// attached, for installers that prompt interactively.
	RunAttached(dir, name string, args ...string) error

	// LookPath reports where name resolves on PATH.
	LookPath(name string) (string, error)
}

// New returns the Runner for a run: the real executor, wrapped in the
// dry-run guard when requested.
func New(dryRun bool) Runner {
	if dryRun {
		return &DryRun{Base: Exec{}}
	}
	return Exec{}
}

// Exec runs commands with os/exec, capturing combined output. Failures log
// the captured output so the user sees what the underlying tool printed.
type Exec struct{}

func (Exec) Run(dir, name string, args ...string) (string, error) {
	logger.Debug("[DEBUG] Running: %s\n", render(dir, name, args))
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		logger.Error("[ERROR] Command failed: %s\n%s\n", render(dir, name, args), strings.TrimSpace(string(output)))
		return string(output), err
	}
	return string(output), nil
}

func (Exec) Query(dir, name string, args ...string) (string, error) {
	logger.Debug("[DEBUG] Querying: %s\n", render(dir, name, args))
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(output)), err
}

func (Exec) RunAttached(dir, name string, args ...string) error {
	logger.Debug("[DEBUG] Running attached: %s\n", render(dir, name, args))
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (Exec) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// render formats a command line for log output, shell-quoted so it can be
// copied and pasted.
func render(dir, name string, args []string) string {
	line := shellquote.Join(append([]string{name}, args...)...)
	if dir != "" {
		return line + " (in " + dir + ")"
	}
	return line
}
