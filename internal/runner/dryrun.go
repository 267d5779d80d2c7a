package runner

import "flutter-setup/internal/logger"

// DryRun wraps a Runner and suppresses every mutating command, printing the
// command line that would have run instead. Read-only commands pass through
// so stages still see real machine state and take the same branches a live
// run would.
type DryRun struct {
	Base Runner
}

func (d *DryRun) Run(dir, name string, args ...string) (string, error) {
	logger.Dry("[DRY-RUN] %s\n", render(dir, name, args))
	return "", nil
}

func (d *DryRun) Query(dir, name string, args ...string) (string, error) {
	return d.Base.Query(dir, name, args...)
}

func (d *DryRun) RunAttached(dir, name string, args ...string) error {
	logger.Dry("[DRY-RUN] %s\n", render(dir, name, args))
	return nil
}

func (d *DryRun) LookPath(name string) (string, error) {
	return d.Base.LookPath(name)
}
