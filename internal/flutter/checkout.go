package flutter

import (
	"fmt"
	"strconv"
	"strings"
)

// Status describes the SDK checkout as found on disk. Fields stay empty for
// anything git could not answer.
type Status struct {
	Root     string
	Exists   bool
	Branch   string
	Revision string
	Origin   string
}

// Status inspects the checkout without changing it.
func (s *Synchronizer) Status() Status {
	status := Status{Root: s.Root}
	if !s.HasCheckout() {
		return status
	}
	status.Exists = true
	if out, err := s.Runner.Query(s.Root, "git", "rev-parse", "--abbrev-ref", "HEAD"); err == nil {
		status.Branch = out
	}
	if out, err := s.Runner.Query(s.Root, "git", "rev-parse", "--short", "HEAD"); err == nil {
		status.Revision = out
	}
	if out, err := s.Runner.Query(s.Root, "git", "remote", "get-url", "origin"); err == nil {
		status.Origin = out
	}
	return status
}

// Divergence counts the commits origin and the local channel branch each
// have that the other does not.
func (s *Synchronizer) Divergence() (remote, local int, err error) {
	out, err := s.Runner.Query(s.Root, "git", "rev-list", "--left-right", "--count", s.remoteRef()+"..."+string(s.Channel))
	if err != nil {
		return 0, 0, err
	}
	fields := strings.Fields(out)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q", out)
	}
	remote, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q", out)
	}
	local, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q", out)
	}
	return remote, local, nil
}
