package prompt

import (
	"os"

	"flutter-setup/internal/logger"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// Func asks the user a yes/no question and reports the answer. Stages take a
// Func instead of calling the terminal directly so tests and non-interactive
// runs can script the answer.
type Func func(message string) bool

// Confirm asks on the controlling terminal, defaulting to no. When stdin is
// not a terminal the question is never shown: the answer is an immediate no,
// so destructive operations cannot hang or fire implicitly in CI.
func Confirm(message string) bool {
	return confirm(message, isTerminal(os.Stdin.Fd()), askSurvey)
}

// Always answers yes to everything. Used by the dry-run path so every branch
// behind a confirmation still gets echoed.
func Always(string) bool { return true }

func confirm(message string, terminal bool, ask func(string) (bool, error)) bool {
	if !terminal {
		logger.Warn("[WARN] No terminal attached; assuming \"no\": %s\n", message)
		return false
	}
	confirmed, err := ask(message)
	if err != nil {
		return false
	}
	return confirmed
}

func askSurvey(message string) (bool, error) {
	confirmed := false
	question := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(question, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
