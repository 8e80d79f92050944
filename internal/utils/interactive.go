package utils

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// ErrNotInteractive is returned when a prompt is needed but no terminal is attached
var ErrNotInteractive = errors.New("confirmation required but not running in an interactive terminal")

// NonInteractiveEnv forces non-interactive mode when set
const NonInteractiveEnv = "GITPROVIDER_NON_INTERACTIVE"

// IsInteractive checks if stdin and stdout are both attached to a terminal
func IsInteractive() bool {
	if os.Getenv(NonInteractiveEnv) != "" {
		return false
	}
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Confirm asks a yes/no question, defaulting to no.
// It fails with ErrNotInteractive when no terminal is attached.
func Confirm(message string) (bool, error) {
	if !IsInteractive() {
		return false, ErrNotInteractive
	}

	confirmed := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return confirmed, nil
}
