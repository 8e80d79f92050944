package git

import (
	"strings"

	"github.com/kballard/go-shellquote"

	gperrors "gitprovider.dev/gitprovider/internal/errors"
)

// argKind describes how an Arg is rendered into argv
type argKind int

const (
	argPositional argKind = iota
	argSwitch
	argOption
	argAssign
)

// Arg is a single element of a command's argument list
type Arg struct {
	kind  argKind
	name  string
	value string
}

// Positional is an argument emitted verbatim, e.g. a file pattern or a remote name
func Positional(value string) Arg {
	return Arg{kind: argPositional, value: value}
}

// Switch is a flag without a value, e.g. --bare
func Switch(name string) Arg {
	return Arg{kind: argSwitch, name: name}
}

// Option is a flag followed by a separate value, e.g. -m <message>
func Option(name, value string) Arg {
	return Arg{kind: argOption, name: name, value: value}
}

// Assign is a flag joined to its value with '=', e.g. --shared=0775
func Assign(name, value string) Arg {
	return Arg{kind: argAssign, name: name, value: value}
}

// Command is a git verb plus its ordered arguments.
// Order is preserved because git is order-sensitive for some flags.
type Command struct {
	Verb string
	Args []Arg
}

// NewCommand creates a command for the given verb
func NewCommand(verb string, args ...Arg) *Command {
	return &Command{Verb: verb, Args: args}
}

// Add appends arguments and returns the command for chaining
func (c *Command) Add(args ...Arg) *Command {
	c.Args = append(c.Args, args...)
	return c
}

// Build returns the argv for the command (without the git binary itself).
// An empty verb, flag name or value is rejected rather than embedded in a broken command line.
func (c *Command) Build() ([]string, error) {
	if strings.TrimSpace(c.Verb) == "" {
		return nil, gperrors.NewInvalidArgumentError("invalid command: empty verb", nil)
	}

	argv := make([]string, 0, len(c.Args)*2+1)
	argv = append(argv, c.Verb)
	for i, arg := range c.Args {
		switch arg.kind {
		case argPositional:
			if arg.value == "" {
				return nil, emptyArgError(c.Verb, i)
			}
			argv = append(argv, arg.value)
		case argSwitch:
			if arg.name == "" {
				return nil, emptyArgError(c.Verb, i)
			}
			argv = append(argv, arg.name)
		case argOption:
			if arg.name == "" || arg.value == "" {
				return nil, emptyArgError(c.Verb, i)
			}
			argv = append(argv, arg.name, arg.value)
		case argAssign:
			if arg.name == "" || arg.value == "" {
				return nil, emptyArgError(c.Verb, i)
			}
			argv = append(argv, arg.name+"="+arg.value)
		}
	}
	return argv, nil
}

func emptyArgError(verb string, index int) error {
	return gperrors.NewInvalidArgumentError("invalid command {verb}: argument {index} is empty", gperrors.Context{
		"verb":  verb,
		"index": index,
	})
}

// String renders the command as a shell-quoted line, for diagnostics only.
// Commands are never run through a shell.
func (c *Command) String() string {
	argv, err := c.Build()
	if err != nil {
		return "git " + c.Verb
	}
	return shellquote.Join(append([]string{"git"}, argv...)...)
}
