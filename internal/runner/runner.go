// Package runner executes a shortcut's stored command text.
//
// The store treats command text as opaque data; this package owns the
// "can run this text" capability behind the Runner interface so evaluators
// can be swapped without touching the store.
package runner

import (
	"io"
	"os"
	"os/exec"

	"github.com/joho/godotenv"

	"github.com/jmwatte/myshorts/internal/errors"
)

// Runner evaluates opaque command text and reports failure.
type Runner interface {
	// Run executes the command text. The text is trusted user-authored
	// code; no sandboxing is applied.
	Run(command string) error
}

// Kind names for the built-in runners.
const (
	KindShell = "shell"
	KindLua   = "lua"
)

// ErrUnknownRunner indicates an unrecognized runner kind.
var ErrUnknownRunner = errors.New("unknown runner")

// New returns the runner for the given kind.
func New(kind string) (Runner, error) {
	switch kind {
	case "", KindShell:
		return NewShell(), nil
	case KindLua:
		return NewLua(), nil
	default:
		return nil, errors.WithDetailf(ErrUnknownRunner, "runner %q (valid: %s, %s)", kind, KindShell, KindLua)
	}
}

// Shell runs command text through the user's shell.
type Shell struct {
	// Path is the shell binary. Empty means $SHELL, falling back to sh.
	Path string

	// EnvFile is an optional dotenv file whose variables are added to the
	// command's environment.
	EnvFile string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewShell creates a shell runner wired to the process's stdio.
func NewShell() *Shell {
	return &Shell{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes the command text with `<shell> -c`.
func (s *Shell) Run(command string) error {
	env := os.Environ()
	if s.EnvFile != "" {
		extra, err := godotenv.Read(s.EnvFile)
		if err != nil {
			return errors.Wrapf(err, "reading env file %s", s.EnvFile)
		}
		for k, v := range extra {
			env = append(env, k+"="+v)
		}
	}

	cmd := exec.Command(s.shell(), "-c", command)
	cmd.Env = env
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "running command")
	}
	return nil
}

// shell returns the shell binary to use. Fallback chain: Path -> $SHELL -> sh.
func (s *Shell) shell() string {
	if s.Path != "" {
		return s.Path
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "sh"
}
