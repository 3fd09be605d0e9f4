package runner

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/jmwatte/myshorts/internal/errors"
)

// Lua runs command text as Lua source in an embedded interpreter.
// Each Run uses a fresh state, so shortcuts cannot leak globals into
// each other.
type Lua struct{}

// NewLua creates a Lua runner.
func NewLua() *Lua {
	return &Lua{}
}

// Run evaluates the command text as a Lua chunk.
func (l *Lua) Run(command string) error {
	state := lua.NewState()
	defer state.Close()

	if err := state.DoString(command); err != nil {
		return errors.Wrap(err, "running lua chunk")
	}
	return nil
}
