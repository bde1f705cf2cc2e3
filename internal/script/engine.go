package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// maxLogLines bounds the captured log buffer; older lines are dropped.
const maxLogLines = 128

// Hook identifies a control transition a script can react to.
type Hook uint8

const (
	// HookPressed fires on the tick a control becomes Pressed.
	HookPressed Hook = iota
	// HookReleased fires on the tick a control becomes Released.
	HookReleased
	// HookHeld fires on each tick a control stays Held.
	HookHeld
)

// String returns the hook name as scripts know it.
func (h Hook) String() string {
	switch h {
	case HookPressed:
		return "pressed"
	case HookReleased:
		return "released"
	case HookHeld:
		return "held"
	default:
		return "unknown"
	}
}

// Binding is one input-to-control declaration made by a script.
type Binding struct {
	Input   string
	Control string
}

// Engine hosts a sandboxed Lua state for one binding script.
type Engine struct {
	L      *lua.LState
	closed bool

	bindings []Binding
	hooks    map[Hook]map[string]*lua.LFunction
	logs     []string
}

// New creates an engine with the script API registered and only safe Lua
// libraries opened.
func New() *Engine {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	openSafeLibraries(L)

	e := &Engine{
		L: L,
		hooks: map[Hook]map[string]*lua.LFunction{
			HookPressed:  {},
			HookReleased: {},
			HookHeld:     {},
		},
	}
	e.registerAPI()
	return e
}

// openSafeLibraries opens only safe Lua standard libraries.
// io, os, debug, and package stay closed, and the chunk loaders that base
// installs are removed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// OpenBase also installs dofile, loadfile, load, and loadstring.
	// Scripts must not read or execute files, or compile arbitrary chunks.
	loaders := []string{"dofile", "loadfile", "load", "loadstring"}
	for _, name := range loaders {
		L.SetGlobal(name, lua.LNil)
	}
}

// registerAPI installs the script-facing globals.
func (e *Engine) registerAPI() {
	e.L.SetGlobal("bind", e.L.NewFunction(e.luaBind))
	e.L.SetGlobal("on_pressed", e.L.NewFunction(e.luaOn(HookPressed)))
	e.L.SetGlobal("on_released", e.L.NewFunction(e.luaOn(HookReleased)))
	e.L.SetGlobal("on_held", e.L.NewFunction(e.luaOn(HookHeld)))
	e.L.SetGlobal("log", e.L.NewFunction(e.luaLog))
}

// LoadFile executes a script file.
func (e *Engine) LoadFile(path string) error {
	if e.closed {
		return ErrEngineClosed
	}
	return e.doWithRecovery(func() error {
		return e.L.DoFile(path)
	})
}

// LoadString executes script source directly.
func (e *Engine) LoadString(code string) error {
	if e.closed {
		return ErrEngineClosed
	}
	return e.doWithRecovery(func() error {
		return e.L.DoString(code)
	})
}

// Bindings returns the bindings declared so far, in declaration order.
func (e *Engine) Bindings() []Binding {
	out := make([]Binding, len(e.bindings))
	copy(out, e.bindings)
	return out
}

// Fire invokes the script's hook for a control transition. A control with no
// registered hook is a no-op. A failing hook returns an error but leaves the
// engine usable.
func (e *Engine) Fire(hook Hook, control string) error {
	if e.closed {
		return ErrEngineClosed
	}

	fn := e.hooks[hook][control]
	if fn == nil {
		return nil
	}

	err := e.doWithRecovery(func() error {
		return e.L.CallByParam(lua.P{
			Fn:      fn,
			NRet:    0,
			Protect: true,
		}, lua.LString(control))
	})
	if err != nil {
		return fmt.Errorf("firing %s hook for %q: %w", hook, control, err)
	}
	return nil
}

// Log returns the captured log lines, oldest first.
func (e *Engine) Log() []string {
	out := make([]string, len(e.logs))
	copy(out, e.logs)
	return out
}

// IsClosed returns true if the engine has been closed.
func (e *Engine) IsClosed() bool {
	return e.closed
}

// Close releases the Lua state. Safe to call twice.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.L.Close()
	e.closed = true
	return nil
}

// doWithRecovery executes a function with panic recovery.
func (e *Engine) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// luaBind implements the bind(input, control) global.
func (e *Engine) luaBind(L *lua.LState) int {
	input := L.CheckString(1)
	control := L.CheckString(2)
	if input == "" {
		L.ArgError(1, "empty input")
	}
	if control == "" {
		L.ArgError(2, "empty control")
	}

	e.bindings = append(e.bindings, Binding{Input: input, Control: control})
	return 0
}

// luaOn implements the on_pressed/on_released/on_held globals.
func (e *Engine) luaOn(hook Hook) lua.LGFunction {
	return func(L *lua.LState) int {
		control := L.CheckString(1)
		fn := L.CheckFunction(2)
		if control == "" {
			L.ArgError(1, "empty control")
		}

		e.hooks[hook][control] = fn
		return 0
	}
}

// luaLog implements the log(message) global.
func (e *Engine) luaLog(L *lua.LState) int {
	msg := L.CheckString(1)

	if len(e.logs) >= maxLogLines {
		e.logs = append(e.logs[1:], msg)
	} else {
		e.logs = append(e.logs, msg)
	}
	return 0
}
