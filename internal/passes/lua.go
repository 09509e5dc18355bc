package passes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"

	"phpfmt/internal/lexer"
	"phpfmt/internal/token"
)

// ErrScript reports a user script that failed to load or run.
var ErrScript = errors.New("lua script")

// Lua runs a user supplied script as a pass. The script must define a global
// `format(src)` returning the new source; it may call the global `tokens(src)`
// to get the lexed stream as a list of {kind=, text=} tables.
type Lua struct {
	path  string
	proto *lua.FunctionProto
}

// NewLua compiles the script at path.
func NewLua(path string) (*Lua, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no script path", ErrScript)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScript, err)
	}
	defer f.Close()

	chunk, err := parse.Parse(f, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScript, path, err)
	}
	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScript, path, err)
	}
	return &Lua{path: path, proto: proto}, nil
}

func (p *Lua) Name() string { return "Lua" }

func (p *Lua) Description() string {
	return "Run the Lua script " + filepath.Base(p.path) + " as a pass."
}

func (p *Lua) Candidate(string, token.Set) bool { return true }

// Format runs the script in a fresh interpreter state.
func (p *Lua) Format(src string) (string, error) {
	L := lua.NewState()
	defer L.Close()
	L.SetGlobal("tokens", L.NewFunction(luaTokens))

	L.Push(L.NewFunctionFromProto(p.proto))
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrScript, p.path, err)
	}
	L.SetTop(0)

	fn := L.GetGlobal("format")
	if fn.Type() != lua.LTFunction {
		return "", fmt.Errorf("%w: %s: no global function 'format'", ErrScript, p.path)
	}
	err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, lua.LString(src))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrScript, p.path, err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	s, ok := ret.(lua.LString)
	if !ok {
		return "", fmt.Errorf("%w: %s: format returned %s, want string", ErrScript, p.path, ret.Type())
	}
	return string(s), nil
}

func luaTokens(L *lua.LState) int {
	toks, _, err := lexer.Tokenize(L.CheckString(1))
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	list := L.CreateTable(len(toks), 0)
	for i, t := range toks {
		row := L.CreateTable(0, 2)
		row.RawSetString("kind", lua.LString(t.Kind.String()))
		row.RawSetString("text", lua.LString(t.Text))
		list.RawSetInt(i+1, row)
	}
	L.Push(list)
	return 1
}
