package passes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pass.lua")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const upperVariables = `
function format(src)
  local out = {}
  for _, t in ipairs(tokens(src)) do
    if t.kind == "Variable" then
      out[#out + 1] = string.upper(t.text)
    else
      out[#out + 1] = t.text
    end
  end
  return table.concat(out)
end
`

func TestLuaPass(t *testing.T) {
	p, err := NewLua(writeScript(t, upperVariables))
	require.NoError(t, err)
	require.Equal(t, "<?php $A = $BC;", run(t, p, "<?php $a = $bc;"))
	// each run starts from a fresh interpreter
	require.Equal(t, "<?php $X;", run(t, p, "<?php $x;"))
}

func TestLuaPassErrors(t *testing.T) {
	_, err := NewLua(filepath.Join(t.TempDir(), "missing.lua"))
	require.ErrorIs(t, err, ErrScript)

	_, err = NewLua(writeScript(t, "function format(src"))
	require.ErrorIs(t, err, ErrScript)

	p, err := NewLua(writeScript(t, "x = 1"))
	require.NoError(t, err)
	_, err = p.Format("<?php")
	require.ErrorIs(t, err, ErrScript)

	p, err = NewLua(writeScript(t, "function format(src) return 42 end"))
	require.NoError(t, err)
	_, err = p.Format("<?php")
	require.ErrorIs(t, err, ErrScript)

	p, err = NewLua(writeScript(t, "function format(src) error('boom') end"))
	require.NoError(t, err)
	_, err = p.Format("<?php")
	require.ErrorIs(t, err, ErrScript)
}
