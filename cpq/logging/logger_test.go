package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nof-sh/cpq/cpq/diag"
	"github.com/nof-sh/cpq/cpq/quad"
	"github.com/nof-sh/cpq/cpq/symtab"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	pterm.DisableColor()
}

var (
	syntaxError = diag.Errorf(diag.Syntax, diag.Position{Line: 1, Column: 4}, "found ;, expected expression")
	warning     = diag.Warnf(diag.Redeclared, diag.Position{Line: 0, Column: 2}, "variable a already declared as int, now float")
)

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"silent", "error", "warning", "verbose"} {
		level, err := ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, name, level.String())
	}

	_, err := ParseLevel("debug")
	assert.Error(t, err)
}

func TestErrorsPrintImmediately(t *testing.T) {
	var out bytes.Buffer
	l := New(&out, LevelError)

	l.Report(syntaxError)

	assert.Equal(t, "Syntax Error found ;, expected expression at line 2, char 5\n", out.String())
	assert.Equal(t, 1, l.ErrorCount())
}

func TestWarningsWaitForFlush(t *testing.T) {
	var out bytes.Buffer
	l := New(&out, LevelWarning)

	l.Report(warning)
	assert.Empty(t, out.String())
	assert.Zero(t, l.ErrorCount())

	l.Flush()
	assert.Equal(t, "Declaration Warning variable a already declared as int, now float at line 1, char 3\n", out.String())
}

func TestErrorLevelHidesWarnings(t *testing.T) {
	var out bytes.Buffer
	l := New(&out, LevelError)

	l.Report(warning)
	l.Flush()

	assert.Empty(t, out.String())
}

func TestSummaryAfterErrors(t *testing.T) {
	var out bytes.Buffer
	l := New(&out, LevelError)

	l.Report(syntaxError)
	l.Report(syntaxError)
	l.Flush()

	assert.True(t, strings.HasSuffix(out.String(), "Compilation failed (2 errors, 0 warnings)\n"), out.String())
}

func TestVerbose(t *testing.T) {
	var out bytes.Buffer
	l := New(&out, LevelVerbose)

	l.Info("Read", "prog.ou")
	l.Report(warning)
	l.Flush()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Read prog.ou", lines[0])
	assert.Equal(t, "Compilation succeeded (0 errors, 1 warnings)", lines[2])
}

func TestSilent(t *testing.T) {
	var out bytes.Buffer
	l := New(&out, LevelSilent)

	l.Info("Read", "prog.ou")
	l.Error("File", errors.New("cannot open"))
	l.Report(syntaxError)
	l.Report(warning)
	l.Flush()
	require.NoError(t, l.SymbolTable(symtab.New()))

	assert.Empty(t, out.String())
	assert.Equal(t, 1, l.ErrorCount())
}

func TestError(t *testing.T) {
	var out bytes.Buffer
	l := New(&out, LevelError)

	l.Error("File", errors.New("cannot open prog.ou"))

	assert.Equal(t, "File cannot open prog.ou\n", out.String())
}

func TestSymbolTable(t *testing.T) {
	var out bytes.Buffer
	l := New(&out, LevelError)

	symbols := symtab.New()
	symbols.Register("b")
	symbols.Register("a")
	require.NoError(t, symbols.SetType("a", quad.Integer))
	require.NoError(t, symbols.SetType("b", quad.Float))

	require.NoError(t, l.SymbolTable(symbols))

	var rows [][]string
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.Trim(line, "-| ") == "" {
			continue
		}
		rows = append(rows, strings.Fields(strings.ReplaceAll(line, "|", " ")))
	}
	assert.Equal(t, [][]string{{"Name", "Type"}, {"a", "int"}, {"b", "float"}}, rows)
}
