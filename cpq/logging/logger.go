// Package logging displays compiler diagnostics and progress.
package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/nof-sh/cpq/cpq/diag"
	"github.com/nof-sh/cpq/cpq/quad"
	"github.com/pterm/pterm"
)

// Level selects how much the logger prints.
type Level int

// Enumeration of the different log levels
const (
	LevelSilent  Level = iota // no output at all
	LevelError                // only errors
	LevelWarning              // errors and warnings
	LevelVerbose              // errors, warnings and progress
)

var levelNames = [...]string{
	LevelSilent:  "silent",
	LevelError:   "error",
	LevelWarning: "warning",
	LevelVerbose: "verbose",
}

func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel returns the level with the given name.
func ParseLevel(name string) (Level, error) {
	for level, levelName := range levelNames {
		if name == levelName {
			return Level(level), nil
		}
	}
	return LevelSilent, fmt.Errorf("unknown log level %q", name)
}

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// Logger prints diagnostics as they are reported. Errors are shown at once,
// warnings are held back until Flush so they do not interleave with errors.
type Logger struct {
	out   io.Writer
	level Level

	errorCount int
	warnings   []diag.Diagnostic

	m sync.Mutex
}

// New returns a logger writing to out.
func New(out io.Writer, level Level) *Logger {
	return &Logger{out: out, level: level}
}

// ErrorCount returns the number of error diagnostics reported.
func (l *Logger) ErrorCount() int {
	l.m.Lock()
	defer l.m.Unlock()
	return l.errorCount
}

// Report logs a diagnostic. It makes the logger a diag.Reporter.
func (l *Logger) Report(d diag.Diagnostic) {
	l.m.Lock()
	defer l.m.Unlock()

	if d.IsError() {
		l.errorCount++
		if l.level > LevelSilent {
			l.display(d)
		}
		return
	}

	l.warnings = append(l.warnings, d)
}

// Flush prints the held back warnings and a closing summary.
func (l *Logger) Flush() {
	l.m.Lock()
	defer l.m.Unlock()

	if l.level >= LevelWarning {
		for _, w := range l.warnings {
			l.display(w)
		}
	}

	if l.level >= LevelVerbose || (l.level > LevelSilent && l.errorCount > 0) {
		l.summary()
	}
	l.warnings = nil
}

func (l *Logger) display(d diag.Diagnostic) {
	if d.IsError() {
		fmt.Fprint(l.out, ErrorStyleBG.Sprint(d.Kind.String()+" Error"))
		fmt.Fprintln(l.out, ErrorColorFG.Sprint(" "+d.Error()))
	} else {
		fmt.Fprint(l.out, WarnStyleBG.Sprint(d.Kind.String()+" Warning"))
		fmt.Fprintln(l.out, WarnColorFG.Sprint(" "+d.Error()))
	}
}

func (l *Logger) summary() {
	if l.errorCount == 0 {
		fmt.Fprint(l.out, SuccessColorFG.Sprint("Compilation succeeded"))
	} else {
		fmt.Fprint(l.out, ErrorColorFG.Sprint("Compilation failed"))
	}

	fmt.Fprint(l.out, " (")
	switch l.errorCount {
	case 0:
		fmt.Fprint(l.out, SuccessColorFG.Sprint(0))
	default:
		fmt.Fprint(l.out, ErrorColorFG.Sprint(l.errorCount))
	}
	fmt.Fprint(l.out, " errors, ")
	switch len(l.warnings) {
	case 0:
		fmt.Fprint(l.out, SuccessColorFG.Sprint(0))
	default:
		fmt.Fprint(l.out, WarnColorFG.Sprint(len(l.warnings)))
	}
	fmt.Fprintln(l.out, " warnings)")
}

// Info prints a progress message in verbose mode.
func (l *Logger) Info(tag, msg string) {
	if l.level < LevelVerbose {
		return
	}
	fmt.Fprint(l.out, InfoStyleBG.Sprint(tag))
	fmt.Fprintln(l.out, InfoColorFG.Sprint(" "+msg))
}

// Error prints an operational error, such as an unreadable file.
func (l *Logger) Error(tag string, err error) {
	if l.level == LevelSilent {
		return
	}
	fmt.Fprint(l.out, ErrorStyleBG.Sprint(tag))
	fmt.Fprintln(l.out, ErrorColorFG.Sprint(" "+err.Error()))
}

// Symbols is the part of a symbol table that can be listed.
type Symbols interface {
	Names() []string
	TypeOf(name string) quad.Type
}

// SymbolTable prints every symbol with its type as a table.
func (l *Logger) SymbolTable(symbols Symbols) error {
	if l.level == LevelSilent {
		return nil
	}

	data := [][]string{{"Name", "Type"}}
	for _, name := range symbols.Names() {
		data = append(data, []string{name, symbols.TypeOf(name).String()})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(l.out, table)
	return err
}
