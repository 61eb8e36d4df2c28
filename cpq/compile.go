// Package cpq compiles CPL programs into QUAD code.
package cpq

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nof-sh/cpq/cpq/config"
	"github.com/nof-sh/cpq/cpq/diag"
	"github.com/nof-sh/cpq/cpq/lexer"
	"github.com/nof-sh/cpq/cpq/parser"
	"github.com/nof-sh/cpq/cpq/quad"
	"github.com/nof-sh/cpq/cpq/symtab"
	"github.com/nof-sh/cpq/cpq/translate"
)

// Signature identifies the compiler on the console and, by default, at the
// end of every QUAD file.
const Signature = "CPL to Quad compiler by Nof Shabtay."

// ErrInvalidProgram is returned when the program has at least one error
// diagnostic. The diagnostics are in the Result.
var ErrInvalidProgram = errors.New("program has errors")

// Compiler compiles CPL programs with a fixed configuration. A Compiler keeps
// no state between compilations.
type Compiler struct {
	cfg *config.Config
}

// NewCompiler returns a compiler using cfg, or the defaults if cfg is nil.
func NewCompiler(cfg *config.Config) *Compiler {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Compiler{cfg: cfg}
}

// Result is the outcome of one compilation.
type Result struct {
	// Quad is the QUAD program. It is empty unless the compilation succeeded.
	Quad string
	// Diagnostics are all errors and warnings, ordered by position.
	Diagnostics []diag.Diagnostic
	// Symbols is the symbol table as it was at the end of the compilation.
	Symbols *symtab.Table
}

// Errors returns the number of error diagnostics.
func (r *Result) Errors() int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.IsError() {
			n++
		}
	}
	return n
}

// Compile translates the CPL program read from src. It returns
// ErrInvalidProgram, together with the diagnostics, when the program has
// errors.
func (c *Compiler) Compile(src io.Reader) (*Result, error) {
	symbols := symtab.New()
	bag := &diag.Bag{}

	engine := translate.NewEngine(
		symbols,
		quad.NewTempAllocator(symbols, c.cfg.Names.IntPrefix, c.cfg.Names.FloatPrefix),
		quad.NewLabelAllocator(c.cfg.Names.LabelPrefix),
		bag,
	)
	scanner := lexer.NewScanner(src, symbols, bag)
	program := translateProgram(parser.New(scanner, engine, bag), bag)

	result := &Result{Diagnostics: bag.Items(), Symbols: symbols}
	if bag.HasErrors() {
		return result, ErrInvalidProgram
	}

	assembler := quad.Assembler{
		Trailer:       c.cfg.Output.Trailer,
		ResolveLabels: c.cfg.Output.ResolveLabels,
	}
	result.Quad = assembler.Assemble(quad.Render(program.Code))
	return result, nil
}

// translateProgram runs the parser and turns a broken compiler invariant into
// an Internal diagnostic.
func translateProgram(p *parser.Parser, bag *diag.Bag) (program translate.Construct) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*quad.InternalError)
			if !ok {
				panic(r)
			}
			bag.Report(diag.Errorf(diag.Internal, diag.Position{}, "%s", ie.Error()))
			program = translate.Poisoned()
		}
	}()
	return p.Parse()
}

// CompileFile compiles the source file at path. The file must have the
// configured source extension.
func (c *Compiler) CompileFile(path string) (*Result, error) {
	if ext := c.cfg.Output.SourceExtension; filepath.Ext(path) != ext {
		return nil, fmt.Errorf("input file extension must be %s: %s", ext, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input CPL file: %w", err)
	}
	defer f.Close()

	return c.Compile(f)
}

// OutputPath returns the QUAD file name for a source file name: the source
// extension is replaced with the output extension.
func (c *Compiler) OutputPath(source string) string {
	return strings.TrimSuffix(source, c.cfg.Output.SourceExtension) + c.cfg.Output.Extension
}
