package cpq

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nof-sh/cpq/cpq/config"
	"github.com/nof-sh/cpq/cpq/diag"
	"github.com/nof-sh/cpq/cpq/quad"
)

const ifProgram = `
/* pick a value */
a, b: int;
x: float;
{
	a = 5;
	b = 3;
	if (a > b) x = 1; else x = 0;
}
`

var _ = Describe("Compiler", func() {
	var compiler *Compiler

	BeforeEach(func() {
		compiler = NewCompiler(nil)
	})

	It("should compile an if statement", func() {
		result, err := compiler.Compile(strings.NewReader(ifProgram))

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Diagnostics).To(BeEmpty())
		Expect(result.Quad).To(Equal(strings.Join([]string{
			"IASN a 5",
			"IASN b 3",
			"IGRT ti0 a b",
			"JMPZ L1 ti0",
			"RASN x 1.0",
			"JUMP L0",
			"L1:",
			"RASN x 0.0",
			"L0:",
			"HALT",
			Signature,
			"",
		}, "\n")))
	})

	It("should be deterministic", func() {
		first, err := compiler.Compile(strings.NewReader(ifProgram))
		Expect(err).NotTo(HaveOccurred())
		second, err := NewCompiler(nil).Compile(strings.NewReader(ifProgram))
		Expect(err).NotTo(HaveOccurred())

		Expect(second.Quad).To(Equal(first.Quad))
	})

	It("should compile an empty program", func() {
		result, err := compiler.Compile(strings.NewReader("{}"))

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Quad).To(Equal("HALT\n" + Signature + "\n"))
	})

	It("should widen ints stored in floats", func() {
		result, err := compiler.Compile(strings.NewReader(`
			x: int; y: float;
			{ input(x); y = x; output(y); }`))

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Quad).To(HavePrefix("IINP x\nITOR tf0 x\nRASN y tf0\nRPRT y\nHALT\n"))
	})

	It("should skip temporaries that collide with variables", func() {
		result, err := compiler.Compile(strings.NewReader(`
			ti0, a: int;
			{ a = a + 1; ti0 = a * 2; }`))

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Quad).To(HavePrefix("IADD ti1 a 1\nIASN a ti1\nIMLT ti2 a 2\nIASN ti0 ti2\n"))
	})

	It("should produce no QUAD when there are errors", func() {
		result, err := compiler.Compile(strings.NewReader(`
			x: int; y: float;
			{ x = y; output(z); }`))

		Expect(err).To(MatchError(ErrInvalidProgram))
		Expect(result.Quad).To(BeEmpty())
		Expect(result.Errors()).To(Equal(2))
		Expect(result.Diagnostics[0].Kind).To(Equal(diag.TypeMismatch))
		Expect(result.Diagnostics[1].Kind).To(Equal(diag.Undeclared))
	})

	It("should report several independent errors in one pass", func() {
		result, err := compiler.Compile(strings.NewReader(`
			a: int;
			{ a = ; a = 1 $ ; output(b); a = 2 }`))

		Expect(err).To(MatchError(ErrInvalidProgram))
		var kinds []diag.Kind
		for _, d := range result.Diagnostics {
			kinds = append(kinds, d.Kind)
		}
		Expect(kinds).To(Equal([]diag.Kind{diag.Syntax, diag.Lexical, diag.Undeclared, diag.Syntax}))
	})

	It("should keep warnings out of the way of output", func() {
		result, err := compiler.Compile(strings.NewReader(`
			a: int; a: float;
			{ a = 1; }`))

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Errors()).To(BeZero())
		Expect(result.Diagnostics).To(HaveLen(1))
		Expect(result.Diagnostics[0].Severity).To(Equal(diag.Warning))
		Expect(result.Quad).To(HavePrefix("RASN a 1.0\n"))
	})

	It("should expose the symbol table", func() {
		result, err := compiler.Compile(strings.NewReader(ifProgram))

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Symbols.Names()).To(Equal([]string{"a", "b", "x"}))
		Expect(result.Symbols.TypeOf("x")).To(Equal(quad.Float))
	})

	Context("with a configuration", func() {
		It("should use the configured names and trailer", func() {
			cfg := config.Default()
			cfg.Names.IntPrefix = "_i"
			cfg.Names.LabelPrefix = "label"
			cfg.Output.Trailer = "-- end --"

			result, err := NewCompiler(cfg).Compile(strings.NewReader(`
				a: int;
				{ while (a < 3) a = a + 1; }`))

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Quad).To(Equal(strings.Join([]string{
				"label0:",
				"ILSS _i0 a 3",
				"JMPZ label1 _i0",
				"IADD _i1 a 1",
				"IASN a _i1",
				"JUMP label0",
				"label1:",
				"HALT",
				"-- end --",
				"",
			}, "\n")))
		})

		It("should resolve labels to instruction numbers", func() {
			cfg := config.Default()
			cfg.Output.ResolveLabels = true

			result, err := NewCompiler(cfg).Compile(strings.NewReader(ifProgram))

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Quad).To(Equal(strings.Join([]string{
				"IASN a 5",
				"IASN b 3",
				"IGRT ti0 a b",
				"JMPZ 7 ti0",
				"RASN x 1.0",
				"JUMP 8",
				"RASN x 0.0",
				"HALT",
				Signature,
				"",
			}, "\n")))
		})
	})

	Context("with files", func() {
		var dir string

		BeforeEach(func() {
			var err error
			dir, err = ioutil.TempDir("", "cpq")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			os.RemoveAll(dir)
		})

		It("should compile a source file", func() {
			path := filepath.Join(dir, "prog.ou")
			Expect(ioutil.WriteFile(path, []byte(ifProgram), 0644)).To(Succeed())

			result, err := compiler.CompileFile(path)

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Quad).To(HaveSuffix("HALT\n" + Signature + "\n"))
		})

		It("should reject other extensions", func() {
			path := filepath.Join(dir, "prog.cpl")
			Expect(ioutil.WriteFile(path, []byte(ifProgram), 0644)).To(Succeed())

			_, err := compiler.CompileFile(path)

			Expect(err).To(MatchError(ContainSubstring("extension must be .ou")))
		})

		It("should report a missing file", func() {
			_, err := compiler.CompileFile(filepath.Join(dir, "missing.ou"))

			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("cannot open input CPL file"))
		})
	})

	It("should name the output file after the source", func() {
		Expect(compiler.OutputPath("dir/prog.ou")).To(Equal("dir/prog.qud"))
	})
})
