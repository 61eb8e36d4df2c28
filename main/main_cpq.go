package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"
	"github.com/nof-sh/cpq/cpq"
	"github.com/nof-sh/cpq/cpq/config"
	"github.com/nof-sh/cpq/cpq/logging"
	"github.com/tebeka/atexit"
)

func main() {
	atexit.Exit(execute())
}

// execute runs the command line and returns the exit status.
func execute() int {
	fmt.Fprintln(os.Stderr, cpq.Signature)

	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("cpq", "cpq compiles CPL programs into QUAD code", true)
	cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warning", "verbose"})

	compileCmd := cli.AddSubcommand("compile", "compile a CPL source file", true)
	compileCmd.AddPrimaryArg("source-path", "the path to the .ou file to compile", true)
	compileCmd.AddStringArg("config", "c", "the path to a cpq.toml file", false)
	compileCmd.AddStringArg("output", "o", "the path of the QUAD file to write", false)
	compileCmd.AddFlag("symbols", "s", "print the symbol table")

	cli.AddSubcommand("version", "print the compiler signature", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.New(os.Stderr, logging.LevelError).Error("CLI Usage Error", err)
		return 2
	}

	loglevel := ""
	if value, ok := result.Arguments["loglevel"]; ok {
		loglevel = value.(string)
	}

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "compile":
		return execCompileCommand(subResult, loglevel)
	case "version":
		logging.New(os.Stdout, logging.LevelVerbose).Info("Version", cpq.Signature)
	}
	return 0
}

// execCompileCommand compiles one source file and writes its QUAD file when
// the program has no errors.
func execCompileCommand(result *olive.ArgParseResult, loglevel string) int {
	source, _ := result.PrimaryArg()

	cfg, err := loadConfig(result, source)
	if err != nil {
		logging.New(os.Stderr, logging.LevelError).Error("Config Error", err)
		return 1
	}
	if loglevel != "" {
		cfg.Log.Level = loglevel
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		logging.New(os.Stderr, logging.LevelError).Error("Config Error", err)
		return 1
	}
	logger := logging.New(os.Stderr, level)

	logger.Info("Compiling", source)
	compiler := cpq.NewCompiler(cfg)
	compiled, err := compiler.CompileFile(source)
	if compiled == nil {
		logger.Error("File Error", err)
		return 1
	}

	for _, d := range compiled.Diagnostics {
		logger.Report(d)
	}
	if result.HasFlag("symbols") {
		if err := logger.SymbolTable(compiled.Symbols); err != nil {
			logger.Error("Display Error", err)
		}
	}
	if err != nil {
		logger.Flush()
		return 1
	}

	outfile := compiler.OutputPath(source)
	if value, ok := result.Arguments["output"]; ok {
		outfile = value.(string)
	}
	if err := ioutil.WriteFile(outfile, []byte(compiled.Quad), 0644); err != nil {
		logger.Error("Output Error", err)
		return 1
	}

	logger.Info("Wrote", outfile)
	logger.Flush()
	return 0
}

// loadConfig reads the file named by --config, or cpq.toml next to the
// source file.
func loadConfig(result *olive.ArgParseResult, source string) (*config.Config, error) {
	if value, ok := result.Arguments["config"]; ok {
		return config.LoadFile(value.(string))
	}
	return config.Load(filepath.Dir(source))
}
