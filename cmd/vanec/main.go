// Command vanec compiles a single vane source file to LLVM IR, optionally
// shelling out to clang to produce a native object file.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/llir/llvm/ir"

	"github.com/vane-lang/vane/diag"
	"github.com/vane-lang/vane/parser"
)

func main() {
	fs := flag.NewFlagSet("vanec", flag.ExitOnError)
	srcFile := fs.String("f", "", "source file to compile (required)")
	outFile := fs.String("o", "", "output path; absent prints textual IR to stdout")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vanec -f <source-path> [-o <output-path>]\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if *srcFile == "" {
		diag.Fatalf(diag.Syntax, "missing required argument: -f <source file>")
	}

	source, err := os.ReadFile(*srcFile)
	if err != nil {
		diag.Fatalf(diag.Syntax, "could not open file '%s': %v", *srcFile, err)
	}

	className := strings.TrimSuffix(filepath.Base(*srcFile), filepath.Ext(*srcFile))
	if className == "" {
		diag.Fatalf(diag.Internal, "invalid module name derived from file path '%s'", *srcFile)
	}

	p := parser.New(string(source), *srcFile, parser.DefaultReadFile)
	program, err := p.Program()
	if err != nil {
		diag.Fatalf(diag.Syntax, "%v", err)
	}

	module, err := program.Build(className)
	if err != nil {
		diag.Fatalf(diag.Internal, "module verification failed: %v", err)
	}

	if err := emit(module, *outFile); err != nil {
		diag.Fatalf(diag.Internal, "%v", err)
	}
}

// emit writes the compiled module's textual IR to stdout, to outFile
// directly if it has a ".ll" extension, or, for any other extension,
// writes the IR to a temporary ".ll" file and shells out to clang to
// produce a native object file at outFile — llir/llvm constructs IR but
// has no target-machine/object-emission backend of its own.
func emit(module *ir.Module, outFile string) error {
	text := module.String()

	if outFile == "" {
		fmt.Print(text)
		return nil
	}

	if filepath.Ext(outFile) == ".ll" {
		return os.WriteFile(outFile, []byte(text), 0o644)
	}

	tempIR := outFile + ".tmp.ll"
	if err := os.WriteFile(tempIR, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing temporary IR file: %w", err)
	}
	defer os.Remove(tempIR)

	cmd := exec.Command("clang", "-c", tempIR, "-o", outFile)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clang failed to emit object file: %w", err)
	}
	return nil
}
