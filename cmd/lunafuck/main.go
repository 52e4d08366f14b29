// Command lunafuck compiles a Brainfuck source file into a native i386
// Linux ELF executable.
package main

import (
	"fmt"
	"os"

	i386codegen "github.com/yakubin/lunafuck/internal/codegen/i386"
	"github.com/yakubin/lunafuck/internal/core"
	"github.com/yakubin/lunafuck/pkg/elf32"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: lunafuck output_file input_file")
}

func main() {
	if len(os.Args) != 3 {
		usage()
		os.Exit(1)
	}

	outPath, inPath := os.Args[1], os.Args[2]

	src, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't load file '%s': %v\n", inPath, err)
		os.Exit(2)
	}

	ol, err := core.Build(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(3)
	}

	code, err := i386codegen.Generate(ol)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(3)
	}

	builder := elf32.NewBuilder()
	builder.SetCode(code)

	if err := writeELF(outPath, builder); err != nil {
		fmt.Fprintf(os.Stderr, "couldn't write file '%s': %v\n", outPath, err)
		os.Exit(4)
	}
}

// writeELF writes the built image to outPath with executable permissions,
// tolerating short writes via Builder.WriteTo.
func writeELF(outPath string, builder *elf32.Builder) error {
	f, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = builder.WriteTo(f)
	return err
}
