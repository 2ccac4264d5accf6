package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/wippyai/wasm-core/engine"
	"github.com/wippyai/wasm-core/loader"
	"github.com/wippyai/wasm-core/wasm"
)

func main() {
	var (
		wasmFile    = flag.String("wasm", "", "Path to wasm module file")
		load        = flag.Bool("load", false, "Instantiate the module and list its exports")
		interactive = flag.Bool("i", false, "Interactive section browser")
	)
	flag.Parse()

	if *wasmFile == "" && flag.NArg() > 0 {
		*wasmFile = flag.Arg(0)
	}
	if *wasmFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: wasmspect [-load] [-i] <file.wasm>")
		os.Exit(1)
	}

	if *interactive && term.IsTerminal(int(os.Stdout.Fd())) {
		if err := runInteractive(*wasmFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := inspect(*wasmFile, *load); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func inspect(path string, load bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	if err := wasm.ValidateHeader(data); err != nil {
		return err
	}

	sections, err := wasm.ParseSections(data)
	if err != nil {
		return err
	}

	fmt.Printf("Module: %s (%d bytes, %d sections)\n\n", path, len(data), len(sections))

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSECTION\tOFFSET\tSIZE")
	for _, s := range sections {
		fmt.Fprintf(tw, "%d\t%s\t0x%06x\t%d\n", s.ID, s.Name, s.Offset, s.Size)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !load {
		return nil
	}
	return listExports(path)
}

func listExports(path string) error {
	ctx := context.Background()

	eng := engine.New()
	defer eng.Close(ctx)

	mod, err := loader.New(eng).Load(ctx, loader.FromPath(path))
	if err != nil {
		return err
	}
	defer mod.Close(ctx)

	fmt.Printf("\nMemory: %d bytes\n\nExports:\n", mod.Memory().Size())

	defs := mod.Module().ExportedFunctionDefinitions()
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := defs[name]
		fmt.Printf("  %s (params: %d, results: %d)\n", name, len(def.ParamTypes()), len(def.ResultTypes()))
	}
	return nil
}
