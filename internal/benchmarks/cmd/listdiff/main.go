// listdiff is a small CLI to manually run the diffing implementations used
// for benchmarking on files with one row identifier per line.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/tools/txtar"
	"mrtz.io/listdiff/internal/benchmarks"
)

type config struct {
	lib      string
	old, new string
	txtar    string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.lib, "lib", "listdiff", "library to use for diffing")
	flag.StringVar(&cfg.txtar, "txtar", "", "use testdata txtar file instead of two input files")
	flag.Parse()

	if cfg.txtar != "" {
		if flag.CommandLine.NArg() != 0 {
			fmt.Fprintf(os.Stderr, "error: usage: listdiff -txtar <file>\n")
			os.Exit(1)
		}
	} else {
		if flag.CommandLine.NArg() != 2 {
			fmt.Fprintf(os.Stderr, "error: usage: listdiff <old> <new>\n")
			os.Exit(1)
		}
		cfg.old = flag.CommandLine.Arg(0)
		cfg.new = flag.CommandLine.Arg(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	var lib *benchmarks.Impl
	for _, l := range benchmarks.Impls {
		if l.Name == cfg.lib {
			lib = &l
		}
	}
	if lib == nil {
		return fmt.Errorf("lib not found %q", cfg.lib)
	}

	var old, new []string
	if cfg.txtar != "" {
		ar, err := txtar.ParseFile(cfg.txtar)
		if err != nil {
			return err
		}
		for _, f := range ar.Files {
			rows := strings.Split(strings.TrimSuffix(string(f.Data), "\n"), "\n")
			switch f.Name {
			case "old":
				old = rows
			case "new":
				new = rows
			}
		}
	} else {
		var err error
		old, err = readRows(cfg.old)
		if err != nil {
			return err
		}
		new, err = readRows(cfg.new)
		if err != nil {
			return err
		}
	}

	fmt.Printf("%s: %d changed rows\n", lib.Name, lib.Diff(old, new))
	return nil
}

func readRows(filename string) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"), nil
}
