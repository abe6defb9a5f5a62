// Command gen-golden regenerates the .golden files compared by the golden
// tests. Run it from the repository root after an intentional output change:
//
//	go run ./cmd/gen-golden
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/bjaus/mdgen"
	"github.com/bjaus/mdgen/internal/sample"
)

func main() {
	var (
		dir   string
		quiet bool
	)
	flags := pflag.NewFlagSet("gen-golden", pflag.ExitOnError)
	flags.StringVarP(&dir, "dir", "d", "testdata", "Directory to write .golden files into")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Do not print written files")
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		fatalf("create %s: %v", dir, err)
	}
	for _, doc := range sample.Docs() {
		data, err := mdgen.Marshal(doc.Nodes...)
		if err != nil {
			fatalf("render %s: %v", doc.Name, err)
		}
		path := filepath.Join(dir, doc.Name+".golden")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			fatalf("write %s: %v", path, err)
		}
		if !quiet {
			fmt.Fprintf(os.Stdout, "wrote %s\n", path)
		}
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
