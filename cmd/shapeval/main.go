package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	shapeval "github.com/shapeval/shapeval"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "shapeval CLI\n\nUsage:\n  shapeval validate -spec doc.yaml -shape Name [-format text|json|yaml] [-cache] [-v] <input.json|->\n\nExit codes:\n  0 input is valid\n  1 input violates the shape\n  2 usage error or pipeline failure")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var specPath, shapeName, format string
	var useCache, verbose bool
	fs.StringVar(&specPath, "spec", "", "specification document path")
	fs.StringVar(&shapeName, "shape", "", "target shape name")
	fs.StringVar(&format, "format", "text", "diagnostic output: text, json or yaml")
	fs.BoolVar(&useCache, "cache", false, "reuse compiled validators across inputs")
	fs.BoolVar(&verbose, "v", false, "log pipeline details to stderr")
	_ = fs.Parse(args)
	if specPath == "" || shapeName == "" || fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	raw, err := readInput(fs.Arg(0))
	if err != nil {
		fatalf("read input: %v", err)
	}

	var opts []shapeval.Option
	if useCache {
		opts = append(opts, shapeval.WithShapeCache())
	}
	if verbose {
		logger, lerr := zap.NewDevelopment()
		if lerr == nil {
			defer func() { _ = logger.Sync() }()
			opts = append(opts, shapeval.WithLogger(logger))
		}
	}

	engine := shapeval.New(opts...)
	valid, diags, err := engine.Check(context.Background(), specPath, shapeName, raw)
	if err != nil {
		fatalf("%v", err)
	}
	if valid {
		fmt.Println("valid")
		return
	}
	if err := printDiagnostics(diags, format); err != nil {
		fatalf("render diagnostics: %v", err)
	}
	os.Exit(1)
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func printDiagnostics(diags shapeval.Diagnostics, format string) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(diags, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
	case "yaml":
		b, err := yaml.Marshal(diags)
		if err != nil {
			return err
		}
		fmt.Print(string(b))
	default:
		for _, d := range diags {
			fmt.Println(d.String())
		}
	}
	return nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
