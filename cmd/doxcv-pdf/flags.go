package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// pdfFlags holds all flags for the doxcv-pdf command.
type pdfFlags struct {
	config   string
	template string
	output   string
	engine   string
	timeout  string
	tex      bool
	texOnly  bool
	quiet    bool
	verbose  bool
}

// parseFlags parses command-line flags and returns the positional args
// (the optional source document path).
func parseFlags(args []string) (*pdfFlags, []string, error) {
	fs := flag.NewFlagSet("doxcv-pdf", flag.ContinueOnError)
	f := &pdfFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.template, "template", "", "LaTeX template path (default: embedded sidebar template)")
	fs.StringVarP(&f.output, "output", "o", "", "output PDF path")
	fs.StringVar(&f.engine, "engine", "", "typesetting engine command (default: pdflatex)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "engine timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.tex, "tex", false, "write the filled .tex alongside the PDF")
	fs.BoolVar(&f.texOnly, "tex-only", false, "write the filled .tex and skip compilation")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")

	fs.Usage = func() { printUsage(fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func printUsage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "Usage: doxcv-pdf [flags] [source.dox]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}
