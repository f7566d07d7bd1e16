package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// siteFlags holds all flags for the doxcv-site command.
type siteFlags struct {
	config  string
	html    string
	preview string
	dryRun  bool
	watch   bool
	quiet   bool
	verbose bool
}

// parseFlags parses command-line flags and returns the positional args
// (the optional source document path).
func parseFlags(args []string) (*siteFlags, []string, error) {
	fs := flag.NewFlagSet("doxcv-site", flag.ContinueOnError)
	f := &siteFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.html, "html", "", "HTML page to update in place")
	fs.StringVar(&f.preview, "preview", "", "also render the updated page to this PDF path")
	fs.BoolVar(&f.dryRun, "dry-run", false, "print the updated page to stdout instead of writing")
	fs.BoolVarP(&f.watch, "watch", "w", false, "watch the source document and re-run on changes")
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
	fmt.Fprintln(w, "Usage: doxcv-site [flags] [source.dox]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}
