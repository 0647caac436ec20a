package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-ideagen/internal/dateutil"
)

// ErrUsage wraps flag parsing and argument errors.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logLevel  string
	logJSON   bool
	assetPath string
}

// outputFlags holds chunk output flags.
type outputFlags struct {
	dir       string
	maxLength int
	preview   string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common  commonFlags
	out     outputFlags
	workers int
}

// requestFlags holds the report request flags.
type requestFlags struct {
	niche  string
	budget string
	market string
	ideas  int
	format string
}

// llmFlags holds model API flags.
type llmFlags struct {
	model   string
	baseURL string
	timeout string
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common  commonFlags
	out     outputFlags
	request requestFlags
	llm     llmFlags
	name    string // chunk file name pattern
}

// exampleFlags holds all flags for the example command.
type exampleFlags struct {
	common commonFlags
	out    outputFlags
	format string
}

// catalogFlags holds all flags for the catalog command.
type catalogFlags struct {
	common commonFlags
	kind   string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&f.logJSON, "log-json", false, "log as JSON")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addOutputFlags adds chunk output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "write chunk files to this directory")
	fs.IntVarP(&f.maxLength, "max-length", "m", 0, "max characters per chunk (0 = config)")
	fs.StringVar(&f.preview, "preview", "", "write an HTML preview to this file")
}

// addRequestFlags adds report request flags to a FlagSet.
func addRequestFlags(fs *flag.FlagSet, f *requestFlags) {
	fs.StringVarP(&f.niche, "niche", "n", "", "niche key or free text")
	fs.StringVarP(&f.budget, "budget", "b", "", "budget key or free text")
	fs.StringVar(&f.market, "market", "", "market key or free text")
	fs.IntVarP(&f.ideas, "ideas", "i", 0, "number of ideas, 3-5 (0 = config)")
	fs.StringVarP(&f.format, "format", "f", "", "report format: detailed, short")
}

// addLLMFlags adds model API flags to a FlagSet.
func addLLMFlags(fs *flag.FlagSet, f *llmFlags) {
	fs.StringVar(&f.model, "model", "", "chat model name")
	fs.StringVar(&f.baseURL, "base-url", "", "OpenAI-compatible API base URL")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "generation timeout (e.g., 90s, 2m)")
}

// newFlagSet creates a FlagSet that prints usage to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseArgs parses args and wraps failures in ErrUsage.
// flag.ErrHelp is returned as is, after usage was printed.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return fs.Args(), nil
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newFlagSet("render", w, printRenderUsage)
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addOutputFlags(fs, &f.out)
	addCommonFlags(fs, &f.common)

	rest, err := parseArgs(fs, args)
	return f, rest, err
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, w io.Writer) (*generateFlags, []string, error) {
	f := &generateFlags{}
	fs := newFlagSet("generate", w, printGenerateUsage)
	fs.StringVar(&f.name, "name", dateutil.DefaultPattern, "chunk file name, {stamp} expands to the date")
	addRequestFlags(fs, &f.request)
	addLLMFlags(fs, &f.llm)
	addOutputFlags(fs, &f.out)
	addCommonFlags(fs, &f.common)

	rest, err := parseArgs(fs, args)
	return f, rest, err
}

// parseExampleFlags parses example command flags and returns positional args.
func parseExampleFlags(args []string, w io.Writer) (*exampleFlags, []string, error) {
	f := &exampleFlags{}
	fs := newFlagSet("example", w, printExampleUsage)
	fs.StringVarP(&f.format, "format", "f", "", "print as html or markdown (default html)")
	addOutputFlags(fs, &f.out)
	addCommonFlags(fs, &f.common)

	rest, err := parseArgs(fs, args)
	return f, rest, err
}

// parseCatalogFlags parses catalog command flags and returns positional args.
func parseCatalogFlags(args []string, w io.Writer) (*catalogFlags, []string, error) {
	f := &catalogFlags{}
	fs := newFlagSet("catalog", w, printCatalogUsage)
	fs.StringVarP(&f.kind, "kind", "k", "", "only list niches, budgets or markets")
	addCommonFlags(fs, &f.common)

	rest, err := parseArgs(fs, args)
	return f, rest, err
}

// parseConfigFlags parses config command flags and returns positional args.
func parseConfigFlags(args []string, w io.Writer) (*commonFlags, []string, error) {
	f := &commonFlags{}
	fs := newFlagSet("config", w, printConfigUsage)
	addCommonFlags(fs, f)

	rest, err := parseArgs(fs, args)
	return f, rest, err
}
