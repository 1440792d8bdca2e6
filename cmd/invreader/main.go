// Package main provides the invreader binary, which prints the equipment
// layout stored in a game client's tab-separated inventory export.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/cory-johannsen/invreader/internal/config"
	"github.com/cory-johannsen/invreader/internal/importer"
	"github.com/cory-johannsen/invreader/internal/importer/tsv"
	"github.com/cory-johannsen/invreader/internal/inventory"
	"github.com/cory-johannsen/invreader/internal/observability"
	"github.com/cory-johannsen/invreader/internal/render"
)

const usage = "usage: invreader [-config <file>] [-format text|yaml] [-color auto|always|never] [-findings] <export-file>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the testable entrypoint. It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("invreader", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML configuration file")
	format := fs.String("format", "", "output format: text or yaml (overrides config)")
	color := fs.String("color", "", "color output: auto, always, or never (overrides config)")
	showFindings := fs.Bool("findings", false, "list dropped and defaulted lines")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(stderr, usage)
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, usage)
		return 2
	}
	path := fs.Arg(0)

	// A missing .env is normal; anything else is worth reporting.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(stderr, "warning: loading .env: %v\n", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "loading config: %v\n", err)
		return 2
	}
	if *format != "" {
		cfg.Render.Format = *format
	}
	if *color != "" {
		cfg.Render.Color = *color
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "initializing logger: %v\n", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	imp := importer.New(importer.FileSource{}, importerOptions(cfg.Reader, logger)...)
	res, err := imp.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "could not load %s: %v\n", path, err)
		return 1
	}

	view := render.Project(res.Inventory, res.Findings)
	switch cfg.Render.Format {
	case "yaml":
		err = render.YAML(stdout, view)
	default:
		err = render.Text(stdout, view, render.TextOptions{
			Color:        useColor(cfg.Render.Color, stdout),
			NameWidth:    cfg.Render.NameWidth,
			ShowItems:    cfg.Render.ShowItems,
			ShowFindings: *showFindings,
		})
	}
	if err != nil {
		logger.Error("rendering inventory", zap.Error(err))
		return 1
	}
	return 0
}

// importerOptions translates reader settings into importer options.
func importerOptions(rc config.ReaderConfig, logger *zap.Logger) []importer.Option {
	resolverOpts := []inventory.ResolverOption{inventory.WithLogger(logger)}
	for _, a := range rc.Aliases {
		resolverOpts = append(resolverOpts, inventory.WithAlias(a.Location, inventory.Category(a.Category)))
	}
	return []importer.Option{
		importer.WithEncoding(importer.Encoding(rc.Encoding)),
		importer.WithParseOptions(
			tsv.WithPartialCount(rc.PartialCount),
			tsv.WithAmmoStop(rc.AmmoStopsParse),
		),
		importer.WithResolver(inventory.NewResolver(resolverOpts...)),
		importer.WithLogger(logger),
	}
}

// useColor resolves the color mode against the output stream.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
