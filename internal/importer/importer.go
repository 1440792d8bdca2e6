// Package importer turns inventory export files into resolved inventories.
package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/invreader/internal/importer/tsv"
	"github.com/cory-johannsen/invreader/internal/inventory"
)

// Result is one loaded export.
type Result struct {
	// LoadID uniquely identifies this load in logs.
	LoadID string
	// Path is the name the export was loaded from; empty for ReadString.
	Path string
	// Inventory is the resolved equipment layout.
	Inventory *inventory.PlayerInventory
	// Findings lists parser findings followed by resolver findings.
	Findings []inventory.Finding
	// Header reports whether the export carried a header line.
	Header bool
}

// Importer composes decoding, parsing, and slot resolution.
type Importer struct {
	source   Source
	encoding Encoding
	parse    []tsv.Option
	resolver *inventory.Resolver
	logger   *zap.Logger
}

// Option configures an Importer.
type Option func(*Importer)

// WithEncoding sets the export encoding. The default is EncodingAuto.
func WithEncoding(enc Encoding) Option {
	return func(imp *Importer) { imp.encoding = enc }
}

// WithParseOptions passes opts to the line parser.
func WithParseOptions(opts ...tsv.Option) Option {
	return func(imp *Importer) { imp.parse = append(imp.parse, opts...) }
}

// WithResolver replaces the default slot resolver.
func WithResolver(r *inventory.Resolver) Option {
	return func(imp *Importer) { imp.resolver = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(imp *Importer) { imp.logger = logger }
}

// New constructs an Importer backed by the given Source.
//
// Precondition: source must be non-nil.
// Postcondition: returns a non-nil Importer.
func New(source Source, opts ...Option) *Importer {
	imp := &Importer{
		source:   source,
		encoding: EncodingAuto,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(imp)
	}
	if imp.resolver == nil {
		imp.resolver = inventory.NewResolver(inventory.WithLogger(imp.logger))
	}
	return imp
}

// ReadFile loads, decodes, parses, and resolves the export at path.
//
// Postcondition: returns a non-nil Result, or an error. Errors from the
// source wrap ErrInputUnavailable; malformed content never produces an error.
func (imp *Importer) ReadFile(path string) (*Result, error) {
	data, err := imp.source.Load(path)
	if err != nil {
		imp.logger.Warn("export unavailable", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	text, err := Decode(data, imp.encoding)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	res := imp.read(text)
	res.Path = path
	imp.logResult(res, len(data))
	return res, nil
}

// ReadString parses and resolves export text that is already decoded.
// Empty text yields an empty inventory.
func (imp *Importer) ReadString(text string) *Result {
	res := imp.read(text)
	imp.logResult(res, len(text))
	return res
}

func (imp *Importer) read(text string) *Result {
	start := time.Now()
	parsed := tsv.Scan(text, imp.parse...)
	for _, f := range parsed.Findings {
		imp.logger.Debug("line finding",
			zap.String("reason", string(f.Reason)),
			zap.Int("line", f.Line),
			zap.String("detail", f.Detail),
		)
	}
	inv, resolved := imp.resolver.ResolveReport(parsed.Records)

	findings := make([]inventory.Finding, 0, len(parsed.Findings)+len(resolved))
	findings = append(findings, parsed.Findings...)
	findings = append(findings, resolved...)

	imp.logger.Debug("export resolved",
		zap.Int("records", len(parsed.Records)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return &Result{
		LoadID:    uuid.New().String(),
		Inventory: inv,
		Findings:  findings,
		Header:    parsed.Header,
	}
}

func (imp *Importer) logResult(res *Result, size int) {
	imp.logger.Info("export loaded",
		zap.String("load_id", res.LoadID),
		zap.String("path", res.Path),
		zap.Int("bytes", size),
		zap.Bool("header", res.Header),
		zap.Int("equipped", res.Inventory.Equipped()),
		zap.Int("items", len(res.Inventory.Items)),
		zap.Int("findings", len(res.Findings)),
	)
}
